package transactionSigner

import (
	"context"
	cryptoEcdsa "crypto/ecdsa"
	"encoding/asn1"
	"fmt"
	"math/big"

	"github.com/Layr-Labs/crypto-libs/pkg/ecdsa"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/kms"
	kmsTypes "github.com/aws/aws-sdk-go-v2/service/kms/types"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// KmsAPI is the part of the AWS KMS client used for signing
type KmsAPI interface {
	GetPublicKey(ctx context.Context, params *kms.GetPublicKeyInput, optFns ...func(*kms.Options)) (*kms.GetPublicKeyOutput, error)
	Sign(ctx context.Context, params *kms.SignInput, optFns ...func(*kms.Options)) (*kms.SignOutput, error)
}

var (
	secp256k1N     = crypto.S256().Params().N
	secp256k1HalfN = new(big.Int).Rsh(secp256k1N, 1)
)

// AwsKmsSigner implements ITransactionSigner with an ECC_SECG_P256K1 key held in AWS KMS
type AwsKmsSigner struct {
	backend     EthBackend
	logger      *zap.Logger
	chainID     *big.Int
	kmsClient   KmsAPI
	keyId       string
	publicKey   *cryptoEcdsa.PublicKey
	fromAddress common.Address
}

// NewAwsKmsSigner resolves the KMS key's public key and derives the signing address from it
func NewAwsKmsSigner(ctx context.Context, kmsClient KmsAPI, keyId string, backend EthBackend, logger *zap.Logger) (*AwsKmsSigner, error) {
	chainID, err := backend.ChainID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get chain ID: %w", err)
	}

	pubOut, err := kmsClient.GetPublicKey(ctx, &kms.GetPublicKeyInput{KeyId: aws.String(keyId)})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get public key for key %s", keyId)
	}

	pubKey, err := parseECDSAPublicKey(pubOut.PublicKey)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse public key for key %s", keyId)
	}

	addr, err := (&ecdsa.PublicKey{X: pubKey.X, Y: pubKey.Y}).DeriveAddress()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to derive Ethereum address for key %s", keyId)
	}

	signer := &AwsKmsSigner{
		backend:     backend,
		logger:      logger,
		chainID:     chainID,
		kmsClient:   kmsClient,
		keyId:       keyId,
		publicKey:   pubKey,
		fromAddress: common.HexToAddress(addr.String()),
	}
	logger.Sugar().Infow("Loaded AWS KMS signer",
		"keyId", keyId,
		"address", signer.fromAddress.Hex(),
	)
	return signer, nil
}

// GetTransactOpts returns transaction options for creating unsigned transactions
func (a *AwsKmsSigner) GetTransactOpts(ctx context.Context) (*bind.TransactOpts, error) {
	return unsignedTransactOpts(ctx, a.fromAddress), nil
}

// SignAndSendTransaction signs the transaction digest in KMS, sends it and waits for the receipt
func (a *AwsKmsSigner) SignAndSendTransaction(ctx context.Context, tx *types.Transaction) (*types.Receipt, error) {
	unsigned, err := prepareDynamicFeeTx(ctx, a.backend, a.chainID, a.fromAddress, tx, a.logger)
	if err != nil {
		return nil, err
	}

	txSigner := types.LatestSignerForChainID(a.chainID)
	newTx := types.NewTx(unsigned)

	sig, err := a.signDigest(ctx, txSigner.Hash(newTx).Bytes())
	if err != nil {
		return nil, errors.Wrapf(err, "failed to sign transaction with KMS key %s", a.keyId)
	}

	signedTx, err := newTx.WithSignature(txSigner, sig)
	if err != nil {
		return nil, fmt.Errorf("failed to attach signature: %w", err)
	}

	return sendAndWait(ctx, a.backend, signedTx, a.logger)
}

// signDigest returns a 65 byte [R || S || V] signature with V in {0, 1}
func (a *AwsKmsSigner) signDigest(ctx context.Context, digest []byte) ([]byte, error) {
	if len(digest) != 32 {
		return nil, fmt.Errorf("hash must be exactly 32 bytes, got %d", len(digest))
	}

	signOutput, err := a.kmsClient.Sign(ctx, &kms.SignInput{
		KeyId:            aws.String(a.keyId),
		Message:          digest,
		SigningAlgorithm: kmsTypes.SigningAlgorithmSpecEcdsaSha256,
		MessageType:      kmsTypes.MessageTypeDigest,
	})
	if err != nil {
		return nil, err
	}

	var sigAsn1 asn1EcSig
	if _, err := asn1.Unmarshal(signOutput.Signature, &sigAsn1); err != nil {
		return nil, fmt.Errorf("failed to parse ASN.1 signature: %w", err)
	}

	r := new(big.Int).SetBytes(sigAsn1.R.Bytes)
	s := new(big.Int).SetBytes(sigAsn1.S.Bytes)

	// Ethereum only accepts low-S signatures
	if s.Cmp(secp256k1HalfN) > 0 {
		s = new(big.Int).Sub(secp256k1N, s)
	}

	signature := make([]byte, 65)
	r.FillBytes(signature[0:32])
	s.FillBytes(signature[32:64])

	for recoveryId := byte(0); recoveryId < 2; recoveryId++ {
		signature[64] = recoveryId
		recovered, err := crypto.SigToPub(digest, signature)
		if err != nil {
			a.logger.Sugar().Debugw("Signature recovery failed",
				"recoveryId", recoveryId,
				"error", err,
			)
			continue
		}
		if recovered.X.Cmp(a.publicKey.X) == 0 && recovered.Y.Cmp(a.publicKey.Y) == 0 {
			return signature, nil
		}
	}
	return nil, fmt.Errorf("could not determine valid recovery ID - signature recovery failed")
}

// GetFromAddress returns the address that will be used for signing
func (a *AwsKmsSigner) GetFromAddress() common.Address {
	return a.fromAddress
}

// EstimateGasPriceAndLimit estimates gas price and limit for a transaction
func (a *AwsKmsSigner) EstimateGasPriceAndLimit(ctx context.Context, tx *types.Transaction) (*big.Int, uint64, error) {
	return estimateGasPriceAndLimit(ctx, a.backend, a.chainID, a.fromAddress, tx, a.logger)
}

// parseECDSAPublicKey parses the DER encoded SubjectPublicKeyInfo returned by KMS
func parseECDSAPublicKey(derBytes []byte) (*cryptoEcdsa.PublicKey, error) {
	var asn1pubk asn1EcPublicKey
	if _, err := asn1.Unmarshal(derBytes, &asn1pubk); err != nil {
		return nil, fmt.Errorf("failed to parse ASN.1 public key: %w", err)
	}
	return crypto.UnmarshalPubkey(asn1pubk.PublicKey.Bytes)
}

type asn1EcSig struct {
	R asn1.RawValue
	S asn1.RawValue
}

type asn1EcPublicKey struct {
	EcPublicKeyInfo asn1EcPublicKeyInfo
	PublicKey       asn1.BitString
}

type asn1EcPublicKeyInfo struct {
	Algorithm  asn1.ObjectIdentifier
	Parameters asn1.ObjectIdentifier
}
