package transactionSigner

import (
	"context"
	cryptoEcdsa "crypto/ecdsa"
	"encoding/asn1"
	"errors"
	"math/big"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/kms"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

var (
	oidEcPublicKey = asn1.ObjectIdentifier{1, 2, 840, 10045, 2, 1}
	oidSecp256k1   = asn1.ObjectIdentifier{1, 3, 132, 0, 10}
)

// fakeKms signs with a local key and returns DER encoded values the way KMS does
type fakeKms struct {
	key    *cryptoEcdsa.PrivateKey
	highS  bool
	signed int
}

func (f *fakeKms) GetPublicKey(ctx context.Context, params *kms.GetPublicKeyInput, optFns ...func(*kms.Options)) (*kms.GetPublicKeyOutput, error) {
	pub := crypto.FromECDSAPub(&f.key.PublicKey)
	der, err := asn1.Marshal(asn1EcPublicKey{
		EcPublicKeyInfo: asn1EcPublicKeyInfo{Algorithm: oidEcPublicKey, Parameters: oidSecp256k1},
		PublicKey:       asn1.BitString{Bytes: pub, BitLength: len(pub) * 8},
	})
	if err != nil {
		return nil, err
	}
	return &kms.GetPublicKeyOutput{KeyId: params.KeyId, PublicKey: der}, nil
}

func (f *fakeKms) Sign(ctx context.Context, params *kms.SignInput, optFns ...func(*kms.Options)) (*kms.SignOutput, error) {
	sig, err := crypto.Sign(params.Message, f.key)
	if err != nil {
		return nil, err
	}
	f.signed++

	r := new(big.Int).SetBytes(sig[:32])
	s := new(big.Int).SetBytes(sig[32:64])
	if f.highS {
		s = new(big.Int).Sub(secp256k1N, s)
	}
	der, err := asn1.Marshal(struct{ R, S *big.Int }{r, s})
	if err != nil {
		return nil, err
	}
	return &kms.SignOutput{KeyId: params.KeyId, Signature: der}, nil
}

type failingKms struct{}

func (failingKms) GetPublicKey(ctx context.Context, params *kms.GetPublicKeyInput, optFns ...func(*kms.Options)) (*kms.GetPublicKeyOutput, error) {
	return nil, errors.New("AccessDeniedException")
}

func (failingKms) Sign(ctx context.Context, params *kms.SignInput, optFns ...func(*kms.Options)) (*kms.SignOutput, error) {
	return nil, errors.New("AccessDeniedException")
}

func Test_AwsKmsSigner(t *testing.T) {
	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	from := crypto.PubkeyToAddress(key.PublicKey)

	client := newSimulatedChain(t, from)
	l := zaptest.NewLogger(t)

	t.Run("derives the address from the KMS public key", func(t *testing.T) {
		signer, err := NewAwsKmsSigner(context.Background(), &fakeKms{key: key}, "test-key", client, l)
		require.NoError(t, err)
		assert.Equal(t, from, signer.GetFromAddress())
	})

	t.Run("surfaces KMS errors", func(t *testing.T) {
		_, err := NewAwsKmsSigner(context.Background(), failingKms{}, "test-key", client, l)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "test-key")
	})

	t.Run("normalizes high-S signatures", func(t *testing.T) {
		fake := &fakeKms{key: key, highS: true}
		signer, err := NewAwsKmsSigner(context.Background(), fake, "test-key", client, l)
		require.NoError(t, err)

		digest := crypto.Keccak256([]byte("wallet bridge"))
		sig, err := signer.signDigest(context.Background(), digest)
		require.NoError(t, err)
		require.Len(t, sig, 65)
		assert.LessOrEqual(t, new(big.Int).SetBytes(sig[32:64]).Cmp(secp256k1HalfN), 0)

		recovered, err := crypto.SigToPub(digest, sig)
		require.NoError(t, err)
		assert.Equal(t, from, crypto.PubkeyToAddress(*recovered))
	})

	t.Run("rejects digests of the wrong size", func(t *testing.T) {
		signer, err := NewAwsKmsSigner(context.Background(), &fakeKms{key: key}, "test-key", client, l)
		require.NoError(t, err)

		_, err = signer.signDigest(context.Background(), []byte{0x01})
		require.Error(t, err)
	})

	t.Run("signs, sends and waits for the receipt", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		fake := &fakeKms{key: key}
		signer, err := NewAwsKmsSigner(ctx, fake, "test-key", client, l)
		require.NoError(t, err)

		recipient := common.HexToAddress("0x00000000000000000000000000000000000000cc")
		receipt, err := signer.SignAndSendTransaction(ctx, valueTransfer(recipient, oneEther()))
		require.NoError(t, err)
		assert.Equal(t, uint64(1), receipt.Status)
		assert.Equal(t, 1, fake.signed)

		balance, err := client.BalanceAt(ctx, recipient, nil)
		require.NoError(t, err)
		assert.Equal(t, oneEther().String(), balance.String())
	})
}
