package caller

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/Layr-Labs/eigenx-wallet-bridge/pkg/bindings/DummyDepositWithdraw"
	ethereum "github.com/Layr-Labs/eigenx-wallet-bridge/pkg/clients/ethereum"
	"github.com/Layr-Labs/eigenx-wallet-bridge/pkg/config"
	"github.com/Layr-Labs/eigenx-wallet-bridge/pkg/transactionSigner"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"
)

// ErrNoSigner is returned by write methods on a read-only caller
var ErrNoSigner = errors.New("contract caller has no transaction signer")

type ContractCaller struct {
	backend         bind.ContractBackend
	signer          transactionSigner.ITransactionSigner
	logger          *zap.Logger
	contractAddress common.Address

	contract *DummyDepositWithdraw.DummyDepositWithdraw
}

// NewContractCallerFromRpcUrl dials rpcUrl, checks it serves chainId and binds the contract
func NewContractCallerFromRpcUrl(
	ctx context.Context,
	rpcUrl string,
	chainId config.ChainId,
	contractAddress common.Address,
	signer transactionSigner.ITransactionSigner,
	logger *zap.Logger,
) (*ContractCaller, error) {
	client, err := ethereum.Dial(ctx, rpcUrl, chainId, logger)
	if err != nil {
		return nil, err
	}
	return NewContractCaller(contractAddress, client, signer, logger)
}

// NewContractCaller binds the contract at contractAddress. signer may be nil
// for a caller that only reads balances.
func NewContractCaller(
	contractAddress common.Address,
	backend bind.ContractBackend,
	signer transactionSigner.ITransactionSigner,
	logger *zap.Logger,
) (*ContractCaller, error) {
	contract, err := DummyDepositWithdraw.NewDummyDepositWithdraw(contractAddress, backend)
	if err != nil {
		return nil, fmt.Errorf("failed to create deposit/withdraw contract instance: %w", err)
	}

	return &ContractCaller{
		backend:         backend,
		signer:          signer,
		logger:          logger,
		contractAddress: contractAddress,
		contract:        contract,
	}, nil
}

func (cc *ContractCaller) ContractAddress() common.Address {
	return cc.contractAddress
}

func (cc *ContractCaller) GetSignerAddress() (common.Address, error) {
	if cc.signer == nil {
		return common.Address{}, ErrNoSigner
	}
	return cc.signer.GetFromAddress(), nil
}

// BalanceOf returns the contract balance of account in base units
func (cc *ContractCaller) BalanceOf(ctx context.Context, account common.Address) (*big.Int, error) {
	balance, err := cc.contract.BalanceOf(&bind.CallOpts{Context: ctx}, account)
	if err != nil {
		return nil, fmt.Errorf("failed to get balance of %s: %w", account.Hex(), err)
	}
	return balance, nil
}
