// Package wallet provides the user-side wallet: account access, the network the
// wallet is on, and a signer for the granted account.
package wallet

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/Layr-Labs/eigenx-wallet-bridge/pkg/clients/web3signer"
	"github.com/Layr-Labs/eigenx-wallet-bridge/pkg/config"
	"github.com/Layr-Labs/eigenx-wallet-bridge/pkg/transactionSigner"
	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"
)

// ErrAccessDenied is returned when the wallet refuses to expose an account.
var ErrAccessDenied = errors.New("wallet refused account access")

// Provider is a wallet the bridge can connect to.
type Provider interface {
	// RequestAccounts asks the wallet for an account. It fails with ErrAccessDenied when refused.
	RequestAccounts(ctx context.Context) (common.Address, error)

	// ChainID returns the chain the wallet is currently connected to.
	ChainID(ctx context.Context) (*big.Int, error)

	// Signer returns the signer for the granted account, or nil before access was granted.
	Signer() transactionSigner.ITransactionSigner

	// Backend returns the RPC connection the wallet uses.
	Backend() transactionSigner.EthBackend
}

// NewProvider builds the wallet described by cfg on top of backend.
func NewProvider(cfg *config.WalletConfig, backend transactionSigner.EthBackend, logger *zap.Logger) (Provider, error) {
	switch cfg.Type {
	case config.WalletType_Keystore:
		return NewKeystoreProvider(cfg.KeystoreDir, cfg.AccountAddress, cfg.Passphrase, backend, logger)
	case config.WalletType_Remote:
		client, err := web3signer.NewClient(&web3signer.Config{BaseUrl: cfg.SignerUrl}, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to create wallet signer client: %w", err)
		}
		return NewRemoteProvider(client, cfg.AccountAddress, backend, logger), nil
	}
	return nil, fmt.Errorf("unsupported wallet type: %s", cfg.Type)
}
