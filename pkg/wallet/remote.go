package wallet

import (
	"context"
	"fmt"
	"math/big"
	"strings"
	"sync"

	"github.com/Layr-Labs/eigenx-wallet-bridge/pkg/clients/web3signer"
	"github.com/Layr-Labs/eigenx-wallet-bridge/pkg/transactionSigner"
	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"
)

// RemoteProvider uses a Web3Signer compatible service as the wallet.
// eth_accounts is the access request.
type RemoteProvider struct {
	client  web3signer.IWeb3Signer
	account string
	backend transactionSigner.EthBackend
	logger  *zap.Logger

	mu     sync.RWMutex
	signer transactionSigner.ITransactionSigner
}

// NewRemoteProvider wraps client. An empty account selects the first account the signer lists.
func NewRemoteProvider(client web3signer.IWeb3Signer, account string, backend transactionSigner.EthBackend, logger *zap.Logger) *RemoteProvider {
	return &RemoteProvider{
		client:  client,
		account: account,
		backend: backend,
		logger:  logger,
	}
}

func (r *RemoteProvider) RequestAccounts(ctx context.Context) (common.Address, error) {
	listed, err := r.client.EthAccounts(ctx)
	if err != nil {
		return common.Address{}, fmt.Errorf("%w: %v", ErrAccessDenied, err)
	}
	if len(listed) == 0 {
		return common.Address{}, fmt.Errorf("%w: signer exposes no accounts", ErrAccessDenied)
	}

	selected := listed[0]
	if r.account != "" {
		selected = ""
		for _, a := range listed {
			if strings.EqualFold(a, r.account) {
				selected = a
				break
			}
		}
		if selected == "" {
			return common.Address{}, fmt.Errorf("%w: account %s is not held by the signer", ErrAccessDenied, r.account)
		}
	}
	address := common.HexToAddress(selected)

	signer, err := transactionSigner.NewWeb3TransactionSigner(r.client, address, r.backend, r.logger)
	if err != nil {
		return common.Address{}, fmt.Errorf("failed to create signer for %s: %w", address.Hex(), err)
	}

	r.mu.Lock()
	r.signer = signer
	r.mu.Unlock()

	r.logger.Sugar().Infow("Remote signer granted account access", "account", address.Hex())
	return address, nil
}

func (r *RemoteProvider) ChainID(ctx context.Context) (*big.Int, error) {
	return r.backend.ChainID(ctx)
}

func (r *RemoteProvider) Signer() transactionSigner.ITransactionSigner {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.signer
}

func (r *RemoteProvider) Backend() transactionSigner.EthBackend {
	return r.backend
}
