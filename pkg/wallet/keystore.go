package wallet

import (
	"context"
	"fmt"
	"math/big"
	"os"
	"sync"

	"github.com/Layr-Labs/eigenx-wallet-bridge/pkg/transactionSigner"
	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/accounts/keystore"
	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"
)

// KeystoreProvider grants access to an account in an encrypted keystore
// directory once its passphrase decrypts the key.
type KeystoreProvider struct {
	keystore   *keystore.KeyStore
	account    string
	passphrase string
	backend    transactionSigner.EthBackend
	logger     *zap.Logger

	mu     sync.RWMutex
	signer transactionSigner.ITransactionSigner
}

// NewKeystoreProvider opens dir. An empty account selects the first key in the directory.
func NewKeystoreProvider(dir string, account string, passphrase string, backend transactionSigner.EthBackend, logger *zap.Logger) (*KeystoreProvider, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to open keystore directory %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("keystore path %s is not a directory", dir)
	}

	return &KeystoreProvider{
		keystore:   keystore.NewKeyStore(dir, keystore.StandardScryptN, keystore.StandardScryptP),
		account:    account,
		passphrase: passphrase,
		backend:    backend,
		logger:     logger,
	}, nil
}

func (k *KeystoreProvider) RequestAccounts(ctx context.Context) (common.Address, error) {
	account, err := k.findAccount()
	if err != nil {
		return common.Address{}, err
	}

	keyJson, err := os.ReadFile(account.URL.Path)
	if err != nil {
		return common.Address{}, fmt.Errorf("failed to read key file for %s: %w", account.Address.Hex(), err)
	}

	key, err := keystore.DecryptKey(keyJson, k.passphrase)
	if err != nil {
		k.logger.Sugar().Warnw("Keystore refused account access",
			"account", account.Address.Hex(),
			"error", err,
		)
		return common.Address{}, fmt.Errorf("%w: %v", ErrAccessDenied, err)
	}

	signer, err := transactionSigner.NewPrivateKeySignerFromKey(key.PrivateKey, k.backend, k.logger)
	if err != nil {
		return common.Address{}, fmt.Errorf("failed to create signer for %s: %w", account.Address.Hex(), err)
	}

	k.mu.Lock()
	k.signer = signer
	k.mu.Unlock()

	k.logger.Sugar().Infow("Keystore granted account access", "account", account.Address.Hex())
	return account.Address, nil
}

func (k *KeystoreProvider) findAccount() (accounts.Account, error) {
	if k.account == "" {
		all := k.keystore.Accounts()
		if len(all) == 0 {
			return accounts.Account{}, fmt.Errorf("%w: keystore holds no accounts", ErrAccessDenied)
		}
		return all[0], nil
	}

	account, err := k.keystore.Find(accounts.Account{Address: common.HexToAddress(k.account)})
	if err != nil {
		return accounts.Account{}, fmt.Errorf("%w: %v", ErrAccessDenied, err)
	}
	return account, nil
}

func (k *KeystoreProvider) ChainID(ctx context.Context) (*big.Int, error) {
	return k.backend.ChainID(ctx)
}

func (k *KeystoreProvider) Signer() transactionSigner.ITransactionSigner {
	k.mu.RLock()
	defer k.mu.RUnlock()
	return k.signer
}

func (k *KeystoreProvider) Backend() transactionSigner.EthBackend {
	return k.backend
}
