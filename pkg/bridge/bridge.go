package bridge

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/Layr-Labs/eigenx-wallet-bridge/pkg/config"
	"github.com/Layr-Labs/eigenx-wallet-bridge/pkg/contractCaller"
	"github.com/Layr-Labs/eigenx-wallet-bridge/pkg/contractCaller/caller"
	"github.com/Layr-Labs/eigenx-wallet-bridge/pkg/persistence"
	"github.com/Layr-Labs/eigenx-wallet-bridge/pkg/session"
	"github.com/Layr-Labs/eigenx-wallet-bridge/pkg/transactionSigner"
	"github.com/Layr-Labs/eigenx-wallet-bridge/pkg/units"
	"github.com/Layr-Labs/eigenx-wallet-bridge/pkg/wallet"
	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"
)

// CallerFactory binds the contract for a connected user's signer.
type CallerFactory func(signer transactionSigner.ITransactionSigner, backend transactionSigner.EthBackend) (contractCaller.IContractCaller, error)

type Config struct {
	ChainId         config.ChainId
	ContractAddress common.Address
	TransferSource  config.TransferSource

	// ActionTimeout bounds each action; zero means no limit
	ActionTimeout time.Duration

	// NewUserCaller overrides how the session contract handle is built
	NewUserCaller CallerFactory
}

// Controller runs the wallet bridge actions against one wallet provider and
// one operator identity. It is safe for concurrent use.
type Controller struct {
	config   *Config
	provider wallet.Provider
	operator contractCaller.IContractCaller
	store    persistence.IBridgePersistence
	logger   *zap.Logger

	mu      sync.RWMutex
	session *session.Session
	view    View
}

// NewController creates a disconnected controller. store may be nil to disable the journal.
func NewController(
	cfg *Config,
	provider wallet.Provider,
	operator contractCaller.IContractCaller,
	store persistence.IBridgePersistence,
	logger *zap.Logger,
) (*Controller, error) {
	if cfg == nil {
		return nil, fmt.Errorf("bridge config cannot be nil")
	}
	if provider == nil {
		return nil, fmt.Errorf("wallet provider cannot be nil")
	}
	if operator == nil {
		return nil, fmt.Errorf("operator contract caller cannot be nil")
	}
	if cfg.TransferSource == "" {
		cfg.TransferSource = config.TransferSource_Operator
	}
	if cfg.NewUserCaller == nil {
		cfg.NewUserCaller = func(signer transactionSigner.ITransactionSigner, backend transactionSigner.EthBackend) (contractCaller.IContractCaller, error) {
			return caller.NewContractCaller(cfg.ContractAddress, backend, signer, logger)
		}
	}

	return &Controller{
		config:   cfg,
		provider: provider,
		operator: operator,
		store:    store,
		logger:   logger,
	}, nil
}

// Connect requests account access, checks the network, creates the session
// and displays the account's balance. A repeated Connect keeps the original
// session and only refreshes the network check and balance.
func (c *Controller) Connect(ctx context.Context) *Result {
	ctx, cancel := c.actionContext(ctx)
	defer cancel()

	record := persistence.NewActionRecord(string(ActionConnect))

	account, err := c.provider.RequestAccounts(ctx)
	if err != nil {
		if Classify(err) != ErrorKindAccessDenied {
			err = fmt.Errorf("%w: %v", ErrAccessDenied, err)
		}
		return c.fail(record, err)
	}
	record.Account = account.Hex()

	if err := c.checkNetwork(ctx); err != nil {
		return c.fail(record, err)
	}

	sess, created, err := c.ensureSession(account)
	if err != nil {
		return c.fail(record, err)
	}
	record.Account = sess.Account().Hex()

	if created {
		c.saveSessionState(sess)
	}

	balance, err := sess.Contract().BalanceOf(ctx, sess.Account())
	if err != nil {
		return c.fail(record, fmt.Errorf("%w: %v", ErrTransactionFailed, err))
	}

	text := units.FormatEther(balance)
	c.setBalance(text)

	c.logger.Sugar().Infow("Wallet connected",
		"account", sess.Account().Hex(),
		"balance", text,
		"newSession", created,
	)
	result := c.succeed(record)
	result.Balance = text
	return result
}

// ensureSession returns the existing session or creates one for account.
func (c *Controller) ensureSession(account common.Address) (*session.Session, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.session != nil {
		c.view.ConnectStatus = ConnectedStatusText
		return c.session, false, nil
	}

	signer := c.provider.Signer()
	if signer == nil {
		return nil, false, fmt.Errorf("%w: wallet granted access without a signer", ErrAccessDenied)
	}

	contract, err := c.config.NewUserCaller(signer, c.provider.Backend())
	if err != nil {
		return nil, false, fmt.Errorf("%w: failed to bind contract: %v", ErrTransactionFailed, err)
	}

	c.session = session.NewSession(account, c.config.ChainId, contract)
	c.view.ConnectStatus = ConnectedStatusText
	return c.session, true, nil
}

// RefreshBalance re-reads the session account's balance and updates the view.
func (c *Controller) RefreshBalance(ctx context.Context) *Result {
	ctx, cancel := c.actionContext(ctx)
	defer cancel()

	record := persistence.NewActionRecord(string(ActionBalance))

	sess, err := c.requireSession()
	if err != nil {
		return c.fail(record, err)
	}
	record.Account = sess.Account().Hex()

	if err := c.checkNetwork(ctx); err != nil {
		return c.fail(record, err)
	}

	balance, err := sess.Contract().BalanceOf(ctx, sess.Account())
	if err != nil {
		return c.fail(record, fmt.Errorf("%w: %v", ErrTransactionFailed, err))
	}

	text := units.FormatEther(balance)
	c.setBalance(text)

	result := c.succeed(record)
	result.Balance = text
	return result
}

// View returns a snapshot of the displayed fields.
func (c *Controller) View() View {
	c.mu.RLock()
	defer c.mu.RUnlock()

	v := c.view
	if c.session != nil {
		v.Connected = true
		v.Account = c.session.Account().Hex()
	}
	return v
}

// History returns the journaled action records, oldest first.
func (c *Controller) History(ctx context.Context) ([]*persistence.ActionRecord, error) {
	if c.store == nil {
		return []*persistence.ActionRecord{}, nil
	}
	return c.store.ListActionRecords()
}

func (c *Controller) requireSession() (*session.Session, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.session == nil {
		return nil, ErrNotConnected
	}
	return c.session, nil
}

// checkNetwork fails with ErrWrongNetwork unless the wallet reports the required chain.
func (c *Controller) checkNetwork(ctx context.Context) error {
	chainId, err := c.provider.ChainID(ctx)
	if err != nil {
		return fmt.Errorf("%w: failed to query wallet network: %v", ErrTransactionFailed, err)
	}
	if chainId.Cmp(c.config.ChainId.BigInt()) != 0 {
		return fmt.Errorf("%w: expected chain %d, wallet is on %s", ErrWrongNetwork, c.config.ChainId, chainId.String())
	}
	return nil
}

func (c *Controller) setBalance(text string) {
	c.mu.Lock()
	c.view.Balance = text
	c.mu.Unlock()
}

func (c *Controller) actionContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.config.ActionTimeout > 0 {
		return context.WithTimeout(ctx, c.config.ActionTimeout)
	}
	return context.WithCancel(ctx)
}
