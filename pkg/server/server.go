package server

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"net/http"

	"github.com/Layr-Labs/eigenx-wallet-bridge/pkg/bridge"
	"github.com/Layr-Labs/eigenx-wallet-bridge/pkg/persistence"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

/*
Server exposes the wallet bridge page and its JSON action endpoints.

  GET  /          page with the connect, deposit, withdraw and transfer controls
  POST /connect   request wallet access and show the balance
  POST /deposit   { "amount": "1.5" }
  POST /withdraw  { "amount": "0.2" }
  POST /transfer  { "to": "0x...", "amount": "3" }
  GET  /balance   refresh the displayed balance
  GET  /view      current connect status and balance text
  GET  /actions   journaled action records

Action endpoints always answer 200 with a Result; a failed action is a
Result with status "failure". Malformed bodies get 400, wrong methods 405
and requests over the rate limit 429.
*/

// Bridge is the controller the server drives.
type Bridge interface {
	Connect(ctx context.Context) *bridge.Result
	Deposit(ctx context.Context, amount string) *bridge.Result
	Withdraw(ctx context.Context, amount string) *bridge.Result
	Transfer(ctx context.Context, to string, amount string) *bridge.Result
	RefreshBalance(ctx context.Context) *bridge.Result
	View() bridge.View
	History(ctx context.Context) ([]*persistence.ActionRecord, error)
}

var _ Bridge = (*bridge.Controller)(nil)

type Config struct {
	Port int

	// RateLimit is the number of actions per second accepted; 0 disables limiting
	RateLimit float64
	RateBurst int
}

type Server struct {
	bridge     Bridge
	httpServer *http.Server
	limiter    *rate.Limiter
	page       *template.Template
	logger     *zap.Logger
}

// NewServer creates a new server instance
func NewServer(cfg *Config, b Bridge, logger *zap.Logger) *Server {
	s := &Server{
		bridge: b,
		page:   template.Must(template.New("page").Parse(pageTemplate)),
		logger: logger,
	}
	if cfg.RateLimit > 0 {
		s.limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), cfg.RateBurst)
	}

	mux := http.NewServeMux()

	mux.HandleFunc("/", s.handlePage)
	mux.HandleFunc("/view", s.handleView)
	mux.HandleFunc("/actions", s.handleActions)

	// Action endpoints
	mux.HandleFunc("/connect", s.handleConnect)
	mux.HandleFunc("/deposit", s.handleDeposit)
	mux.HandleFunc("/withdraw", s.handleWithdraw)
	mux.HandleFunc("/transfer", s.handleTransfer)
	mux.HandleFunc("/balance", s.handleBalance)

	s.httpServer = &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: mux,
	}

	return s
}

// Start starts the HTTP server
func (s *Server) Start() error {
	go func() {
		s.logger.Sugar().Infow("Starting HTTP server", "port", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			s.logger.Sugar().Errorw("HTTP server error", "error", err)
		}
	}()
	return nil
}

// Stop waits for in-flight requests until ctx is done, then closes the server
func (s *Server) Stop(ctx context.Context) error {
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return s.httpServer.Close()
	}
	return nil
}

// GetHandler returns the HTTP handler (for testing)
func (s *Server) GetHandler() http.Handler {
	return s.httpServer.Handler
}
