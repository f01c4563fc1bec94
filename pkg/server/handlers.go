package server

import (
	"encoding/json"
	"fmt"
	"net/http"
)

type amountRequest struct {
	Amount string `json:"amount"`
}

type transferRequest struct {
	To     string `json:"to"`
	Amount string `json:"amount"`
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.page.Execute(w, s.bridge.View()); err != nil {
		s.logger.Sugar().Errorw("Failed to render page", "error", err)
	}
}

func (s *Server) handleView(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	s.writeJSON(w, s.bridge.View())
}

func (s *Server) handleActions(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	records, err := s.bridge.History(r.Context())
	if err != nil {
		s.logger.Sugar().Errorw("Failed to list actions", "error", err)
		http.Error(w, "Failed to list actions", http.StatusInternalServerError)
		return
	}
	s.writeJSON(w, records)
}

func (s *Server) handleConnect(w http.ResponseWriter, r *http.Request) {
	if !s.allowAction(w, r, http.MethodPost) {
		return
	}
	s.writeJSON(w, s.bridge.Connect(r.Context()))
}

func (s *Server) handleDeposit(w http.ResponseWriter, r *http.Request) {
	if !s.allowAction(w, r, http.MethodPost) {
		return
	}

	var req amountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("Failed to parse request: %v", err), http.StatusBadRequest)
		return
	}
	s.writeJSON(w, s.bridge.Deposit(r.Context(), req.Amount))
}

func (s *Server) handleWithdraw(w http.ResponseWriter, r *http.Request) {
	if !s.allowAction(w, r, http.MethodPost) {
		return
	}

	var req amountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("Failed to parse request: %v", err), http.StatusBadRequest)
		return
	}
	s.writeJSON(w, s.bridge.Withdraw(r.Context(), req.Amount))
}

func (s *Server) handleTransfer(w http.ResponseWriter, r *http.Request) {
	if !s.allowAction(w, r, http.MethodPost) {
		return
	}

	var req transferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("Failed to parse request: %v", err), http.StatusBadRequest)
		return
	}
	s.writeJSON(w, s.bridge.Transfer(r.Context(), req.To, req.Amount))
}

func (s *Server) handleBalance(w http.ResponseWriter, r *http.Request) {
	if !s.allowAction(w, r, http.MethodGet) {
		return
	}
	s.writeJSON(w, s.bridge.RefreshBalance(r.Context()))
}

// allowAction checks the method and the rate limit, writing the error response when either fails.
func (s *Server) allowAction(w http.ResponseWriter, r *http.Request, method string) bool {
	if r.Method != method {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return false
	}
	if s.limiter != nil && !s.limiter.Allow() {
		s.logger.Sugar().Warnw("Rate limit exceeded", "path", r.URL.Path, "remote", r.RemoteAddr)
		http.Error(w, "Too many requests", http.StatusTooManyRequests)
		return false
	}
	return true
}

func (s *Server) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Sugar().Errorw("Failed to encode response", "error", err)
	}
}
