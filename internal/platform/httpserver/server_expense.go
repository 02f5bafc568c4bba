package httpserver

import (
	"errors"
	"net/http"

	walleterrors "fieldops/contexts/finance-core/expense-wallet/domain/errors"
	wallethttp "fieldops/contexts/finance-core/expense-wallet/transport/http"
	"fieldops/contexts/identity-access/access-control/domain/services"
	"fieldops/internal/shared/ledger"
)

func writeWalletError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, wallethttp.ErrorResponse{Code: code, Message: message})
}

func writeWalletDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, walleterrors.ErrReceiptRequired):
		writeWalletError(w, http.StatusBadRequest, "receipt_required", err.Error())
	case errors.Is(err, walleterrors.ErrInvalidRequest):
		writeWalletError(w, http.StatusBadRequest, "invalid_request", err.Error())
	case errors.Is(err, ledger.ErrNegativeAmount):
		writeWalletError(w, http.StatusBadRequest, "negative_amount", err.Error())
	case errors.Is(err, ledger.ErrUnknownPolarity), errors.Is(err, ledger.ErrEmptySubject):
		writeWalletError(w, http.StatusBadRequest, "invalid_request", err.Error())
	default:
		writeWalletError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func (s *Server) handleWalletCredit(w http.ResponseWriter, r *http.Request) {
	claims, ok := s.authenticate(w, r)
	if !ok {
		return
	}
	projectID := r.PathValue("project_id")
	if !s.requireProjectAccess(w, r, claims, projectID, services.CanManageExpense) {
		return
	}
	var req wallethttp.AddTransactionRequest
	if !s.decodeJSON(w, r, &req, writeWalletError) {
		return
	}
	resp, err := s.wallet.Handler.AddCreditHandler(r.Context(), projectID, claims.UserID, req)
	if err != nil {
		writeWalletDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleWalletDebit(w http.ResponseWriter, r *http.Request) {
	claims, ok := s.authenticate(w, r)
	if !ok {
		return
	}
	projectID := r.PathValue("project_id")
	if !s.requireProjectAccess(w, r, claims, projectID, services.CanManageExpense) {
		return
	}
	var req wallethttp.AddTransactionRequest
	if !s.decodeJSON(w, r, &req, writeWalletError) {
		return
	}
	resp, err := s.wallet.Handler.AddDebitHandler(r.Context(), projectID, claims.UserID, req)
	if err != nil {
		writeWalletDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleWalletBalance(w http.ResponseWriter, r *http.Request) {
	claims, ok := s.authenticate(w, r)
	if !ok {
		return
	}
	projectID := r.PathValue("project_id")
	if !s.requireProjectAccess(w, r, claims, projectID, services.CanViewExpense) {
		return
	}
	resp, err := s.wallet.Handler.BalanceHandler(r.Context(), projectID)
	if err != nil {
		writeWalletDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleWalletTransactions(w http.ResponseWriter, r *http.Request) {
	claims, ok := s.authenticate(w, r)
	if !ok {
		return
	}
	projectID := r.PathValue("project_id")
	if !s.requireProjectAccess(w, r, claims, projectID, services.CanViewExpense) {
		return
	}
	resp, err := s.wallet.Handler.ListTransactionsHandler(r.Context(), projectID)
	if err != nil {
		writeWalletDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
