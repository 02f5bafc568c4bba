package httpadapter

import (
	"context"
	"log/slog"

	"fieldops/contexts/finance-core/expense-wallet/application"
	httptransport "fieldops/contexts/finance-core/expense-wallet/transport/http"
	"fieldops/internal/shared/ledger"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

func (h Handler) AddCreditHandler(ctx context.Context, projectID string, createdBy string, request httptransport.AddTransactionRequest) (httptransport.TransactionDTO, error) {
	entry, err := h.Service.AddCredit(ctx, projectID, request.Amount, request.Notes, request.ReceiptRef, createdBy)
	if err != nil {
		return httptransport.TransactionDTO{}, err
	}
	return transactionDTO(entry), nil
}

func (h Handler) AddDebitHandler(ctx context.Context, projectID string, createdBy string, request httptransport.AddTransactionRequest) (httptransport.TransactionDTO, error) {
	entry, err := h.Service.AddDebit(ctx, projectID, request.Amount, request.Notes, request.ReceiptRef, createdBy)
	if err != nil {
		return httptransport.TransactionDTO{}, err
	}
	return transactionDTO(entry), nil
}

func (h Handler) BalanceHandler(ctx context.Context, projectID string) (httptransport.BalanceResponse, error) {
	balance, err := h.Service.Balance(ctx, projectID)
	if err != nil {
		return httptransport.BalanceResponse{}, err
	}
	return httptransport.BalanceResponse{ProjectID: projectID, Balance: balance}, nil
}

func (h Handler) ListTransactionsHandler(ctx context.Context, projectID string) (httptransport.ListTransactionsResponse, error) {
	entries, err := h.Service.Transactions(ctx, projectID)
	if err != nil {
		return httptransport.ListTransactionsResponse{}, err
	}
	out := httptransport.ListTransactionsResponse{Transactions: make([]httptransport.TransactionDTO, 0, len(entries))}
	for _, entry := range entries {
		out.Transactions = append(out.Transactions, transactionDTO(entry))
	}
	return out, nil
}

func transactionDTO(entry ledger.Entry) httptransport.TransactionDTO {
	return httptransport.TransactionDTO{
		ID:         entry.EntryID,
		ProjectID:  entry.SubjectID,
		Polarity:   entry.Polarity,
		Amount:     entry.Amount,
		Notes:      entry.Notes,
		ReceiptRef: entry.EvidenceRef,
		CreatedBy:  entry.CreatedBy,
		CreatedAt:  entry.CreatedAt,
	}
}
