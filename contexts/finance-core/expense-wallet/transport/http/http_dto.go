package httptransport

import (
	"time"

	"github.com/shopspring/decimal"
)

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type AddTransactionRequest struct {
	Amount     decimal.Decimal `json:"amount"`
	Notes      string          `json:"notes,omitempty"`
	ReceiptRef string          `json:"receipt_ref,omitempty"`
}

type TransactionDTO struct {
	ID         string          `json:"id"`
	ProjectID  string          `json:"project_id"`
	Polarity   string          `json:"polarity"`
	Amount     decimal.Decimal `json:"amount"`
	Notes      string          `json:"notes,omitempty"`
	ReceiptRef string          `json:"receipt_ref,omitempty"`
	CreatedBy  string          `json:"created_by,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
}

type ListTransactionsResponse struct {
	Transactions []TransactionDTO `json:"transactions"`
}

type BalanceResponse struct {
	ProjectID string          `json:"project_id"`
	Balance   decimal.Decimal `json:"balance"`
}
