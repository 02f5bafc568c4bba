package application

import (
	"context"
	"log/slog"
	"strings"

	"github.com/shopspring/decimal"

	domainerrors "fieldops/contexts/finance-core/expense-wallet/domain/errors"
	"fieldops/internal/shared/ledger"
)

const (
	PolarityCredit = "credit"
	PolarityDebit  = "debit"
)

// WalletConvention is the polarity pair used by every project wallet.
var WalletConvention = ledger.Convention{Increase: PolarityCredit, Decrease: PolarityDebit}

// Service exposes the wallet over a shared ledger engine keyed by project id.
type Service struct {
	Wallet ledger.Engine
	Logger *slog.Logger
}

// AddCredit records incoming cash. Notes and receipt ref are optional.
func (s Service) AddCredit(ctx context.Context, projectID string, amount decimal.Decimal, notes string, receiptRef string, createdBy string) (ledger.Entry, error) {
	entry, err := s.Wallet.Append(ctx, ledger.AppendInput{
		SubjectID:   projectID,
		Polarity:    PolarityCredit,
		Amount:      amount,
		Notes:       notes,
		EvidenceRef: receiptRef,
		CreatedBy:   createdBy,
	})
	if err != nil {
		return ledger.Entry{}, err
	}
	ResolveLogger(s.Logger).Info("wallet credited",
		"event", "wallet_credited",
		"module", "finance-core/expense-wallet",
		"layer", "application",
		"project_id", projectID,
		"amount", entry.Amount.String(),
	)
	return entry, nil
}

// AddDebit records spending. A receipt reference is mandatory.
func (s Service) AddDebit(ctx context.Context, projectID string, amount decimal.Decimal, notes string, receiptRef string, createdBy string) (ledger.Entry, error) {
	if strings.TrimSpace(receiptRef) == "" {
		return ledger.Entry{}, domainerrors.ErrReceiptRequired
	}
	entry, err := s.Wallet.Append(ctx, ledger.AppendInput{
		SubjectID:   projectID,
		Polarity:    PolarityDebit,
		Amount:      amount,
		Notes:       notes,
		EvidenceRef: receiptRef,
		CreatedBy:   createdBy,
	})
	if err != nil {
		return ledger.Entry{}, err
	}
	ResolveLogger(s.Logger).Info("wallet debited",
		"event", "wallet_debited",
		"module", "finance-core/expense-wallet",
		"layer", "application",
		"project_id", projectID,
		"amount", entry.Amount.String(),
	)
	return entry, nil
}

func (s Service) Balance(ctx context.Context, projectID string) (decimal.Decimal, error) {
	return s.Wallet.Balance(ctx, projectID)
}

// Transactions returns the wallet history newest first; the underlying
// ledger history stays ascending.
func (s Service) Transactions(ctx context.Context, projectID string) ([]ledger.Entry, error) {
	entries, err := s.Wallet.History(ctx, projectID)
	if err != nil {
		return nil, err
	}
	out := make([]ledger.Entry, len(entries))
	for i, entry := range entries {
		out[len(entries)-1-i] = entry
	}
	return out, nil
}
