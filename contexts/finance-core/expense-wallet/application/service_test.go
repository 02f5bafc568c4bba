package application

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"fieldops/contexts/finance-core/expense-wallet/adapters/memory"
	domainerrors "fieldops/contexts/finance-core/expense-wallet/domain/errors"
	"fieldops/internal/shared/ledger"
)

type stepClock struct {
	current time.Time
}

func (c *stepClock) Now() time.Time {
	c.current = c.current.Add(time.Second)
	return c.current
}

type seqIDGen struct {
	next int
}

func (g *seqIDGen) NewID(context.Context) (string, error) {
	g.next++
	return fmt.Sprintf("txn-%03d", g.next), nil
}

func newTestService() Service {
	store := memory.NewStore()
	return Service{
		Wallet: ledger.Engine{
			Convention: WalletConvention,
			Store:      store,
			Clock:      &stepClock{current: time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)},
			IDGen:      &seqIDGen{},
		},
	}
}

func TestDebitRequiresReceipt(t *testing.T) {
	service := newTestService()
	ctx := context.Background()

	if _, err := service.AddDebit(ctx, "project-1", decimal.NewFromInt(50), "fuel", "", "user-1"); !errors.Is(err, domainerrors.ErrReceiptRequired) {
		t.Fatalf("expected ErrReceiptRequired, got %v", err)
	}
	if _, err := service.AddDebit(ctx, "project-1", decimal.NewFromInt(50), "fuel", "receipt-9", "user-1"); err != nil {
		t.Fatalf("debit with receipt: %v", err)
	}
}

func TestCreditDoesNotRequireReceipt(t *testing.T) {
	service := newTestService()
	ctx := context.Background()

	entry, err := service.AddCredit(ctx, "project-1", decimal.NewFromInt(500), "", "", "user-1")
	if err != nil {
		t.Fatalf("AddCredit: %v", err)
	}
	if entry.Polarity != PolarityCredit {
		t.Fatalf("unexpected polarity %q", entry.Polarity)
	}
}

func TestBalanceIsExactDecimal(t *testing.T) {
	service := newTestService()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if _, err := service.AddCredit(ctx, "project-1", decimal.RequireFromString("0.10"), "", "", "user-1"); err != nil {
			t.Fatalf("AddCredit: %v", err)
		}
	}
	if _, err := service.AddDebit(ctx, "project-1", decimal.RequireFromString("0.10"), "", "receipt-1", "user-1"); err != nil {
		t.Fatalf("AddDebit: %v", err)
	}

	balance, err := service.Balance(ctx, "project-1")
	if err != nil {
		t.Fatalf("Balance: %v", err)
	}
	if !balance.Equal(decimal.RequireFromString("0.20")) {
		t.Fatalf("expected exactly 0.20, got %s", balance.String())
	}
}

func TestEmptyWalletBalanceIsZero(t *testing.T) {
	service := newTestService()

	balance, err := service.Balance(context.Background(), "project-untouched")
	if err != nil {
		t.Fatalf("Balance: %v", err)
	}
	if !balance.IsZero() {
		t.Fatalf("expected zero, got %s", balance.String())
	}
}

func TestNegativeBalanceAllowed(t *testing.T) {
	service := newTestService()
	ctx := context.Background()

	if _, err := service.AddDebit(ctx, "project-1", decimal.RequireFromString("5.25"), "", "receipt-1", "user-1"); err != nil {
		t.Fatalf("AddDebit: %v", err)
	}

	balance, err := service.Balance(ctx, "project-1")
	if err != nil {
		t.Fatalf("Balance: %v", err)
	}
	if !balance.Equal(decimal.RequireFromString("-5.25")) {
		t.Fatalf("expected -5.25, got %s", balance.String())
	}
}

func TestTransactionsNewestFirst(t *testing.T) {
	service := newTestService()
	ctx := context.Background()

	first, err := service.AddCredit(ctx, "project-1", decimal.NewFromInt(100), "", "", "user-1")
	if err != nil {
		t.Fatalf("AddCredit: %v", err)
	}
	second, err := service.AddDebit(ctx, "project-1", decimal.NewFromInt(40), "", "receipt-1", "user-1")
	if err != nil {
		t.Fatalf("AddDebit: %v", err)
	}

	transactions, err := service.Transactions(ctx, "project-1")
	if err != nil {
		t.Fatalf("Transactions: %v", err)
	}
	if len(transactions) != 2 {
		t.Fatalf("expected 2 transactions, got %d", len(transactions))
	}
	if transactions[0].EntryID != second.EntryID || transactions[1].EntryID != first.EntryID {
		t.Fatalf("expected newest first, got %q then %q", transactions[0].EntryID, transactions[1].EntryID)
	}
}

func TestWalletsAreIsolatedByProject(t *testing.T) {
	service := newTestService()
	ctx := context.Background()

	if _, err := service.AddCredit(ctx, "project-1", decimal.NewFromInt(100), "", "", "user-1"); err != nil {
		t.Fatalf("AddCredit: %v", err)
	}

	other, err := service.Balance(ctx, "project-2")
	if err != nil {
		t.Fatalf("Balance: %v", err)
	}
	if !other.IsZero() {
		t.Fatalf("expected isolated wallet to be zero, got %s", other.String())
	}
}
