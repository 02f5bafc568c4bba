// Package ledger implements the append-only balance engine shared by the
// material stock and expense wallet modules.
//
// Entries are immutable: the engine only ever inserts, and balances are
// recomputed from the full history on every read. There is no cached running
// total anywhere, so the ledger and its balance cannot diverge.
package ledger

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrUnknownPolarity = errors.New("unknown polarity token")
	ErrNegativeAmount  = errors.New("amount must not be negative")
	ErrEmptySubject    = errors.New("subject id is required")
)

// Convention names the two polarity tokens accepted by one ledger kind,
// e.g. {"in","out"} for stock or {"credit","debit"} for a wallet.
type Convention struct {
	Increase string
	Decrease string
}

// Entry is a single immutable ledger record.
type Entry struct {
	EntryID     string
	SubjectID   string
	Polarity    string
	Amount      decimal.Decimal
	Notes       string
	EvidenceRef string
	CreatedBy   string
	CreatedAt   time.Time
}

// Store is the persistence boundary for one ledger table. ListEntries must
// return entries ordered by CreatedAt ascending; relative order of entries
// sharing a timestamp is unspecified.
type Store interface {
	AppendEntry(ctx context.Context, entry Entry) error
	ListEntries(ctx context.Context, subjectID string) ([]Entry, error)
}

// Clock abstracts current time for deterministic tests.
type Clock interface {
	Now() time.Time
}

// IDGenerator abstracts entry id generation.
type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}

// Engine computes balances over an append-only entry history.
type Engine struct {
	Convention Convention
	Store      Store
	Clock      Clock
	IDGen      IDGenerator
	Logger     *slog.Logger
}

// AppendInput carries caller-supplied fields for one new entry.
type AppendInput struct {
	SubjectID   string
	Polarity    string
	Amount      decimal.Decimal
	Notes       string
	EvidenceRef string
	CreatedBy   string
}

// Append validates polarity and amount and inserts one entry. It never reads
// or updates a balance, so concurrent appends cannot conflict.
func (e Engine) Append(ctx context.Context, input AppendInput) (Entry, error) {
	subjectID := strings.TrimSpace(input.SubjectID)
	if subjectID == "" {
		return Entry{}, ErrEmptySubject
	}
	polarity := strings.TrimSpace(input.Polarity)
	if polarity != e.Convention.Increase && polarity != e.Convention.Decrease {
		return Entry{}, ErrUnknownPolarity
	}
	if input.Amount.IsNegative() {
		return Entry{}, ErrNegativeAmount
	}

	entryID, err := e.IDGen.NewID(ctx)
	if err != nil {
		return Entry{}, err
	}
	entry := Entry{
		EntryID:     entryID,
		SubjectID:   subjectID,
		Polarity:    polarity,
		Amount:      input.Amount,
		Notes:       strings.TrimSpace(input.Notes),
		EvidenceRef: strings.TrimSpace(input.EvidenceRef),
		CreatedBy:   strings.TrimSpace(input.CreatedBy),
		CreatedAt:   e.now(),
	}
	if err := e.Store.AppendEntry(ctx, entry); err != nil {
		return Entry{}, err
	}

	resolveLogger(e.Logger).Info("ledger entry appended",
		"event", "ledger_entry_appended",
		"module", "internal/shared/ledger",
		"layer", "application",
		"entry_id", entry.EntryID,
		"subject_id", entry.SubjectID,
		"polarity", entry.Polarity,
		"amount", entry.Amount.String(),
	)
	return entry, nil
}

// Balance recomputes the subject balance from scratch: sum of increase
// amounts minus sum of decrease amounts, in exact decimal arithmetic.
// A subject with no entries has balance exactly zero. The result may be
// negative; no overdraft rule is enforced here.
func (e Engine) Balance(ctx context.Context, subjectID string) (decimal.Decimal, error) {
	subjectID = strings.TrimSpace(subjectID)
	if subjectID == "" {
		return decimal.Zero, ErrEmptySubject
	}
	entries, err := e.Store.ListEntries(ctx, subjectID)
	if err != nil {
		return decimal.Zero, err
	}
	total := decimal.Zero
	for _, entry := range entries {
		if entry.Polarity == e.Convention.Increase {
			total = total.Add(entry.Amount)
		} else {
			total = total.Sub(entry.Amount)
		}
	}
	return total, nil
}

// History returns the full entry history for a subject, ascending by
// creation time.
func (e Engine) History(ctx context.Context, subjectID string) ([]Entry, error) {
	subjectID = strings.TrimSpace(subjectID)
	if subjectID == "" {
		return nil, ErrEmptySubject
	}
	return e.Store.ListEntries(ctx, subjectID)
}

func (e Engine) now() time.Time {
	if e.Clock == nil {
		return time.Now().UTC()
	}
	return e.Clock.Now().UTC()
}

func resolveLogger(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return slog.Default()
	}
	return logger
}
