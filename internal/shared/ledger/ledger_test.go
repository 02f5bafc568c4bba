package ledger

import (
	"context"
	"errors"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type memStore struct {
	mu      sync.Mutex
	entries []Entry
}

func (s *memStore) AppendEntry(_ context.Context, entry Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, entry)
	return nil
}

func (s *memStore) ListEntries(_ context.Context, subjectID string) ([]Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []Entry
	for _, entry := range s.entries {
		if entry.SubjectID == subjectID {
			out = append(out, entry)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

type uuidGen struct{}

func (uuidGen) NewID(_ context.Context) (string, error) { return uuid.NewString(), nil }

func newTestEngine() (Engine, *memStore) {
	store := &memStore{}
	engine := Engine{
		Convention: Convention{Increase: "in", Decrease: "out"},
		Store:      store,
		IDGen:      uuidGen{},
	}
	return engine, store
}

func mustDecimal(t *testing.T, raw string) decimal.Decimal {
	t.Helper()
	value, err := decimal.NewFromString(raw)
	if err != nil {
		t.Fatalf("parse decimal %q: %v", raw, err)
	}
	return value
}

func TestBalanceExactUnderFractionalAccumulation(t *testing.T) {
	engine, _ := newTestEngine()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if _, err := engine.Append(ctx, AppendInput{
			SubjectID: "subject-1",
			Polarity:  "in",
			Amount:    mustDecimal(t, "0.10"),
			CreatedBy: "user-1",
		}); err != nil {
			t.Fatalf("append increase failed: %v", err)
		}
	}
	if _, err := engine.Append(ctx, AppendInput{
		SubjectID: "subject-1",
		Polarity:  "out",
		Amount:    mustDecimal(t, "0.10"),
		CreatedBy: "user-1",
	}); err != nil {
		t.Fatalf("append decrease failed: %v", err)
	}

	balance, err := engine.Balance(ctx, "subject-1")
	if err != nil {
		t.Fatalf("balance failed: %v", err)
	}
	if !balance.Equal(mustDecimal(t, "0.20")) {
		t.Fatalf("expected exactly 0.20, got %s", balance.String())
	}
}

func TestBalanceOfEmptySubjectIsZero(t *testing.T) {
	engine, _ := newTestEngine()
	balance, err := engine.Balance(context.Background(), "nothing-here")
	if err != nil {
		t.Fatalf("balance failed: %v", err)
	}
	if !balance.IsZero() {
		t.Fatalf("expected zero balance, got %s", balance.String())
	}
}

func TestBalanceMayGoNegative(t *testing.T) {
	engine, _ := newTestEngine()
	ctx := context.Background()

	if _, err := engine.Append(ctx, AppendInput{
		SubjectID: "subject-2",
		Polarity:  "out",
		Amount:    mustDecimal(t, "5.25"),
		CreatedBy: "user-1",
	}); err != nil {
		t.Fatalf("append failed: %v", err)
	}
	balance, err := engine.Balance(ctx, "subject-2")
	if err != nil {
		t.Fatalf("balance failed: %v", err)
	}
	if !balance.Equal(mustDecimal(t, "-5.25")) {
		t.Fatalf("expected -5.25, got %s", balance.String())
	}
}

func TestAppendRejectsUnknownPolarity(t *testing.T) {
	engine, _ := newTestEngine()
	_, err := engine.Append(context.Background(), AppendInput{
		SubjectID: "subject-3",
		Polarity:  "credit",
		Amount:    decimal.NewFromInt(1),
	})
	if !errors.Is(err, ErrUnknownPolarity) {
		t.Fatalf("expected ErrUnknownPolarity, got %v", err)
	}
}

func TestAppendRejectsNegativeAmount(t *testing.T) {
	engine, _ := newTestEngine()
	_, err := engine.Append(context.Background(), AppendInput{
		SubjectID: "subject-4",
		Polarity:  "in",
		Amount:    mustDecimal(t, "-1"),
	})
	if !errors.Is(err, ErrNegativeAmount) {
		t.Fatalf("expected ErrNegativeAmount, got %v", err)
	}
}

func TestAppendRequiresSubject(t *testing.T) {
	engine, _ := newTestEngine()
	_, err := engine.Append(context.Background(), AppendInput{
		Polarity: "in",
		Amount:   decimal.NewFromInt(1),
	})
	if !errors.Is(err, ErrEmptySubject) {
		t.Fatalf("expected ErrEmptySubject, got %v", err)
	}
}

func TestHistoryAscendingByCreationTime(t *testing.T) {
	engine, store := newTestEngine()
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	for i, polarity := range []string{"in", "out", "in"} {
		store.entries = append(store.entries, Entry{
			EntryID:   uuid.NewString(),
			SubjectID: "subject-5",
			Polarity:  polarity,
			Amount:    decimal.NewFromInt(int64(i + 1)),
			CreatedAt: base.Add(time.Duration(2-i) * time.Hour),
		})
	}

	history, err := engine.History(ctx, "subject-5")
	if err != nil {
		t.Fatalf("history failed: %v", err)
	}
	if len(history) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(history))
	}
	for i := 1; i < len(history); i++ {
		if history[i].CreatedAt.Before(history[i-1].CreatedAt) {
			t.Fatalf("history not ascending at index %d", i)
		}
	}
}
