package postgresadapter

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"fieldops/internal/shared/ledger"
)

type walletEntryModel struct {
	ID         string          `gorm:"column:id;primaryKey"`
	ProjectID  string          `gorm:"column:project_id;index"`
	Polarity   string          `gorm:"column:polarity"`
	Amount     decimal.Decimal `gorm:"column:amount;type:numeric(20,6)"`
	Notes      string          `gorm:"column:notes"`
	ReceiptRef string          `gorm:"column:receipt_ref"`
	CreatedBy  string          `gorm:"column:created_by"`
	CreatedAt  time.Time       `gorm:"column:created_at;index"`
}

func (walletEntryModel) TableName() string { return "expense_wallet_entries" }

// Repository persists wallet entries; it satisfies the shared ledger store.
type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) Repository { return Repository{DB: db} }

func (r Repository) AppendEntry(ctx context.Context, entry ledger.Entry) error {
	row := walletEntryModel{
		ID:         entry.EntryID,
		ProjectID:  entry.SubjectID,
		Polarity:   entry.Polarity,
		Amount:     entry.Amount,
		Notes:      entry.Notes,
		ReceiptRef: entry.EvidenceRef,
		CreatedBy:  entry.CreatedBy,
		CreatedAt:  entry.CreatedAt,
	}
	if err := r.DB.WithContext(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("insert wallet entry: %w", err)
	}
	return nil
}

func (r Repository) ListEntries(ctx context.Context, subjectID string) ([]ledger.Entry, error) {
	var rows []walletEntryModel
	err := r.DB.WithContext(ctx).
		Where("project_id = ?", subjectID).
		Order("created_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list wallet entries: %w", err)
	}
	out := make([]ledger.Entry, 0, len(rows))
	for _, row := range rows {
		out = append(out, ledger.Entry{
			EntryID:     row.ID,
			SubjectID:   row.ProjectID,
			Polarity:    row.Polarity,
			Amount:      row.Amount,
			Notes:       row.Notes,
			EvidenceRef: row.ReceiptRef,
			CreatedBy:   row.CreatedBy,
			CreatedAt:   row.CreatedAt,
		})
	}
	return out, nil
}
