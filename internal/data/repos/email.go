package repos

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sourcelane/rfq-backend/internal/domain"
	"github.com/sourcelane/rfq-backend/internal/platform/dbctx"
	"github.com/sourcelane/rfq-backend/internal/platform/logger"
)

// EmailRecordRepo only appends and reads; the archive is immutable.
type EmailRecordRepo interface {
	Append(dbc dbctx.Context, row *domain.EmailRecord) (*domain.EmailRecord, error)
	ListByQuoteID(dbc dbctx.Context, quoteID uuid.UUID) ([]*domain.EmailRecord, error)
}

type emailRecordRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewEmailRecordRepo(db *gorm.DB, baseLog *logger.Logger) EmailRecordRepo {
	return &emailRecordRepo{db: db, log: baseLog.With("repo", "EmailRecordRepo")}
}

func (r *emailRecordRepo) Append(dbc dbctx.Context, row *domain.EmailRecord) (*domain.EmailRecord, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}

	if row.ID == uuid.Nil {
		row.ID = uuid.New()
	}
	if err := t.WithContext(dbc.Ctx).Create(row).Error; err != nil {
		return nil, err
	}
	return row, nil
}

func (r *emailRecordRepo) ListByQuoteID(dbc dbctx.Context, quoteID uuid.UUID) ([]*domain.EmailRecord, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}

	var out []*domain.EmailRecord
	if err := t.WithContext(dbc.Ctx).
		Where("quote_id = ?", quoteID).
		Order("created_at ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
