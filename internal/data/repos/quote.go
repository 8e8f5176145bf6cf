package repos

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/sourcelane/rfq-backend/internal/domain"
	"github.com/sourcelane/rfq-backend/internal/platform/dbctx"
	"github.com/sourcelane/rfq-backend/internal/platform/logger"
)

type QuoteRepo interface {
	GetByRFQAndSupplier(dbc dbctx.Context, rfqID, supplierID uuid.UUID) (*domain.Quote, error)
	ListByRFQ(dbc dbctx.Context, rfqID uuid.UUID) ([]*domain.Quote, error)
	UpsertByRFQAndSupplier(dbc dbctx.Context, row *domain.Quote) error
}

type quoteRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewQuoteRepo(db *gorm.DB, baseLog *logger.Logger) QuoteRepo {
	return &quoteRepo{db: db, log: baseLog.With("repo", "QuoteRepo")}
}

func (r *quoteRepo) GetByRFQAndSupplier(dbc dbctx.Context, rfqID, supplierID uuid.UUID) (*domain.Quote, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}

	var row domain.Quote
	if err := t.WithContext(dbc.Ctx).
		Preload("Supplier").
		Where("rfq_id = ? AND supplier_id = ?", rfqID, supplierID).
		First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

// ListByRFQ returns quotes cheapest first; the view-quotes screen relies on
// the ordering.
func (r *quoteRepo) ListByRFQ(dbc dbctx.Context, rfqID uuid.UUID) ([]*domain.Quote, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}

	var out []*domain.Quote
	if err := t.WithContext(dbc.Ctx).
		Preload("Supplier").
		Where("rfq_id = ?", rfqID).
		Order("price_per_pound ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// UpsertByRFQAndSupplier inserts the quote or replaces the existing row's
// fields for the same (rfq_id, supplier_id) pair, keeping the original quote
// id. The conflict clause rides on the composite unique index, so two
// concurrent observations for the same pair cannot both insert.
func (r *quoteRepo) UpsertByRFQAndSupplier(dbc dbctx.Context, row *domain.Quote) error {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	if row == nil || row.RFQID == uuid.Nil || row.SupplierID == uuid.Nil {
		return nil
	}
	if row.ID == uuid.Nil {
		row.ID = uuid.New()
	}
	row.DateSubmitted = time.Now().UTC()
	row.UpdatedAt = row.DateSubmitted

	return t.WithContext(dbc.Ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "rfq_id"}, {Name: "supplier_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"price_per_pound",
				"minimum_order_quantity",
				"country_of_origin",
				"certifications",
				"date_submitted",
				"updated_at",
			}),
		}).
		Create(row).Error
}
