package repos

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sourcelane/rfq-backend/internal/domain"
	"github.com/sourcelane/rfq-backend/internal/platform/dbctx"
	"github.com/sourcelane/rfq-backend/internal/platform/logger"
)

type RFQRepo interface {
	List(dbc dbctx.Context) ([]*domain.RFQ, error)
	GetByID(dbc dbctx.Context, id uuid.UUID) (*domain.RFQ, error)
	Create(dbc dbctx.Context, row *domain.RFQ) (*domain.RFQ, error)
	UpdateFields(dbc dbctx.Context, id uuid.UUID, updates map[string]interface{}) error
}

type rfqRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewRFQRepo(db *gorm.DB, baseLog *logger.Logger) RFQRepo {
	return &rfqRepo{db: db, log: baseLog.With("repo", "RFQRepo")}
}

func (r *rfqRepo) List(dbc dbctx.Context) ([]*domain.RFQ, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}

	var out []*domain.RFQ
	if err := t.WithContext(dbc.Ctx).
		Order("due_date ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *rfqRepo) GetByID(dbc dbctx.Context, id uuid.UUID) (*domain.RFQ, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}

	var row domain.RFQ
	if err := t.WithContext(dbc.Ctx).
		Where("id = ?", id).
		First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

func (r *rfqRepo) Create(dbc dbctx.Context, row *domain.RFQ) (*domain.RFQ, error) {
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

func (r *rfqRepo) UpdateFields(dbc dbctx.Context, id uuid.UUID, updates map[string]interface{}) error {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}

	if len(updates) == 0 {
		return nil
	}
	return t.WithContext(dbc.Ctx).
		Model(&domain.RFQ{}).
		Where("id = ?", id).
		Updates(updates).Error
}
