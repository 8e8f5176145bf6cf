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

type SupplierRepo interface {
	List(dbc dbctx.Context) ([]*domain.Supplier, error)
	GetByID(dbc dbctx.Context, id uuid.UUID) (*domain.Supplier, error)
	GetByCompanyName(dbc dbctx.Context, companyName string) (*domain.Supplier, error)
	Create(dbc dbctx.Context, row *domain.Supplier) (*domain.Supplier, error)
	UpdateFields(dbc dbctx.Context, id uuid.UUID, updates map[string]interface{}) error
	UpsertByCompanyName(dbc dbctx.Context, row *domain.Supplier) error
}

type supplierRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewSupplierRepo(db *gorm.DB, baseLog *logger.Logger) SupplierRepo {
	return &supplierRepo{db: db, log: baseLog.With("repo", "SupplierRepo")}
}

func (r *supplierRepo) List(dbc dbctx.Context) ([]*domain.Supplier, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}

	var out []*domain.Supplier
	if err := t.WithContext(dbc.Ctx).
		Order("company_name ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *supplierRepo) GetByID(dbc dbctx.Context, id uuid.UUID) (*domain.Supplier, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}

	var row domain.Supplier
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

// GetByCompanyName is an exact, case-sensitive match; company name is the
// supplier dedup key.
func (r *supplierRepo) GetByCompanyName(dbc dbctx.Context, companyName string) (*domain.Supplier, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}

	var row domain.Supplier
	if err := t.WithContext(dbc.Ctx).
		Where("company_name = ?", companyName).
		First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

func (r *supplierRepo) Create(dbc dbctx.Context, row *domain.Supplier) (*domain.Supplier, error) {
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

func (r *supplierRepo) UpdateFields(dbc dbctx.Context, id uuid.UUID, updates map[string]interface{}) error {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}

	if len(updates) == 0 {
		return nil
	}
	return t.WithContext(dbc.Ctx).
		Model(&domain.Supplier{}).
		Where("id = ?", id).
		Updates(updates).Error
}

// UpsertByCompanyName inserts the supplier or, when the company name already
// exists, merges the observation into the existing row. Only non-empty
// incoming contact fields are assigned so a sparse extraction cannot wipe
// previously captured values. The conflict clause rides on the company_name
// unique index, which closes the concurrent duplicate-insert race.
func (r *supplierRepo) UpsertByCompanyName(dbc dbctx.Context, row *domain.Supplier) error {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	if row == nil {
		return nil
	}
	if row.ID == uuid.Nil {
		row.ID = uuid.New()
	}
	row.UpdatedAt = time.Now().UTC()

	updates := map[string]interface{}{"updated_at": row.UpdatedAt}
	if row.ContactName != "" {
		updates["contact_name"] = row.ContactName
	}
	if row.ContactEmail != "" {
		updates["contact_email"] = row.ContactEmail
	}
	if row.ContactPhone != "" {
		updates["contact_phone"] = row.ContactPhone
	}
	if row.HQAddress != "" {
		updates["hq_address"] = row.HQAddress
	}
	if row.PaymentTerms != "" {
		updates["payment_terms"] = row.PaymentTerms
	}

	return t.WithContext(dbc.Ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "company_name"}},
			DoUpdates: clause.Assignments(updates),
		}).
		Create(row).Error
}
