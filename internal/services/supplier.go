package services

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/sourcelane/rfq-backend/internal/data/repos"
	"github.com/sourcelane/rfq-backend/internal/domain"
	"github.com/sourcelane/rfq-backend/internal/platform/apierr"
	"github.com/sourcelane/rfq-backend/internal/platform/dbctx"
	"github.com/sourcelane/rfq-backend/internal/platform/logger"
)

type SupplierService interface {
	List(ctx context.Context) ([]*domain.Supplier, error)
	Create(ctx context.Context, input SupplierInput) (*domain.Supplier, error)
	Update(ctx context.Context, id uuid.UUID, input SupplierInput) (*domain.Supplier, error)
}

type SupplierInput struct {
	CompanyName  string `json:"company_name"`
	ContactName  string `json:"contact_name"`
	ContactEmail string `json:"contact_email"`
	ContactPhone string `json:"contact_phone"`
	HQAddress    string `json:"hq_address"`
	PaymentTerms string `json:"payment_terms"`
}

type supplierService struct {
	log  *logger.Logger
	repo repos.SupplierRepo
}

func NewSupplierService(log *logger.Logger, repo repos.SupplierRepo) SupplierService {
	return &supplierService{log: log.With("service", "SupplierService"), repo: repo}
}

func (s *supplierService) List(ctx context.Context) ([]*domain.Supplier, error) {
	return s.repo.List(dbctx.Context{Ctx: ctx})
}

func (s *supplierService) Create(ctx context.Context, input SupplierInput) (*domain.Supplier, error) {
	if input.CompanyName == "" {
		return nil, apierr.New(http.StatusBadRequest, "company_name_required", fmt.Errorf("company name is required"))
	}
	return s.repo.Create(dbctx.Context{Ctx: ctx}, &domain.Supplier{
		CompanyName:  input.CompanyName,
		ContactName:  input.ContactName,
		ContactEmail: input.ContactEmail,
		ContactPhone: input.ContactPhone,
		HQAddress:    input.HQAddress,
		PaymentTerms: input.PaymentTerms,
	})
}

// Update from the manual form overwrites every field, unlike the email
// pipeline's non-empty merge; the form always submits the full record.
func (s *supplierService) Update(ctx context.Context, id uuid.UUID, input SupplierInput) (*domain.Supplier, error) {
	dbc := dbctx.Context{Ctx: ctx}

	existing, err := s.repo.GetByID(dbc, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, apierr.New(http.StatusNotFound, "supplier_not_found", fmt.Errorf("supplier %s does not exist", id))
	}

	if err := s.repo.UpdateFields(dbc, id, map[string]interface{}{
		"company_name":  input.CompanyName,
		"contact_name":  input.ContactName,
		"contact_email": input.ContactEmail,
		"contact_phone": input.ContactPhone,
		"hq_address":    input.HQAddress,
		"payment_terms": input.PaymentTerms,
	}); err != nil {
		return nil, err
	}
	return s.repo.GetByID(dbc, id)
}
