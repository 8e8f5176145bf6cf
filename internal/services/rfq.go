package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/sourcelane/rfq-backend/internal/data/repos"
	"github.com/sourcelane/rfq-backend/internal/domain"
	"github.com/sourcelane/rfq-backend/internal/platform/apierr"
	"github.com/sourcelane/rfq-backend/internal/platform/dbctx"
	"github.com/sourcelane/rfq-backend/internal/platform/logger"
)

type RFQService interface {
	List(ctx context.Context) ([]*domain.RFQ, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.RFQ, error)
	Create(ctx context.Context, input RFQInput) (*domain.RFQ, error)
	Update(ctx context.Context, id uuid.UUID, input RFQInput) (*domain.RFQ, error)
}

type RFQInput struct {
	Item                   string   `json:"item"`
	DueDate                string   `json:"due_date"`
	AmountLbs              float64  `json:"amount_lbs"`
	ShipToLocation         string   `json:"ship_to_location"`
	RequiredCertifications []string `json:"required_certifications"`
}

type rfqService struct {
	log  *logger.Logger
	repo repos.RFQRepo
}

func NewRFQService(log *logger.Logger, repo repos.RFQRepo) RFQService {
	return &rfqService{log: log.With("service", "RFQService"), repo: repo}
}

func (s *rfqService) List(ctx context.Context) ([]*domain.RFQ, error) {
	return s.repo.List(dbctx.Context{Ctx: ctx})
}

func (s *rfqService) Get(ctx context.Context, id uuid.UUID) (*domain.RFQ, error) {
	row, err := s.repo.GetByID(dbctx.Context{Ctx: ctx}, id)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, apierr.New(http.StatusNotFound, "rfq_not_found", fmt.Errorf("rfq %s does not exist", id))
	}
	return row, nil
}

func (s *rfqService) Create(ctx context.Context, input RFQInput) (*domain.RFQ, error) {
	if input.Item == "" {
		return nil, apierr.New(http.StatusBadRequest, "item_required", fmt.Errorf("item is required"))
	}
	certs, err := json.Marshal(input.RequiredCertifications)
	if err != nil {
		return nil, fmt.Errorf("encode required certifications: %w", err)
	}
	return s.repo.Create(dbctx.Context{Ctx: ctx}, &domain.RFQ{
		Item:                   input.Item,
		DueDate:                input.DueDate,
		AmountLbs:              input.AmountLbs,
		ShipToLocation:         input.ShipToLocation,
		RequiredCertifications: datatypes.JSON(certs),
	})
}

func (s *rfqService) Update(ctx context.Context, id uuid.UUID, input RFQInput) (*domain.RFQ, error) {
	dbc := dbctx.Context{Ctx: ctx}

	existing, err := s.repo.GetByID(dbc, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, apierr.New(http.StatusNotFound, "rfq_not_found", fmt.Errorf("rfq %s does not exist", id))
	}

	certs, err := json.Marshal(input.RequiredCertifications)
	if err != nil {
		return nil, fmt.Errorf("encode required certifications: %w", err)
	}
	if err := s.repo.UpdateFields(dbc, id, map[string]interface{}{
		"item":                    input.Item,
		"due_date":                input.DueDate,
		"amount_lbs":              input.AmountLbs,
		"ship_to_location":        input.ShipToLocation,
		"required_certifications": datatypes.JSON(certs),
	}); err != nil {
		return nil, err
	}
	return s.repo.GetByID(dbc, id)
}
