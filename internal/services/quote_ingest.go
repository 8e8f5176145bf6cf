package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/sourcelane/rfq-backend/internal/data/repos"
	"github.com/sourcelane/rfq-backend/internal/domain"
	"github.com/sourcelane/rfq-backend/internal/extraction"
	"github.com/sourcelane/rfq-backend/internal/normalization"
	"github.com/sourcelane/rfq-backend/internal/platform/apierr"
	"github.com/sourcelane/rfq-backend/internal/platform/dbctx"
	"github.com/sourcelane/rfq-backend/internal/platform/logger"
)

// QuoteIngestService is the reconciliation entry point for the email
// pipeline: raw text in, canonical supplier + quote out, with the extraction
// method as provenance.
type QuoteIngestService interface {
	ProcessEmail(ctx context.Context, rawText string, rfqID uuid.UUID) (*ProcessResult, error)
}

type ProcessResult struct {
	Method   string           `json:"method"`
	Supplier *domain.Supplier `json:"supplier"`
	Quote    *domain.Quote    `json:"quote"`
}

type quoteIngestService struct {
	log     *logger.Logger
	cascade *extraction.Cascade

	supplierRepo repos.SupplierRepo
	rfqRepo      repos.RFQRepo
	quoteRepo    repos.QuoteRepo
	emailRepo    repos.EmailRecordRepo
}

func NewQuoteIngestService(
	log *logger.Logger,
	cascade *extraction.Cascade,
	supplierRepo repos.SupplierRepo,
	rfqRepo repos.RFQRepo,
	quoteRepo repos.QuoteRepo,
	emailRepo repos.EmailRecordRepo,
) QuoteIngestService {
	return &quoteIngestService{
		log:          log.With("service", "QuoteIngestService"),
		cascade:      cascade,
		supplierRepo: supplierRepo,
		rfqRepo:      rfqRepo,
		quoteRepo:    quoteRepo,
		emailRepo:    emailRepo,
	}
}

func (s *quoteIngestService) ProcessEmail(ctx context.Context, rawText string, rfqID uuid.UUID) (*ProcessResult, error) {
	// Validation gaps surface before any extraction or write happens.
	if rfqID == uuid.Nil {
		return nil, apierr.New(http.StatusBadRequest, "rfq_required", fmt.Errorf("select an RFQ before processing"))
	}
	if strings.TrimSpace(rawText) == "" {
		return nil, apierr.New(http.StatusBadRequest, "email_content_required", fmt.Errorf("email content is empty"))
	}

	dbc := dbctx.Context{Ctx: ctx}

	rfq, err := s.rfqRepo.GetByID(dbc, rfqID)
	if err != nil {
		return nil, fmt.Errorf("load rfq: %w", err)
	}
	if rfq == nil {
		return nil, apierr.New(http.StatusNotFound, "rfq_not_found", fmt.Errorf("rfq %s does not exist", rfqID))
	}

	candidate, method := s.cascade.Extract(ctx, rawText)
	record := normalization.Record(candidate)

	supplier, quote, err := s.reconcile(dbc, record, rfqID, rawText)
	if err != nil {
		s.log.Error("reconciliation failed", "rfq_id", rfqID, "method", method, "error", err.Error())
		return nil, fmt.Errorf("failed to save quote: %w", err)
	}

	s.log.Info("email reconciled",
		"rfq_id", rfqID,
		"method", method,
		"supplier_id", supplier.ID,
		"quote_id", quote.ID,
	)

	return &ProcessResult{Method: method, Supplier: supplier, Quote: quote}, nil
}

// reconcile resolves the normalized record against persisted state: supplier
// upsert keyed on company name, quote upsert keyed on (rfq, supplier), then
// one email-record append. The three writes are sequential and
// data-dependent; the first failure aborts the rest and is surfaced as a
// single wrapped error. A retry with the same text is safe for entity state
// because both upserts are idempotent on their keys, though it will append
// another audit row.
func (s *quoteIngestService) reconcile(dbc dbctx.Context, record normalization.NormalizedRecord, rfqID uuid.UUID, rawText string) (*domain.Supplier, *domain.Quote, error) {
	if err := s.supplierRepo.UpsertByCompanyName(dbc, &domain.Supplier{
		CompanyName:  record.Supplier.CompanyName,
		ContactName:  record.Supplier.ContactName,
		ContactEmail: record.Supplier.ContactEmail,
		ContactPhone: record.Supplier.ContactPhone,
		HQAddress:    record.Supplier.HQAddress,
		PaymentTerms: record.Supplier.PaymentTerms,
	}); err != nil {
		return nil, nil, fmt.Errorf("upsert supplier: %w", err)
	}
	supplier, err := s.supplierRepo.GetByCompanyName(dbc, record.Supplier.CompanyName)
	if err != nil {
		return nil, nil, fmt.Errorf("load supplier: %w", err)
	}
	if supplier == nil {
		return nil, nil, fmt.Errorf("supplier %q missing after upsert", record.Supplier.CompanyName)
	}

	certifications, err := json.Marshal(record.Quote.Certifications)
	if err != nil {
		return nil, nil, fmt.Errorf("encode certifications: %w", err)
	}
	if err := s.quoteRepo.UpsertByRFQAndSupplier(dbc, &domain.Quote{
		RFQID:                rfqID,
		SupplierID:           supplier.ID,
		PricePerPound:        record.Quote.PricePerPound,
		MinimumOrderQuantity: record.Quote.MinimumOrderQuantity,
		CountryOfOrigin:      record.Quote.CountryOfOrigin,
		Certifications:       datatypes.JSON(certifications),
	}); err != nil {
		return nil, nil, fmt.Errorf("upsert quote: %w", err)
	}
	quote, err := s.quoteRepo.GetByRFQAndSupplier(dbc, rfqID, supplier.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("load quote: %w", err)
	}
	if quote == nil {
		return nil, nil, fmt.Errorf("quote missing after upsert for rfq %s", rfqID)
	}

	extracted, err := json.Marshal(record)
	if err != nil {
		return nil, nil, fmt.Errorf("encode extracted data: %w", err)
	}
	if _, err := s.emailRepo.Append(dbc, &domain.EmailRecord{
		QuoteID:       quote.ID,
		Content:       rawText,
		ExtractedData: datatypes.JSON(extracted),
	}); err != nil {
		return nil, nil, fmt.Errorf("append email record: %w", err)
	}

	return supplier, quote, nil
}
