package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Quote holds at most one row per (rfq_id, supplier_id); the composite unique
// index backs the atomic upsert in the quote repo. A new observation for the
// pair replaces the prior fields, last write wins.
type Quote struct {
	ID         uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	RFQID      uuid.UUID `gorm:"column:rfq_id;type:uuid;not null;uniqueIndex:idx_quote_rfq_supplier" json:"rfq_id"`
	SupplierID uuid.UUID `gorm:"column:supplier_id;type:uuid;not null;uniqueIndex:idx_quote_rfq_supplier" json:"supplier_id"`

	RFQ      *RFQ      `gorm:"constraint:OnDelete:CASCADE;foreignKey:RFQID;references:ID" json:"rfq,omitempty"`
	Supplier *Supplier `gorm:"constraint:OnDelete:CASCADE;foreignKey:SupplierID;references:ID" json:"supplier,omitempty"`

	PricePerPound        float64        `gorm:"column:price_per_pound;not null" json:"price_per_pound"`
	MinimumOrderQuantity *int           `gorm:"column:minimum_order_quantity" json:"minimum_order_quantity"`
	CountryOfOrigin      string         `gorm:"column:country_of_origin" json:"country_of_origin"`
	Certifications       datatypes.JSON `gorm:"column:certifications;type:jsonb" json:"certifications"`
	DateSubmitted        time.Time      `gorm:"column:date_submitted;not null" json:"date_submitted"`

	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (Quote) TableName() string { return "quote" }
