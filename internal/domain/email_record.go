package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// EmailRecord is the append-only audit log of processed supplier emails.
// Every successful reconciliation appends exactly one row, even when it only
// updated an existing quote. Rows are never updated or merged.
type EmailRecord struct {
	ID      uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	QuoteID uuid.UUID `gorm:"column:quote_id;type:uuid;not null;index" json:"quote_id"`

	Quote *Quote `gorm:"constraint:OnDelete:CASCADE;foreignKey:QuoteID;references:ID" json:"quote,omitempty"`

	Content       string         `gorm:"column:content;type:text;not null" json:"content"`
	ExtractedData datatypes.JSON `gorm:"column:extracted_data;type:jsonb" json:"extracted_data"`

	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
}

func (EmailRecord) TableName() string { return "email_record" }
