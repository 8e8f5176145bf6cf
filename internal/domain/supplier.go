package domain

import (
	"time"

	"github.com/google/uuid"
)

// Supplier identity is the exact company name; a second observation of the
// same name updates contact fields instead of creating a duplicate row.
type Supplier struct {
	ID          uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	CompanyName string    `gorm:"column:company_name;not null;uniqueIndex" json:"company_name"`

	ContactName  string `gorm:"column:contact_name" json:"contact_name"`
	ContactEmail string `gorm:"column:contact_email" json:"contact_email"`
	ContactPhone string `gorm:"column:contact_phone" json:"contact_phone"`
	HQAddress    string `gorm:"column:hq_address" json:"hq_address"`
	PaymentTerms string `gorm:"column:payment_terms" json:"payment_terms"`

	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (Supplier) TableName() string { return "supplier" }
