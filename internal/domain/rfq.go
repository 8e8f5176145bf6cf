package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// RFQ rows are created by the manual buyer flow; the email pipeline only
// references them by id.
type RFQ struct {
	ID uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`

	Item                   string         `gorm:"column:item;not null" json:"item"`
	DueDate                string         `gorm:"column:due_date" json:"due_date"`
	AmountLbs              float64        `gorm:"column:amount_lbs" json:"amount_lbs"`
	ShipToLocation         string         `gorm:"column:ship_to_location" json:"ship_to_location"`
	RequiredCertifications datatypes.JSON `gorm:"column:required_certifications;type:jsonb" json:"required_certifications"`

	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (RFQ) TableName() string { return "rfq" }
