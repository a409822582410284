package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func init() {
	// Money goes over the wire as a JSON number in the base currency unit.
	decimal.MarshalJSONWithoutQuotes = true
}

type Product struct {
	ID          string          `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Name        string          `gorm:"not null" json:"name"`
	Description string          `gorm:"not null" json:"description"`
	Price       decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"price"`
	Image       string          `gorm:"not null" json:"image"`
	Category    string          `gorm:"index;not null" json:"category"`
	Stock       int             `gorm:"not null;default:0" json:"stock"` // informational, never decremented
	CreatedAt   time.Time       `gorm:"index" json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
