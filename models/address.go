package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AddressType string

const (
	AddressHome  AddressType = "HOME"
	AddressWork  AddressType = "WORK"
	AddressOther AddressType = "OTHER"
)

const DefaultCountry = "India"

// Address is a shipping address. At most one address per user has IsDefault set.
type Address struct {
	ID          string      `gorm:"primaryKey;type:varchar(36)" json:"id"`
	UserID      string      `gorm:"type:varchar(36);index;not null" json:"userId"`
	Type        AddressType `gorm:"type:varchar(10);not null;default:'HOME'" json:"type"`
	FullName    string      `gorm:"not null" json:"fullName"`
	PhoneNumber string      `gorm:"not null" json:"phoneNumber"`
	Street      string      `gorm:"not null" json:"street"`
	City        string      `gorm:"not null" json:"city"`
	State       string      `gorm:"not null" json:"state"`
	PostalCode  string      `gorm:"not null" json:"postalCode"`
	Country     string      `gorm:"not null;default:'India'" json:"country"`
	IsDefault   bool        `gorm:"not null;default:false" json:"isDefault"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

func (a *Address) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	if a.Country == "" {
		a.Country = DefaultCountry
	}
	return nil
}
