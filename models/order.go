package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "PENDING"    // Order placed, awaiting processing
	OrderStatusProcessing OrderStatus = "PROCESSING" // Being packed
	OrderStatusShipped    OrderStatus = "SHIPPED"    // Out for delivery
	OrderStatusDelivered  OrderStatus = "DELIVERED"  // Customer received the items
	OrderStatusCancelled  OrderStatus = "CANCELLED"  // Cancelled before shipping
)

// ParseOrderStatus maps a case-insensitive status name to an OrderStatus.
func ParseOrderStatus(s string) (OrderStatus, bool) {
	switch st := OrderStatus(strings.ToUpper(strings.TrimSpace(s))); st {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled:
		return st, true
	default:
		return "", false
	}
}

type Order struct {
	ID                string          `gorm:"primaryKey;type:varchar(36)" json:"id"`
	UserID            string          `gorm:"type:varchar(36);index;not null" json:"userId"`
	Status            OrderStatus     `gorm:"type:varchar(20);not null;default:'PENDING'" json:"status"`
	Total             decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"total"` // fixed at creation
	ShippingAddressID *string         `gorm:"type:varchar(36)" json:"shippingAddressId"`
	ShippingAddress   *Address        `gorm:"foreignKey:ShippingAddressID;constraint:OnDelete:SET NULL" json:"-"`
	OrderItems        []OrderItem     `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"orderItems"`
	CreatedAt         time.Time       `gorm:"index" json:"createdAt"`
	UpdatedAt         time.Time       `json:"updatedAt"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	if o.Status == "" {
		o.Status = OrderStatusPending
	}
	return nil
}

// OrderItem snapshots the unit price at checkout; later product price changes do not touch it.
type OrderItem struct {
	ID        string          `gorm:"primaryKey;type:varchar(36)" json:"id"`
	OrderID   string          `gorm:"type:varchar(36);index;not null" json:"orderId"`
	ProductID string          `gorm:"type:varchar(36);not null" json:"productId"`
	Product   Product         `gorm:"foreignKey:ProductID" json:"product"`
	Quantity  int             `gorm:"not null" json:"quantity"`
	Price     decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"price"`
}

func (i *OrderItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}
