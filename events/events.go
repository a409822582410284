// Package events announces created orders to listeners outside the request.
package events

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/junaidrashid-git/storefront-api/models"
)

const OrderCreatedKey = "order.created"

type OrderCreated struct {
	Type      string          `json:"type"`
	OrderID   string          `json:"orderId"`
	UserID    string          `json:"userId"`
	Total     decimal.Decimal `json:"total"`
	ItemCount int             `json:"itemCount"`
	CreatedAt time.Time       `json:"createdAt"`
}

func NewOrderCreated(o *models.Order) OrderCreated {
	count := 0
	for _, it := range o.OrderItems {
		count += it.Quantity
	}
	return OrderCreated{
		Type:      OrderCreatedKey,
		OrderID:   o.ID,
		UserID:    o.UserID,
		Total:     o.Total,
		ItemCount: count,
		CreatedAt: o.CreatedAt,
	}
}

// Publisher delivers order events. Publishing happens after the order commits;
// a failed publish never undoes the order.
type Publisher interface {
	PublishOrderCreated(ctx context.Context, ev OrderCreated) error
}

// Multi fans an event out to every publisher and joins their errors.
type Multi []Publisher

func (m Multi) PublishOrderCreated(ctx context.Context, ev OrderCreated) error {
	var errs []error
	for _, p := range m {
		if err := p.PublishOrderCreated(ctx, ev); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

type Nop struct{}

func (Nop) PublishOrderCreated(context.Context, OrderCreated) error { return nil }
