package store

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/junaidrashid-git/storefront-api/models"
)

type OrderRepo struct{ db *gorm.DB }

// ListByUser returns the user's orders with items and products, newest first.
func (r *OrderRepo) ListByUser(ctx context.Context, userID string) ([]models.Order, error) {
	orders := []models.Order{}
	err := r.db.WithContext(ctx).
		Preload("OrderItems").
		Preload("OrderItems.Product").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *OrderRepo) ByID(ctx context.Context, id string) (*models.Order, error) {
	var order models.Order
	err := r.db.WithContext(ctx).
		Preload("OrderItems").
		Preload("OrderItems.Product").
		First(&order, "id = ?", id).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &order, nil
}

// PlaceOrder turns the user's cart into an order shipped to addressID. The order,
// its items and the emptied cart commit together or not at all. Each item keeps the
// product price current at checkout.
func (r *OrderRepo) PlaceOrder(ctx context.Context, userID, addressID string) (*models.Order, error) {
	var order models.Order
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockUser(tx, userID); err != nil {
			return err
		}

		var address models.Address
		if err := tx.Select("id").
			Where("id = ? AND user_id = ?", addressID, userID).
			First(&address).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrInvalidAddress
			}
			return err
		}

		var cart []models.CartItem
		if err := tx.Preload("Product").Where("user_id = ?", userID).Find(&cart).Error; err != nil {
			return err
		}
		if len(cart) == 0 {
			return ErrEmptyCart
		}

		total := decimal.Zero
		items := make([]models.OrderItem, 0, len(cart))
		for _, line := range cart {
			total = total.Add(line.Product.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
			items = append(items, models.OrderItem{
				ProductID: line.ProductID,
				Quantity:  line.Quantity,
				Price:     line.Product.Price,
			})
		}

		order = models.Order{
			UserID:            userID,
			Status:            models.OrderStatusPending,
			Total:             total,
			ShippingAddressID: &addressID,
			OrderItems:        items,
		}
		if err := tx.Omit("ShippingAddress").Create(&order).Error; err != nil {
			return err
		}

		if err := tx.Where("user_id = ?", userID).Delete(&models.CartItem{}).Error; err != nil {
			return err
		}

		var created models.Order
		if err := tx.Preload("OrderItems").Preload("OrderItems.Product").
			First(&created, "id = ?", order.ID).Error; err != nil {
			return err
		}
		order = created
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// UpdateStatus sets the status field. No transition rules apply.
func (r *OrderRepo) UpdateStatus(ctx context.Context, id string, status models.OrderStatus) error {
	res := r.db.WithContext(ctx).Model(&models.Order{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
