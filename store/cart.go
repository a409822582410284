package store

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/junaidrashid-git/storefront-api/models"
)

type CartRepo struct{ db *gorm.DB }

func (r *CartRepo) ListByUser(ctx context.Context, userID string) ([]models.CartItem, error) {
	items := []models.CartItem{}
	err := r.db.WithContext(ctx).
		Preload("Product").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// ByID loads a cart item with its product, regardless of owner.
func (r *CartRepo) ByID(ctx context.Context, id string) (*models.CartItem, error) {
	var item models.CartItem
	if err := r.db.WithContext(ctx).Preload("Product").First(&item, "id = ?", id).Error; err != nil {
		return nil, notFound(err)
	}
	return &item, nil
}

// Add upserts on (userID, productID): a product already in the cart gets its
// quantity replaced.
func (r *CartRepo) Add(ctx context.Context, userID, productID string, quantity int) (*models.CartItem, error) {
	db := r.db.WithContext(ctx)

	var product models.Product
	if err := db.Select("id").First(&product, "id = ?", productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUnknownProduct
		}
		return nil, err
	}

	item := models.CartItem{UserID: userID, ProductID: productID, Quantity: quantity}
	err := db.Omit(clause.Associations).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "product_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"quantity"}),
	}).Create(&item).Error
	if err != nil {
		return nil, err
	}

	var stored models.CartItem
	err = db.Preload("Product").
		Where("user_id = ? AND product_id = ?", userID, productID).
		First(&stored).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &stored, nil
}

func (r *CartRepo) UpdateQuantity(ctx context.Context, id string, quantity int) (*models.CartItem, error) {
	res := r.db.WithContext(ctx).Model(&models.CartItem{}).Where("id = ?", id).Update("quantity", quantity)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return r.ByID(ctx, id)
}

func (r *CartRepo) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.CartItem{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
