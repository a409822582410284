package store

import (
	"context"

	"gorm.io/gorm"

	"github.com/junaidrashid-git/storefront-api/models"
)

type AddressRepo struct{ db *gorm.DB }

// ListByUser returns the user's addresses, default first, then newest first.
func (r *AddressRepo) ListByUser(ctx context.Context, userID string) ([]models.Address, error) {
	addresses := []models.Address{}
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("is_default DESC").
		Order("created_at DESC").
		Find(&addresses).Error
	if err != nil {
		return nil, err
	}
	return addresses, nil
}

// ByIDForUser loads an address only if userID owns it.
func (r *AddressRepo) ByIDForUser(ctx context.Context, id, userID string) (*models.Address, error) {
	var a models.Address
	err := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(&a).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &a, nil
}

// Create inserts a. When a is the new default, the owner's previous default is
// cleared in the same transaction.
func (r *AddressRepo) Create(ctx context.Context, a *models.Address) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockUser(tx, a.UserID); err != nil {
			return err
		}
		if a.IsDefault {
			if err := clearDefault(tx, a.UserID, ""); err != nil {
				return err
			}
		}
		return tx.Create(a).Error
	})
}

// Update overwrites the editable fields of the address (id, userID). Setting it as
// default clears every other default of the same user in the same transaction.
func (r *AddressRepo) Update(ctx context.Context, id, userID string, in *models.Address) (*models.Address, error) {
	var a models.Address
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockUser(tx, userID); err != nil {
			return err
		}
		if err := tx.Where("id = ? AND user_id = ?", id, userID).First(&a).Error; err != nil {
			return notFound(err)
		}
		if in.IsDefault {
			if err := clearDefault(tx, userID, id); err != nil {
				return err
			}
		}
		err := tx.Model(&a).Updates(map[string]any{
			"type":         in.Type,
			"full_name":    in.FullName,
			"phone_number": in.PhoneNumber,
			"street":       in.Street,
			"city":         in.City,
			"state":        in.State,
			"postal_code":  in.PostalCode,
			"country":      in.Country,
			"is_default":   in.IsDefault,
		}).Error
		if err != nil {
			return err
		}
		return tx.First(&a, "id = ?", id).Error
	})
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// Delete removes the address (id, userID). Orders shipped to it keep their rows.
func (r *AddressRepo) Delete(ctx context.Context, id, userID string) error {
	res := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(&models.Address{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func clearDefault(tx *gorm.DB, userID, exceptID string) error {
	q := tx.Model(&models.Address{}).Where("user_id = ? AND is_default = ?", userID, true)
	if exceptID != "" {
		q = q.Where("id <> ?", exceptID)
	}
	return q.Update("is_default", false).Error
}
