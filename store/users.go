package store

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/junaidrashid-git/storefront-api/models"
)

type UserRepo struct{ db *gorm.DB }

func (r *UserRepo) Create(ctx context.Context, u *models.User) error {
	err := r.db.WithContext(ctx).Omit("Addresses", "Orders", "CartItems").Create(u).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicateEmail
	}
	return err
}

func (r *UserRepo) ByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&u).Error; err != nil {
		return nil, notFound(err)
	}
	return &u, nil
}

func (r *UserRepo) ByID(ctx context.Context, id string) (*models.User, error) {
	var u models.User
	if err := r.db.WithContext(ctx).First(&u, "id = ?", id).Error; err != nil {
		return nil, notFound(err)
	}
	return &u, nil
}

// UpdateProfile sets name and email. The email must not belong to another user.
func (r *UserRepo) UpdateProfile(ctx context.Context, id, name, email string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var taken int64
		if err := tx.Model(&models.User{}).
			Where("email = ? AND id <> ?", email, id).
			Count(&taken).Error; err != nil {
			return err
		}
		if taken > 0 {
			return ErrDuplicateEmail
		}

		res := tx.Model(&models.User{}).Where("id = ?", id).
			Updates(map[string]any{"name": name, "email": email})
		if res.Error != nil {
			if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
				return ErrDuplicateEmail
			}
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return notFound(tx.First(&user, "id = ?", id).Error)
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}
