package store

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/junaidrashid-git/storefront-api/models"
)

type ProductRepo struct{ db *gorm.DB }

// LIKE escape character. '!' is a plain character in string literals on every dialect.
var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

type ProductFilter struct {
	Category string // exact match
	Search   string // case-insensitive substring of name or description
}

// List returns matching products, newest first.
func (r *ProductRepo) List(ctx context.Context, f ProductFilter) ([]models.Product, error) {
	query := r.db.WithContext(ctx).Model(&models.Product{})

	if f.Category != "" {
		query = query.Where("category = ?", f.Category)
	}
	if f.Search != "" {
		like := "%" + likeEscaper.Replace(strings.ToLower(f.Search)) + "%"
		query = query.Where("LOWER(name) LIKE ? ESCAPE '!' OR LOWER(description) LIKE ? ESCAPE '!'", like, like)
	}

	products := []models.Product{}
	if err := query.Order("created_at DESC").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *ProductRepo) Create(ctx context.Context, p *models.Product) error {
	return r.db.WithContext(ctx).Create(p).Error
}

// CreateMany inserts all products in one transaction; on error none are kept.
func (r *ProductRepo) CreateMany(ctx context.Context, products []*models.Product) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, p := range products {
			if err := tx.Create(p).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *ProductRepo) ByID(ctx context.Context, id string) (*models.Product, error) {
	var p models.Product
	if err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error; err != nil {
		return nil, notFound(err)
	}
	return &p, nil
}

func (r *ProductRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.Product{}).Count(&n).Error
	return n, err
}

// DeleteAll removes every product. Products referenced by orders make this fail.
func (r *ProductRepo) DeleteAll(ctx context.Context) error {
	return r.db.WithContext(ctx).Session(&gorm.Session{AllowGlobalUpdate: true}).
		Delete(&models.Product{}).Error
}
