// Package dataio dumps every table to a JSON document and loads such a document
// back, upserting rows by primary key.
package dataio

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/junaidrashid-git/storefront-api/models"
)

const batchSize = 100

// Dump holds every table. Password hashes are included so an import restores
// working credentials.
type Dump struct {
	ExportedAt time.Time        `json:"exportedAt"`
	Users      []userRow        `json:"users"`
	Products   []models.Product `json:"products"`
	Addresses  []models.Address `json:"addresses"`
	Orders     []orderRow       `json:"orders"`
	OrderItems []orderItemRow   `json:"orderItems"`
	CartItems  []cartItemRow    `json:"cartItems"`
}

type userRow struct {
	ID        string      `json:"id"`
	Email     string      `json:"email"`
	Name      string      `json:"name"`
	Image     string      `json:"image"`
	Password  string      `json:"password,omitempty"`
	Role      models.Role `json:"role"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
}

func (userRow) TableName() string { return "users" }

type orderRow struct {
	ID                string             `json:"id"`
	UserID            string             `json:"userId"`
	Status            models.OrderStatus `json:"status"`
	Total             decimal.Decimal    `json:"total"`
	ShippingAddressID *string            `json:"shippingAddressId"`
	CreatedAt         time.Time          `json:"createdAt"`
	UpdatedAt         time.Time          `json:"updatedAt"`
}

func (orderRow) TableName() string { return "orders" }

type orderItemRow struct {
	ID        string          `json:"id"`
	OrderID   string          `json:"orderId"`
	ProductID string          `json:"productId"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}

func (orderItemRow) TableName() string { return "order_items" }

type cartItemRow struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	ProductID string    `json:"productId"`
	Quantity  int       `json:"quantity"`
	CreatedAt time.Time `json:"createdAt"`
}

func (cartItemRow) TableName() string { return "cart_items" }

// Counts is the number of rows per table moved by an export or import.
type Counts struct {
	Users, Products, Addresses, Orders, OrderItems, CartItems int
}

func (c Counts) String() string {
	return fmt.Sprintf("%d users, %d products, %d addresses, %d orders, %d order items, %d cart items",
		c.Users, c.Products, c.Addresses, c.Orders, c.OrderItems, c.CartItems)
}

func (d *Dump) counts() Counts {
	return Counts{
		Users:      len(d.Users),
		Products:   len(d.Products),
		Addresses:  len(d.Addresses),
		Orders:     len(d.Orders),
		OrderItems: len(d.OrderItems),
		CartItems:  len(d.CartItems),
	}
}

// Load reads every table into a Dump.
func Load(ctx context.Context, db *gorm.DB) (*Dump, error) {
	d := &Dump{ExportedAt: time.Now().UTC()}
	q := db.WithContext(ctx)

	steps := []struct {
		name string
		dest any
	}{
		{"users", &d.Users},
		{"products", &d.Products},
		{"addresses", &d.Addresses},
		{"orders", &d.Orders},
		{"order items", &d.OrderItems},
		{"cart items", &d.CartItems},
	}
	for _, s := range steps {
		if err := q.Order("id").Find(s.dest).Error; err != nil {
			return nil, fmt.Errorf("read %s: %w", s.name, err)
		}
	}
	return d, nil
}

// Export writes every table as indented JSON to w.
func Export(ctx context.Context, db *gorm.DB, w io.Writer) (Counts, error) {
	d, err := Load(ctx, db)
	if err != nil {
		return Counts{}, err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(d); err != nil {
		return Counts{}, fmt.Errorf("encode dump: %w", err)
	}
	return d.counts(), nil
}

// ExportFile writes the dump to path, creating parent directories. A partial
// file is removed on failure.
func ExportFile(ctx context.Context, db *gorm.DB, path string) (Counts, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return Counts{}, err
	}
	f, err := os.Create(path)
	if err != nil {
		return Counts{}, err
	}
	counts, err := Export(ctx, db, f)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(path)
		return Counts{}, err
	}
	return counts, nil
}

// Import decodes a dump from r and upserts it in one transaction, parents
// before children.
func Import(ctx context.Context, db *gorm.DB, r io.Reader) (Counts, error) {
	var d Dump
	if err := json.NewDecoder(r).Decode(&d); err != nil {
		return Counts{}, fmt.Errorf("decode dump: %w", err)
	}

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := upsert(tx, "users", d.Users); err != nil {
			return err
		}
		if err := upsert(tx, "products", d.Products); err != nil {
			return err
		}
		if err := upsert(tx, "addresses", d.Addresses); err != nil {
			return err
		}
		if err := upsert(tx, "orders", d.Orders); err != nil {
			return err
		}
		if err := upsert(tx, "order items", d.OrderItems); err != nil {
			return err
		}
		return upsert(tx, "cart items", d.CartItems)
	})
	if err != nil {
		return Counts{}, err
	}
	return d.counts(), nil
}

func ImportFile(ctx context.Context, db *gorm.DB, path string) (Counts, error) {
	f, err := os.Open(path)
	if err != nil {
		return Counts{}, err
	}
	defer f.Close()
	return Import(ctx, db, f)
}

func upsert[T any](tx *gorm.DB, name string, rows []T) error {
	if len(rows) == 0 {
		return nil
	}
	err := tx.Omit(clause.Associations).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "id"}}, UpdateAll: true}).
		CreateInBatches(&rows, batchSize).Error
	if err != nil {
		return fmt.Errorf("import %s: %w", name, err)
	}
	return nil
}
