// Package store is the data access layer. Each repository wraps the shared *gorm.DB
// and scopes every query to the caller's context.
package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/junaidrashid-git/storefront-api/models"
)

var (
	ErrNotFound       = errors.New("record not found")
	ErrDuplicateEmail = errors.New("email already in use")
	ErrEmptyCart      = errors.New("cart is empty")
	ErrInvalidAddress = errors.New("invalid shipping address")
	ErrUnknownProduct = errors.New("product does not exist")
)

type Store struct {
	db *gorm.DB

	Users     *UserRepo
	Products  *ProductRepo
	Addresses *AddressRepo
	Cart      *CartRepo
	Orders    *OrderRepo
}

func New(db *gorm.DB) *Store {
	return &Store{
		db:        db,
		Users:     &UserRepo{db: db},
		Products:  &ProductRepo{db: db},
		Addresses: &AddressRepo{db: db},
		Cart:      &CartRepo{db: db},
		Orders:    &OrderRepo{db: db},
	}
}

// Models lists every table in foreign-key-respecting insert order.
func Models() []any {
	return []any{
		&models.User{},
		&models.Product{},
		&models.Address{},
		&models.Order{},
		&models.OrderItem{},
		&models.CartItem{},
	}
}

func (s *Store) Migrate(ctx context.Context) error {
	if err := s.db.WithContext(ctx).AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}

// Ping checks that the database answers.
func (s *Store) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (s *Store) DB() *gorm.DB { return s.db }

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

// lockUser takes a row lock on the user so per-user multi-statement writes
// serialize. SQLite ignores the locking clause; its writers are serialized anyway.
func lockUser(tx *gorm.DB, userID string) error {
	var u models.User
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Select("id").
		First(&u, "id = ?", userID).Error
	return notFound(err)
}
