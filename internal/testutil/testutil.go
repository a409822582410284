// Package testutil opens throwaway databases and creates fixtures for tests.
package testutil

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/junaidrashid-git/storefront-api/models"
	"github.com/junaidrashid-git/storefront-api/store"
)

const Password = "password123"

// NewDB opens a private in-memory SQLite database with the schema migrated.
// A single connection serializes writers the way row locks do on Postgres.
func NewDB(t testing.TB) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, store.New(db).Migrate(context.Background()))
	return db
}

func NewStore(t testing.TB) *store.Store {
	t.Helper()
	return store.New(NewDB(t))
}

// CreateUser inserts a USER whose password is Password.
func CreateUser(t testing.TB, st *store.Store, email, name string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(Password), bcrypt.MinCost)
	require.NoError(t, err)

	u := &models.User{Email: email, Name: name, Password: string(hash)}
	require.NoError(t, st.Users.Create(context.Background(), u))
	return u
}

func CreateProduct(t testing.TB, st *store.Store, name, price, category string) *models.Product {
	t.Helper()

	p := &models.Product{
		Name:        name,
		Description: name + " description",
		Price:       decimal.RequireFromString(price),
		Image:       "https://example.com/" + uuid.NewString() + ".jpg",
		Category:    category,
		Stock:       10,
	}
	require.NoError(t, st.Products.Create(context.Background(), p))
	return p
}

func CreateAddress(t testing.TB, st *store.Store, userID string, isDefault bool) *models.Address {
	t.Helper()

	a := &models.Address{
		UserID:      userID,
		Type:        models.AddressHome,
		FullName:    "Asha Verma",
		PhoneNumber: "9876543210",
		Street:      "12 MG Road",
		City:        "Bengaluru",
		State:       "Karnataka",
		PostalCode:  "560001",
		IsDefault:   isDefault,
	}
	require.NoError(t, st.Addresses.Create(context.Background(), a))
	return a
}

// Count returns the number of rows of model.
func Count(t testing.TB, db *gorm.DB, model any) int64 {
	t.Helper()

	var n int64
	require.NoError(t, db.Model(model).Count(&n).Error)
	return n
}
