//go:build postgres

package store_test

import (
	"context"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/junaidrashid-git/storefront-api/internal/testutil"
	"github.com/junaidrashid-git/storefront-api/models"
	"github.com/junaidrashid-git/storefront-api/store"
)

// Run with: STOREFRONT_TEST_POSTGRES_DSN=... go test -tags postgres ./store/
func TestAddressConcurrentDefaultsPostgres(t *testing.T) {
	dsn := os.Getenv("STOREFRONT_TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("STOREFRONT_TEST_POSTGRES_DSN not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(16)
	t.Cleanup(func() { _ = sqlDB.Close() })

	st := store.New(db)
	require.NoError(t, st.Migrate(context.Background()))

	user := testutil.CreateUser(t, st, uuid.NewString()+"@example.com", "Asha")
	t.Cleanup(func() {
		db.Where("user_id = ?", user.ID).Delete(&models.Address{})
		db.Delete(&models.User{}, "id = ?", user.ID)
	})

	raceDefaults(t, st, user.ID)
}
