package store_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/junaidrashid-git/storefront-api/internal/testutil"
	"github.com/junaidrashid-git/storefront-api/models"
	"github.com/junaidrashid-git/storefront-api/store"
)

func TestUserCreateDuplicateEmail(t *testing.T) {
	st := testutil.NewStore(t)
	testutil.CreateUser(t, st, "asha@example.com", "Asha")

	err := st.Users.Create(context.Background(), &models.User{Email: "asha@example.com"})
	assert.ErrorIs(t, err, store.ErrDuplicateEmail)
}

func TestUserDefaultsRole(t *testing.T) {
	st := testutil.NewStore(t)
	u := testutil.CreateUser(t, st, "asha@example.com", "Asha")

	stored, err := st.Users.ByEmail(context.Background(), "asha@example.com")
	require.NoError(t, err)
	assert.Equal(t, u.ID, stored.ID)
	assert.Equal(t, models.RoleUser, stored.Role)
}

func TestUpdateProfile(t *testing.T) {
	st := testutil.NewStore(t)
	ctx := context.Background()
	asha := testutil.CreateUser(t, st, "asha@example.com", "Asha")
	testutil.CreateUser(t, st, "ravi@example.com", "Ravi")

	updated, err := st.Users.UpdateProfile(ctx, asha.ID, "Asha V", "asha.v@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Asha V", updated.Name)
	assert.Equal(t, "asha.v@example.com", updated.Email)

	// keeping one's own email is fine
	_, err = st.Users.UpdateProfile(ctx, asha.ID, "Asha", "asha.v@example.com")
	require.NoError(t, err)

	_, err = st.Users.UpdateProfile(ctx, asha.ID, "Asha", "ravi@example.com")
	assert.ErrorIs(t, err, store.ErrDuplicateEmail)

	_, err = st.Users.UpdateProfile(ctx, "missing", "Nobody", "nobody@example.com")
	assert.ErrorIs(t, err, store.ErrNotFound)
}
