package store_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/junaidrashid-git/storefront-api/internal/testutil"
	"github.com/junaidrashid-git/storefront-api/models"
	"github.com/junaidrashid-git/storefront-api/store"
)

func names(t *testing.T, st *store.Store, f store.ProductFilter) []string {
	t.Helper()
	list, err := st.Products.List(context.Background(), f)
	require.NoError(t, err)

	out := make([]string, 0, len(list))
	for _, p := range list {
		out = append(out, p.Name)
	}
	return out
}

func TestProductListFilters(t *testing.T) {
	st := testutil.NewStore(t)
	testutil.CreateProduct(t, st, "Wireless Charging Pad", "39.99", "Electronics")
	testutil.CreateProduct(t, st, "Smart Fitness Watch", "199.99", "Electronics")
	testutil.CreateProduct(t, st, "Yoga Mat", "49.99", "Sports")

	assert.Len(t, names(t, st, store.ProductFilter{}), 3)
	assert.ElementsMatch(t,
		[]string{"Wireless Charging Pad", "Smart Fitness Watch"},
		names(t, st, store.ProductFilter{Category: "Electronics"}))
	assert.Empty(t, names(t, st, store.ProductFilter{Category: "electronics"}), "category match is exact")

	assert.Equal(t, []string{"Wireless Charging Pad"}, names(t, st, store.ProductFilter{Search: "WIRELESS"}))
	// descriptions are "<name> description"
	assert.Len(t, names(t, st, store.ProductFilter{Search: "descr"}), 3)
	assert.Equal(t, []string{"Yoga Mat"}, names(t, st, store.ProductFilter{Category: "Sports", Search: "mat"}))
	assert.Empty(t, names(t, st, store.ProductFilter{Category: "Sports", Search: "watch"}))
}

func TestProductSearchIsLiteral(t *testing.T) {
	st := testutil.NewStore(t)
	testutil.CreateProduct(t, st, "Sticker", "0.50", "Stationery")
	testutil.CreateProduct(t, st, "100% Cotton Tee", "19.99", "Apparel")
	testutil.CreateProduct(t, st, "Gift!Box", "9.99", "Home")

	assert.Equal(t, []string{"100% Cotton Tee"}, names(t, st, store.ProductFilter{Search: "%"}))
	assert.Equal(t, []string{"100% Cotton Tee"}, names(t, st, store.ProductFilter{Search: "0% c"}))
	assert.Empty(t, names(t, st, store.ProductFilter{Search: "_"}))
	assert.Empty(t, names(t, st, store.ProductFilter{Search: "st%ker"}))
	assert.Equal(t, []string{"Gift!Box"}, names(t, st, store.ProductFilter{Search: "t!b"}))
}

func TestProductCreateManyIsAtomic(t *testing.T) {
	st := testutil.NewStore(t)
	ctx := context.Background()

	product := func(id, name string) *models.Product {
		return &models.Product{
			ID: id, Name: name, Description: name, Price: decimal.RequireFromString("5.00"),
			Image: "https://example.com/" + id + ".jpg", Category: "Home", Stock: 1,
		}
	}

	err := st.Products.CreateMany(ctx, []*models.Product{product("p1", "Lamp"), product("p1", "Lamp Again")})
	require.Error(t, err)
	n, err := st.Products.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n, "a failed batch leaves nothing behind")

	require.NoError(t, st.Products.CreateMany(ctx, []*models.Product{product("p1", "Lamp"), product("", "Vase")}))
	n, err = st.Products.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)
}

func TestProductByIDMissing(t *testing.T) {
	st := testutil.NewStore(t)
	_, err := st.Products.ByID(context.Background(), "missing")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestProductListEmptyIsNotNil(t *testing.T) {
	st := testutil.NewStore(t)
	list, err := st.Products.List(context.Background(), store.ProductFilter{})
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}
