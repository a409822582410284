package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/junaidrashid-git/storefront-api/apperr"
	"github.com/junaidrashid-git/storefront-api/models"
)

func ptr[T any](v T) *T { return &v }

func validProduct() ProductInput {
	return ProductInput{
		Name:        "Yoga Mat",
		Description: "Non-slip mat",
		Price:       ptr(49.99),
		Image:       "https://images.example.com/mat.jpg",
		Category:    "Sports",
		Stock:       ptr(60),
	}
}

func validAddress() AddressInput {
	return AddressInput{
		Type:        models.AddressHome,
		FullName:    "Asha Verma",
		PhoneNumber: "9876543210",
		Street:      "12 MG Road",
		City:        "Bengaluru",
		State:       "Karnataka",
		PostalCode:  "560001",
	}
}

func assertValidation(t *testing.T, err error, msg string) {
	t.Helper()
	require.Error(t, err)
	var e *apperr.Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, apperr.KindValidation, e.Kind)
	assert.Equal(t, msg, e.Message)
}

func TestProductInput(t *testing.T) {
	v := New()

	in := validProduct()
	require.NoError(t, v.Check(&in))

	tests := []struct {
		name   string
		mutate func(*ProductInput)
		msg    string
	}{
		{"missing name", func(p *ProductInput) { p.Name = "" }, "Name is required"},
		{"zero price", func(p *ProductInput) { p.Price = ptr(0.0) }, "Price must be positive"},
		{"negative price", func(p *ProductInput) { p.Price = ptr(-1.0) }, "Price must be positive"},
		{"missing price", func(p *ProductInput) { p.Price = nil }, "Price is required"},
		{"sub-cent price", func(p *ProductInput) { p.Price = ptr(0.004) }, "Price must have at most 2 decimal places"},
		{"three decimals", func(p *ProductInput) { p.Price = ptr(49.999) }, "Price must have at most 2 decimal places"},
		{"bad image", func(p *ProductInput) { p.Image = "not a url" }, "Image must be a valid URL"},
		{"negative stock", func(p *ProductInput) { p.Stock = ptr(-1) }, "Stock must be non-negative"},
		{"missing category", func(p *ProductInput) { p.Category = "" }, "Category is required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validProduct()
			tt.mutate(&in)
			assertValidation(t, v.Check(&in), tt.msg)
		})
	}

	for _, price := range []float64{0.01, 0.1, 19.9, 50} {
		in := validProduct()
		in.Price = ptr(price)
		assert.NoError(t, v.Check(&in), "price %v", price)
	}

	zeroStock := validProduct()
	zeroStock.Stock = ptr(0)
	assert.NoError(t, v.Check(&zeroStock))
}

func TestAddressInput(t *testing.T) {
	v := New()

	in := validAddress()
	require.NoError(t, v.Check(&in))
	assert.Equal(t, models.DefaultCountry, in.Country)

	tests := []struct {
		name   string
		mutate func(*AddressInput)
		msg    string
	}{
		{"short phone", func(a *AddressInput) { a.PhoneNumber = "12345" }, "Phone number must be at least 10 digits"},
		{"short postal code", func(a *AddressInput) { a.PostalCode = "123" }, "Postal code must be at least 6 digits"},
		{"unknown type", func(a *AddressInput) { a.Type = "CABIN" }, "Address type must be HOME, WORK or OTHER"},
		{"missing name", func(a *AddressInput) { a.FullName = "" }, "Full name is required"},
		{"missing city", func(a *AddressInput) { a.City = "" }, "City is required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validAddress()
			tt.mutate(&in)
			assertValidation(t, v.Check(&in), tt.msg)
		})
	}

	kept := validAddress()
	kept.Country = "Nepal"
	require.NoError(t, v.Check(&kept))
	assert.Equal(t, "Nepal", kept.Address("u1").Country)
	assert.Equal(t, "u1", kept.Address("u1").UserID)
}

func TestCartInputs(t *testing.T) {
	v := New()

	add := CartItemInput{ProductID: "p1"}
	require.NoError(t, v.Check(&add))
	require.NotNil(t, add.Quantity)
	assert.Equal(t, 1, *add.Quantity)

	zero := CartItemInput{ProductID: "p1", Quantity: ptr(0)}
	assertValidation(t, v.Check(&zero), "Quantity must be at least 1")

	for _, q := range []int{0, -3} {
		in := CartQuantityInput{Quantity: ptr(q)}
		assertValidation(t, v.Check(&in), "Quantity must be at least 1")
	}
	missing := CartQuantityInput{}
	assertValidation(t, v.Check(&missing), "Quantity is required")
}

func TestProfileAndOrderInputs(t *testing.T) {
	v := New()

	profile := ProfileInput{Name: " Asha ", Email: " Asha@Example.COM "}
	require.NoError(t, v.Check(&profile))
	assert.Equal(t, "Asha", profile.Name)
	assert.Equal(t, "asha@example.com", profile.Email)

	bad := ProfileInput{Name: "Asha", Email: "asha"}
	assertValidation(t, v.Check(&bad), "Invalid email address")

	blank := ProfileInput{Name: "  ", Email: "asha@example.com"}
	assertValidation(t, v.Check(&blank), "Name is required")

	order := OrderInput{}
	assertValidation(t, v.Check(&order), "Shipping address is required")
}

func TestRegisterInput(t *testing.T) {
	v := New()

	short := RegisterInput{Email: "asha@example.com", Password: "short"}
	assertValidation(t, v.Check(&short), "Password must be at least 8 characters")

	ok := RegisterInput{Email: "ASHA@example.com", Password: "long-enough"}
	require.NoError(t, v.Check(&ok))
	assert.Equal(t, "asha@example.com", ok.Email)
}
