package validation

import (
	"strings"

	"github.com/junaidrashid-git/storefront-api/models"
)

type ProductInput struct {
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description" validate:"required"`
	Price       *float64 `json:"price" validate:"required,gt=0,cents"`
	Image       string   `json:"image" validate:"required,url"`
	Category    string   `json:"category" validate:"required"`
	Stock       *int     `json:"stock" validate:"required,gte=0"`
}

type AddressInput struct {
	Type        models.AddressType `json:"type" validate:"required,oneof=HOME WORK OTHER"`
	FullName    string             `json:"fullName" validate:"required"`
	PhoneNumber string             `json:"phoneNumber" validate:"min=10"`
	Street      string             `json:"street" validate:"required"`
	City        string             `json:"city" validate:"required"`
	State       string             `json:"state" validate:"required"`
	PostalCode  string             `json:"postalCode" validate:"min=6"`
	Country     string             `json:"country"`
	IsDefault   bool               `json:"isDefault"`
}

func (in *AddressInput) normalize() {
	in.Country = strings.TrimSpace(in.Country)
	if in.Country == "" {
		in.Country = models.DefaultCountry
	}
}

// Address builds the model for userID. ID and timestamps are left to the store.
func (in *AddressInput) Address(userID string) *models.Address {
	return &models.Address{
		UserID:      userID,
		Type:        in.Type,
		FullName:    in.FullName,
		PhoneNumber: in.PhoneNumber,
		Street:      in.Street,
		City:        in.City,
		State:       in.State,
		PostalCode:  in.PostalCode,
		Country:     in.Country,
		IsDefault:   in.IsDefault,
	}
}

type CartItemInput struct {
	ProductID string `json:"productId" validate:"required"`
	Quantity  *int   `json:"quantity" validate:"omitempty,min=1"`
}

func (in *CartItemInput) normalize() {
	if in.Quantity == nil {
		one := 1
		in.Quantity = &one
	}
}

type CartQuantityInput struct {
	Quantity *int `json:"quantity" validate:"required,min=1"`
}

type OrderInput struct {
	ShippingAddressID string `json:"shippingAddressId" validate:"required"`
}

type ProfileInput struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
}

func (in *ProfileInput) normalize() {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
}

type RegisterInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Name     string `json:"name"`
}

func (in *RegisterInput) normalize() {
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.Name = strings.TrimSpace(in.Name)
}

type LoginInput struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (in *LoginInput) normalize() {
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
}

var messages = map[string]map[string]string{
	"ProductInput": {
		"name.required":        "Name is required",
		"description.required": "Description is required",
		"price.required":       "Price is required",
		"price.gt":             "Price must be positive",
		"price.cents":          "Price must have at most 2 decimal places",
		"image.required":       "Image is required",
		"image.url":            "Image must be a valid URL",
		"category.required":    "Category is required",
		"stock.required":       "Stock is required",
		"stock.gte":            "Stock must be non-negative",
	},
	"AddressInput": {
		"type.required":     "Address type is required",
		"type.oneof":        "Address type must be HOME, WORK or OTHER",
		"fullName.required": "Full name is required",
		"phoneNumber.min":   "Phone number must be at least 10 digits",
		"street.required":   "Street address is required",
		"city.required":     "City is required",
		"state.required":    "State is required",
		"postalCode.min":    "Postal code must be at least 6 digits",
	},
	"CartItemInput": {
		"productId.required": "Product is required",
		"quantity.min":       "Quantity must be at least 1",
	},
	"CartQuantityInput": {
		"quantity.required": "Quantity is required",
		"quantity.min":      "Quantity must be at least 1",
	},
	"OrderInput": {
		"shippingAddressId.required": "Shipping address is required",
	},
	"ProfileInput": {
		"name.required":  "Name is required",
		"email.required": "Email is required",
		"email.email":    "Invalid email address",
	},
	"RegisterInput": {
		"email.required":    "Email is required",
		"email.email":       "Invalid email address",
		"password.required": "Password is required",
		"password.min":      "Password must be at least 8 characters",
	},
	"LoginInput": {
		"email.required":    "Email is required",
		"password.required": "Password is required",
	},
}
