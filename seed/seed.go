// Package seed loads the sample catalogue used for local development.
package seed

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/junaidrashid-git/storefront-api/models"
	"github.com/junaidrashid-git/storefront-api/store"
)

// Products returns fresh copies of the sample products.
func Products() []models.Product {
	return []models.Product{
		{
			Name:        "Wireless Bluetooth Headphones",
			Description: "High-quality wireless headphones with noise cancellation and 30-hour battery life. Perfect for music lovers and professionals.",
			Price:       decimal.RequireFromString("99.99"),
			Image:       "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?w=400&h=400&fit=crop",
			Category:    "Electronics",
			Stock:       50,
		},
		{
			Name:        "Smart Fitness Watch",
			Description: "Advanced fitness tracker with heart rate monitoring, GPS, and water resistance. Track your workouts and stay healthy.",
			Price:       decimal.RequireFromString("199.99"),
			Image:       "https://images.unsplash.com/photo-1523275335684-37898b6baf30?w=400&h=400&fit=crop",
			Category:    "Electronics",
			Stock:       30,
		},
		{
			Name:        "Organic Cotton T-Shirt",
			Description: "Comfortable and sustainable cotton t-shirt made from 100% organic materials. Available in multiple colors and sizes.",
			Price:       decimal.RequireFromString("29.99"),
			Image:       "https://images.unsplash.com/photo-1521572163474-6864f9cf17ab?w=400&h=400&fit=crop",
			Category:    "Clothing",
			Stock:       100,
		},
		{
			Name:        "Leather Crossbody Bag",
			Description: "Stylish and practical leather bag perfect for everyday use. Features multiple compartments and adjustable strap.",
			Price:       decimal.RequireFromString("79.99"),
			Image:       "https://images.unsplash.com/photo-1548036328-c9fa89d128fa?w=400&h=400&fit=crop",
			Category:    "Fashion",
			Stock:       25,
		},
		{
			Name:        "Stainless Steel Water Bottle",
			Description: "Eco-friendly water bottle that keeps drinks cold for 24 hours or hot for 12 hours. Perfect for outdoor activities.",
			Price:       decimal.RequireFromString("24.99"),
			Image:       "https://images.unsplash.com/photo-1602143407151-7111542de6e8?w=400&h=400&fit=crop",
			Category:    "Home & Garden",
			Stock:       75,
		},
		{
			Name:        "Wireless Charging Pad",
			Description: "Fast wireless charging pad compatible with all Qi-enabled devices. Sleek design with LED indicator.",
			Price:       decimal.RequireFromString("39.99"),
			Image:       "https://images.unsplash.com/photo-1609592806596-b43bada6f5e3?w=400&h=400&fit=crop",
			Category:    "Electronics",
			Stock:       40,
		},
		{
			Name:        "Yoga Mat",
			Description: "Premium non-slip yoga mat made from eco-friendly materials. Perfect for yoga, pilates, and fitness workouts.",
			Price:       decimal.RequireFromString("49.99"),
			Image:       "https://images.unsplash.com/photo-1544367567-0f2fcb009e0b?w=400&h=400&fit=crop",
			Category:    "Sports",
			Stock:       60,
		},
		{
			Name:        "Ceramic Coffee Mug Set",
			Description: "Beautiful handcrafted ceramic mugs perfect for your morning coffee or tea. Set of 4 with matching saucers.",
			Price:       decimal.RequireFromString("34.99"),
			Image:       "https://images.unsplash.com/photo-1513558161293-cdaf765ed2fd?w=400&h=400&fit=crop",
			Category:    "Home & Garden",
			Stock:       45,
		},
	}
}

// Run inserts the sample products. With reset, existing products are deleted
// first; otherwise a non-empty catalogue is left alone and 0 is returned.
func Run(ctx context.Context, products *store.ProductRepo, reset bool) (int, error) {
	if reset {
		if err := products.DeleteAll(ctx); err != nil {
			return 0, fmt.Errorf("clear products: %w", err)
		}
	} else {
		n, err := products.Count(ctx)
		if err != nil {
			return 0, err
		}
		if n > 0 {
			return 0, nil
		}
	}

	created := 0
	for _, p := range Products() {
		p := p
		if err := products.Create(ctx, &p); err != nil {
			return created, fmt.Errorf("create %q: %w", p.Name, err)
		}
		created++
	}
	return created, nil
}
