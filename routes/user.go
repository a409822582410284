package routes

import (
	"github.com/gin-gonic/gin"

	addressControllers "github.com/junaidrashid-git/storefront-api/controllers/address"
	cartControllers "github.com/junaidrashid-git/storefront-api/controllers/cart"
	productcontroller "github.com/junaidrashid-git/storefront-api/controllers/product"
	userControllers "github.com/junaidrashid-git/storefront-api/controllers/user"
	"github.com/junaidrashid-git/storefront-api/middleware"
)

// SetupProductRoutes registers the public "/api/products" endpoints.
func SetupProductRoutes(r *gin.Engine, d Deps) {
	products := r.Group("/api/products")
	{
		products.GET("", productcontroller.GetProducts(d.Store.Products, d.Log))
		products.POST("", productcontroller.CreateProduct(d.Store.Products, d.Validator, d.Log))
		products.GET("/:id", productcontroller.GetProductByID(d.Store.Products, d.Log))
	}
}

// SetupUserRoutes registers the session-scoped "/api/*" endpoints. Requires JWT middleware.
func SetupUserRoutes(r *gin.Engine, d Deps) {
	userGroup := r.Group("/api")
	userGroup.Use(middleware.ValidateToken(d.Auth.Tokens(), d.Log))
	{
		// ──────────────── Profile ────────────────
		userGroup.GET("/profile", userControllers.GetProfile(d.Store.Users, d.Log))
		userGroup.PUT("/profile", userControllers.UpdateProfile(d.Store.Users, d.Validator, d.Log))

		// ──────────────── Shopping Cart ────────────────
		cartGroup := userGroup.Group("/cart")
		{
			cartGroup.GET("", cartControllers.GetUserCart(d.Store.Cart, d.Log))
			cartGroup.POST("", cartControllers.AddCartItem(d.Store.Cart, d.Validator, d.Log))
			cartGroup.PATCH("/:id", cartControllers.UpdateCartItem(d.Store.Cart, d.Validator, d.Log))
			cartGroup.DELETE("/:id", cartControllers.DeleteCartItem(d.Store.Cart, d.Log))
		}

		// ──────────────── Addresses ────────────────
		addressGroup := userGroup.Group("/addresses")
		{
			addressGroup.GET("", addressControllers.GetAddresses(d.Store.Addresses, d.Log))
			addressGroup.POST("", addressControllers.CreateAddress(d.Store.Addresses, d.Validator, d.Log))
			addressGroup.GET("/:id", addressControllers.GetAddress(d.Store.Addresses, d.Log))
			addressGroup.PUT("/:id", addressControllers.UpdateAddress(d.Store.Addresses, d.Validator, d.Log))
			addressGroup.DELETE("/:id", addressControllers.DeleteAddress(d.Store.Addresses, d.Log))
		}
	}
}
