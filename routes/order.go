package routes

import (
	"github.com/gin-gonic/gin"

	orderControllers "github.com/junaidrashid-git/storefront-api/controllers/order"
	"github.com/junaidrashid-git/storefront-api/middleware"
)

func SetupOrderRoutes(r *gin.Engine, d Deps) {
	orders := r.Group("/api/orders")
	orders.Use(middleware.ValidateToken(d.Auth.Tokens(), d.Log))
	{
		// Orders of the signed-in user, newest first
		orders.GET("", orderControllers.GetUserOrders(d.Store.Orders, d.Log))

		// Check out the cart into a new order
		orders.POST("", orderControllers.PlaceOrder(d.Store.Orders, d.Publisher, d.Validator, d.Log))
	}
}
