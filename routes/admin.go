package routes

import (
	"github.com/gin-gonic/gin"

	orderControllers "github.com/junaidrashid-git/storefront-api/controllers/order"
	productcontroller "github.com/junaidrashid-git/storefront-api/controllers/product"
	"github.com/junaidrashid-git/storefront-api/middleware"
)

// SetupAdminRoutes registers all "/admin/*" endpoints. Requires API key middleware.
func SetupAdminRoutes(r *gin.Engine, d Deps) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateAPIKey(d.AdminAPIKey))
	{
		// ─────────── Product Management ───────────
		productAdmin := adminGroup.Group("/products")
		{
			productAdmin.GET("/export", productcontroller.ExportProductsToExcel(d.Store.Products, d.Log))
			productAdmin.POST("/import", productcontroller.ImportProductsFromExcel(d.Store.Products, d.Validator, d.Log))
		}

		// ─────────── Order Management ───────────
		orderAdmin := adminGroup.Group("/orders")
		{
			orderAdmin.PUT("/:orderID/status", orderControllers.UpdateOrderStatusHandler(d.Store.Orders, d.Log))
			if d.Hub != nil {
				orderAdmin.GET("/ws", d.Hub.ServeWS)
			}
		}
	}
}
