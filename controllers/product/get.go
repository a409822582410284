package productcontroller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/junaidrashid-git/storefront-api/apperr"
	"github.com/junaidrashid-git/storefront-api/store"
)

// GET /api/products/:id
func GetProductByID(products *store.ProductRepo, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		product, err := products.ByID(c.Request.Context(), c.Param("id"))
		if errors.Is(err, store.ErrNotFound) {
			apperr.Respond(c, log, apperr.NotFound("Product not found"))
			return
		}
		if err != nil {
			apperr.Respond(c, log, apperr.Internal(err))
			return
		}
		c.JSON(http.StatusOK, product)
	}
}
