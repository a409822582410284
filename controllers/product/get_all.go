package productcontroller

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/junaidrashid-git/storefront-api/apperr"
	"github.com/junaidrashid-git/storefront-api/store"
)

// GET /api/products?category=&search=
func GetProducts(products *store.ProductRepo, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		filter := store.ProductFilter{
			Category: c.Query("category"),
			Search:   strings.TrimSpace(c.Query("search")),
		}

		list, err := products.List(c.Request.Context(), filter)
		if err != nil {
			apperr.Respond(c, log, apperr.Internal(err))
			return
		}
		c.JSON(http.StatusOK, list)
	}
}
