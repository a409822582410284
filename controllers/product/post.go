package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/junaidrashid-git/storefront-api/apperr"
	"github.com/junaidrashid-git/storefront-api/models"
	"github.com/junaidrashid-git/storefront-api/store"
	"github.com/junaidrashid-git/storefront-api/validation"
)

// POST /api/products
func CreateProduct(products *store.ProductRepo, v *validation.Validator, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in validation.ProductInput
		if err := v.BindJSON(c, &in); err != nil {
			apperr.Respond(c, log, err)
			return
		}

		product := newProduct(in)
		if err := products.Create(c.Request.Context(), product); err != nil {
			apperr.Respond(c, log, apperr.Internal(err))
			return
		}
		c.JSON(http.StatusCreated, product)
	}
}

// newProduct expects a validated input.
func newProduct(in validation.ProductInput) *models.Product {
	return &models.Product{
		Name:        in.Name,
		Description: in.Description,
		Price:       decimal.NewFromFloat(*in.Price),
		Image:       in.Image,
		Category:    in.Category,
		Stock:       *in.Stock,
	}
}
