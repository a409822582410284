package cartControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/junaidrashid-git/storefront-api/apperr"
	"github.com/junaidrashid-git/storefront-api/middleware"
	"github.com/junaidrashid-git/storefront-api/models"
	"github.com/junaidrashid-git/storefront-api/store"
	"github.com/junaidrashid-git/storefront-api/validation"
)

// GET /api/cart
func GetUserCart(cart *store.CartRepo, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			apperr.Respond(c, log, apperr.Unauthorized("Unauthorized"))
			return
		}

		items, err := cart.ListByUser(c.Request.Context(), userID)
		if err != nil {
			apperr.Respond(c, log, apperr.Internal(err))
			return
		}
		c.JSON(http.StatusOK, items)
	}
}

// POST /api/cart
func AddCartItem(cart *store.CartRepo, v *validation.Validator, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			apperr.Respond(c, log, apperr.Unauthorized("Unauthorized"))
			return
		}

		var in validation.CartItemInput
		if err := v.BindJSON(c, &in); err != nil {
			apperr.Respond(c, log, err)
			return
		}

		item, err := cart.Add(c.Request.Context(), userID, in.ProductID, *in.Quantity)
		if errors.Is(err, store.ErrUnknownProduct) {
			apperr.Respond(c, log, apperr.BadRequest("Product does not exist"))
			return
		}
		if err != nil {
			apperr.Respond(c, log, apperr.Internal(err))
			return
		}
		c.JSON(http.StatusCreated, item)
	}
}

// PATCH /api/cart/:id
//
// Quantity is not checked against stock; stock is informational only.
func UpdateCartItem(cart *store.CartRepo, v *validation.Validator, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			apperr.Respond(c, log, apperr.Unauthorized("Unauthorized"))
			return
		}

		var in validation.CartQuantityInput
		if err := v.BindJSON(c, &in); err != nil {
			apperr.Respond(c, log, err)
			return
		}

		if _, err := ownedItem(c, cart, userID); err != nil {
			apperr.Respond(c, log, err)
			return
		}

		item, err := cart.UpdateQuantity(c.Request.Context(), c.Param("id"), *in.Quantity)
		if errors.Is(err, store.ErrNotFound) {
			apperr.Respond(c, log, apperr.NotFound("Cart item not found"))
			return
		}
		if err != nil {
			apperr.Respond(c, log, apperr.Internal(err))
			return
		}
		c.JSON(http.StatusOK, item)
	}
}

// DELETE /api/cart/:id
func DeleteCartItem(cart *store.CartRepo, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			apperr.Respond(c, log, apperr.Unauthorized("Unauthorized"))
			return
		}

		if _, err := ownedItem(c, cart, userID); err != nil {
			apperr.Respond(c, log, err)
			return
		}

		err := cart.Delete(c.Request.Context(), c.Param("id"))
		if errors.Is(err, store.ErrNotFound) {
			apperr.Respond(c, log, apperr.NotFound("Cart item not found"))
			return
		}
		if err != nil {
			apperr.Respond(c, log, apperr.Internal(err))
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cart item removed"})
	}
}

// ownedItem loads the item named in the path. Items of other users are reported
// as not found so their existence does not leak.
func ownedItem(c *gin.Context, cart *store.CartRepo, userID string) (*models.CartItem, error) {
	item, err := cart.ByID(c.Request.Context(), c.Param("id"))
	if errors.Is(err, store.ErrNotFound) {
		return nil, apperr.NotFound("Cart item not found")
	}
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if item.UserID != userID {
		return nil, apperr.NotFound("Cart item not found")
	}
	return item, nil
}
