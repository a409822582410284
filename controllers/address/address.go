package addressControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/junaidrashid-git/storefront-api/apperr"
	"github.com/junaidrashid-git/storefront-api/middleware"
	"github.com/junaidrashid-git/storefront-api/store"
	"github.com/junaidrashid-git/storefront-api/validation"
)

var errAddressNotFound = apperr.NotFound("Address not found")

// GET /api/addresses
func GetAddresses(addresses *store.AddressRepo, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			apperr.Respond(c, log, apperr.Unauthorized("Unauthorized"))
			return
		}

		list, err := addresses.ListByUser(c.Request.Context(), userID)
		if err != nil {
			apperr.Respond(c, log, apperr.Internal(err))
			return
		}
		c.JSON(http.StatusOK, list)
	}
}

// POST /api/addresses
func CreateAddress(addresses *store.AddressRepo, v *validation.Validator, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			apperr.Respond(c, log, apperr.Unauthorized("Unauthorized"))
			return
		}

		var in validation.AddressInput
		if err := v.BindJSON(c, &in); err != nil {
			apperr.Respond(c, log, err)
			return
		}

		address := in.Address(userID)
		err := addresses.Create(c.Request.Context(), address)
		if errors.Is(err, store.ErrNotFound) {
			// the token outlived its user
			apperr.Respond(c, log, apperr.Unauthorized("Unauthorized"))
			return
		}
		if err != nil {
			apperr.Respond(c, log, apperr.Internal(err))
			return
		}
		c.JSON(http.StatusCreated, address)
	}
}

// GET /api/addresses/:id
func GetAddress(addresses *store.AddressRepo, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			apperr.Respond(c, log, apperr.Unauthorized("Unauthorized"))
			return
		}

		address, err := addresses.ByIDForUser(c.Request.Context(), c.Param("id"), userID)
		if errors.Is(err, store.ErrNotFound) {
			apperr.Respond(c, log, errAddressNotFound)
			return
		}
		if err != nil {
			apperr.Respond(c, log, apperr.Internal(err))
			return
		}
		c.JSON(http.StatusOK, address)
	}
}

// PUT /api/addresses/:id
func UpdateAddress(addresses *store.AddressRepo, v *validation.Validator, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			apperr.Respond(c, log, apperr.Unauthorized("Unauthorized"))
			return
		}

		var in validation.AddressInput
		if err := v.BindJSON(c, &in); err != nil {
			apperr.Respond(c, log, err)
			return
		}

		address, err := addresses.Update(c.Request.Context(), c.Param("id"), userID, in.Address(userID))
		if errors.Is(err, store.ErrNotFound) {
			apperr.Respond(c, log, errAddressNotFound)
			return
		}
		if err != nil {
			apperr.Respond(c, log, apperr.Internal(err))
			return
		}
		c.JSON(http.StatusOK, address)
	}
}

// DELETE /api/addresses/:id
func DeleteAddress(addresses *store.AddressRepo, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			apperr.Respond(c, log, apperr.Unauthorized("Unauthorized"))
			return
		}

		err := addresses.Delete(c.Request.Context(), c.Param("id"), userID)
		if errors.Is(err, store.ErrNotFound) {
			apperr.Respond(c, log, errAddressNotFound)
			return
		}
		if err != nil {
			apperr.Respond(c, log, apperr.Internal(err))
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Address deleted successfully"})
	}
}
