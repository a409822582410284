package userControllers

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

// GET /api/profile
func GetProfile(users *store.UserRepo, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			apperr.Respond(c, log, apperr.Unauthorized("Unauthorized"))
			return
		}

		user, err := users.ByID(c.Request.Context(), userID)
		if errors.Is(err, store.ErrNotFound) {
			apperr.Respond(c, log, apperr.Unauthorized("Unauthorized"))
			return
		}
		if err != nil {
			apperr.Respond(c, log, apperr.Internal(err))
			return
		}
		c.JSON(http.StatusOK, user.Profile())
	}
}

// PUT /api/profile
//
// The name in an already issued token is not refreshed; clients re-login to
// pick up the new value.
func UpdateProfile(users *store.UserRepo, v *validation.Validator, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			apperr.Respond(c, log, apperr.Unauthorized("Unauthorized"))
			return
		}

		var in validation.ProfileInput
		if err := v.BindJSON(c, &in); err != nil {
			apperr.Respond(c, log, err)
			return
		}

		user, err := users.UpdateProfile(c.Request.Context(), userID, in.Name, in.Email)
		switch {
		case errors.Is(err, store.ErrDuplicateEmail):
			apperr.Respond(c, log, apperr.Conflict("Email already in use"))
			return
		case errors.Is(err, store.ErrNotFound):
			apperr.Respond(c, log, apperr.Unauthorized("Unauthorized"))
			return
		case err != nil:
			apperr.Respond(c, log, apperr.Internal(err))
			return
		}
		c.JSON(http.StatusOK, user.Profile())
	}
}
