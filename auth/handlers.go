package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/junaidrashid-git/storefront-api/apperr"
	"github.com/junaidrashid-git/storefront-api/store"
	"github.com/junaidrashid-git/storefront-api/validation"
)

// SessionCookie holds the session token for browser clients.
const SessionCookie = "session_token"

// POST /api/auth/register
func RegisterHandler(svc *Service, v *validation.Validator, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in validation.RegisterInput
		if err := v.BindJSON(c, &in); err != nil {
			apperr.Respond(c, log, err)
			return
		}

		user, err := svc.Register(c.Request.Context(), in.Email, in.Password, in.Name)
		if errors.Is(err, store.ErrDuplicateEmail) {
			apperr.Respond(c, log, apperr.Conflict("Email already in use"))
			return
		}
		if err != nil {
			apperr.Respond(c, log, apperr.Internal(err))
			return
		}

		token, err := svc.Tokens().Issue(PrincipalFor(user))
		if err != nil {
			apperr.Respond(c, log, apperr.Internal(err))
			return
		}
		setSessionCookie(c, token, int(svc.Tokens().TTL().Seconds()))
		c.JSON(http.StatusCreated, gin.H{"user": PrincipalFor(user), "token": token})
	}
}

// POST /api/auth/login
func LoginHandler(svc *Service, v *validation.Validator, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in validation.LoginInput
		if err := v.BindJSON(c, &in); err != nil {
			apperr.Respond(c, log, err)
			return
		}

		user, token, err := svc.Login(c.Request.Context(), in.Email, in.Password)
		if errors.Is(err, ErrInvalidCredentials) {
			apperr.Respond(c, log, apperr.Unauthorized("Invalid email or password"))
			return
		}
		if err != nil {
			apperr.Respond(c, log, apperr.Internal(err))
			return
		}

		log.Info("user signed in", zap.String("user_id", user.ID))
		setSessionCookie(c, token, int(svc.Tokens().TTL().Seconds()))
		c.JSON(http.StatusOK, gin.H{"user": PrincipalFor(user), "token": token})
	}
}

// POST /api/auth/logout
func LogoutHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		setSessionCookie(c, "", -1)
		c.JSON(http.StatusOK, gin.H{"message": "Signed out"})
	}
}

func setSessionCookie(c *gin.Context, token string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookie, token, maxAge, "/", "", c.Request.TLS != nil, true)
}
