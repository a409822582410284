package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/junaidrashid-git/storefront-api/apperr"
	"github.com/junaidrashid-git/storefront-api/auth"
)

const (
	userIDKey    = "user_id"
	principalKey = "principal"
)

// ValidateToken requires a session token in the Authorization header (with or
// without the Bearer prefix) or in the session cookie.
func ValidateToken(tokens *auth.Tokens, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := strings.TrimSpace(strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer "))
		if tokenString == "" {
			tokenString, _ = c.Cookie(auth.SessionCookie)
		}
		if tokenString == "" {
			apperr.Respond(c, log, apperr.Unauthorized("Unauthorized"))
			return
		}

		principal, err := tokens.Parse(tokenString)
		if err != nil {
			apperr.Respond(c, log, apperr.Unauthorized("Unauthorized"))
			return
		}

		c.Set(userIDKey, principal.ID)
		c.Set(principalKey, *principal)
		c.Next()
	}
}

// UserID returns the authenticated user's id set by ValidateToken.
func UserID(c *gin.Context) (string, bool) {
	id := c.GetString(userIDKey)
	return id, id != ""
}

// CurrentPrincipal returns the token claims set by ValidateToken.
func CurrentPrincipal(c *gin.Context) (auth.Principal, bool) {
	v, ok := c.Get(principalKey)
	if !ok {
		return auth.Principal{}, false
	}
	p, ok := v.(auth.Principal)
	return p, ok
}
