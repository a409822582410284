package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/junaidrashid-git/storefront-api/auth"
)

// SetupAuthRoutes registers all "/api/auth/*" endpoints.
func SetupAuthRoutes(r *gin.Engine, d Deps) {
	authGroup := r.Group("/api/auth")
	{
		authGroup.POST("/register", auth.RegisterHandler(d.Auth, d.Validator, d.Log))
		authGroup.POST("/login", auth.LoginHandler(d.Auth, d.Validator, d.Log))
		authGroup.POST("/logout", auth.LogoutHandler())
	}
}
