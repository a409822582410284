package routes

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/junaidrashid-git/storefront-api/auth"
	healthControllers "github.com/junaidrashid-git/storefront-api/controllers/health"
	"github.com/junaidrashid-git/storefront-api/events"
	"github.com/junaidrashid-git/storefront-api/middleware"
	"github.com/junaidrashid-git/storefront-api/store"
	"github.com/junaidrashid-git/storefront-api/validation"
)

// Deps is everything the handlers need. Nothing is read from globals.
type Deps struct {
	Store       *store.Store
	Auth        *auth.Service
	Validator   *validation.Validator
	Publisher   events.Publisher
	Hub         *events.Hub
	Log         *zap.Logger
	Registry    *prometheus.Registry
	AdminAPIKey string
	CORSOrigins []string
}

// NewRouter builds the engine with middleware and every route group.
func NewRouter(d Deps) *gin.Engine {
	if d.Publisher == nil {
		d.Publisher = events.Nop{}
	}
	if d.Registry == nil {
		d.Registry = prometheus.NewRegistry()
	}

	r := gin.New()
	r.MaxMultipartMemory = 32 << 20

	r.Use(
		middleware.RequestLogger(d.Log),
		gin.Recovery(),
		middleware.Metrics(d.Registry),
		cors.New(corsConfig(d.CORSOrigins)),
	)

	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(d.Registry, promhttp.HandlerOpts{})))
	r.GET("/api/health", healthControllers.Health(d.Store, d.Log))

	SetupRoutes(r, d)
	return r
}

// SetupRoutes is the single entry point that wires up the auth, shop, user and
// admin route groups.
func SetupRoutes(r *gin.Engine, d Deps) {
	// Public auth routes (no middleware)
	SetupAuthRoutes(r, d)

	// Product catalogue (public)
	SetupProductRoutes(r, d)

	// Cart, addresses, profile (JWT protected)
	SetupUserRoutes(r, d)

	// Orders (JWT protected)
	SetupOrderRoutes(r, d)

	// Admin routes (API key protected)
	SetupAdminRoutes(r, d)
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-API-KEY"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		// credentials rule out a literal "*", so echo the request origin
		cfg.AllowOriginFunc = func(string) bool { return true }
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}
