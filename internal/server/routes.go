// AngelaMos | 2026
// routes.go

package server

import (
	"github.com/go-chi/chi/v5"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"

	"github.com/efarmlink/efarmlink-api/internal/auth"
	"github.com/efarmlink/efarmlink-api/internal/config"
	"github.com/efarmlink/efarmlink-api/internal/events"
	"github.com/efarmlink/efarmlink-api/internal/health"
	"github.com/efarmlink/efarmlink-api/internal/marketprice"
	"github.com/efarmlink/efarmlink-api/internal/message"
	"github.com/efarmlink/efarmlink-api/internal/middleware"
	"github.com/efarmlink/efarmlink-api/internal/order"
	"github.com/efarmlink/efarmlink-api/internal/product"
	"github.com/efarmlink/efarmlink-api/internal/user"
)

// Deps are the shared resources every API handler is built from. Redis may
// be nil, in which case rate limits are tracked in process.
type Deps struct {
	DB        *sqlx.DB
	Redis     *redis.Client
	Tokens    *auth.JWTManager
	Publisher events.Publisher
	Health    *health.Handler
	RateLimit config.RateLimitConfig
}

// Mount wires repositories, services and handlers under /api.
func Mount(r chi.Router, d Deps) {
	userRepo := user.NewRepository(d.DB)
	userSvc := user.NewService(userRepo)
	userHandler := user.NewHandler(userSvc)

	authSvc := auth.NewService(d.Tokens, userSvc)
	authHandler := auth.NewHandler(authSvc)

	productSvc := product.NewService(product.NewRepository(d.DB))
	productHandler := product.NewHandler(productSvc)

	orderSvc := order.NewService(order.NewRepository(d.DB), d.Publisher)
	orderHandler := order.NewHandler(orderSvc)

	messageSvc := message.NewService(message.NewRepository(d.DB), d.Publisher)
	messageHandler := message.NewHandler(messageSvc)

	priceHandler := marketprice.NewHandler(marketprice.NewRepository(d.DB))

	authenticator := middleware.Authenticator(d.Tokens)

	var authLimiter *middleware.RateLimiter
	if d.RateLimit.AuthRequests > 0 {
		authLimiter = middleware.NewRateLimiter(d.Redis, middleware.RateLimitConfig{
			Limit: middleware.Per(
				d.RateLimit.AuthRequests,
				d.RateLimit.AuthBurst,
				d.RateLimit.Window,
			),
			Prefix:   "auth",
			FailOpen: true,
		})
	}

	r.Route("/api", func(r chi.Router) {
		if d.Health != nil {
			r.Get("/health", d.Health.Liveness)
		}

		if authLimiter != nil {
			authHandler.RegisterRoutes(r, authenticator, authLimiter.Handler)
		} else {
			authHandler.RegisterRoutes(r, authenticator, nil)
		}

		userHandler.RegisterRoutes(r, authenticator)
		productHandler.RegisterRoutes(r, authenticator)
		orderHandler.RegisterRoutes(r, authenticator)
		messageHandler.RegisterRoutes(r, authenticator)
		priceHandler.RegisterRoutes(r)
	})
}
