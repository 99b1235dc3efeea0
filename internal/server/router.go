// Package server assembles the HTTP router.
package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"
	"github.com/jmoiron/sqlx"
	httpSwagger "github.com/swaggo/http-swagger"
	"github.com/unrolled/secure"

	_ "github.com/sbilibin2017/neko-list/docs"
	"github.com/sbilibin2017/neko-list/internal/handlers"
	"github.com/sbilibin2017/neko-list/internal/logger"
	"github.com/sbilibin2017/neko-list/internal/metrics"
	"github.com/sbilibin2017/neko-list/internal/middlewares"
)

// UserService serves the /users routes.
type UserService interface {
	handlers.Registerer
	handlers.Loginer
	handlers.UserGetter
}

// CatService serves the /cats routes.
type CatService interface {
	handlers.CatLister
	handlers.CatGetter
	handlers.CatCreator
	handlers.CatUpdater
	handlers.CatDeleter
}

// Deps carries everything the router hands to middleware and handlers.
type Deps struct {
	DB       *sqlx.DB
	Users    UserService
	Cats     CatService
	Resolver middlewares.Resolver
	Health   handlers.HealthChecker
	Metrics  *metrics.Metrics
	Version  string

	// AuthRateLimit caps register and login calls per client IP per minute.
	AuthRateLimit int
}

// NewRouter builds the chi router with the full middleware chain.
func NewRouter(d Deps) http.Handler {
	r := chi.NewRouter()

	securityHeaders := secure.New(secure.Options{
		FrameDeny:          true,
		ContentTypeNosniff: true,
		ReferrerPolicy:     "strict-origin-when-cross-origin",
	})

	r.Use(middlewares.LoggingMiddleware(logger.Log))
	r.Use(chimiddleware.Recoverer)
	r.Use(securityHeaders.Handler)
	if d.Metrics != nil {
		r.Use(d.Metrics.Middleware)
	}

	r.NotFound(handlers.NotFound)
	r.MethodNotAllowed(handlers.MethodNotAllowed)

	r.Get("/", handlers.NewBannerHandler(d.Version))
	r.Get("/health", handlers.NewHealthHandler(d.Health))
	r.Get("/test", handlers.NewTestHandler())
	if d.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", d.Metrics.Handler())
	}
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	authLimiter := httprate.Limit(d.AuthRateLimit, time.Minute,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(handlers.TooManyRequests),
	)

	r.Group(func(r chi.Router) {
		r.Use(middlewares.TxMiddleware(d.DB))
		r.Use(middlewares.IdentityMiddleware(d.Resolver))

		r.Route("/users", func(r chi.Router) {
			r.With(authLimiter).Post("/register", handlers.NewRegisterHandler(d.Users))
			r.With(authLimiter).Post("/login", handlers.NewLoginHandler(d.Users))
			r.Get("/{id}", handlers.NewGetUserHandler(d.Users))
		})

		r.Route("/cats", func(r chi.Router) {
			r.Get("/", handlers.NewListCatsHandler(d.Cats))
			r.Post("/", handlers.NewCreateCatHandler(d.Cats))
			r.Get("/{id}", handlers.NewGetCatHandler(d.Cats))
			r.Put("/{id}", handlers.NewUpdateCatHandler(d.Cats))
			r.Delete("/{id}", handlers.NewDeleteCatHandler(d.Cats))
		})
	})

	return r
}
