package main

import (
	"context"
	"errors"
	"expvar"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"vitrina/internal/auth"
	"vitrina/internal/cart"
	"vitrina/internal/catalog"
	"vitrina/internal/orders"
	"vitrina/internal/prefs"
	"vitrina/internal/ratelimiter"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

type application struct {
	config        config
	logger        *zap.SugaredLogger
	cart          *cart.Store
	favorites     *prefs.Favorites
	recent        *prefs.RecentlyViewed
	categoryOrder *prefs.CategoryOrder
	catalog       *catalog.Client
	orders        *orders.Client
	refs          *orders.ReferenceGenerator
	authenticator auth.Authenticator
	rateLimiter   *ratelimiter.FixedWindowRateLimiter
}

type config struct {
	addr        string
	env         string
	backendURL  string
	frontendURL string
	state       stateConfig
	auth        authConfig
	rateLimiter ratelimiter.Config
}

// stateConfig selects where client state (cart, preferences) is persisted.
type stateConfig struct {
	backend   string // memory, file, redis, postgres
	dir       string
	redisAddr string
	namespace string
	db        dbConfig
}

type dbConfig struct {
	addr        string
	maxConns    int32
	maxIdleTime string
}

type authConfig struct {
	secret string
	aud    string
	iss    string
}

func (app *application) mount() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{app.config.frontendURL},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "x-local-id"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(app.RateLimiterMiddleware)

	r.Route("/v1", func(r chi.Router) {
		r.Get("/health", app.healthCheckHandler)
		r.Get("/debug/vars", expvar.Handler().ServeHTTP)

		// Identity is optional everywhere: guests get the guest scope.
		r.Group(func(r chi.Router) {
			r.Use(app.ScopeMiddleware)

			r.Route("/cart", func(r chi.Router) {
				r.Get("/", app.getCartHandler)
				r.Post("/dispatch", app.dispatchCartHandler)
				r.Post("/items", app.addCartItemHandler)
				r.Patch("/items/{identityKey}/increment", app.incrementCartItemHandler)
				r.Patch("/items/{identityKey}/decrement", app.decrementCartItemHandler)
				r.Delete("/items/{identityKey}", app.removeCartItemHandler)
				r.Delete("/", app.clearCartHandler)
			})

			r.Get("/products", app.getProductsHandler)
			r.Get("/categories", app.getCategoriesHandler)
			r.Put("/categories/order", app.putCategoryOrderHandler)
			r.Get("/locations", app.getLocationsHandler)

			r.Route("/favorites", func(r chi.Router) {
				r.Get("/", app.listFavoritesHandler)
				r.Put("/{productID}", app.addFavoriteHandler)
				r.Delete("/{productID}", app.removeFavoriteHandler)
				r.Post("/{productID}/toggle", app.toggleFavoriteHandler)
			})

			r.Get("/recent", app.getRecentHandler)
			r.Post("/recent", app.recordRecentHandler)

			r.Post("/checkout", app.checkoutHandler)
			r.Get("/orders", app.listOrdersHandler)
			r.Get("/orders/{orderID}", app.getOrderHandler)
		})
	})
	return r
}

func (app *application) run(mux http.Handler) error {
	srv := &http.Server{
		Addr:         app.config.addr,
		Handler:      mux,
		WriteTimeout: time.Second * 30,
		ReadTimeout:  time.Second * 10,
		IdleTimeout:  time.Minute,
	}

	shutdown := make(chan error)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		s := <-quit

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		app.logger.Infow("signal caught", "signal", s.String())
		shutdown <- srv.Shutdown(ctx)
	}()

	app.logger.Infow("server has started", "addr", app.config.addr, "env", app.config.env)

	err := srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	if err := <-shutdown; err != nil {
		return err
	}

	app.logger.Infow("server has stopped", "addr", app.config.addr, "env", app.config.env)
	return nil
}
