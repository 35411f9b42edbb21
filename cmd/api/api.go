package main

import (
	"context"
	"errors"
	"expvar"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/refdudu/api-calvao-de-cria/docs" //this is required to generate swagger docs
	"github.com/refdudu/api-calvao-de-cria/internal/auth"
	"github.com/refdudu/api-calvao-de-cria/internal/domain/carts"
	"github.com/refdudu/api-calvao-de-cria/internal/domain/storage"
	"github.com/refdudu/api-calvao-de-cria/internal/mailer"
	"github.com/refdudu/api-calvao-de-cria/internal/payments"
	"github.com/refdudu/api-calvao-de-cria/internal/ratelimiter"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"
)

type application struct {
	config        config
	store         *storage.Container
	engine        *carts.Engine
	payments      *payments.Manager
	logger        *zap.SugaredLogger
	cld           *cloudinary.Cloudinary
	mailer        mailer.Client
	authenticator auth.Authenticator
	rateLimiter   ratelimiter.Limiter
}

type config struct {
	addr        string
	db          dbConfig
	env         string
	apiURL      string
	mail        mailConfig
	frontendURL string
	auth        authConfig
	rateLimiter ratelimiter.Config
}

type authConfig struct {
	basic basicConfig
	token tokenConfig
}
type tokenConfig struct {
	refreshSecret   string
	secret          string
	accessTokenExp  time.Duration
	refreshTokenExp time.Duration
	iss             string
}
type basicConfig struct {
	user string
	pass string
}

type mailConfig struct {
	exp       time.Duration
	fromEmail string
	smtp      smtpConfig
}

type smtpConfig struct {
	host     string
	port     int
	username string
	password string
}

type dbConfig struct {
	addr         string
	maxOpenConns int
	maxIdleTime  string
}

func (app *application) mount() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(app.RateLimiterMiddleware)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Guest-Cart-Id"},
		ExposedHeaders:   []string{"Link", "X-Guest-Cart-Id"},
		AllowCredentials: false,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}))

	//Set a timeout value on the request context (ctx), that will signal through ctx.Done() that the request has timed out and further processing should be stopped
	r.Use(middleware.Timeout(60 * time.Second))

	r.Route("/v1", func(r chi.Router) {
		r.With(app.BasicAuthMiddleware()).Get("/health", app.healthCheckHandler)
		docsURL := fmt.Sprintf("%s/swagger/doc.json", app.config.addr)
		r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL(docsURL)))

		r.With(app.BasicAuthMiddleware()).Get("/debug/vars", expvar.Handler().ServeHTTP)

		// Public routes
		r.Route("/authentication", func(r chi.Router) {
			r.Post("/user", app.registerUserHandler)
			r.Post("/token", app.createTokenHandler)
			r.Post("/refresh", app.refreshTokenHandler)
		})

		// Route that does NOT require authentication
		r.Put("/users/activate/{token}", app.activateUserHandler)

		r.Route("/users", func(r chi.Router) {
			r.Use(app.AuthTokenMiddleware)
			r.Get("/me", app.getCurrentUserHandler)
			r.Post("/logout", app.logoutHandler)
		})

		r.Route("/products", func(r chi.Router) {
			r.Get("/", app.listProductsHandler)
			r.Get("/{productID}", app.getProductHandler)
		})

		// The cart is reachable both logged in (Bearer token) and as a
		// guest (X-Guest-Cart-Id header).
		r.Route("/cart", func(r chi.Router) {
			r.Use(app.CartOwnerMiddleware)
			r.Get("/", app.getCartHandler)
			r.Post("/items", app.addCartItemHandler)
			r.Patch("/items/{productID}", app.updateCartItemHandler)
			r.Delete("/items/{productID}", app.removeCartItemHandler)
			r.Post("/coupon", app.applyCouponHandler)
			r.Post("/coupon/preview", app.previewCouponHandler)
			r.Delete("/coupon", app.removeCouponHandler)
		})

		r.With(app.AuthTokenMiddleware).Post("/cart/merge", app.mergeCartHandler)

		r.Route("/addresses", func(r chi.Router) {
			r.Use(app.AuthTokenMiddleware)
			r.Get("/", app.listAddressesHandler)
			r.Post("/", app.createAddressHandler)
			r.Get("/{addressID}", app.getAddressHandler)
			r.Patch("/{addressID}", app.updateAddressHandler)
			r.Delete("/{addressID}", app.deleteAddressHandler)
		})

		r.Route("/checkout", func(r chi.Router) {
			r.Use(app.AuthTokenMiddleware)
			r.Post("/", app.checkoutHandler)
		})

		r.Route("/orders", func(r chi.Router) {
			r.Use(app.AuthTokenMiddleware)
			r.Get("/", app.listMyOrdersHandler)
			r.Get("/{orderID}", app.getMyOrderHandler)
		})

		// PSP-style confirmation callback, gated the same way as the
		// other machine endpoints.
		r.With(app.BasicAuthMiddleware()).Post("/payments/pix/callback", app.pixCallbackHandler)

		r.Route("/admin", func(r chi.Router) {
			r.Use(app.AuthTokenMiddleware)
			r.Use(app.CheckAdmin)

			r.Route("/products", func(r chi.Router) {
				r.Get("/", app.adminListProductsHandler)
				r.Post("/", app.adminCreateProductHandler)
				r.Get("/{productID}", app.adminGetProductHandler)
				r.Patch("/{productID}", app.adminUpdateProductHandler)
				r.Delete("/{productID}", app.adminDeleteProductHandler)
				r.Post("/{productID}/image", app.adminUploadProductImageHandler)
			})

			r.Route("/coupons", func(r chi.Router) {
				r.Get("/", app.adminListCouponsHandler)
				r.Post("/", app.adminCreateCouponHandler)
				r.Get("/{couponID}", app.adminGetCouponHandler)
				r.Patch("/{couponID}", app.adminUpdateCouponHandler)
				r.Delete("/{couponID}", app.adminDeleteCouponHandler)
			})

			r.Route("/orders", func(r chi.Router) {
				r.Get("/", app.adminListOrdersHandler)
				r.Get("/{orderID}", app.adminGetOrderHandler)
				r.Patch("/{orderID}/status", app.adminUpdateOrderStatusHandler)
			})
		})
	})
	return r
}

func (app *application) run(mux http.Handler) error {
	// Docs
	docs.SwaggerInfo.Version = version
	docs.SwaggerInfo.Host = app.config.apiURL
	docs.SwaggerInfo.BasePath = "/v1"

	srv := &http.Server{
		Addr:         app.config.addr,
		Handler:      mux,
		WriteTimeout: time.Second * 30,
		ReadTimeout:  time.Second * 10,
		IdleTimeout:  time.Minute,
	}

	// Implementing graceful shutdown
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

	err = <-shutdown
	if err != nil {
		return err
	}

	app.logger.Infow("server has stopped", "addr", app.config.addr, "env", app.config.env)

	return nil
}
