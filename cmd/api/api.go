package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Beka01247/cafe/docs"
	"github.com/Beka01247/cafe/internal/queue"
	"github.com/Beka01247/cafe/internal/ratelimiter"
	"github.com/Beka01247/cafe/internal/service"
	"github.com/Beka01247/cafe/internal/worker"
	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"
)

// storage is the lifecycle surface shared by the mongo and memory stores.
type storage interface {
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

type application struct {
	config          config
	logger          *zap.SugaredLogger
	rateLimiter     ratelimiter.Limiter
	storage         storage
	broker          queue.Broker
	menuService     *service.MenuService
	cartService     *service.CartService
	checkoutService *service.CheckoutService
	orderService    *service.OrderService
	authService     *service.AuthService
	importService   *service.ImportService
	orderWorker     *worker.OrderEventsWorker
	importWorker    *worker.MenuImportWorker
}

type config struct {
	addr        string
	env         string
	apiURL      string
	rateLimiter ratelimiter.Config
	storage     string
	broker      string
	mongo       mongoConfig
	rabbitMQ    rabbitMQConfig
	menu        menuConfig
	webhook     webhookConfig
	cart        cartConfig
	admin       adminConfig
	googleCreds string
}

type mongoConfig struct {
	URI      string
	Database string
	Timeout  time.Duration
}

type rabbitMQConfig struct {
	URL           string
	MaxRetries    int
	RetryDelay    time.Duration
	PrefetchCount int
}

type menuConfig struct {
	source           string
	file             string
	airtableURL      string
	airtableBaseID   string
	airtableTable    string
	airtableToken    string
	airtableCacheTTL time.Duration
	defaultStock     int
}

type webhookConfig struct {
	URL       string
	Timeout   time.Duration
	LineItems bool
}

type cartConfig struct {
	mergePolicy string
	ttl         time.Duration
}

type adminConfig struct {
	username     string
	passwordHash string
	password     string
	sessionTTL   time.Duration
}

func (app *application) mount() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(app.RateLimiterMiddleware)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", app.healthCheckHandler)

		r.Route("/menu", func(r chi.Router) {
			r.Get("/", app.listMenuHandler)
			r.Get("/categories", app.listCategoriesHandler)
			r.Get("/popular", app.popularMenuHandler)
			r.Get("/category/{category}", app.menuByCategoryHandler)
			r.Get("/{item_id}", app.getMenuItemHandler)

			r.Group(func(r chi.Router) {
				r.Use(app.AdminAuthMiddleware)

				r.Post("/", app.createMenuItemHandler)
				r.Put("/{item_id}", app.updateMenuItemHandler)
				r.Delete("/{item_id}", app.deleteMenuItemHandler)

				r.Post("/import", app.createImportTaskHandler)
				r.Get("/import/{task_id}", app.getImportTaskHandler)
			})
		})

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", app.getCartHandler)
			r.Delete("/", app.clearCartHandler)
			r.Post("/items", app.addCartItemHandler)
			r.Patch("/items/{line_id}", app.updateCartItemHandler)
			r.Delete("/items/{line_id}", app.removeCartItemHandler)
			r.Put("/customer", app.setCustomerHandler)
			r.Post("/checkout", app.checkoutHandler)
		})

		r.Post("/admin/login", app.loginHandler)

		r.Group(func(r chi.Router) {
			r.Use(app.AdminAuthMiddleware)

			r.Post("/admin/logout", app.logoutHandler)
			r.Get("/admin/stats", app.statsHandler)

			r.Route("/orders", func(r chi.Router) {
				r.Get("/", app.listOrdersHandler)
				r.Get("/{order_id}", app.getOrderHandler)
				r.Put("/{order_id}/status", app.updateOrderStatusHandler)
				r.Get("/{order_id}/history", app.orderHistoryHandler)
				r.Delete("/{order_id}", app.deleteOrderHandler)
			})
		})

		docsURL := fmt.Sprintf("%s/swagger/doc.json", app.config.addr)
		r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL(docsURL)))
	})

	return r
}

func (app *application) startWorkers() error {
	if app.orderWorker != nil {
		if err := app.orderWorker.Start(); err != nil {
			return fmt.Errorf("failed to start order events worker: %w", err)
		}
	}
	if app.importWorker != nil {
		if err := app.importWorker.Start(); err != nil {
			return fmt.Errorf("failed to start menu import worker: %w", err)
		}
	}
	return nil
}

func (app *application) stopWorkers() {
	if app.orderWorker != nil {
		app.orderWorker.Stop()
	}
	if app.importWorker != nil {
		app.importWorker.Stop()
	}
}

func (app *application) run(mux http.Handler) error {
	// docs
	docs.SwaggerInfo.Title = "Cafe Ordering API"
	docs.SwaggerInfo.Description = "Menu, cart, checkout and order management for the cafe"
	docs.SwaggerInfo.Version = version
	docs.SwaggerInfo.Host = app.config.apiURL
	docs.SwaggerInfo.BasePath = "/api/v1"

	if err := app.startWorkers(); err != nil {
		return err
	}

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

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		app.logger.Infow("signal caught", "signal", s.String())

		app.stopWorkers()

		if app.broker != nil {
			if err := app.broker.Close(); err != nil {
				app.logger.Errorw("error closing broker", "driver", app.config.broker, "error", err)
			} else {
				app.logger.Infow("broker closed gracefully", "driver", app.config.broker)
			}
		}

		if app.storage != nil {
			if err := app.storage.Close(ctx); err != nil {
				app.logger.Errorw("error closing storage", "driver", app.config.storage, "error", err)
			} else {
				app.logger.Infow("storage closed gracefully", "driver", app.config.storage)
			}
		}

		shutdown <- srv.Shutdown(ctx)
	}()

	app.logger.Infow("server have started", "addr", app.config.addr, "env", app.config.env)

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
