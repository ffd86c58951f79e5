package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/autotrack-server/internal/extraction"
	"github.com/carson-networks/autotrack-server/internal/handlers/v1/extract"
	"github.com/carson-networks/autotrack-server/internal/handlers/v1/status"
	"github.com/carson-networks/autotrack-server/internal/handlers/v1/summary"
	"github.com/carson-networks/autotrack-server/internal/handlers/v1/transaction"
	"github.com/carson-networks/autotrack-server/internal/logging"
	"github.com/carson-networks/autotrack-server/internal/service"
)

const (
	apiTitle        = "AutoTrack API"
	apiVersion      = "1.0.0"
	shutdownTimeout = 10 * time.Second
)

type Rest struct {
	Logger         *logrus.Logger
	Address        string
	AllowedOrigins []string
	Service        *service.Service
	Extractor      *extraction.Extractor
}

// Handler builds the router: CORS first, then the plain status routes and
// the huma operations under /api.
func (r *Rest) Handler() http.Handler {
	router := chi.NewRouter()
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   r.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch, http.MethodOptions, http.MethodHead},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}))

	statusHandler := status.NewHandler()
	router.Get("/", logging.LoggingWrapper("Root", r.Logger, statusHandler.Root))
	router.Get("/health", logging.LoggingWrapper("Health", r.Logger, statusHandler.Health))

	api := humachi.New(router, huma.DefaultConfig(apiTitle, apiVersion))
	api.UseMiddleware(logging.Middleware(r.Logger))

	extract.NewHandler(r.Extractor).Register(api)
	transaction.NewListTransactionsHandler(r.Service.Transaction).Register(api)
	transaction.NewCreateTransactionHandler(r.Service.Transaction).Register(api)
	transaction.NewUpdateTransactionHandler(r.Service.Transaction).Register(api)
	transaction.NewDeleteTransactionHandler(r.Service.Transaction).Register(api)
	summary.NewHandler(r.Service.Summary).Register(api)

	return router
}

// Serve listens until ctx is cancelled and then drains in-flight requests.
func (r *Rest) Serve(ctx context.Context) error {
	server := http.Server{
		Addr:              r.Address,
		Handler:           r.Handler(),
		ReadTimeout:       time.Duration(30) * time.Second,
		WriteTimeout:      time.Duration(30) * time.Second,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}

	listenErr := make(chan error, 1)
	go func() {
		r.Logger.WithField("address", r.Address).Info("HttpServer.Serve.listening")
		listenErr <- server.ListenAndServe()
	}()

	select {
	case err := <-listenErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
			return err
		}
		return nil
	case <-ctx.Done():
	}

	r.Logger.Info("HttpServer.Serve.shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		r.Logger.WithError(err).Error("HttpServer.Serve.shutdown error")
		return err
	}
	return nil
}
