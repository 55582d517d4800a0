package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/budget-reconciler/internal/handlers/v1/budget"
	"github.com/carson-networks/budget-reconciler/internal/handlers/v1/period"
	"github.com/carson-networks/budget-reconciler/internal/handlers/v1/status"
	"github.com/carson-networks/budget-reconciler/internal/handlers/v1/transaction"
	"github.com/carson-networks/budget-reconciler/internal/handlers/v1/user"
	"github.com/carson-networks/budget-reconciler/internal/logging"
	"github.com/carson-networks/budget-reconciler/internal/operator"
	"github.com/carson-networks/budget-reconciler/internal/service"
	"github.com/carson-networks/budget-reconciler/internal/storage"
)

type Rest struct {
	Logger *logrus.Logger
	Port   string

	server *http.Server
}

func NewRest(log *logrus.Logger, port string, store *storage.Storage, svc *service.Service, op *operator.OperatorDelegator) *Rest {
	return &Rest{
		Logger: log,
		Port:   port,
		server: &http.Server{
			Addr:              ":" + port,
			Handler:           NewRouter(log, store, svc, op),
			ReadTimeout:       time.Duration(30) * time.Second,
			WriteTimeout:      time.Duration(30) * time.Second,
			IdleTimeout:       time.Duration(10) * time.Second,
			ReadHeaderTimeout: time.Duration(10) * time.Second,
		},
	}
}

// NewRouter mounts /status and every v1 operation on a chi router.
func NewRouter(log *logrus.Logger, store *storage.Storage, svc *service.Service, op *operator.OperatorDelegator) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"http://localhost:5173", "http://localhost:3000"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	statusHandler := status.NewHandler(store)
	r.HandleFunc("/status", logging.LoggingWrapper("Status", log, statusHandler.Handler))

	api := humachi.New(r, huma.DefaultConfig("Budget Reconciler", "1.0.0"))
	api.UseMiddleware(logging.HumaMiddleware(log))

	period.NewResolvePeriodHandler(op).Register(api)

	transaction.NewCreateTransactionHandler(op).Register(api)
	transaction.NewBypassTransactionHandler(op).Register(api)
	transaction.NewRefundTransactionHandler(op).Register(api)
	transaction.NewDeleteTransactionHandler(op).Register(api)
	transaction.NewDeleteAllTransactionsHandler(op).Register(api)
	transaction.NewListTransactionsHandler(svc.Transaction).Register(api)

	budget.NewSnapshotHandler(svc.Budget).Register(api)
	budget.NewSaveConfigHandler(op).Register(api)
	budget.NewDeleteConfigHandler(op).Register(api)
	budget.NewDeactivatePortfolioHandler(op).Register(api)
	budget.NewDeleteAllPortfoliosHandler(op).Register(api)

	user.NewWipeHandler(op).Register(api)

	return r
}

// Serve blocks until the server stops. A Shutdown call makes it return.
func (r *Rest) Serve() {
	r.Logger.WithField("port", r.Port).Info("HttpServer.Serve.listening")
	err := r.server.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
	}
	r.Logger.Info("HttpServer.Serve.shutting down")
}

// Shutdown drains in-flight requests.
func (r *Rest) Shutdown(ctx context.Context) error {
	return r.server.Shutdown(ctx)
}
