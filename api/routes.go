package api

import (
	"context"
	"errors"
	"net/http"
	"path"
	"reflect"
	"strings"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humamux"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/fundr-dashboard/internal/handlers/v1/appstate"
	"github.com/carson-networks/fundr-dashboard/internal/handlers/v1/dashboard"
	"github.com/carson-networks/fundr-dashboard/internal/handlers/v1/status"
	"github.com/carson-networks/fundr-dashboard/internal/handlers/v1/transaction"
	"github.com/carson-networks/fundr-dashboard/internal/logging"
	"github.com/carson-networks/fundr-dashboard/internal/operator"
	"github.com/carson-networks/fundr-dashboard/internal/service"
	"github.com/carson-networks/fundr-dashboard/internal/view"
)

const schemaPrefix = "#/components/schemas/"

// qualifiedSchemaNamer prefixes schema names with their package so API models
// and the service models embedded in state snapshots do not collide, e.g.
// DashboardRevenuePoint and ServiceRevenuePoint.
func qualifiedSchemaNamer(t reflect.Type, hint string) string {
	name := huma.DefaultSchemaNamer(t, hint)

	base := t
	for base.Kind() == reflect.Pointer || base.Kind() == reflect.Slice || base.Kind() == reflect.Array || base.Kind() == reflect.Map {
		base = base.Elem()
	}
	if base.Name() == "" || base.PkgPath() == "" {
		return name
	}

	pkg := path.Base(base.PkgPath())
	return strings.ToUpper(pkg[:1]) + pkg[1:] + name
}

type Rest struct {
	Logger     *logrus.Logger
	Port       string
	MockAPI    *service.MockAPI
	Operator   *operator.OperatorDelegator
	CopyButton *view.CopyButton
	Gatherer   prometheus.Gatherer
}

// Router builds the gorilla router with the plain handlers and the huma API
// mounted on it.
func (r *Rest) Router() *mux.Router {
	router := mux.NewRouter()

	statusHandler := status.NewHandler()
	router.HandleFunc("/status", logging.LoggingWrapper("Status", r.Logger, statusHandler.Handler)).
		Methods(http.MethodGet, http.MethodHead)

	pageHandler := dashboard.NewPageHandler(r.Operator.Store(), r.CopyButton)
	router.HandleFunc("/", logging.LoggingWrapper("Dashboard", r.Logger, pageHandler.Handler)).
		Methods(http.MethodGet)

	gatherer := r.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	router.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})).
		Methods(http.MethodGet)

	humaConfig := huma.DefaultConfig("Fundr Dashboard API", "1.0.0")
	humaConfig.Components.Schemas = huma.NewMapRegistry(schemaPrefix, qualifiedSchemaNamer)
	humaAPI := humamux.New(router, humaConfig)
	humaAPI.UseMiddleware(logging.HumaMiddleware(r.Logger))

	dashboard.NewGetStatsHandler(r.MockAPI).Register(humaAPI)
	dashboard.NewCopyAccountHandler(r.CopyButton, r.Operator.Store()).Register(humaAPI)
	transaction.NewListTransactionsHandler(r.MockAPI).Register(humaAPI)
	transaction.NewFilterTransactionsHandler(r.MockAPI).Register(humaAPI)
	appstate.NewGetStateHandler(r.Operator).Register(humaAPI)
	appstate.NewDispatchHandler(r.Operator).Register(humaAPI)

	return router
}

// Serve listens until ctx is done, then shuts the server down.
func (r *Rest) Serve(ctx context.Context) error {
	server := http.Server{
		Addr:              ":" + r.Port,
		Handler:           r.Router(),
		ReadTimeout:       time.Duration(30) * time.Second,
		WriteTimeout:      time.Duration(30) * time.Second,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		r.Logger.WithField("port", r.Port).Info("HttpServer.Serve.listening")
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
			return err
		}
		return nil
	case <-ctx.Done():
	}

	r.Logger.Info("HttpServer.Serve.shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		r.Logger.WithError(err).Error("HttpServer.Serve.shutdown error")
		return err
	}
	return nil
}
