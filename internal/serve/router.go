package serve

import (
	"net/http"
	"time"

	"github.com/go-chi/chi"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	supporthttp "github.com/stellar/go-stellar-sdk/support/http"
	"github.com/stellar/go-stellar-sdk/support/log"

	"github.com/stellar/static-responder/internal/apptracker"
	"github.com/stellar/static-responder/internal/metrics"
	"github.com/stellar/static-responder/internal/page"
	"github.com/stellar/static-responder/internal/serve/httperror"
	"github.com/stellar/static-responder/internal/serve/httphandler"
	"github.com/stellar/static-responder/internal/serve/middleware"
)

type HandlerDependencies struct {
	AppTracker     apptracker.AppTracker
	MetricsService metrics.MetricsService

	// Admin only
	PublicAddr string
	StartedAt  time.Time
}

// NewHandler creates the public handler. Every method and path gets the static page.
func NewHandler(deps HandlerDependencies) http.Handler {
	mux := supporthttp.NewMux(log.DefaultLogger)
	setupMiddleware(mux, deps)

	pageHandler := page.Handler{}
	mux.NotFound(pageHandler.ServeHTTP)
	// chi sends methods it doesn't know about here.
	mux.MethodNotAllowed(pageHandler.ServeHTTP)
	mux.Handle("/*", pageHandler)

	return mux
}

// NewAdminHandler creates the handler for the admin listener.
func NewAdminHandler(deps HandlerDependencies) http.Handler {
	mux := chi.NewMux()
	mux.NotFound(httperror.ErrorHandler{Error: httperror.NotFound}.ServeHTTP)
	mux.MethodNotAllowed(httperror.ErrorHandler{Error: httperror.MethodNotAllowed}.ServeHTTP)
	mux.Use(middleware.RecoverHandler(deps.AppTracker, deps.MetricsService))

	mux.Get("/health", httphandler.HealthHandler{
		PublicAddr: deps.PublicAddr,
		StartedAt:  deps.StartedAt,
	}.GetHealth)

	mux.Get("/metrics", promhttp.HandlerFor(
		deps.MetricsService.GetRegistry(),
		promhttp.HandlerOpts{},
	).ServeHTTP)

	return mux
}

func setupMiddleware(mux *chi.Mux, deps HandlerDependencies) {
	mux.Use(middleware.MetricsMiddleware(deps.MetricsService))
	mux.Use(middleware.RecoverHandler(deps.AppTracker, deps.MetricsService))
}
