package middleware

import (
	"fmt"
	"net/http"

	"github.com/stellar/go-stellar-sdk/support/log"

	"github.com/stellar/static-responder/internal/apptracker"
	"github.com/stellar/static-responder/internal/metrics"
	"github.com/stellar/static-responder/internal/serve/httperror"
)

// RecoverHandler turns a handler panic into a 500 response, logging it and reporting it to the app tracker.
func RecoverHandler(appTracker apptracker.AppTracker, metricsService metrics.MetricsService) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
			defer func() {
				r := recover()
				if r == nil {
					return
				}
				// net/http uses this sentinel to abort a response on purpose.
				if r == http.ErrAbortHandler {
					panic(r)
				}

				err, ok := r.(error)
				if !ok {
					err = fmt.Errorf("panic: %v", r)
				} else {
					err = fmt.Errorf("panic: %w", err)
				}

				ctx := req.Context()
				log.Ctx(ctx).Errorf("recovered from %s", err.Error())
				if metricsService != nil {
					metricsService.IncPanicsRecovered()
				}
				httperror.InternalServerError(ctx, "", err, nil, appTracker).Render(rw)
			}()

			next.ServeHTTP(rw, req)
		})
	}
}
