package sentry

import (
	"fmt"
	"time"

	"github.com/getsentry/sentry-go"

	"github.com/stellar/static-responder/internal/apptracker"
)

// We need these variables to be able to mock sentry.CaptureMessage and sentry.CaptureException in tests since
// package level functions cannot be mocked
var (
	captureMessageFunc   = sentry.CaptureMessage
	captureExceptionFunc = sentry.CaptureException
	InitFunc             = sentry.Init
	FlushFunc            = sentry.Flush
)

type sentryTracker struct {
	FlushFreq int64
}

var _ apptracker.AppTracker = (*sentryTracker)(nil)

func (s *sentryTracker) CaptureMessage(message string) {
	captureMessageFunc(message)
}

func (s *sentryTracker) CaptureException(exception error) {
	captureExceptionFunc(exception)
}

// Flush waits for buffered events. A zero timeout falls back to the configured flush frequency.
func (s *sentryTracker) Flush(timeout time.Duration) bool {
	if timeout <= 0 {
		timeout = time.Duration(s.FlushFreq) * time.Second
	}
	return FlushFunc(timeout)
}

func NewSentryTracker(dsn string, env string, flushFreq int) (*sentryTracker, error) {
	if err := InitFunc(sentry.ClientOptions{
		Dsn:         dsn,
		Environment: env,
	}); err != nil {
		return nil, fmt.Errorf("unable to initialize sentry: %w", err)
	}
	return &sentryTracker{FlushFreq: int64(flushFreq)}, nil
}
