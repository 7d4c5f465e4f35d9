package apptracker

import "time"

type AppTracker interface {
	CaptureMessage(message string)
	CaptureException(exception error)
	// Flush blocks until queued events are delivered or the timeout passes.
	Flush(timeout time.Duration) bool
}
