package dryrun

import (
	"fmt"
	"io"
	"os"
	"time"
)

// DryRunTracker prints events instead of shipping them. Used when no tracker DSN is configured.
type DryRunTracker struct {
	Out io.Writer
}

func (d *DryRunTracker) out() io.Writer {
	if d.Out == nil {
		return os.Stdout
	}
	return d.Out
}

func (d *DryRunTracker) CaptureMessage(message string) {
	fmt.Fprintln(d.out(), message)
}

func (d *DryRunTracker) CaptureException(exception error) {
	fmt.Fprintln(d.out(), exception)
}

func (d *DryRunTracker) Flush(_ time.Duration) bool {
	return true
}
