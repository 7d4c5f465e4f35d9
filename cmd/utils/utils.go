package utils

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/stellar/go-stellar-sdk/support/config"
	"github.com/stellar/go-stellar-sdk/support/log"

	"github.com/stellar/static-responder/internal/apptracker"
	"github.com/stellar/static-responder/internal/apptracker/dryrun"
	"github.com/stellar/static-responder/internal/apptracker/sentry"
)

const sentryFlushFreqSeconds = 5

func DefaultPersistentPreRunE(cfgOpts config.ConfigOptions) func(_ *cobra.Command, _ []string) error {
	return func(_ *cobra.Command, _ []string) error {
		if err := cfgOpts.RequireE(); err != nil {
			return fmt.Errorf("requiring values of config options: %w", err)
		}
		if err := cfgOpts.SetValues(); err != nil {
			return fmt.Errorf("setting values of config options: %w", err)
		}
		return nil
	}
}

// AppTrackerResolver returns a sentry tracker when a DSN is configured and a dry-run tracker writing to out otherwise.
func AppTrackerResolver(dsn, environment string, out io.Writer) (apptracker.AppTracker, error) {
	if dsn == "" {
		log.Debug("No tracker DSN configured, using the dry-run app tracker")
		return &dryrun.DryRunTracker{Out: out}, nil
	}

	tracker, err := sentry.NewSentryTracker(dsn, environment, sentryFlushFreqSeconds)
	if err != nil {
		return nil, fmt.Errorf("initializing sentry tracker: %w", err)
	}
	return tracker, nil
}
