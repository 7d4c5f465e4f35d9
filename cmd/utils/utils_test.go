package utils

import (
	"errors"
	"io"
	"testing"

	"github.com/getsentry/sentry-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stellar/static-responder/internal/apptracker/dryrun"
	sentrytracker "github.com/stellar/static-responder/internal/apptracker/sentry"
)

func TestAppTrackerResolver(t *testing.T) {
	t.Run("empty_dsn_uses_dry_run", func(t *testing.T) {
		tracker, err := AppTrackerResolver("", "test-env", io.Discard)
		require.NoError(t, err)
		assert.IsType(t, &dryrun.DryRunTracker{}, tracker)
	})

	t.Run("sentry_init_failure", func(t *testing.T) {
		originalInitFunc := sentrytracker.InitFunc
		t.Cleanup(func() { sentrytracker.InitFunc = originalInitFunc })
		sentrytracker.InitFunc = func(sentry.ClientOptions) error {
			return errors.New("init error")
		}

		tracker, err := AppTrackerResolver("https://public@sentry.example.com/1", "test-env", io.Discard)
		assert.EqualError(t, err, "initializing sentry tracker: unable to initialize sentry: init error")
		assert.Nil(t, tracker)
	})

	t.Run("sentry_dsn", func(t *testing.T) {
		var gotOptions sentry.ClientOptions
		originalInitFunc := sentrytracker.InitFunc
		t.Cleanup(func() { sentrytracker.InitFunc = originalInitFunc })
		sentrytracker.InitFunc = func(options sentry.ClientOptions) error {
			gotOptions = options
			return nil
		}

		tracker, err := AppTrackerResolver("https://public@sentry.example.com/1", "test-env", io.Discard)
		require.NoError(t, err)
		assert.NotNil(t, tracker)
		assert.Equal(t, "https://public@sentry.example.com/1", gotOptions.Dsn)
		assert.Equal(t, "test-env", gotOptions.Environment)
	})
}
