package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/stellar/go-stellar-sdk/support/config"
	"github.com/stellar/go-stellar-sdk/support/log"

	"github.com/stellar/static-responder/cmd/utils"
	"github.com/stellar/static-responder/internal/metrics"
	"github.com/stellar/static-responder/internal/serve"
)

type serveCmd struct{}

func (c *serveCmd) Command() *cobra.Command {
	cfg := serve.Configs{}

	var trackerDSN string
	var environment string
	var readHeaderTimeoutSeconds int
	cfgOpts := config.ConfigOptions{
		utils.LogLevelOption(&cfg.LogLevel),
		utils.HostOption(&cfg.Host, serve.DefaultHost),
		utils.PortOption(&cfg.Port, serve.DefaultPort),
		utils.AdminPortOption(&cfg.AdminPort),
		utils.ReadHeaderTimeoutOption(&readHeaderTimeoutSeconds, int(serve.DefaultReadHeaderTimeout/time.Second)),
		utils.TrackerDSNOption(&trackerDSN),
		utils.EnvironmentOption(&environment),
	}

	cmd := &cobra.Command{
		Use:          "serve",
		Short:         "Run the static responder",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := utils.DefaultPersistentPreRunE(cfgOpts)(cmd, args); err != nil {
				return err
			}

			appTracker, err := utils.AppTrackerResolver(trackerDSN, environment, cmd.OutOrStdout())
			if err != nil {
				return fmt.Errorf("initializing App Tracker: %w", err)
			}
			cfg.AppTracker = appTracker
			cfg.MetricsService = metrics.NewMetricsService()
			cfg.ReadHeaderTimeout = time.Duration(readHeaderTimeoutSeconds) * time.Second
			cfg.Stdout = cmd.OutOrStdout()

			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.Run(cmd, cfg)
		},
	}

	if err := cfgOpts.Init(cmd); err != nil {
		log.Fatalf("Error initializing a config option: %s", err.Error())
	}

	return cmd
}

func (c *serveCmd) Run(cmd *cobra.Command, cfg serve.Configs) error {
	err := serve.Serve(cmd.Context(), cfg)
	if err != nil {
		var bindErr *serve.BindError
		if errors.As(err, &bindErr) && cfg.AppTracker != nil {
			cfg.AppTracker.CaptureException(err)
			cfg.AppTracker.Flush(0)
		}
		return fmt.Errorf("running serve: %w", err)
	}
	return nil
}
