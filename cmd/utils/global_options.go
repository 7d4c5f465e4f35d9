package utils

import (
	"go/types"

	"github.com/sirupsen/logrus"
	"github.com/stellar/go-stellar-sdk/support/config"
)

func LogLevelOption(configKey *logrus.Level) *config.ConfigOption {
	return &config.ConfigOption{
		Name:           "log-level",
		Usage:          `The log level used in this project. Options: "TRACE", "DEBUG", "INFO", "WARN", "ERROR", "FATAL", or "PANIC".`,
		OptType:        types.String,
		FlagDefault:    "INFO",
		ConfigKey:      configKey,
		CustomSetValue: SetConfigOptionLogLevel,
		Required:       false,
	}
}

func HostOption(configKey *string, defaultHost string) *config.ConfigOption {
	return &config.ConfigOption{
		Name:           "host",
		EnvVar:         "LISTEN_HOST",
		Usage:          "Host or IP address to listen on.",
		OptType:        types.String,
		ConfigKey:      configKey,
		CustomSetValue: SetConfigOptionHost,
		FlagDefault:    defaultHost,
		Required:       false,
	}
}

func PortOption(configKey *int, defaultPort int) *config.ConfigOption {
	return &config.ConfigOption{
		Name:        "port",
		EnvVar:      "LISTEN_PORT",
		Usage:       "Port to listen and serve the page on",
		OptType:     types.Int,
		ConfigKey:   configKey,
		FlagDefault: defaultPort,
		Required:    false,
	}
}

func AdminPortOption(configKey *int) *config.ConfigOption {
	return &config.ConfigOption{
		Name:        "admin-port",
		Usage:       "Port to serve /health and /metrics on. 0 disables the admin listener.",
		OptType:     types.Int,
		ConfigKey:   configKey,
		FlagDefault: 0,
		Required:    false,
	}
}

func ReadHeaderTimeoutOption(configKey *int, defaultSeconds int) *config.ConfigOption {
	return &config.ConfigOption{
		Name:        "read-header-timeout-seconds",
		Usage:       "How long a client may take to send the request headers, in seconds. 0 disables the timeout.",
		OptType:     types.Int,
		ConfigKey:   configKey,
		FlagDefault: defaultSeconds,
		Required:    false,
	}
}

func TrackerDSNOption(configKey *string) *config.ConfigOption {
	return &config.ConfigOption{
		Name:      "tracker-dsn",
		Usage:     "The Sentry DSN. If empty, events are printed to stdout instead.",
		OptType:   types.String,
		ConfigKey: configKey,
		Required:  false,
	}
}

func EnvironmentOption(configKey *string) *config.ConfigOption {
	return &config.ConfigOption{
		Name:        "environment",
		Usage:       "The deployment environment reported to the app tracker.",
		OptType:     types.String,
		ConfigKey:   configKey,
		FlagDefault: "development",
		Required:    false,
	}
}
