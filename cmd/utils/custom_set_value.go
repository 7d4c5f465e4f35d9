package utils

import (
	"fmt"
	"net"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/stellar/go-stellar-sdk/support/config"
	"github.com/stellar/go-stellar-sdk/support/log"
)

func SetConfigOptionLogLevel(co *config.ConfigOption) error {
	logLevelStr := viper.GetString(co.Name)
	logLevel, err := logrus.ParseLevel(logLevelStr)
	if err != nil {
		return fmt.Errorf("couldn't parse log level in %s: %w", co.Name, err)
	}

	key, ok := co.ConfigKey.(*logrus.Level)
	if !ok {
		return fmt.Errorf("%s configKey has an invalid type %T", co.Name, co.ConfigKey)
	}
	*key = logLevel

	log.DefaultLogger.SetLevel(logLevel)
	return nil
}

// SetConfigOptionHost accepts a bare host or IP. Brackets around IPv6 literals are stripped.
func SetConfigOptionHost(co *config.ConfigOption) error {
	host := strings.TrimSpace(viper.GetString(co.Name))
	host = strings.TrimSuffix(strings.TrimPrefix(host, "["), "]")
	if host == "" {
		return fmt.Errorf("host in %s cannot be empty", co.Name)
	}
	if _, _, err := net.SplitHostPort(host); err == nil {
		return fmt.Errorf("host in %s must not include a port, use the port option instead: %q", co.Name, host)
	}

	key, ok := co.ConfigKey.(*string)
	if !ok {
		return fmt.Errorf("the expected type for the config key in %s is a string, but a %T was provided instead", co.Name, co.ConfigKey)
	}
	*key = host

	return nil
}
