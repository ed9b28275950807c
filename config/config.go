package config

import (
	"github.com/zerverless/funcd/internal/function"
	"github.com/zerverless/funcd/util/conf"
)

type Config struct {
	// LogLevel is the log level for the application
	LogLevel string `conf:"log_level"`

	// LogFormat is the log format for the application
	LogFormat string `conf:"log_format"`

	// Function is the canned function configuration
	Function function.Config `conf:"function"`
}

// DefaultConfig holds the default values for the application config.
var DefaultConfig = conf.DefaultConfig{
	"log_level":             "info",
	"log_format":            "production",
	"function.route_prefix": "",
	"function.service_name": "funcd",
}
