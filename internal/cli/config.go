package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
)

// Environment variables read by ParseConfig.
const (
	envLogLevel  = "GHGCALC_LOG_LEVEL"
	envOutput    = "GHGCALC_OUTPUT"
	envPrecision = "GHGCALC_PRECISION"
)

const (
	defaultPrecision = 4
	maxPrecision     = 12
)

// OutputFormat selects how commands render results.
type OutputFormat string

const (
	OutputText OutputFormat = "text"
	OutputJSON OutputFormat = "json"
)

func parseOutput(s string) (OutputFormat, error) {
	switch OutputFormat(strings.ToLower(strings.TrimSpace(s))) {
	case OutputText:
		return OutputText, nil
	case OutputJSON:
		return OutputJSON, nil
	default:
		return "", fmt.Errorf("invalid output format %q: must be %q or %q", s, OutputText, OutputJSON)
	}
}

// Config holds settings taken from the environment. Command-line flags
// override these values.
type Config struct {
	LogLevel  string
	Output    OutputFormat
	Precision int32
}

// DefaultConfig returns the settings used when nothing is configured.
func DefaultConfig() Config {
	return Config{
		LogLevel:  zerolog.InfoLevel.String(),
		Output:    OutputText,
		Precision: defaultPrecision,
	}
}

// ParseConfig reads GHGCALC_* environment variables. Invalid values are
// logged as warnings and replaced by their defaults.
func ParseConfig(logger zerolog.Logger) Config {
	cfg := DefaultConfig()

	if level := os.Getenv(envLogLevel); level != "" {
		if _, err := zerolog.ParseLevel(strings.ToLower(level)); err == nil {
			cfg.LogLevel = strings.ToLower(level)
		} else {
			logger.Warn().Str("env_var", envLogLevel).Str("value", level).Msg("invalid log level, using info")
		}
	}

	if out := os.Getenv(envOutput); out != "" {
		if format, err := parseOutput(out); err == nil {
			cfg.Output = format
		} else {
			logger.Warn().Str("env_var", envOutput).Str("value", out).Msg("invalid output format, using text")
		}
	}

	if p := os.Getenv(envPrecision); p != "" {
		if parsed, err := strconv.Atoi(p); err == nil && parsed >= 0 && parsed <= maxPrecision {
			cfg.Precision = int32(parsed)
		} else {
			logger.Warn().Str("env_var", envPrecision).Str("value", p).Msg("invalid precision, using default")
		}
	}

	logger.Debug().
		Str("log_level", cfg.LogLevel).
		Str("output", string(cfg.Output)).
		Int32("precision", cfg.Precision).
		Msg("configuration applied")

	return cfg
}
