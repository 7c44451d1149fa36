// Package config loads runtime settings from the environment and an
// optional .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/abhisek/masteryforge/internal/engine"
	"github.com/abhisek/masteryforge/internal/observability"
	"github.com/abhisek/masteryforge/internal/session"
)

// Prefix is prepended to every environment variable name.
const Prefix = "MASTERYFORGE_"

// Config is the program's runtime configuration.
type Config struct {
	// DBPath is empty when the default location should be used.
	DBPath string

	LogMode  string // "dev" or "prod"
	LogLevel string
	LogFile  string

	HTTPAddr    string
	CORSOrigins []string

	Tracing observability.TracingConfig

	Engine        engine.Config
	SessionWindow time.Duration
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		LogMode:       "dev",
		LogLevel:      "info",
		HTTPAddr:      ":8080",
		CORSOrigins:   []string{"*"},
		Tracing:       observability.TracingConfig{ServiceName: "masteryforge"},
		Engine:        engine.DefaultConfig(),
		SessionWindow: session.DefaultWindow,
	}
}

// Load reads the given .env files (default ".env"), skipping missing ones,
// then builds a Config from the environment. Variables already set in the
// environment win over .env entries.
func Load(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
	}
	return FromEnv()
}

// FromEnv builds a Config from MASTERYFORGE_* variables.
func FromEnv() (Config, error) {
	cfg := Default()
	var errs []error

	str := func(name string, dst *string) {
		if v, ok := lookup(name); ok {
			*dst = v
		}
	}
	float := func(name string, dst *float64) {
		if v, ok := lookup(name); ok {
			f, err := strconv.ParseFloat(v, 64)
			if err != nil || f < 0 || f > 1 {
				errs = append(errs, fmt.Errorf("%s%s: want a number in [0,1], got %q", Prefix, name, v))
				return
			}
			*dst = f
		}
	}
	integer := func(name string, dst *int) {
		if v, ok := lookup(name); ok {
			n, err := strconv.Atoi(v)
			if err != nil || n < 0 {
				errs = append(errs, fmt.Errorf("%s%s: want a non-negative integer, got %q", Prefix, name, v))
				return
			}
			*dst = n
		}
	}
	duration := func(name string, dst *time.Duration) {
		if v, ok := lookup(name); ok {
			d, err := time.ParseDuration(v)
			if err != nil || d <= 0 {
				errs = append(errs, fmt.Errorf("%s%s: want a positive duration, got %q", Prefix, name, v))
				return
			}
			*dst = d
		}
	}
	boolean := func(name string, dst *bool) {
		if v, ok := lookup(name); ok {
			b, err := strconv.ParseBool(v)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s%s: want a boolean, got %q", Prefix, name, v))
				return
			}
			*dst = b
		}
	}

	str("DB", &cfg.DBPath)
	str("LOG_MODE", &cfg.LogMode)
	str("LOG_LEVEL", &cfg.LogLevel)
	str("LOG_FILE", &cfg.LogFile)
	str("HTTP_ADDR", &cfg.HTTPAddr)
	if v, ok := lookup("CORS_ORIGINS"); ok {
		cfg.CORSOrigins = splitList(v)
	}

	str("TRACING", &cfg.Tracing.Mode)
	str("OTLP_ENDPOINT", &cfg.Tracing.Endpoint)
	boolean("OTLP_INSECURE", &cfg.Tracing.Insecure)
	if v, ok := lookup("OTLP_HEADERS"); ok {
		cfg.Tracing.Headers = observability.ParseHeaders(v)
	}
	float("TRACE_SAMPLE_RATIO", &cfg.Tracing.SampleRatio)
	str("ENV", &cfg.Tracing.Environment)

	float("ELIGIBILITY_THRESHOLD", &cfg.Engine.EligibilityThreshold)
	float("FRUSTRATION_PIVOT", &cfg.Engine.FrustrationPivot)
	float("STUCK_MASTERY", &cfg.Engine.StuckMastery)
	integer("STUCK_ATTEMPTS", &cfg.Engine.StuckAttempts)
	integer("HISTORY_LIMIT", &cfg.Engine.HistoryLimit)
	duration("ADAPTER_BUDGET", &cfg.Engine.AdapterBudget)
	duration("SESSION_WINDOW", &cfg.SessionWindow)

	switch cfg.LogMode {
	case "dev", "prod":
	default:
		errs = append(errs, fmt.Errorf("%sLOG_MODE: want dev or prod, got %q", Prefix, cfg.LogMode))
	}
	switch strings.ToLower(cfg.Tracing.Mode) {
	case observability.ModeOff, observability.ModeStdout, observability.ModeOTLP:
	default:
		errs = append(errs, fmt.Errorf("%sTRACING: want stdout or otlp, got %q", Prefix, cfg.Tracing.Mode))
	}

	if err := errors.Join(errs...); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// IsSet reports whether Prefix+name is set to a non-blank value.
func IsSet(name string) bool {
	_, ok := lookup(name)
	return ok
}

func lookup(name string) (string, bool) {
	v, ok := os.LookupEnv(Prefix + name)
	v = strings.TrimSpace(v)
	return v, ok && v != ""
}

func splitList(v string) []string {
	var out []string
	for _, p := range strings.Split(v, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
