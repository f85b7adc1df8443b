// Package obscfg resolves the process-wide domain.ServerConfig from CLI
// flags and environment variables (§6.4). Flag values, when set, always
// take precedence over the matching environment variable.
package obscfg

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/michaelprinc/mcp-prompt-broker/internal/domain"
)

// Flags is the subset of CLI flag values the resolver needs; the cli
// package fills in whichever ones the user actually passed.
type Flags struct {
	ProfilesDir string
	LogLevel    string
	Watch       bool

	ProfilesDirSet bool
	LogLevelSet    bool
	WatchSet       bool
}

// Resolve builds a domain.ServerConfig by layering flags over environment
// variables over compiled-in defaults.
func Resolve(flags Flags) (domain.ServerConfig, error) {
	cfg := domain.ServerConfig{
		ProfilesDir:   "./profiles",
		LogLevel:      "info",
		Watch:         false,
		ShutdownGrace: 2 * time.Second,
		Router:        domain.DefaultRouterConfig(),
	}

	if v, ok := os.LookupEnv("MCP_PROFILES_DIR"); ok {
		cfg.ProfilesDir = v
	}
	if flags.ProfilesDirSet {
		cfg.ProfilesDir = flags.ProfilesDir
	}

	if v, ok := os.LookupEnv("MCP_LOG_LEVEL"); ok {
		cfg.LogLevel = v
	}
	if flags.LogLevelSet {
		cfg.LogLevel = flags.LogLevel
	}

	if v, ok := os.LookupEnv("MCP_PROFILES_WATCH"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return domain.ServerConfig{}, fmt.Errorf("parsing MCP_PROFILES_WATCH=%q: %w", v, err)
		}
		cfg.Watch = b
	}
	if flags.WatchSet {
		cfg.Watch = flags.Watch
	}

	if v, ok := os.LookupEnv("MCP_SHUTDOWN_GRACE"); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return domain.ServerConfig{}, fmt.Errorf("parsing MCP_SHUTDOWN_GRACE=%q: %w", v, err)
		}
		cfg.ShutdownGrace = d
	}

	router, err := resolveRouterConfig()
	if err != nil {
		return domain.ServerConfig{}, err
	}
	cfg.Router = router

	return cfg, nil
}

func resolveRouterConfig() (domain.RouterConfig, error) {
	cfg := domain.DefaultRouterConfig()

	if v, ok := os.LookupEnv("MCP_COMPLEXITY_ROUTING"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return domain.RouterConfig{}, fmt.Errorf("parsing MCP_COMPLEXITY_ROUTING=%q: %w", v, err)
		}
		cfg.ComplexityRouting = b
	}

	if err := intEnv("MCP_COMPLEXITY_WORD_HIGH", &cfg.ComplexityWordHigh); err != nil {
		return domain.RouterConfig{}, err
	}
	if err := intEnv("MCP_COMPLEXITY_WORD_MEDIUM", &cfg.ComplexityWordMedium); err != nil {
		return domain.RouterConfig{}, err
	}
	if err := intEnv("MCP_COMPLEXITY_PREFER_THRESHOLD", &cfg.ComplexityPreferThreshold); err != nil {
		return domain.RouterConfig{}, err
	}

	return cfg, nil
}

func intEnv(key string, dst *int) error {
	v, ok := os.LookupEnv(key)
	if !ok {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("parsing %s=%q: %w", key, v, err)
	}
	*dst = n
	return nil
}
