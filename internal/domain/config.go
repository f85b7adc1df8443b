package domain

import "time"

// RouterConfig holds the environment-tunable thresholds of §4.4/§4.5. It is
// read once at startup into an immutable value; there is no runtime
// reconfiguration API.
type RouterConfig struct {
	ComplexityRouting        bool
	ComplexityWordHigh       int
	ComplexityWordMedium     int
	ComplexityPreferThreshold int
}

// DefaultRouterConfig returns the §6.4 documented defaults.
func DefaultRouterConfig() RouterConfig {
	return RouterConfig{
		ComplexityRouting:         true,
		ComplexityWordHigh:        80,
		ComplexityWordMedium:      40,
		ComplexityPreferThreshold: 60,
	}
}

// ServerConfig is the process-wide configuration resolved from CLI flags and
// environment variables at startup (§6.3/§6.4).
type ServerConfig struct {
	ProfilesDir    string
	LogLevel       string
	Watch          bool
	ShutdownGrace  time.Duration
	Router         RouterConfig
}
