package ratelimit

import (
	"os"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

// EndpointConfig overrides the default rate for requests matching Path and Method.
type EndpointConfig struct {
	Path   string     // Endpoint path pattern (supports prefix matching)
	Method string     // HTTP method (GET, POST, etc.)
	Rate   rate.Limit // Requests per second; 0 means unlimited
	Burst  int        // Burst capacity (defaults to 1 if 0)
}

// Config holds rate limiting configuration.
type Config struct {
	Enabled         bool
	DefaultRate     rate.Limit
	DefaultBurst    int
	CleanupInterval time.Duration
	IdleTimeout     time.Duration
	Whitelist       map[string]bool
	Blacklist       map[string]bool
	EndpointConfigs []EndpointConfig
}

// LoadConfig builds a configuration with the given default rate and burst.
// RATE_LIMIT_ENABLED, RATE_LIMIT_WHITELIST and RATE_LIMIT_BLACKLIST adjust it
// from the environment. A non-positive perSecond disables limiting.
func LoadConfig(perSecond float64, burst int) *Config {
	enabled := getEnvBool("RATE_LIMIT_ENABLED", perSecond > 0)
	if !enabled || perSecond <= 0 {
		return &Config{Enabled: false}
	}
	if burst <= 0 {
		burst = int(perSecond)
	}

	return &Config{
		Enabled:         true,
		DefaultRate:     rate.Limit(perSecond),
		DefaultBurst:    max(burst, 1),
		CleanupInterval: getEnvDuration("RATE_LIMIT_CLEANUP_INTERVAL", 5*time.Minute),
		IdleTimeout:     time.Hour,
		Whitelist:       parseIPList(getEnvString("RATE_LIMIT_WHITELIST", "")),
		Blacklist:       parseIPList(getEnvString("RATE_LIMIT_BLACKLIST", "")),
		EndpointConfigs: DefaultEndpointConfigs(),
	}
}

// DefaultEndpointConfigs returns the default endpoint-specific configurations.
func DefaultEndpointConfigs() []EndpointConfig {
	perMinute := func(n int) rate.Limit { return rate.Every(time.Minute / time.Duration(n)) }

	return []EndpointConfig{
		// Model calls (strictest limits)
		{Path: "/resume/auto-parse", Method: "POST", Rate: perMinute(10), Burst: 3},
		{Path: "/chat", Method: "POST", Rate: perMinute(30), Burst: 5},
		{Path: "/field-sessions/", Method: "POST", Rate: perMinute(60), Burst: 10},

		// Draft writes
		{Path: "/drafts/", Method: "PUT", Rate: perMinute(120), Burst: 10},

		// Local text operations use the default limit.
		// Health check is unlimited, handled in the matcher.
	}
}

// getEnvString gets an environment variable as a string with a default value.
func getEnvString(key string, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvBool gets an environment variable as a boolean with a default value.
func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// getEnvDuration gets an environment variable as a duration with a default value.
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// parseIPList parses a comma-separated list of IP addresses into a map.
func parseIPList(list string) map[string]bool {
	result := make(map[string]bool)
	for _, ip := range strings.Split(list, ",") {
		if ip = strings.TrimSpace(ip); ip != "" {
			result[ip] = true
		}
	}
	return result
}
