package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	DefaultServerHost     = "localhost"
	DefaultHTTPPort       = 8081 // backend API
	DefaultFrontendPort   = 8080 // frontend dev server
	DefaultRequestTimeout = 5000 * time.Millisecond
	DefaultAPIBasePath    = "/api"
	DefaultHandlerTimeout = 2 * time.Second

	// EnvConfigFile points at an optional YAML or TOML file applied before env overrides.
	EnvConfigFile = "RESTDEMO_CONFIG_FILE"
)

type Config struct {
	ServerHost     string        // ex: "localhost", used to build the backend URL
	HTTPPort       int           // ex: 8081
	FrontendPort   int           // ex: 8080, informational for the backend
	RequestTimeout time.Duration // client per-request timeout (ex: 5s)
	APIBasePath    string        // ex: "/api"
	ProductionURL  string        // backend URL for browser-prod builds (optional)

	ShutdownTimeout time.Duration // ex: 5s
	HandlerTimeout  time.Duration // per-request deadline on the backend (ex: 2s)

	LogLevel  string // "debug" | "info" | "warn" | "error"
	PrettyLog bool   // true => zap dev (color), false => zap prod (JSON)

	AllowedCIDRS    []string // optional, restrict access to /healthz and /readyz
	TrustProxy      bool     // true => trust X-Forwarded-For headers
	RateLimitBurst  int      // per-IP burst on the API, 0 disables rate limiting
	RateLimitPerMin int      // per-IP refill rate
}

// Default returns the built-in configuration without looking at the environment.
func Default() *Config {
	return &Config{
		ServerHost:      DefaultServerHost,
		HTTPPort:        DefaultHTTPPort,
		FrontendPort:    DefaultFrontendPort,
		RequestTimeout:  DefaultRequestTimeout,
		APIBasePath:     DefaultAPIBasePath,
		ShutdownTimeout: 5 * time.Second,
		HandlerTimeout:  DefaultHandlerTimeout,
		LogLevel:        "info",
		PrettyLog:       true,
		RateLimitPerMin: 60,
	}
}

// Load resolves the configuration from defaults, the optional config file named by
// RESTDEMO_CONFIG_FILE and the environment. It panics on invalid configuration.
func Load() *Config {
	cfg, err := LoadFrom(os.Getenv(EnvConfigFile))
	if err != nil {
		panic(fmt.Sprintf("❌ FATAL: %v", err))
	}

	if cfg.LogLevel == "debug" {
		log.Printf("[DEBUG] cfg: %+v\n", *cfg)
	}

	return cfg
}

// LoadFrom layers defaults, the file at path (skipped when empty) and environment
// variables, then validates the result.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		if err := applyFile(cfg, path); err != nil {
			return nil, err
		}
	}
	applyEnv(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	// Server settings
	cfg.ServerHost = getenv("RESTDEMO_SERVER_HOST", cfg.ServerHost)
	cfg.HTTPPort = getenvInt("RESTDEMO_HTTP_PORT", cfg.HTTPPort)
	cfg.FrontendPort = getenvInt("RESTDEMO_FRONTEND_PORT", cfg.FrontendPort)
	cfg.RequestTimeout = mustDuration("RESTDEMO_REQUEST_TIMEOUT", cfg.RequestTimeout)
	cfg.APIBasePath = getenv("RESTDEMO_API_BASE_PATH", cfg.APIBasePath)
	cfg.ProductionURL = getenv("RESTDEMO_PRODUCTION_URL", cfg.ProductionURL)
	cfg.ShutdownTimeout = mustDuration("RESTDEMO_SHUTDOWN_TIMEOUT", cfg.ShutdownTimeout)
	cfg.HandlerTimeout = mustDuration("RESTDEMO_HANDLER_TIMEOUT", cfg.HandlerTimeout)

	// Logging
	cfg.LogLevel = getenv("RESTDEMO_LOG_LEVEL", cfg.LogLevel)
	cfg.PrettyLog = mustBool("RESTDEMO_PRETTY_LOG", cfg.PrettyLog)

	// Access and throttling
	if v := getenv("RESTDEMO_ALLOWED_CIDRS", ""); v != "" {
		cfg.AllowedCIDRS = parseAllowedIPs(v)
	}
	cfg.TrustProxy = mustBool("RESTDEMO_TRUST_PROXY", cfg.TrustProxy)
	cfg.RateLimitBurst = getenvInt("RESTDEMO_RATE_LIMIT_BURST", cfg.RateLimitBurst)
	cfg.RateLimitPerMin = getenvInt("RESTDEMO_RATE_LIMIT_PER_MIN", cfg.RateLimitPerMin)
}

// Validate checks the values a server or client cannot run without.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.ServerHost) == "" {
		return fmt.Errorf("server host must not be empty")
	}
	if err := validatePort("http port", c.HTTPPort); err != nil {
		return err
	}
	if err := validatePort("frontend port", c.FrontendPort); err != nil {
		return err
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("request timeout must be > 0, got %v", c.RequestTimeout)
	}
	if !strings.HasPrefix(c.APIBasePath, "/") {
		return fmt.Errorf("api base path must start with '/', got %q", c.APIBasePath)
	}
	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("shutdown timeout must be > 0, got %v", c.ShutdownTimeout)
	}
	if c.HandlerTimeout <= 0 {
		return fmt.Errorf("handler timeout must be > 0, got %v", c.HandlerTimeout)
	}
	if c.RateLimitBurst < 0 || c.RateLimitPerMin < 0 {
		return fmt.Errorf("rate limit values must be >= 0, got burst=%d per_min=%d", c.RateLimitBurst, c.RateLimitPerMin)
	}
	return nil
}

// ListenAddr is the address the backend binds, on all interfaces.
func (c *Config) ListenAddr() string {
	return ":" + strconv.Itoa(c.HTTPPort)
}

func validatePort(name string, port int) error {
	if port < 1 || port > 65535 {
		return fmt.Errorf("%s must be in 1-65535, got %d", name, port)
	}
	return nil
}

// helpers
func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func mustBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func mustDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func parseAllowedIPs(allowed string) []string {
	if allowed == "" {
		return nil
	}
	ips := make([]string, 0, 4)
	for _, ip := range splitAndTrim(allowed) {
		if ip != "" {
			ips = append(ips, ip)
		}
	}
	return ips
}

func splitAndTrim(s string) []string {
	if s == "" {
		return nil
	}
	raw := strings.Split(s, ",")
	parts := make([]string, 0, len(raw))
	for _, part := range raw {
		trimmed := strings.TrimSpace(part)
		// Remove surrounding quotes if present
		trimmed = strings.Trim(trimmed, `"'`)
		if trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return parts
}
