package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// fileConfig mirrors Config for on-disk files. Pointers distinguish "absent" from
// zero values so only keys present in the file override defaults.
type fileConfig struct {
	ServerHost       *string  `yaml:"server_host" toml:"server_host"`
	HTTPPort         *int     `yaml:"http_port" toml:"http_port"`
	FrontendPort     *int     `yaml:"frontend_port" toml:"frontend_port"`
	RequestTimeoutMS *int64   `yaml:"request_timeout_ms" toml:"request_timeout_ms"`
	APIBasePath      *string  `yaml:"api_base_path" toml:"api_base_path"`
	ProductionURL    *string  `yaml:"production_url" toml:"production_url"`
	ShutdownTimeout  *string  `yaml:"shutdown_timeout" toml:"shutdown_timeout"`
	HandlerTimeout   *string  `yaml:"handler_timeout" toml:"handler_timeout"`
	LogLevel         *string  `yaml:"log_level" toml:"log_level"`
	PrettyLog        *bool    `yaml:"pretty_log" toml:"pretty_log"`
	AllowedCIDRS     []string `yaml:"allowed_cidrs" toml:"allowed_cidrs"`
	TrustProxy       *bool    `yaml:"trust_proxy" toml:"trust_proxy"`
	RateLimitBurst   *int     `yaml:"rate_limit_burst" toml:"rate_limit_burst"`
	RateLimitPerMin  *int     `yaml:"rate_limit_per_min" toml:"rate_limit_per_min"`
}

// applyFile overlays the YAML (.yaml/.yml) or TOML (.toml) file at path onto cfg.
func applyFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	var fc fileConfig
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &fc); err != nil {
			return fmt.Errorf("failed to parse yaml config %s: %w", path, err)
		}
	case ".toml":
		if err := toml.Unmarshal(data, &fc); err != nil {
			return fmt.Errorf("failed to parse toml config %s: %w", path, err)
		}
	default:
		return fmt.Errorf("unsupported config file extension %q (want .yaml, .yml or .toml)", ext)
	}

	return fc.apply(cfg)
}

func (fc fileConfig) apply(cfg *Config) error {
	if fc.ServerHost != nil {
		cfg.ServerHost = *fc.ServerHost
	}
	if fc.HTTPPort != nil {
		cfg.HTTPPort = *fc.HTTPPort
	}
	if fc.FrontendPort != nil {
		cfg.FrontendPort = *fc.FrontendPort
	}
	if fc.RequestTimeoutMS != nil {
		cfg.RequestTimeout = time.Duration(*fc.RequestTimeoutMS) * time.Millisecond
	}
	if fc.APIBasePath != nil {
		cfg.APIBasePath = *fc.APIBasePath
	}
	if fc.ProductionURL != nil {
		cfg.ProductionURL = *fc.ProductionURL
	}
	if fc.ShutdownTimeout != nil {
		d, err := time.ParseDuration(*fc.ShutdownTimeout)
		if err != nil {
			return fmt.Errorf("invalid shutdown_timeout %q: %w", *fc.ShutdownTimeout, err)
		}
		cfg.ShutdownTimeout = d
	}
	if fc.HandlerTimeout != nil {
		d, err := time.ParseDuration(*fc.HandlerTimeout)
		if err != nil {
			return fmt.Errorf("invalid handler_timeout %q: %w", *fc.HandlerTimeout, err)
		}
		cfg.HandlerTimeout = d
	}
	if fc.LogLevel != nil {
		cfg.LogLevel = *fc.LogLevel
	}
	if fc.PrettyLog != nil {
		cfg.PrettyLog = *fc.PrettyLog
	}
	if len(fc.AllowedCIDRS) > 0 {
		cfg.AllowedCIDRS = fc.AllowedCIDRS
	}
	if fc.TrustProxy != nil {
		cfg.TrustProxy = *fc.TrustProxy
	}
	if fc.RateLimitBurst != nil {
		cfg.RateLimitBurst = *fc.RateLimitBurst
	}
	if fc.RateLimitPerMin != nil {
		cfg.RateLimitPerMin = *fc.RateLimitPerMin
	}
	return nil
}
