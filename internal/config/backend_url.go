package config

import (
	"fmt"
	"net"
	"strconv"
	"strings"
)

// EnvironmentKind names the deployment target a client runs in.
type EnvironmentKind string

const (
	EnvServer      EnvironmentKind = "server"
	EnvBrowserDev  EnvironmentKind = "browser-dev"
	EnvBrowserProd EnvironmentKind = "browser-prod"
)

// ProductionURLPlaceholder is the unset marker production builds ship with.
const ProductionURLPlaceholder = "PLACEHOLDER_BACKEND_URL"

// Environment selects how BackendURL resolves the backend location.
type Environment struct {
	Kind                  EnvironmentKind
	ProductionURLOverride string // only consulted for EnvBrowserProd
}

// ParseEnvironmentKind parses a kind name, case-insensitively.
func ParseEnvironmentKind(s string) (EnvironmentKind, error) {
	switch kind := EnvironmentKind(strings.ToLower(strings.TrimSpace(s))); kind {
	case EnvServer, EnvBrowserDev, EnvBrowserProd:
		return kind, nil
	default:
		return "", fmt.Errorf("unknown environment %q (want server, browser-dev or browser-prod)", s)
	}
}

// LocalURL is the backend URL built from ServerHost and HTTPPort.
func (c *Config) LocalURL() string {
	return "http://" + net.JoinHostPort(c.ServerHost, strconv.Itoa(c.HTTPPort))
}

// BackendURL resolves the backend base URL for env.
//
//   - server, browser-dev: LocalURL
//   - browser-prod: the override when set and not the placeholder, else LocalURL
func (c *Config) BackendURL(env Environment) (string, error) {
	switch env.Kind {
	case EnvServer:
		return c.LocalURL(), nil
	case EnvBrowserDev:
		return c.LocalURL(), nil
	case EnvBrowserProd:
		override := strings.TrimRight(strings.TrimSpace(env.ProductionURLOverride), "/")
		if override == "" || override == ProductionURLPlaceholder {
			return c.LocalURL(), nil
		}
		return override, nil
	default:
		return "", fmt.Errorf("unknown environment kind %q", env.Kind)
	}
}
