package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/MrSnakeDoc/restdemo/internal/config"
	"github.com/MrSnakeDoc/restdemo/internal/domain"
	"github.com/MrSnakeDoc/restdemo/internal/utils"
	"github.com/MrSnakeDoc/restdemo/internal/version"
)

// HealthChecker probes the backend health endpoint.
type HealthChecker interface {
	CheckHealth(ctx context.Context) bool
}

// RecordFetcher retrieves the record served by the backend.
type RecordFetcher interface {
	FetchData(ctx context.Context) (domain.Record, error)
}

var (
	_ HealthChecker = (*Client)(nil)
	_ RecordFetcher = (*Client)(nil)
)

const (
	defaultBaseURL = "http://localhost:8081"
	healthBodyMax  = 1 << 10
)

// Client talks to the restdemo backend.
type Client struct {
	baseURL   *url.URL
	basePath  string
	http      *http.Client
	userAgent string
}

// NewClient builds a Client for the backend at baseURL. basePath is the API prefix
// the backend mounts its endpoints under; timeout bounds every request.
func NewClient(baseURL, basePath string, timeout time.Duration) (*Client, error) {
	base, err := parseBaseURL(baseURL)
	if err != nil {
		return nil, err
	}
	if timeout <= 0 {
		timeout = config.DefaultRequestTimeout
	}
	if strings.TrimSpace(basePath) == "" {
		basePath = config.DefaultAPIBasePath
	}
	return &Client{
		baseURL:   base,
		basePath:  basePath,
		http:      &http.Client{Timeout: timeout},
		userAgent: "restdemoctl/" + version.Version,
	}, nil
}

// FromConfig resolves the backend URL for env and builds a Client from cfg.
func FromConfig(cfg *config.Config, env config.Environment) (*Client, error) {
	if cfg == nil {
		return nil, errors.New("config is nil")
	}
	backend, err := cfg.BackendURL(env)
	if err != nil {
		return nil, err
	}
	return NewClient(backend, cfg.APIBasePath, cfg.RequestTimeout)
}

// BaseURL returns the normalized backend origin.
func (c *Client) BaseURL() string { return c.baseURL.String() }

// CheckHealth reports whether the backend answered its health endpoint with a 2xx
// status and a body of exactly "OK". Any failure resolves to false.
func (c *Client) CheckHealth(ctx context.Context) bool {
	if c == nil {
		return false
	}
	resp, err := c.get(ctx, domain.HealthPath, "text/plain")
	if err != nil {
		return false
	}
	defer utils.DrainAndClose(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return false
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, healthBodyMax))
	if err != nil {
		return false
	}
	return string(body) == "OK"
}

// FetchData retrieves and validates the backend record.
func (c *Client) FetchData(ctx context.Context) (domain.Record, error) {
	const what = "dummy data"
	if c == nil {
		return domain.Record{}, newFetchError(KindTransport, what, errors.New("client is nil"))
	}

	var rec domain.Record
	if err := c.getJSON(ctx, domain.DummyDataPath, what, &rec, domain.RecordFields); err != nil {
		return domain.Record{}, err
	}
	if !rec.Valid() {
		return domain.Record{}, newFetchError(KindInvalid, what,
			fmt.Errorf("blank fields: %s", strings.Join(rec.BlankFields(), ", ")))
	}
	return rec, nil
}

// FetchInfo retrieves the backend's self-description.
func (c *Client) FetchInfo(ctx context.Context) (domain.APIInfo, error) {
	const what = "api info"
	if c == nil {
		return domain.APIInfo{}, newFetchError(KindTransport, what, errors.New("client is nil"))
	}

	var info domain.APIInfo
	if err := c.getJSON(ctx, domain.InfoPath, what, &info, domain.APIInfoFields); err != nil {
		return domain.APIInfo{}, err
	}
	return info, nil
}

func (c *Client) getJSON(ctx context.Context, endpoint, what string, dest any, fields []string) error {
	resp, err := c.get(ctx, endpoint, "application/json")
	if err != nil {
		return newFetchError(KindTransport, what, err)
	}
	defer utils.DrainAndClose(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newFetchError(KindStatus, what,
			fmt.Errorf("api %s returned status %d", resp.Request.URL.Path, resp.StatusCode))
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return newFetchError(KindTransport, what, fmt.Errorf("read response: %w", err))
	}
	if err := decodeStrict(body, dest, fields); err != nil {
		return newFetchError(KindDecode, what, fmt.Errorf("decode response: %w", err))
	}
	return nil
}

func (c *Client) get(ctx context.Context, endpoint, accept string) (*http.Response, error) {
	rel := &url.URL{Path: domain.JoinPath(c.basePath, endpoint)}
	reqURL := c.baseURL.ResolveReference(rel)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", accept)
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("X-Request-Id", uuid.NewString())

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	return resp, nil
}

func parseBaseURL(raw string) (*url.URL, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		trimmed = defaultBaseURL
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse backend url %q: %w", raw, err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("backend url %q has no host", raw)
	}
	u.Path = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
