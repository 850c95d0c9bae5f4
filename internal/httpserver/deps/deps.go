package deps

import (
	"context"
	"time"

	"github.com/MrSnakeDoc/restdemo/internal/domain"
	"github.com/MrSnakeDoc/restdemo/internal/logger"
)

// RecordSource produces the record served by the dummy-data endpoint.
// It is called once per request; implementations must not share mutable state.
type RecordSource func(ctx context.Context) (domain.Record, error)

// SampleSource always yields domain.SampleRecord.
func SampleSource(context.Context) (domain.Record, error) {
	return domain.SampleRecord(), nil
}

type Deps struct {
	Logger          logger.Logger
	StartTime       time.Time
	Version         string
	Commit          string
	BuildDate       string
	GoVersion       string
	TimeNow         func() time.Time // for testing, defaults to time.Now
	APIBasePath     string           // prefix of the public API (ex: "/api")
	AllowedCIDRS    []string         // IPs allowed to access healthz/readyz endpoints
	TrustProxy      bool             // true if running behind a trusted reverse proxy
	RateLimitBurst  int              // per-IP burst on the API, 0 disables the limiter
	RateLimitPerMin int              // per-IP refill rate
	RecordSource    RecordSource     // nil falls back to SampleSource
}

// Source returns the configured record source, or SampleSource.
func (d Deps) Source() RecordSource {
	if d.RecordSource == nil {
		return SampleSource
	}
	return d.RecordSource
}

// Now returns TimeNow(), or time.Now() when unset.
func (d Deps) Now() time.Time {
	if d.TimeNow == nil {
		return time.Now()
	}
	return d.TimeNow()
}
