package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/restdemo/internal/domain"
	"github.com/MrSnakeDoc/restdemo/internal/httpserver/deps"
	"github.com/MrSnakeDoc/restdemo/internal/httpserver/handlers"
	"github.com/MrSnakeDoc/restdemo/internal/httpserver/mw"
)

func init() { Register("api", registerAPI) }

// registerAPI mounts the public endpoints under the configured base path.
func registerAPI(r chi.Router, d deps.Deps) {
	r.Group(func(api chi.Router) {
		api.Use(mw.RateLimit(mw.RateLimitConfig{
			Burst:             d.RateLimitBurst,
			RefillPerIPPerMin: d.RateLimitPerMin,
			MaxEntries:        10_000,
			TrustProxy:        d.TrustProxy,
		}))

		api.Get(domain.JoinPath(d.APIBasePath, domain.HealthPath), handlers.Health(d))
		api.Get(domain.JoinPath(d.APIBasePath, domain.InfoPath), handlers.Info(d))
		api.Get(domain.JoinPath(d.APIBasePath, domain.DummyDataPath), handlers.DummyData(d))
	})
}
