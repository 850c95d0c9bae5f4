package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/MrSnakeDoc/restdemo/internal/config"
	"github.com/MrSnakeDoc/restdemo/internal/domain"
	"github.com/MrSnakeDoc/restdemo/internal/httpserver"
	"github.com/MrSnakeDoc/restdemo/internal/httpserver/deps"
	"github.com/MrSnakeDoc/restdemo/internal/logger"
	"github.com/MrSnakeDoc/restdemo/internal/version"
)

type App struct {
	cfg    *config.Config
	logger logger.Logger
	server *httpserver.Server
}

// New loads the configuration and builds the backend. args are the positional
// command line arguments; the first one, when it is a valid port, overrides the
// configured HTTP port.
func New(args []string) *App {
	cfg := config.Load()
	loggerClient := logger.New(cfg.LogLevel, cfg.PrettyLog)

	if len(args) > 0 {
		applyPortArg(cfg, args[0], loggerClient)
	}

	return newApp(cfg, loggerClient)
}

func newApp(cfg *config.Config, loggerClient logger.Logger) *App {
	// Dependencies passed to routes (extend as needed).
	d := deps.Deps{
		Logger:          loggerClient,
		StartTime:       time.Now(),
		Version:         version.Version,
		Commit:          version.Commit,
		BuildDate:       version.BuildDate,
		GoVersion:       version.GoVersion,
		TimeNow:         time.Now,
		APIBasePath:     cfg.APIBasePath,
		AllowedCIDRS:    cfg.AllowedCIDRS,
		TrustProxy:      cfg.TrustProxy,
		RateLimitBurst:  cfg.RateLimitBurst,
		RateLimitPerMin: cfg.RateLimitPerMin,
		RecordSource:    deps.SampleSource,
	}

	return &App{
		cfg:    cfg,
		logger: loggerClient,
		server: httpserver.New(cfg, loggerClient.With(logger.String("component", "http")), d),
	}
}

func applyPortArg(cfg *config.Config, arg string, log logger.Logger) {
	port, err := strconv.Atoi(arg)
	if err != nil || port < 1 || port > 65535 {
		log.Warn("ignoring invalid port argument",
			logger.String("arg", arg),
			logger.Int("port", cfg.HTTPPort))
		return
	}
	cfg.HTTPPort = port
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return a.serve(ctx, a.server.Start)
}

// serve runs start until it fails or ctx is done, then shuts the server down.
func (a *App) serve(ctx context.Context, start func() error) error {
	a.logger.Infof("🚀 Starting %s v%s on %s", domain.ServiceName, version.Version, a.server.Addr())
	a.logger.Infof("%s %s (commit=%s, built=%s, go=%s)",
		domain.ServiceName, version.Version, version.Commit, version.BuildDate, version.GoVersion)
	a.logger.Info("configuration",
		logger.Int("http_api_port", a.cfg.HTTPPort),
		logger.String("api_base_path", a.cfg.APIBasePath))
	a.logger.Infof("Frontend: served by dedicated development server (port %d)", a.cfg.FrontendPort)

	errCh := make(chan error, 1)
	go func() {
		if err := start(); err != nil {
			errCh <- fmt.Errorf("http server error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("⏳ Shutting down gracefully...")
	case err := <-errCh:
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()
	if err := a.server.Stop(shutdownCtx); err != nil {
		return fmt.Errorf("failed to stop server: %w", err)
	}

	a.logger.Info("✅ Backend stopped cleanly")
	_ = a.logger.Sync()
	return nil
}
