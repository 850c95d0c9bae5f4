package app

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/MrSnakeDoc/restdemo/internal/config"
	"github.com/MrSnakeDoc/restdemo/internal/logger"
)

func TestApplyPortArg(t *testing.T) {
	tests := []struct {
		arg  string
		want int
		warn bool
	}{
		{arg: "9090", want: 9090},
		{arg: "1", want: 1},
		{arg: "65535", want: 65535},
		{arg: "abc", want: config.DefaultHTTPPort, warn: true},
		{arg: "0", want: config.DefaultHTTPPort, warn: true},
		{arg: "70000", want: config.DefaultHTTPPort, warn: true},
	}

	for _, tt := range tests {
		t.Run(tt.arg, func(t *testing.T) {
			core, logs := observer.New(zapcore.WarnLevel)
			cfg := config.Default()

			applyPortArg(cfg, tt.arg, logger.FromZap(zap.New(core)))

			if cfg.HTTPPort != tt.want {
				t.Errorf("HTTPPort = %d, want %d", cfg.HTTPPort, tt.want)
			}
			if got := logs.Len() > 0; got != tt.warn {
				t.Errorf("warned = %v, want %v", got, tt.warn)
			}
		})
	}
}

func TestServeStopsOnContextCancel(t *testing.T) {
	cfg := config.Default()
	core, logs := observer.New(zapcore.InfoLevel)
	a := newApp(cfg, logger.FromZap(zap.New(core)))

	l, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- a.serve(ctx, func() error { return a.server.Serve(l) }) }()

	url := "http://" + l.Addr().String() + "/api/health"
	var body string
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		resp, err := http.Get(url)
		if err == nil {
			b, _ := io.ReadAll(resp.Body)
			_ = resp.Body.Close()
			body = string(b)
			break
		}
		time.Sleep(10 * time.Millisecond)
	}
	if body != "OK" {
		t.Fatalf("GET %s body = %q, want OK", url, body)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("serve returned %v, want nil", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("serve did not return after cancel")
	}

	if logs.FilterMessage("✅ Backend stopped cleanly").Len() != 1 {
		t.Error("missing clean shutdown log line")
	}
	if logs.FilterMessage("Frontend: served by dedicated development server (port 8080)").Len() != 1 {
		t.Error("missing frontend log line")
	}
}

func TestServeReturnsStartError(t *testing.T) {
	a := newApp(config.Default(), logger.NewNop())
	boom := errors.New("address in use")

	err := a.serve(context.Background(), func() error { return boom })
	if !errors.Is(err, boom) {
		t.Fatalf("serve error = %v, want %v", err, boom)
	}
}
