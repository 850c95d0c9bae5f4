package mw

import (
	"net/http"
	"testing"

	"github.com/MrSnakeDoc/restdemo/internal/logger"
)

func TestAllowOnlyCIDRS(t *testing.T) {
	log := logger.NewNop()

	tests := []struct {
		name       string
		allowed    []string
		remoteAddr string
		expected   int
	}{
		{name: "empty list is passthrough", allowed: nil, remoteAddr: "203.0.113.1:1", expected: http.StatusOK},
		{name: "ip inside cidr", allowed: []string{"10.0.0.0/8"}, remoteAddr: "10.1.2.3:1", expected: http.StatusOK},
		{name: "ip outside cidr", allowed: []string{"10.0.0.0/8"}, remoteAddr: "203.0.113.1:1", expected: http.StatusForbidden},
		{name: "exact ip", allowed: []string{"127.0.0.1"}, remoteAddr: "127.0.0.1:9", expected: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := AllowOnlyCIDRS(tt.allowed, false, log)(okHandler())
			if rec := doRequest(h, tt.remoteAddr); rec.Code != tt.expected {
				t.Errorf("status = %d, want %d", rec.Code, tt.expected)
			}
		})
	}
}
