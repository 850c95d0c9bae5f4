package domain

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestJoinPath(t *testing.T) {
	tests := []struct {
		base     string
		endpoint string
		expected string
	}{
		{"/api", "/health", "/api/health"},
		{"/api/", "/health", "/api/health"},
		{"/api//", "health", "/api/health"},
		{"", "/health", "/health"},
		{"/", "/dummy-data", "/dummy-data"},
		{"/v1/api", "", "/v1/api"},
	}

	for _, tt := range tests {
		t.Run(tt.base+"|"+tt.endpoint, func(t *testing.T) {
			if got := JoinPath(tt.base, tt.endpoint); got != tt.expected {
				t.Errorf("JoinPath(%q, %q) = %q, want %q", tt.base, tt.endpoint, got, tt.expected)
			}
		})
	}
}

func TestNewAPIInfo(t *testing.T) {
	want := APIInfo{
		Name:      "KMP REST Web App Backend",
		Version:   "1.0.0",
		Endpoints: []string{"/api/dummy-data", "/api/health"},
	}
	if diff := cmp.Diff(want, NewAPIInfo("1.0.0", "/api")); diff != "" {
		t.Errorf("NewAPIInfo() mismatch (-want +got):\n%s", diff)
	}
}
