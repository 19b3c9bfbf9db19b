package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
)

func TestHealthHandler_Readiness(t *testing.T) {
	cases := []struct {
		name       string
		checks     map[string]ReadinessCheck
		wantCode   int
		wantStatus string
	}{
		{
			name: "all healthy",
			checks: map[string]ReadinessCheck{
				"mongodb": func(context.Context) error { return nil },
				"redis":   func(context.Context) error { return nil },
			},
			wantCode:   http.StatusOK,
			wantStatus: "ok",
		},
		{
			name: "redis down",
			checks: map[string]ReadinessCheck{
				"mongodb": func(context.Context) error { return nil },
				"redis":   func(context.Context) error { return errors.New("connection refused") },
			},
			wantCode:   http.StatusServiceUnavailable,
			wantStatus: "degraded",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, rec := newJSONContext(http.MethodGet, "/health/ready", "")

			if err := NewHealthHandler(tc.checks).Readiness(c); err != nil {
				t.Fatalf("handler error: %v", err)
			}
			if rec.Code != tc.wantCode {
				t.Fatalf("expected %d, got %d", tc.wantCode, rec.Code)
			}

			var resp readinessResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("invalid json: %v", err)
			}
			if resp.Status != tc.wantStatus || len(resp.Dependencies) != len(tc.checks) {
				t.Fatalf("unexpected response: %+v", resp)
			}
		})
	}
}
