//go:build unit

package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"stay-picker/internal/handler/api"
	resdto "stay-picker/internal/handler/dto/response"
	"stay-picker/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestHealthCheck(t *testing.T) {
	up := api.PingFunc(func(context.Context) error { return nil })
	down := api.PingFunc(func(context.Context) error { return errors.New("connection refused") })

	cases := []struct {
		name       string
		db, cache  api.Pinger
		wantStatus int
		want       resdto.HealthResponse
	}{
		{
			name: "all up", db: up, cache: up, wantStatus: http.StatusOK,
			want: resdto.HealthResponse{Status: "ok", Checks: map[string]string{"postgres": "ok", "redis": "ok"}},
		},
		{
			name: "cache down degrades", db: up, cache: down, wantStatus: http.StatusOK,
			want: resdto.HealthResponse{Status: "degraded", Checks: map[string]string{"postgres": "ok", "redis": "down"}},
		},
		{
			name: "database down fails", db: down, cache: up, wantStatus: http.StatusServiceUnavailable,
			want: resdto.HealthResponse{Status: "down", Checks: map[string]string{"postgres": "down", "redis": "ok"}},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			gin.SetMode(gin.TestMode)
			r := gin.New()
			h := api.NewHealthHandler(tc.db, tc.cache, slog.New(slog.NewTextHandler(io.Discard, nil)))
			r.GET("/health", h.Check)

			w := httptest.PerformRequest(t, r, http.MethodGet, "/health", nil, "")

			require.Equal(t, tc.wantStatus, w.Code)
			var got resdto.HealthResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("health mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
