package handler_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"studygeni/internal/handler"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCache struct {
	pingErr error
}

func (c *stubCache) Get(ctx context.Context, key string) (string, error) { return "", nil }
func (c *stubCache) Set(ctx context.Context, key string, value string, expiration time.Duration) error {
	return nil
}
func (c *stubCache) Delete(ctx context.Context, key string) error { return nil }
func (c *stubCache) Ping(ctx context.Context) error               { return c.pingErr }

func TestHealth(t *testing.T) {
	tests := []struct {
		name      string
		handler   *handler.HealthHandler
		wantRedis string
	}{
		{
			name:    "WithoutRedis",
			handler: handler.NewHealthHandler(nil),
		},
		{
			name:      "RedisOK",
			handler:   handler.NewHealthHandler(&stubCache{}),
			wantRedis: "ok",
		},
		{
			name:      "RedisUnavailable",
			handler:   handler.NewHealthHandler(&stubCache{pingErr: errors.New("connection refused")}),
			wantRedis: "unavailable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/health", tt.handler.Health)

			resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil))
			require.NoError(t, err)
			require.Equal(t, http.StatusOK, resp.StatusCode)

			body := decodeJSON[map[string]string](t, resp)
			assert.Equal(t, "ok", body["status"])
			if tt.wantRedis == "" {
				assert.NotContains(t, body, "redis")
			} else {
				assert.Equal(t, tt.wantRedis, body["redis"])
			}
		})
	}
}
