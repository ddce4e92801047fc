package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"pharmaduty/config"
	deliverycontext "pharmaduty/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufferLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer

	return slog.New(slog.NewJSONHandler(&buf, nil)), &buf
}

func TestRequestIDMiddleware(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		incoming string
		reuse    bool
	}{
		{name: "generates an id", incoming: "", reuse: false},
		{name: "reuses the caller id", incoming: "edge-42", reuse: true},
		{name: "replaces oversized ids", incoming: strings.Repeat("x", maxRequestIDLength+1), reuse: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			logger, buf := newBufferLogger()
			e := echo.New()
			e.Use(NewRequestIDMiddleware(logger).Process)

			var seen string
			e.GET("/", func(c echo.Context) error {
				seen = deliverycontext.GetRequestIDFromContext(c.Request().Context())
				deliverycontext.GetLoggerOrDefault(c.Request().Context(), nil).Info("inside")

				return c.NoContent(http.StatusNoContent)
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.incoming != "" {
				req.Header.Set(deliverycontext.HeaderXRequestID, tt.incoming)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			header := rec.Header().Get(deliverycontext.HeaderXRequestID)
			require.NotEmpty(t, header)
			assert.Equal(t, header, seen)
			assert.Equal(t, tt.reuse, header == tt.incoming)
			assert.Contains(t, buf.String(), `"request_id":"`+header+`"`)
		})
	}
}

func TestLoggerMiddleware(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		debug   bool
		path    string
		status  int
		wantLog string
	}{
		{name: "success is quiet outside debug", path: "/api/v1/pharmacies", status: http.StatusOK},
		{name: "success is logged in debug", debug: true, path: "/api/v1/pharmacies", status: http.StatusOK, wantLog: `"level":"INFO"`},
		{name: "client errors are warnings", path: "/api/v1/pharmacies", status: http.StatusNotFound, wantLog: `"level":"WARN"`},
		{name: "server errors are errors", path: "/api/v1/pharmacies", status: http.StatusInternalServerError, wantLog: `"level":"ERROR"`},
		{name: "health is skipped", debug: true, path: "/health", status: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			logger, buf := newBufferLogger()
			cfg := &config.Config{}
			cfg.Env.Debug = tt.debug

			e := echo.New()
			e.Use(NewLoggerMiddleware(logger, cfg).Handle)
			e.GET(tt.path, func(c echo.Context) error {
				return c.NoContent(tt.status)
			})

			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))

			if tt.wantLog == "" {
				assert.Empty(t, buf.String())

				return
			}
			assert.Contains(t, buf.String(), tt.wantLog)
			assert.Contains(t, buf.String(), `"status":`)
		})
	}
}
