package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "pharmaduty/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
		wantInBody string
		wantAbsent string
		wantLogged bool
	}{
		{
			name:       "client app error keeps details",
			err:        errors.WithStack(domainerrors.Invalid("radius", "must not be negative")),
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_FAILED",
			wantInBody: "must not be negative",
		},
		{
			name:       "server app error hides details",
			err:        domainerrors.ErrTransactionFailed.WithDetails("connection reset"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "TRANSACTION_FAILED",
			wantAbsent: "connection reset",
			wantLogged: true,
		},
		{
			name:       "echo http error",
			err:        echo.NewHTTPError(http.StatusNotFound, "Not Found"),
			wantStatus: http.StatusNotFound,
			wantCode:   "HTTP_ERROR",
			wantInBody: "Not Found",
		},
		{
			name:       "unknown error",
			err:        errors.New("nil pointer somewhere"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_ERROR",
			wantAbsent: "nil pointer",
			wantLogged: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var logs bytes.Buffer
			logger := slog.New(slog.NewJSONHandler(&logs, nil))
			m := NewErrorMiddleware(logger)

			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/pharmacies", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			m.HandleHTTPError(tt.err, c)

			require.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), `"code":"`+tt.wantCode+`"`)
			if tt.wantInBody != "" {
				assert.Contains(t, rec.Body.String(), tt.wantInBody)
			}
			if tt.wantAbsent != "" {
				assert.NotContains(t, rec.Body.String(), tt.wantAbsent)
			}
			if tt.wantLogged {
				assert.Contains(t, logs.String(), "Unhandled error")
			} else {
				assert.Empty(t, logs.String())
			}
		})
	}
}

func TestErrorMiddleware_SkipsCommittedResponse(t *testing.T) {
	t.Parallel()

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	require.NoError(t, c.NoContent(http.StatusAccepted))

	NewErrorMiddleware(slog.New(slog.DiscardHandler)).HandleHTTPError(errors.New("late failure"), c)

	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Empty(t, rec.Body.String())
}
