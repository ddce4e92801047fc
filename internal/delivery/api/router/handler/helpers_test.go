package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	apimiddleware "pharmaduty/internal/delivery/api/middleware"
	"pharmaduty/internal/delivery/api/validator"
	deliverycontext "pharmaduty/internal/delivery/context"
	"pharmaduty/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

// envelope mirrors the response wrappers for decoding in tests.
type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string          `json:"code"`
		Message string          `json:"message"`
		Details json.RawMessage `json:"details"`
	} `json:"error"`
	Meta struct {
		Pagination *struct {
			Page       int `json:"page"`
			PageSize   int `json:"pageSize"`
			Total      int `json:"total"`
			TotalPages int `json:"totalPages"`
		} `json:"pagination"`
	} `json:"meta"`
}

// newTestEcho builds an Echo instance wired like the server, with actor
// injected into every request when non-nil.
func newTestEcho(actor *entity.Actor) *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(slog.New(slog.DiscardHandler)).HandleHTTPError
	if actor != nil {
		e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
			return func(c echo.Context) error {
				deliverycontext.SetActor(c, actor)

				return next(c)
			}
		})
	}

	return e
}

func doRequest(t *testing.T, e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))

	return env
}

func pharmacistActor() *entity.Actor {
	return &entity.Actor{UserID: uuid.New(), Roles: entity.Roles{entity.RolePharmacist}}
}

func adminActor() *entity.Actor {
	return &entity.Actor{UserID: uuid.New(), Roles: entity.Roles{entity.RoleAdmin}}
}
