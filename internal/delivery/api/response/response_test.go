package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	deliverycontext "pharmaduty/internal/delivery/context"
	"pharmaduty/internal/domain/discovery"
	domainerrors "pharmaduty/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	rec := httptest.NewRecorder()

	return e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec), rec
}

func TestPaginated(t *testing.T) {
	t.Parallel()

	c, rec := newContext()
	deliverycontext.SetRequestID(c, "req-42")

	require.NoError(t, Paginated(c, []string{"a"}, discovery.Pagination{Page: 1, PageSize: 20, Total: 1, TotalPages: 1}))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t,
		`{"data":["a"],"meta":{"requestId":"req-42","pagination":{"page":1,"pageSize":20,"total":1,"totalPages":1}}}`,
		rec.Body.String())
}

func TestError_StripsDetails(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		status      int
		wantDetails bool
	}{
		{name: "bad request", status: http.StatusBadRequest, wantDetails: true},
		{name: "unauthorized", status: http.StatusUnauthorized, wantDetails: false},
		{name: "forbidden", status: http.StatusForbidden, wantDetails: false},
		{name: "server error", status: http.StatusBadGateway, wantDetails: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c, rec := newContext()

			require.NoError(t, Error(c, tt.status, "CODE", "message", "secret detail"))

			assert.Equal(t, tt.status, rec.Code)
			require.True(t, json.Valid(rec.Body.Bytes()))
			assert.Equal(t, tt.wantDetails, strings.Contains(rec.Body.String(), "secret detail"))
		})
	}
}

func TestAppErrorDetails(t *testing.T) {
	t.Parallel()

	conflict := uuid.New()

	tests := []struct {
		name string
		err  domainerrors.AppError
		want any
	}{
		{
			name: "payload wins",
			err:  domainerrors.NewOverlapError(uuid.New(), conflict),
			want: map[string]any{"conflictingPeriodIds": []uuid.UUID{conflict}},
		},
		{
			name: "details string",
			err:  domainerrors.NewBaseError(http.StatusConflict, "X", "x", "more context"),
			want: "more context",
		},
		{
			name: "nothing",
			err:  domainerrors.ErrPharmacyNotFound,
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, AppErrorDetails(tt.err))
		})
	}
}

func TestHandleAppError(t *testing.T) {
	t.Parallel()

	t.Run("client error is written", func(t *testing.T) {
		t.Parallel()

		c, rec := newContext()

		require.NoError(t, HandleAppError(c, errors.Wrap(domainerrors.ErrRatingNotFound, "lookup")))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "RATING_NOT_FOUND")
	})

	t.Run("server error is returned", func(t *testing.T) {
		t.Parallel()

		c, rec := newContext()

		err := HandleAppError(c, domainerrors.ErrInternalError)

		require.Error(t, err)
		assert.ErrorIs(t, err, domainerrors.ErrInternalError)
		assert.False(t, c.Response().Committed)
		assert.Empty(t, rec.Body.String())
	})
}
