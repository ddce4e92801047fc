package handler

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"pharmaduty/internal/domain/discovery"
	"pharmaduty/internal/domain/entity"
	domainerrors "pharmaduty/internal/domain/errors"
	"pharmaduty/internal/domain/rating"
	mockUsecase "pharmaduty/internal/mocks/usecase"
	"pharmaduty/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type pharmacyHandlerFixtures struct {
	discovery *mockUsecase.MockDiscoveryUsecase
	pharmacy  *mockUsecase.MockPharmacyUsecase
	duty      *mockUsecase.MockDutyUsecase
	echo      *echo.Echo
}

func createTestPharmacyHandler(t *testing.T, actor *entity.Actor) pharmacyHandlerFixtures {
	t.Helper()

	f := pharmacyHandlerFixtures{
		discovery: mockUsecase.NewMockDiscoveryUsecase(t),
		pharmacy:  mockUsecase.NewMockPharmacyUsecase(t),
		duty:      mockUsecase.NewMockDutyUsecase(t),
		echo:      newTestEcho(actor),
	}

	h := NewPharmacyHandler(PharmacyHandlerParams{
		DiscoveryUC: f.discovery,
		PharmacyUC:  f.pharmacy,
		DutyUC:      f.duty,
	})
	f.echo.GET("/pharmacies", h.Search)
	f.echo.POST("/pharmacies", h.Register)
	f.echo.GET("/pharmacies/:id", h.GetProfile)
	f.echo.PUT("/pharmacies/:id", h.Update)
	f.echo.GET("/pharmacies/:id/duty-status", h.GetDutyStatus)
	f.echo.GET("/pharmacies/:id/qr", h.GetQRCode)

	return f
}

func testPharmacy(name string) *entity.Pharmacy {
	return &entity.Pharmacy{
		ID:        uuid.New(),
		Name:      name,
		Address:   "Rue des Jardins",
		City:      "Abidjan",
		Phone:     "+2250700000000",
		Latitude:  5.35,
		Longitude: -4.01,
		Status:    entity.PharmacyStatusApproved,
	}
}

func TestPharmacyHandler_Search(t *testing.T) {
	t.Parallel()

	f := createTestPharmacyHandler(t, nil)
	at := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	distance := 1.2
	result := &discovery.Result{
		Items: []discovery.Item{
			{Pharmacy: testPharmacy("Pharmacie du Plateau"), AverageRating: 4.5, RatingCount: 2, IsOnDuty: true, DistanceKm: &distance},
		},
		Pagination: discovery.Pagination{Page: 2, PageSize: 5, Total: 6, TotalPages: 2},
		At:         at,
	}

	f.discovery.EXPECT().
		Search(mock.Anything, mock.MatchedBy(func(in *usecase.SearchInput) bool {
			return in.Search == "plateau" &&
				in.City == "Abidjan" &&
				in.At != nil && in.At.Equal(at) &&
				in.Latitude != nil && *in.Latitude == 5.3 &&
				in.Longitude != nil && *in.Longitude == -4.0 &&
				in.RadiusKm != nil && *in.RadiusKm == 3 &&
				in.DutyOnly &&
				in.SortBy == "distance" &&
				in.Page == 2 && in.PageSize == 5
		})).
		Return(result, nil)

	rec := doRequest(t, f.echo, http.MethodGet,
		"/pharmacies?search=plateau&city=Abidjan&date=2024-01-01&lat=5.3&lng=-4.0&radius=3&onlyOnDuty=true&sortBy=distance&page=2&limit=5", "")

	require.Equal(t, http.StatusOK, rec.Code)
	env := decode(t, rec)
	require.NotNil(t, env.Meta.Pagination)
	assert.Equal(t, 6, env.Meta.Pagination.Total)

	var body SearchResponse
	require.NoError(t, json.Unmarshal(env.Data, &body))
	require.Len(t, body.Items, 1)
	assert.Equal(t, "Pharmacie du Plateau", body.Items[0].Name)
	assert.True(t, body.Items[0].IsOnDuty)
	assert.InDelta(t, 4.5, body.Items[0].AverageRating, 1e-9)
	require.NotNil(t, body.Items[0].DistanceKm)
	assert.True(t, body.At.Equal(at))
}

func TestPharmacyHandler_Search_InvalidQuery(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		query string
		field string
	}{
		{name: "latitude not a number", query: "lat=north&lng=2", field: "lat"},
		{name: "bad date", query: "date=01/02/2024", field: "date"},
		{name: "bad page", query: "page=first", field: "page"},
		{name: "bad flag", query: "onlyOnDuty=maybe", field: "onlyOnDuty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := createTestPharmacyHandler(t, nil)

			rec := doRequest(t, f.echo, http.MethodGet, "/pharmacies?"+tt.query, "")

			require.Equal(t, http.StatusBadRequest, rec.Code)
			env := decode(t, rec)
			require.NotNil(t, env.Error)
			assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
			assert.Contains(t, string(env.Error.Details), `"field":"`+tt.field+`"`)
		})
	}
}

func TestPharmacyHandler_Search_UsecaseValidation(t *testing.T) {
	t.Parallel()

	f := createTestPharmacyHandler(t, nil)
	f.discovery.EXPECT().
		Search(mock.Anything, mock.Anything).
		Return(nil, domainerrors.Invalid("lat", "must be between -90 and 90"))

	rec := doRequest(t, f.echo, http.MethodGet, "/pharmacies?lat=91&lng=0", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPharmacyHandler_GetProfile(t *testing.T) {
	t.Parallel()

	t.Run("found", func(t *testing.T) {
		t.Parallel()

		f := createTestPharmacyHandler(t, nil)
		pharmacy := testPharmacy("Pharmacie Centrale")
		comment := "Très bon accueil"
		profile := &usecase.PublicProfile{
			Pharmacy:      pharmacy,
			Rating:        rating.Summary{Average: 4, Count: 1},
			RecentRatings: []*entity.Rating{{ID: uuid.New(), PharmacyID: pharmacy.ID, Score: 4, Comment: &comment, Approved: true, AnonymousID: "secret"}},
			IsOnDuty:      true,
		}
		f.pharmacy.EXPECT().
			GetPublicProfile(mock.Anything, (*entity.Actor)(nil), pharmacy.ID).
			Return(profile, nil)

		rec := doRequest(t, f.echo, http.MethodGet, "/pharmacies/"+pharmacy.ID.String(), "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Pharmacie Centrale")
		assert.Contains(t, rec.Body.String(), "Très bon accueil")
		assert.NotContains(t, rec.Body.String(), "secret")
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()

		f := createTestPharmacyHandler(t, nil)
		id := uuid.New()
		f.pharmacy.EXPECT().
			GetPublicProfile(mock.Anything, (*entity.Actor)(nil), id).
			Return(nil, domainerrors.ErrPharmacyNotFound)

		rec := doRequest(t, f.echo, http.MethodGet, "/pharmacies/"+id.String(), "")

		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "PHARMACY_NOT_FOUND", decode(t, rec).Error.Code)
	})

	t.Run("malformed id", func(t *testing.T) {
		t.Parallel()

		f := createTestPharmacyHandler(t, nil)

		rec := doRequest(t, f.echo, http.MethodGet, "/pharmacies/not-a-uuid", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestPharmacyHandler_GetDutyStatus(t *testing.T) {
	t.Parallel()

	f := createTestPharmacyHandler(t, nil)
	id := uuid.New()
	at := time.Date(2024, 1, 2, 7, 59, 0, 0, time.UTC)
	period := &entity.DutyPeriod{
		ID:         uuid.New(),
		PharmacyID: id,
		StartAt:    time.Date(2024, 1, 1, 20, 0, 0, 0, time.UTC),
		EndAt:      time.Date(2024, 1, 2, 8, 0, 0, 0, time.UTC),
	}
	f.duty.EXPECT().
		GetDutyStatus(mock.Anything, id, mock.MatchedBy(func(got *time.Time) bool {
			return got != nil && got.Equal(at)
		})).
		Return(&usecase.DutyStatus{PharmacyID: id, At: at, IsOnDuty: true, Periods: []*entity.DutyPeriod{period}}, nil)

	rec := doRequest(t, f.echo, http.MethodGet, "/pharmacies/"+id.String()+"/duty-status?at=2024-01-02T07:59:00Z", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var body DutyStatusResponse
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &body))
	assert.True(t, body.IsOnDuty)
	require.Len(t, body.Periods, 1)
	assert.Equal(t, period.ID, body.Periods[0].ID)
}

func TestPharmacyHandler_GetQRCode(t *testing.T) {
	t.Parallel()

	f := createTestPharmacyHandler(t, nil)
	id := uuid.New()
	png := []byte("\x89PNG")
	f.pharmacy.EXPECT().ProfileQRCode(mock.Anything, id).Return(png, nil)

	rec := doRequest(t, f.echo, http.MethodGet, "/pharmacies/"+id.String()+"/qr", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, png, rec.Body.Bytes())
}

func TestPharmacyHandler_Register(t *testing.T) {
	t.Parallel()

	validBody := `{"name":"Pharmacie du Lac","address":"12 avenue Chardy","city":"Abidjan","phone":"+2250700000001","latitude":5.32,"longitude":-4.02}`

	t.Run("created", func(t *testing.T) {
		t.Parallel()

		actor := pharmacistActor()
		f := createTestPharmacyHandler(t, actor)
		pharmacy := testPharmacy("Pharmacie du Lac")
		pharmacy.Status = entity.PharmacyStatusPending
		f.pharmacy.EXPECT().
			Register(mock.Anything, actor, mock.MatchedBy(func(in *usecase.PharmacyInput) bool {
				return in.Name == "Pharmacie du Lac" && in.Latitude == 5.32 && in.Longitude == -4.02
			})).
			Return(pharmacy, nil)

		rec := doRequest(t, f.echo, http.MethodPost, "/pharmacies", validBody)

		require.Equal(t, http.StatusCreated, rec.Code)
		var body PharmacyResponse
		require.NoError(t, json.Unmarshal(decode(t, rec).Data, &body))
		assert.Equal(t, entity.PharmacyStatusPending, body.Status)
	})

	t.Run("already registered", func(t *testing.T) {
		t.Parallel()

		actor := pharmacistActor()
		f := createTestPharmacyHandler(t, actor)
		f.pharmacy.EXPECT().
			Register(mock.Anything, actor, mock.Anything).
			Return(nil, domainerrors.ErrPharmacyAlreadyExists)

		rec := doRequest(t, f.echo, http.MethodPost, "/pharmacies", validBody)

		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("rejects invalid body", func(t *testing.T) {
		t.Parallel()

		tests := []struct {
			name  string
			body  string
			field string
		}{
			{name: "missing latitude", body: `{"name":"Pharmacie","address":"12 avenue Chardy","city":"Abidjan","phone":"+2250700000001","longitude":-4.02}`, field: "latitude"},
			{name: "latitude out of range", body: `{"name":"Pharmacie","address":"12 avenue Chardy","city":"Abidjan","phone":"+2250700000001","latitude":95,"longitude":-4.02}`, field: "latitude"},
			{name: "bad email", body: `{"name":"Pharmacie","address":"12 avenue Chardy","city":"Abidjan","phone":"+2250700000001","email":"nope","latitude":5,"longitude":-4.02}`, field: "email"},
			{name: "missing name", body: `{"address":"12 avenue Chardy","city":"Abidjan","phone":"+2250700000001","latitude":5,"longitude":-4.02}`, field: "name"},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				t.Parallel()

				f := createTestPharmacyHandler(t, pharmacistActor())

				rec := doRequest(t, f.echo, http.MethodPost, "/pharmacies", tt.body)

				require.Equal(t, http.StatusBadRequest, rec.Code)
				env := decode(t, rec)
				assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
				assert.Contains(t, string(env.Error.Details), `"field":"`+tt.field+`"`)
			})
		}
	})

	t.Run("malformed json", func(t *testing.T) {
		t.Parallel()

		f := createTestPharmacyHandler(t, pharmacistActor())

		rec := doRequest(t, f.echo, http.MethodPost, "/pharmacies", `{"name":`)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "INVALID_INPUT", decode(t, rec).Error.Code)
	})
}

func TestPharmacyHandler_Update_Forbidden(t *testing.T) {
	t.Parallel()

	actor := pharmacistActor()
	f := createTestPharmacyHandler(t, actor)
	id := uuid.New()
	f.pharmacy.EXPECT().
		Update(mock.Anything, actor, id, mock.Anything).
		Return(nil, domainerrors.ErrForbidden)

	rec := doRequest(t, f.echo, http.MethodPut, "/pharmacies/"+id.String(),
		`{"name":"Pharmacie du Lac","address":"12 avenue Chardy","city":"Abidjan","phone":"+2250700000001","latitude":5.32,"longitude":-4.02}`)

	require.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "FORBIDDEN", decode(t, rec).Error.Code)
}
