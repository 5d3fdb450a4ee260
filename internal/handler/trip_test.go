package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/boropappa/china-trip-solo/backend/internal/codec"
	"github.com/boropappa/china-trip-solo/backend/internal/domain"
	"github.com/boropappa/china-trip-solo/backend/internal/handler"
	"github.com/boropappa/china-trip-solo/backend/internal/service"
)

// mockTripServicer is a test double for handler.TripServicer.
// Set only the method fields your test needs.
type mockTripServicer struct {
	list          func(ctx context.Context) []domain.Trip
	get           func(ctx context.Context, id string) (domain.Trip, error)
	create        func(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	update        func(ctx context.Context, id string, patch service.TripPatch) (domain.Trip, error)
	delete        func(ctx context.Context, id string) error
	importTrip    func(ctx context.Context, raw []byte) (domain.Trip, error)
	addEvent      func(ctx context.Context, tripID, date string, event domain.Event) (domain.Event, error)
	updateEvent   func(ctx context.Context, tripID, date, eventID string, event domain.Event) (domain.Event, error)
	deleteEvent   func(ctx context.Context, tripID, date, eventID string) error
	reorderEvents func(ctx context.Context, tripID, date, fromID, toID string) ([]domain.Event, error)
}

func (m *mockTripServicer) List(ctx context.Context) []domain.Trip {
	return m.list(ctx)
}
func (m *mockTripServicer) Get(ctx context.Context, id string) (domain.Trip, error) {
	return m.get(ctx, id)
}
func (m *mockTripServicer) Create(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	return m.create(ctx, trip)
}
func (m *mockTripServicer) Update(ctx context.Context, id string, patch service.TripPatch) (domain.Trip, error) {
	return m.update(ctx, id, patch)
}
func (m *mockTripServicer) Delete(ctx context.Context, id string) error {
	return m.delete(ctx, id)
}
func (m *mockTripServicer) Import(ctx context.Context, raw []byte) (domain.Trip, error) {
	return m.importTrip(ctx, raw)
}
func (m *mockTripServicer) AddEvent(ctx context.Context, tripID, date string, event domain.Event) (domain.Event, error) {
	return m.addEvent(ctx, tripID, date, event)
}
func (m *mockTripServicer) UpdateEvent(ctx context.Context, tripID, date, eventID string, event domain.Event) (domain.Event, error) {
	return m.updateEvent(ctx, tripID, date, eventID, event)
}
func (m *mockTripServicer) DeleteEvent(ctx context.Context, tripID, date, eventID string) error {
	return m.deleteEvent(ctx, tripID, date, eventID)
}
func (m *mockTripServicer) ReorderEvents(ctx context.Context, tripID, date, fromID, toID string) ([]domain.Event, error) {
	return m.reorderEvents(ctx, tripID, date, fromID, toID)
}

// compile-time check: mockTripServicer must satisfy handler.TripServicer.
var _ handler.TripServicer = (*mockTripServicer)(nil)

// ---- helpers ---------------------------------------------------------------

// newHTTPHandler wires a Server with the given mock into the chi route
// tree, mirroring how main.go wires it in production. Unused
// dependencies stay nil; tests only hit the routes they mock.
func newHTTPHandler(trips handler.TripServicer) http.Handler {
	return handler.NewServer(trips, nil, nil, nil, nil).Routes()
}

func tripFixture() domain.Trip {
	return domain.Trip{
		ID:          "trip-1",
		Title:       "Summer in Beijing",
		Destination: "Beijing",
		StartDate:   "2025-06-01",
		EndDate:     "2025-06-03",
		Days: []domain.Day{
			{Date: "2025-06-01", Events: []domain.Event{}},
			{Date: "2025-06-02", Events: []domain.Event{}},
			{Date: "2025-06-03", Events: []domain.Event{}},
		},
	}
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

func doRequest(t *testing.T, h http.Handler, method, target string, body *bytes.Buffer) *httptest.ResponseRecorder {
	t.Helper()
	if body == nil {
		body = &bytes.Buffer{}
	}
	req := httptest.NewRequest(method, target, body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

// errorCode pulls error.code out of the standard error envelope.
func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var resp struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp.Error.Code
}

// ---- GET /trips ------------------------------------------------------------

func TestListTrips_200(t *testing.T) {
	fixture := tripFixture()
	svc := &mockTripServicer{
		list: func(_ context.Context) []domain.Trip { return []domain.Trip{fixture} },
	}

	rec := doRequest(t, newHTTPHandler(svc), http.MethodGet, "/trips", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	var got []domain.Trip
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	require.Len(t, got, 1)
	assert.Equal(t, fixture.ID, got[0].ID)
}

// ---- POST /trips -----------------------------------------------------------

func TestCreateTrip_201(t *testing.T) {
	fixture := tripFixture()
	var received domain.Trip
	svc := &mockTripServicer{
		create: func(_ context.Context, trip domain.Trip) (domain.Trip, error) {
			received = trip
			return fixture, nil
		},
	}

	body := jsonBody(t, map[string]any{
		"title":       "Summer in Beijing",
		"destination": "Beijing",
		"startDate":   "2025-06-01",
		"endDate":     "2025-06-03",
	})
	rec := doRequest(t, newHTTPHandler(svc), http.MethodPost, "/trips", body)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "2025-06-01", received.StartDate)
	assert.Equal(t, "2025-06-03", received.EndDate)

	var got domain.Trip
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, fixture.ID, got.ID)
}

func TestCreateTrip_422_MalformedDate(t *testing.T) {
	svc := &mockTripServicer{} // must not be reached

	body := jsonBody(t, map[string]any{
		"title":       "T",
		"destination": "D",
		"startDate":   "June 1st",
		"endDate":     "2025-06-03",
	})
	rec := doRequest(t, newHTTPHandler(svc), http.MethodPost, "/trips", body)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "validation_error", errorCode(t, rec))
}

func TestCreateTrip_422_MissingDates(t *testing.T) {
	svc := &mockTripServicer{}

	body := jsonBody(t, map[string]any{"title": "T", "destination": "D"})
	rec := doRequest(t, newHTTPHandler(svc), http.MethodPost, "/trips", body)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestCreateTrip_422_ServiceValidation(t *testing.T) {
	svc := &mockTripServicer{
		create: func(_ context.Context, _ domain.Trip) (domain.Trip, error) {
			return domain.Trip{}, fmt.Errorf("service.TripService.Create: %w: title is required", domain.ErrValidation)
		},
	}

	body := jsonBody(t, map[string]any{
		"title":       "",
		"destination": "D",
		"startDate":   "2025-06-01",
		"endDate":     "2025-06-03",
	})
	rec := doRequest(t, newHTTPHandler(svc), http.MethodPost, "/trips", body)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "validation_error", errorCode(t, rec))
}

// ---- GET /trips/{tripID} ---------------------------------------------------

func TestGetTrip_200(t *testing.T) {
	fixture := tripFixture()
	svc := &mockTripServicer{
		get: func(_ context.Context, id string) (domain.Trip, error) {
			assert.Equal(t, fixture.ID, id)
			return fixture, nil
		},
	}

	rec := doRequest(t, newHTTPHandler(svc), http.MethodGet, "/trips/"+fixture.ID, nil)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGetTrip_404(t *testing.T) {
	svc := &mockTripServicer{
		get: func(_ context.Context, id string) (domain.Trip, error) {
			return domain.Trip{}, fmt.Errorf("trip %q: %w", id, domain.ErrNotFound)
		},
	}

	rec := doRequest(t, newHTTPHandler(svc), http.MethodGet, "/trips/nope", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "not_found", errorCode(t, rec))
}

// ---- PUT /trips/{tripID} ---------------------------------------------------

func TestUpdateTrip_200_PartialPatch(t *testing.T) {
	fixture := tripFixture()
	var received service.TripPatch
	svc := &mockTripServicer{
		update: func(_ context.Context, _ string, patch service.TripPatch) (domain.Trip, error) {
			received = patch
			return fixture, nil
		},
	}

	body := jsonBody(t, map[string]any{"title": "Renamed"})
	rec := doRequest(t, newHTTPHandler(svc), http.MethodPut, "/trips/trip-1", body)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, received.Title)
	assert.Equal(t, "Renamed", *received.Title)
	assert.Nil(t, received.StartDate, "absent fields stay nil in the patch")
	assert.Nil(t, received.EndDate)
}

// ---- DELETE /trips/{tripID} ------------------------------------------------

func TestDeleteTrip_204(t *testing.T) {
	svc := &mockTripServicer{
		delete: func(_ context.Context, id string) error { return nil },
	}

	rec := doRequest(t, newHTTPHandler(svc), http.MethodDelete, "/trips/trip-1", nil)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestDeleteTrip_404(t *testing.T) {
	svc := &mockTripServicer{
		delete: func(_ context.Context, id string) error {
			return fmt.Errorf("trip %q: %w", id, domain.ErrNotFound)
		},
	}

	rec := doRequest(t, newHTTPHandler(svc), http.MethodDelete, "/trips/nope", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// ---- POST /trips/import ----------------------------------------------------

func TestImportTrip_201(t *testing.T) {
	fixture := tripFixture()
	svc := &mockTripServicer{
		importTrip: func(_ context.Context, raw []byte) (domain.Trip, error) {
			assert.JSONEq(t, `{"title":"T"}`, string(raw))
			return fixture, nil
		},
	}

	rec := doRequest(t, newHTTPHandler(svc), http.MethodPost, "/trips/import",
		bytes.NewBufferString(`{"title":"T"}`))

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestImportTrip_400_ParseError(t *testing.T) {
	svc := &mockTripServicer{
		importTrip: func(_ context.Context, _ []byte) (domain.Trip, error) {
			return domain.Trip{}, fmt.Errorf("codec.ImportTripJSON: %w: unexpected end of input", codec.ErrParse)
		},
	}

	rec := doRequest(t, newHTTPHandler(svc), http.MethodPost, "/trips/import",
		bytes.NewBufferString(`{"broken`))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "parse_error", errorCode(t, rec))
}

func TestImportTrip_422_InvalidTrip(t *testing.T) {
	svc := &mockTripServicer{
		importTrip: func(_ context.Context, _ []byte) (domain.Trip, error) {
			return domain.Trip{}, fmt.Errorf("codec.ImportTripJSON: %w", codec.ErrInvalidTrip)
		},
	}

	rec := doRequest(t, newHTTPHandler(svc), http.MethodPost, "/trips/import",
		bytes.NewBufferString(`{"title":"T"}`))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "validation_error", errorCode(t, rec))
}
