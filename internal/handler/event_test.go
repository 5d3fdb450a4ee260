package handler_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/boropappa/china-trip-solo/backend/internal/domain"
)

const eventsPath = "/trips/trip-1/days/2025-06-01/events"

// ---- POST .../events -------------------------------------------------------

func TestCreateEvent_201(t *testing.T) {
	var gotTripID, gotDate string
	svc := &mockTripServicer{
		addEvent: func(_ context.Context, tripID, date string, event domain.Event) (domain.Event, error) {
			gotTripID, gotDate = tripID, date
			event.ID = "ev-1"
			return event, nil
		},
	}

	body := jsonBody(t, map[string]any{
		"title":     "Great Wall",
		"startTime": "08:30",
		"transport": "bus",
	})
	rec := doRequest(t, newHTTPHandler(svc), http.MethodPost, eventsPath, body)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "trip-1", gotTripID)
	assert.Equal(t, "2025-06-01", gotDate)

	var got domain.Event
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, "ev-1", got.ID)
	assert.Equal(t, "08:30", got.StartTime)
}

func TestCreateEvent_422_BadClock(t *testing.T) {
	svc := &mockTripServicer{} // must not be reached

	body := jsonBody(t, map[string]any{"title": "E", "startTime": "8:30am"})
	rec := doRequest(t, newHTTPHandler(svc), http.MethodPost, eventsPath, body)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "validation_error", errorCode(t, rec))
}

func TestCreateEvent_404_UnknownDay(t *testing.T) {
	svc := &mockTripServicer{
		addEvent: func(_ context.Context, _, date string, _ domain.Event) (domain.Event, error) {
			return domain.Event{}, fmt.Errorf("day %q: %w", date, domain.ErrNotFound)
		},
	}

	body := jsonBody(t, map[string]any{"title": "E"})
	rec := doRequest(t, newHTTPHandler(svc), http.MethodPost,
		"/trips/trip-1/days/2025-12-31/events", body)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// ---- PUT .../events/{eventID} ----------------------------------------------

func TestUpdateEvent_200(t *testing.T) {
	var gotEventID string
	svc := &mockTripServicer{
		updateEvent: func(_ context.Context, _, _, eventID string, event domain.Event) (domain.Event, error) {
			gotEventID = eventID
			event.ID = eventID
			return event, nil
		},
	}

	body := jsonBody(t, map[string]any{"title": "Renamed", "endTime": "17:00"})
	rec := doRequest(t, newHTTPHandler(svc), http.MethodPut, eventsPath+"/ev-1", body)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ev-1", gotEventID)
}

// ---- DELETE .../events/{eventID} -------------------------------------------

func TestDeleteEvent_204(t *testing.T) {
	svc := &mockTripServicer{
		deleteEvent: func(_ context.Context, _, _, _ string) error { return nil },
	}

	rec := doRequest(t, newHTTPHandler(svc), http.MethodDelete, eventsPath+"/ev-1", nil)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestDeleteEvent_404(t *testing.T) {
	svc := &mockTripServicer{
		deleteEvent: func(_ context.Context, _, _, eventID string) error {
			return fmt.Errorf("event %q: %w", eventID, domain.ErrNotFound)
		},
	}

	rec := doRequest(t, newHTTPHandler(svc), http.MethodDelete, eventsPath+"/nope", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// ---- POST .../events/reorder -----------------------------------------------

func TestReorderEvents_200(t *testing.T) {
	reordered := []domain.Event{
		{ID: "b", Title: "B", OrderIndex: 0},
		{ID: "a", Title: "A", OrderIndex: 1},
	}
	var gotFrom, gotTo string
	svc := &mockTripServicer{
		reorderEvents: func(_ context.Context, _, _, fromID, toID string) ([]domain.Event, error) {
			gotFrom, gotTo = fromID, toID
			return reordered, nil
		},
	}

	body := jsonBody(t, map[string]any{"fromId": "a", "toId": "b"})
	rec := doRequest(t, newHTTPHandler(svc), http.MethodPost, eventsPath+"/reorder", body)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "a", gotFrom)
	assert.Equal(t, "b", gotTo)

	var got []domain.Event
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	require.Len(t, got, 2)
	assert.Equal(t, "b", got[0].ID)
}

func TestReorderEvents_422_MissingIDs(t *testing.T) {
	svc := &mockTripServicer{}

	body := jsonBody(t, map[string]any{"fromId": "a"})
	rec := doRequest(t, newHTTPHandler(svc), http.MethodPost, eventsPath+"/reorder", body)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}
