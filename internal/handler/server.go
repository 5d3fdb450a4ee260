// Package handler implements the HTTP handlers for the itinerary
// planner API. All handlers are methods on Server; they are split into
// resource-specific files (trip.go, event.go, export.go, ...) but share
// the same struct so they can access its dependencies.
package handler

import (
	"context"

	"github.com/go-chi/chi/v5"

	"github.com/boropappa/china-trip-solo/backend/internal/domain"
	"github.com/boropappa/china-trip-solo/backend/internal/service"
)

// TripServicer defines the business operations the trip and event
// handlers depend on. Defining the interface here (in the consumer
// package) follows the Go convention: "accept interfaces, return
// concrete types". It lets handler tests inject a mock without touching
// the store or service layer.
type TripServicer interface {
	List(ctx context.Context) []domain.Trip
	Get(ctx context.Context, id string) (domain.Trip, error)
	Create(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	Update(ctx context.Context, id string, patch service.TripPatch) (domain.Trip, error)
	Delete(ctx context.Context, id string) error
	Import(ctx context.Context, raw []byte) (domain.Trip, error)

	AddEvent(ctx context.Context, tripID, date string, event domain.Event) (domain.Event, error)
	UpdateEvent(ctx context.Context, tripID, date, eventID string, event domain.Event) (domain.Event, error)
	DeleteEvent(ctx context.Context, tripID, date, eventID string) error
	ReorderEvents(ctx context.Context, tripID, date, fromID, toID string) ([]domain.Event, error)
}

// LocationServicer defines the operations the location handler depends on.
type LocationServicer interface {
	List(ctx context.Context) []domain.FavoriteLocation
	Create(ctx context.Context, location domain.FavoriteLocation) (domain.FavoriteLocation, error)
	Update(ctx context.Context, id string, location domain.FavoriteLocation) (domain.FavoriteLocation, error)
	Delete(ctx context.Context, id string) error
}

// SettingsServicer defines the operations the settings handler depends on.
type SettingsServicer interface {
	Get(ctx context.Context) domain.AppSettings
	Update(ctx context.Context, patch domain.SettingsPatch) (domain.AppSettings, error)
}

// Exporter renders a trip into a downloadable format.
type Exporter interface {
	Export(trip domain.Trip, format string) (service.Export, error)
}

// DataServicer clears all persisted application data.
type DataServicer interface {
	ClearAll(ctx context.Context)
}

// Server holds the dependencies shared by all endpoint handlers.
type Server struct {
	trips     TripServicer
	locations LocationServicer
	settings  SettingsServicer
	exporter  Exporter
	data      DataServicer
}

// NewServer constructs the Server with all its dependencies.
func NewServer(trips TripServicer, locations LocationServicer, settings SettingsServicer, exporter Exporter, data DataServicer) *Server {
	return &Server{
		trips:     trips,
		locations: locations,
		settings:  settings,
		exporter:  exporter,
		data:      data,
	}
}

// Routes builds the full route tree for the API.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/healthz", s.GetHealth)

	r.Route("/trips", func(r chi.Router) {
		r.Get("/", s.ListTrips)
		r.Post("/", s.CreateTrip)
		r.Post("/import", s.ImportTrip)

		r.Route("/{tripID}", func(r chi.Router) {
			r.Get("/", s.GetTrip)
			r.Put("/", s.UpdateTrip)
			r.Delete("/", s.DeleteTrip)
			r.Get("/export", s.ExportTrip)

			r.Route("/days/{date}", func(r chi.Router) {
				r.Get("/timeline", s.GetTimeline)
				r.Post("/events", s.CreateEvent)
				r.Post("/events/reorder", s.ReorderEvents)
				r.Put("/events/{eventID}", s.UpdateEvent)
				r.Delete("/events/{eventID}", s.DeleteEvent)
			})
		})
	})

	r.Route("/locations", func(r chi.Router) {
		r.Get("/", s.ListLocations)
		r.Post("/", s.CreateLocation)
		r.Put("/{locationID}", s.UpdateLocation)
		r.Delete("/{locationID}", s.DeleteLocation)
	})

	r.Get("/settings", s.GetSettings)
	r.Patch("/settings", s.UpdateSettings)

	r.Delete("/data", s.ClearData)

	return r
}
