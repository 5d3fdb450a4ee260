package service

import (
	"fmt"
	"regexp"
	"time"

	"github.com/boropappa/china-trip-solo/backend/internal/codec"
	"github.com/boropappa/china-trip-solo/backend/internal/domain"
)

// Export is a rendered trip ready to be sent as a download or copied to
// a clipboard.
type Export struct {
	Content     []byte
	ContentType string
	Filename    string
}

// ExportService renders a trip into one of the supported formats.
// It owns format dispatch and filenames; the codecs own the bytes.
type ExportService struct {
	now func() time.Time
}

// NewExportService constructs an ExportService. now stamps ICS
// CREATED/LAST-MODIFIED; pass time.Now in production and a fixed clock
// in tests.
func NewExportService(now func() time.Time) *ExportService {
	return &ExportService{now: now}
}

// filenameUnsafe matches every character replaced with "_" in download
// filenames.
var filenameUnsafe = regexp.MustCompile(`[^a-zA-Z0-9]`)

// Export renders the trip in the requested format: "json", "csv",
// "ics" or "text". An unknown format is a validation error.
func (s *ExportService) Export(trip domain.Trip, format string) (Export, error) {
	base := filenameUnsafe.ReplaceAllString(trip.Title, "_")

	switch format {
	case domain.FormatJSON:
		content, err := codec.ExportTripJSON(trip)
		if err != nil {
			return Export{}, fmt.Errorf("service.ExportService.Export: %w", err)
		}
		return Export{Content: content, ContentType: "application/json", Filename: base + ".json"}, nil
	case domain.FormatCSV:
		return Export{
			Content:     []byte(codec.ExportTripCSV(trip)),
			ContentType: "text/csv",
			Filename:    base + ".csv",
		}, nil
	case domain.FormatICS:
		return Export{
			Content:     []byte(codec.ExportTripICS(trip, s.now())),
			ContentType: "text/calendar",
			Filename:    base + ".ics",
		}, nil
	case domain.FormatText:
		return Export{
			Content:     []byte(codec.ExportTripText(trip)),
			ContentType: "text/plain; charset=utf-8",
			Filename:    base + ".txt",
		}, nil
	default:
		return Export{}, fmt.Errorf("service.ExportService.Export: %w: unknown format %q",
			domain.ErrValidation, format)
	}
}
