package codec_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/boropappa/china-trip-solo/backend/internal/codec"
	"github.com/boropappa/china-trip-solo/backend/internal/domain"
)

func csvLines(t *testing.T, out string) []string {
	t.Helper()
	trimmed := strings.TrimRight(out, "\n")
	require.NotEmpty(t, trimmed)
	return strings.Split(trimmed, "\n")
}

func TestCSV_HeaderRow(t *testing.T) {
	out := codec.ExportTripCSV(domain.Trip{})

	lines := csvLines(t, out)
	require.Len(t, lines, 1)
	assert.Equal(t, "Date,Start Time,End Time,Title,Address,Transport,Tags,Notes,Duration (min)", lines[0])
}

func TestCSV_OneRowPerEvent(t *testing.T) {
	trip := tripFixture() // 2 events on day one, none on day two

	lines := csvLines(t, codec.ExportTripCSV(trip))

	assert.Len(t, lines, 3, "header plus one row per event")
}

func TestCSV_RowContent(t *testing.T) {
	trip := tripFixture()

	lines := csvLines(t, codec.ExportTripCSV(trip))

	assert.Equal(t, "2025-06-01,09:00,12:00,Forbidden City,4 Jingshan Front St,subway,sightseeing;culture,Book tickets ahead,180", lines[1])
	// The untimed event has empty time and duration cells.
	assert.Equal(t, "2025-06-01,,,Night market,,,food,,", lines[2])
}

func TestCSV_QuotingRoundTrip(t *testing.T) {
	trip := domain.Trip{
		Days: []domain.Day{{
			Date: "2025-06-01",
			Events: []domain.Event{{
				ID:    "e1",
				Title: `He said, "hi"`,
				Tags:  []string{},
			}},
		}},
	}

	lines := csvLines(t, codec.ExportTripCSV(trip))

	require.Len(t, lines, 2)
	assert.Contains(t, lines[1], `"He said, ""hi"""`)
}

func TestCSV_NewlineInNotesStaysQuoted(t *testing.T) {
	trip := domain.Trip{
		Days: []domain.Day{{
			Date: "2025-06-01",
			Events: []domain.Event{{
				ID:    "e1",
				Title: "E",
				Notes: "line one\nline two",
				Tags:  []string{},
			}},
		}},
	}

	out := codec.ExportTripCSV(trip)

	assert.Contains(t, out, "\"line one\nline two\"")
}

func TestCSV_StorageOrderNotTimeSorted(t *testing.T) {
	trip := domain.Trip{
		Days: []domain.Day{{
			Date: "2025-06-01",
			Events: []domain.Event{
				{ID: "e1", Title: "Later", StartTime: "18:00", Tags: []string{}},
				{ID: "e2", Title: "Earlier", StartTime: "08:00", Tags: []string{}},
			},
		}},
	}

	lines := csvLines(t, codec.ExportTripCSV(trip))

	require.Len(t, lines, 3)
	assert.Contains(t, lines[1], "Later")
	assert.Contains(t, lines[2], "Earlier")
}
