package data_test

import (
	"testing"
	"time"

	"github.com/Foysal-Munsy/EventBuddy-Frontend/data"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeTo24h(t *testing.T) {
	tests := map[string]string{
		"":                   "00:00",
		" - 11:00":           "00:00",
		"9:05":               "09:05",
		"14:30":              "14:30",
		"9:00 AM - 11:00 AM": "09:00",
		"12:15 am":           "00:15",
		"12:15 PM":           "12:15",
		"3:45pm":             "15:45",
		"noon":               "noon",
	}
	for input, want := range tests {
		assert.Equal(t, want, data.ParseTimeTo24h(input), input)
	}
}

func TestCombineDateTime(t *testing.T) {
	withUTC(t)

	iso, ok := data.CombineDateTime("2025-04-14", "3:00 PM - 5:00 PM")
	require.True(t, ok)
	assert.Equal(t, "2025-04-14T15:00:00.000Z", iso)

	iso, ok = data.CombineDateTime("2025-04-14", "")
	require.True(t, ok)
	assert.Equal(t, "2025-04-14T00:00:00.000Z", iso)

	_, ok = data.CombineDateTime("", "10:00")
	assert.False(t, ok)

	_, ok = data.CombineDateTime("2025-04-14", "noon")
	assert.False(t, ok)

	_, ok = data.CombineDateTime("14/04/2025", "10:00")
	assert.False(t, ok)
}

func TestCombineDateTime_UsesDisplayLocation(t *testing.T) {
	previous := data.Location
	data.Location = time.FixedZone("UTC+6", 6*60*60)
	t.Cleanup(func() { data.Location = previous })

	iso, ok := data.CombineDateTime("2025-04-14", "09:00")
	require.True(t, ok)
	assert.Equal(t, "2025-04-14T03:00:00.000Z", iso)

	date, clock := data.SplitDateTimeFields(iso)
	assert.Equal(t, "2025-04-14", date)
	assert.Equal(t, "09:00", clock)
}

func TestSplitDateTimeFields_Invalid(t *testing.T) {
	date, clock := data.SplitDateTimeFields("soon")
	assert.Empty(t, date)
	assert.Empty(t, clock)
}

func TestLabels(t *testing.T) {
	withUTC(t)

	assert.Equal(t, "Monday, April 14, 2025", data.DateLabel("2025-04-14T15:00:00.000Z"))
	assert.Equal(t, "3:00 PM", data.TimeLabel("2025-04-14T15:00:00.000Z"))
	assert.Equal(t, "Monday, April 14, 2025", data.DateLabel("2025-04-14"))
	assert.Equal(t, data.DatePieces{Month: "APR", Day: "14", Weekday: "Monday"}, data.PiecesOf("2025-04-14T15:00:00Z"))
	assert.Equal(t, "Spring 2026", data.DateLabel("Spring 2026"))
	assert.Equal(t, data.TimeUnknown, data.TimeLabel("Spring 2026"))
	assert.Equal(t, data.DatePieces{}, data.PiecesOf("later"))
}
