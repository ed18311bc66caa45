package data

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const (
	DateUnknown = "Date to be announced"
	TimeUnknown = "Time to be announced"
)

// Location is the zone used for naive timestamps and for display.
var Location = time.Local

var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

// ParseDate parses the timestamp formats the booking API emits. Date-only
// values are midnight UTC.
func ParseDate(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}
	for index, layout := range dateLayouts {
		var parsed time.Time
		var err error
		if index == 0 {
			parsed, err = time.Parse(layout, value)
		} else {
			parsed, err = time.ParseInLocation(layout, value, Location)
		}
		if err == nil {
			return parsed, true
		}
	}
	if parsed, err := time.Parse("2006-01-02", value); err == nil {
		return parsed, true
	}
	return time.Time{}, false
}

// DateLabel formats value like "Monday, April 14, 2025". Unparseable
// dates are shown as given.
func DateLabel(value string) string {
	parsed, ok := ParseDate(value)
	if !ok {
		if value = strings.TrimSpace(value); value != "" {
			return value
		}
		return DateUnknown
	}
	return parsed.In(Location).Format("Monday, January 2, 2006")
}

// TimeLabel formats value like "3:04 PM".
func TimeLabel(value string) string {
	parsed, ok := ParseDate(value)
	if !ok {
		return TimeUnknown
	}
	return parsed.In(Location).Format("3:04 PM")
}

// DatePieces are the calendar badge parts of a card.
type DatePieces struct {
	Month   string
	Day     string
	Weekday string
}

func PiecesOf(value string) DatePieces {
	parsed, ok := ParseDate(value)
	if !ok {
		return DatePieces{}
	}
	parsed = parsed.In(Location)
	return DatePieces{
		Month:   strings.ToUpper(parsed.Format("Jan")),
		Day:     parsed.Format("02"),
		Weekday: parsed.Format("Monday"),
	}
}

var (
	twentyFourHour = regexp.MustCompile(`^([01]?\d|2[0-3]):([0-5]\d)$`)
	twelveHour     = regexp.MustCompile(`(?i)^([0-1]?\d):([0-5]\d)\s*(AM|PM)$`)
)

// ParseTimeTo24h normalizes the start of a free-text time range
// ("9:30 AM - 11:00 AM", "14:30") to "HH:MM". Unrecognized input is returned
// trimmed so the combined timestamp fails to parse.
func ParseTimeTo24h(input string) string {
	if input == "" {
		return "00:00"
	}
	segment := strings.TrimSpace(strings.SplitN(input, "-", 2)[0])
	if segment == "" {
		return "00:00"
	}

	if match := twentyFourHour.FindStringSubmatch(segment); match != nil {
		hour, _ := strconv.Atoi(match[1])
		return fmt.Sprintf("%02d:%s", hour, match[2])
	}

	if match := twelveHour.FindStringSubmatch(segment); match != nil {
		hour, _ := strconv.Atoi(match[1])
		meridiem := strings.ToUpper(match[3])
		if meridiem == "PM" && hour != 12 {
			hour += 12
		}
		if meridiem == "AM" && hour == 12 {
			hour = 0
		}
		return fmt.Sprintf("%02d:%s", hour, match[2])
	}

	return segment
}

// CombineDateTime joins a "YYYY-MM-DD" date and a free-text time into an ISO
// UTC timestamp. ok is false when the result is not a valid instant.
func CombineDateTime(date, clock string) (string, bool) {
	date = strings.TrimSpace(date)
	if date == "" {
		return "", false
	}
	composed := date + "T" + ParseTimeTo24h(clock)
	parsed, err := time.ParseInLocation("2006-01-02T15:04", composed, Location)
	if err != nil {
		return "", false
	}
	return parsed.UTC().Format("2006-01-02T15:04:05.000Z"), true
}

// SplitDateTimeFields is the inverse of CombineDateTime for prefilling forms.
func SplitDateTimeFields(value string) (date, clock string) {
	parsed, ok := ParseDate(value)
	if !ok {
		return "", ""
	}
	parsed = parsed.In(Location)
	return parsed.Format("2006-01-02"), parsed.Format("15:04")
}
