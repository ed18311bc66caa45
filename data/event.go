package data

import (
	"strconv"
	"strings"
	"time"
)

const (
	UntitledEvent       = "Untitled event"
	LocationUnannounced = "Location to be announced"
)

// DefaultTags are shown on event pages that carry no tags of their own.
var DefaultTags = []string{"Tech", "Conference", "All"}

// Event is the canonical event record used by every page.
type Event struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Date        string   `json:"date,omitempty"`
	Location    string   `json:"location,omitempty"`
	TotalSeats  int      `json:"totalSeats"`
	BookedSeats int      `json:"bookedSeats"`
	ImageURL    string   `json:"imageUrl,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}

// NormalizeEvent never fails: missing or mistyped fields take defaults.
// fallbackID is used when the payload carries neither "id" nor "_id".
func NormalizeEvent(raw any, fallbackID string) Event {
	object, _ := AsObject(raw)

	event := Event{
		ID:          object.ID("id", "_id"),
		Title:       strings.TrimSpace(object.String("title", "name")),
		Description: object.String("description"),
		Date:        object.String("date", "eventDate"),
		Location:    strings.TrimSpace(object.String("location", "city")),
		TotalSeats:  count(object.Number("totalSeats", "capacity", "maxSeats")),
		BookedSeats: count(object.Number("bookedSeats", "registrations", "soldSeats", "booked")),
		ImageURL:    object.String("imageUrl", "image"),
		Tags:        object.Strings("tags"),
	}
	if event.ID == "" {
		event.ID = fallbackID
	}
	if event.Title == "" {
		event.Title = UntitledEvent
	}
	return event
}

// NormalizeEvents maps a list payload, using list positions as fallback IDs.
func NormalizeEvents(raw any) ([]Event, error) {
	list, err := DecodeList(raw)
	if err != nil {
		return nil, err
	}
	events := make([]Event, 0, len(list))
	for index, item := range list {
		events = append(events, NormalizeEvent(item, strconv.Itoa(index)))
	}
	return events, nil
}

// SpotsLeft never goes negative, even when the API reports overbooking.
func (event Event) SpotsLeft() int {
	if left := event.TotalSeats - event.BookedSeats; left > 0 {
		return left
	}
	return 0
}

// BookingClosed reports whether the event already started.
func (event Event) BookingClosed(now time.Time) bool {
	start, ok := ParseDate(event.Date)
	return ok && start.Before(now)
}

func (event Event) LocationLabel() string {
	if event.Location == "" {
		return LocationUnannounced
	}
	return event.Location
}

func (event Event) DateLabel() string { return DateLabel(event.Date) }

func (event Event) TimeLabel() string { return TimeLabel(event.Date) }

func (event Event) Pieces() DatePieces { return PiecesOf(event.Date) }

func (event Event) DisplayTags() []string {
	if len(event.Tags) == 0 {
		return DefaultTags
	}
	return event.Tags
}
