package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/Foysal-Munsy/EventBuddy-Frontend/data"
)

// NewEvent is the body of an event creation request.
type NewEvent struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Date        string `json:"date"`
	TotalSeats  int    `json:"totalSeats"`
	ImageURL    string `json:"imageUrl"`
}

type bookBody struct {
	Seats int `json:"seats"`
}

// Events lists every event.
func (client *Client) Events(ctx context.Context, auth Auth) ([]data.Event, error) {
	return client.listEvents(ctx, "list_events", "/events", auth)
}

// UpcomingEvents lists events that have not started yet.
func (client *Client) UpcomingEvents(ctx context.Context) ([]data.Event, error) {
	return client.listEvents(ctx, "upcoming_events", "/events/upcoming", Auth{})
}

// PreviousEvents lists past events.
func (client *Client) PreviousEvents(ctx context.Context) ([]data.Event, error) {
	return client.listEvents(ctx, "previous_events", "/events/previous", Auth{})
}

func (client *Client) listEvents(ctx context.Context, operation, path string, auth Auth) ([]data.Event, error) {
	result, err := client.do(ctx, operation, http.MethodGet, path, auth, nil)
	if err != nil {
		return nil, err
	}
	if !result.ok() {
		return nil, result.failure(fmt.Sprintf("Failed to fetch events (%d)", result.status), "detail", "message")
	}
	events, err := data.NormalizeEvents(result.payload)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", operation, err)
	}
	return events, nil
}

// Event fetches one event. Errors match ErrNotFound for unknown IDs.
func (client *Client) Event(ctx context.Context, id string) (data.Event, error) {
	result, err := client.do(ctx, "get_event", http.MethodGet, "/events/"+url.PathEscape(id), Auth{}, nil)
	if err != nil {
		return data.Event{}, err
	}
	if !result.ok() {
		return data.Event{}, result.failure(fmt.Sprintf("Failed to load event (%d)", result.status), "detail", "message")
	}
	if result.payload == nil {
		return data.Event{}, &Error{Status: http.StatusNotFound, Message: "Event not found"}
	}
	record, err := data.UnwrapRecord(result.payload)
	if err != nil {
		return data.Event{}, fmt.Errorf("get_event: %w", err)
	}
	return data.NormalizeEvent(record, id), nil
}

// Book reserves seats and returns the service's confirmation message, if
// it sent one.
func (client *Client) Book(ctx context.Context, auth Auth, id string, seats int) (string, error) {
	result, err := client.do(ctx, "book_event", http.MethodPost, "/events/"+url.PathEscape(id)+"/book", auth, bookBody{Seats: seats})
	if err != nil {
		return "", err
	}
	if !result.ok() {
		return "", result.failure(fmt.Sprintf("Unable to book %d seat(s).", seats), "message", "detail")
	}
	return messageOf(result.payload, "message"), nil
}

// MyBookings lists the bookings of the signed-in user.
func (client *Client) MyBookings(ctx context.Context, auth Auth) ([]data.Booking, error) {
	result, err := client.do(ctx, "my_bookings", http.MethodGet, "/events/my-bookings", auth, nil)
	if err != nil {
		return nil, err
	}
	if !result.ok() {
		return nil, result.failure(fmt.Sprintf("Failed to fetch bookings (%d)", result.status), "detail", "message")
	}
	bookings, err := data.NormalizeBookings(result.payload)
	if err != nil {
		return nil, fmt.Errorf("my_bookings: %w", err)
	}
	return bookings, nil
}

// CreateEvent adds an event. Admin only.
func (client *Client) CreateEvent(ctx context.Context, auth Auth, event NewEvent) error {
	result, err := client.do(ctx, "create_event", http.MethodPost, "/events/create", auth, event)
	if err != nil {
		return err
	}
	if !result.ok() {
		return result.failure("Failed to create event", "detail", "message")
	}
	return nil
}

// DeleteEvent removes an event. Admin only.
func (client *Client) DeleteEvent(ctx context.Context, auth Auth, id string) error {
	result, err := client.do(ctx, "delete_event", http.MethodDelete, "/events/"+url.PathEscape(id), auth, nil)
	if err != nil {
		return err
	}
	if !result.ok() {
		return result.failure(fmt.Sprintf("Failed to delete event (%d)", result.status), "detail", "message")
	}
	return nil
}
