package data

import (
	"strconv"
	"strings"
)

// Booking is one of the signed-in user's registrations.
type Booking struct {
	ID       string `json:"id"`
	EventID  string `json:"eventId,omitempty"`
	Title    string `json:"title"`
	Date     string `json:"date,omitempty"`
	Location string `json:"location,omitempty"`
	Timeslot string `json:"timeslot"`
	Seats    int    `json:"seats"`
}

// NormalizeBooking follows NormalizeEvent, except that seats default to 1
// and the timeslot is derived from the date when the payload has none.
// Bookings that embed their event under "event" fall back to its fields.
func NormalizeBooking(raw any, fallbackID string) Booking {
	object, _ := AsObject(raw)
	event, _ := AsObject(object["event"])

	booking := Booking{
		ID:       object.ID("id", "_id", "bookingId"),
		EventID:  object.ID("eventId", "event_id"),
		Title:    strings.TrimSpace(object.String("title", "eventTitle")),
		Date:     object.String("date", "eventDate"),
		Location: strings.TrimSpace(object.String("location")),
		Timeslot: strings.TrimSpace(object.String("timeslot", "timeSlot")),
	}
	if booking.EventID == "" {
		booking.EventID = event.ID("id", "_id")
	}
	if booking.Title == "" {
		booking.Title = strings.TrimSpace(event.String("title", "name"))
	}
	if booking.Date == "" {
		booking.Date = event.String("date", "eventDate")
	}
	if booking.Location == "" {
		booking.Location = strings.TrimSpace(event.String("location", "city"))
	}

	if booking.ID == "" {
		booking.ID = fallbackID
	}
	if booking.Title == "" {
		booking.Title = UntitledEvent
	}
	if booking.Timeslot == "" {
		booking.Timeslot = TimeLabel(booking.Date)
	}

	booking.Seats = count(object.Number("seats", "seatCount", "quantity"))
	if booking.Seats < 1 {
		booking.Seats = 1
	}
	return booking
}

// NormalizeBookings maps a list payload, using list positions as fallback IDs.
func NormalizeBookings(raw any) ([]Booking, error) {
	list, err := DecodeList(raw)
	if err != nil {
		return nil, err
	}
	bookings := make([]Booking, 0, len(list))
	for index, item := range list {
		bookings = append(bookings, NormalizeBooking(item, strconv.Itoa(index)))
	}
	return bookings, nil
}

func (booking Booking) LocationLabel() string {
	if booking.Location == "" {
		return LocationUnannounced
	}
	return booking.Location
}

func (booking Booking) Pieces() DatePieces { return PiecesOf(booking.Date) }

// SeatsLabel is "1 seat" or "N seats".
func (booking Booking) SeatsLabel() string {
	if booking.Seats == 1 {
		return "1 seat"
	}
	return strconv.Itoa(booking.Seats) + " seats"
}
