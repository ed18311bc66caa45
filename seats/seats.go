// Package seats computes how many seats one booking may request.
package seats

import (
	"errors"
	"fmt"
	"math"
)

// MaxPerBooking caps a single booking regardless of availability.
const MaxPerBooking = 4

var ErrInvalidSeatCount = errors.New("invalid seat count")

// Selection is the set of seat counts offered for one event.
type Selection struct {
	Available int
	Options   []int
}

// Compute derives the selectable seat counts from an event's capacity and
// the number of seats already booked. Negative and fractional input is
// floored and clamped.
func Compute(capacity, alreadyBooked float64) Selection {
	available := floor(capacity) - max(0, floor(alreadyBooked))
	if available < 0 {
		available = 0
	}

	limit := min(MaxPerBooking, available)
	options := make([]int, 0, limit)
	for count := 1; count <= limit; count++ {
		options = append(options, count)
	}
	return Selection{Available: available, Options: options}
}

// floor clamps to the int32 range so the conversion is defined everywhere.
func floor(value float64) int {
	switch {
	case math.IsNaN(value):
		return 0
	case value >= math.MaxInt32:
		return math.MaxInt32
	case value <= math.MinInt32:
		return math.MinInt32
	}
	return int(math.Floor(value))
}

// Unavailable reports that no seat count can be offered.
func (selection Selection) Unavailable() bool {
	return len(selection.Options) == 0
}

// MaxSelectable is the largest offered count, or 0.
func (selection Selection) MaxSelectable() int {
	if selection.Unavailable() {
		return 0
	}
	return selection.Options[len(selection.Options)-1]
}

// Offers reports whether count is one of the options.
func (selection Selection) Offers(count int) bool {
	for _, option := range selection.Options {
		if option == count {
			return true
		}
	}
	return false
}

// Reselect keeps previous when it is still offered and otherwise falls back
// to the first option, or 0 when nothing is offered.
func (selection Selection) Reselect(previous int) int {
	if selection.Offers(previous) {
		return previous
	}
	if selection.Unavailable() {
		return 0
	}
	return selection.Options[0]
}

// Validate checks a requested count before it is sent to the booking API.
func (selection Selection) Validate(count int) error {
	if selection.Unavailable() {
		return fmt.Errorf("%w: seats unavailable", ErrInvalidSeatCount)
	}
	if !selection.Offers(count) {
		return fmt.Errorf("%w: %d not in 1..%d", ErrInvalidSeatCount, count, selection.MaxSelectable())
	}
	return nil
}
