package booking

import (
	"time"
	"unicode/utf8"
)

const day = 24 * time.Hour

const (
	MinStayDays    = 1
	MaxStayDays    = 3
	MinAdvanceDays = 1
	MaxAdvanceDays = 30

	minIDLength = 2
)

// Booking is a reservation request. It is never stored; the store keeps Reservations.
type Booking struct {
	ID           string
	StartDate    time.Time
	EndDate      time.Time
	NumberOfBeds int
}

func (b Booking) StayDays() int {
	return WholeDays(b.StartDate, b.EndDate)
}

// WholeDays returns the number of complete 24h periods from -> to, truncated toward zero.
func WholeDays(from, to time.Time) int {
	return int(to.Sub(from) / day)
}

// ValidateStructure is the caller-side precondition for create and update.
// The id length is counted in characters, not bytes.
// It does not bound the bed count from above: 0 or 4+ beds pass here and fault in RoomFor.
func ValidateStructure(b Booking) bool {
	if utf8.RuneCountInString(b.ID) < minIDLength {
		return false
	}
	if b.NumberOfBeds < 0 {
		return false
	}
	if b.StartDate.After(b.EndDate) {
		return false
	}
	return true
}
