//go:build unit || e2e

package builder

import (
	"time"

	"hotel-booking/internal/domain/booking"
	reqdto "hotel-booking/internal/handler/dto/request"
)

const Day = 24 * time.Hour

// Now is the fixed instant test clocks are set to.
var Now = time.Date(2025, time.June, 1, 9, 0, 0, 0, time.UTC)

type BookingBuilder struct {
	Now          time.Time
	ID           string
	StartOffset  int
	StayDays     int
	NumberOfBeds int
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		Now:          Now,
		ID:           "book001",
		StartOffset:  1,
		StayDays:     1,
		NumberOfBeds: 1,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) WithID(id string) *BookingBuilder {
	b.ID = id
	return b
}

// WithDays sets the start as days after Now and the stay length in days.
func (b *BookingBuilder) WithDays(startOffset, stay int) *BookingBuilder {
	b.StartOffset = startOffset
	b.StayDays = stay
	return b
}

func (b *BookingBuilder) WithBeds(beds int) *BookingBuilder {
	b.NumberOfBeds = beds
	return b
}

func (b *BookingBuilder) Start() time.Time {
	return b.Now.Add(time.Duration(b.StartOffset) * Day)
}

func (b *BookingBuilder) End() time.Time {
	return b.Start().Add(time.Duration(b.StayDays) * Day)
}

// Build methods
func (b *BookingBuilder) BuildDomain() booking.Booking {
	return booking.Booking{
		ID:           b.ID,
		StartDate:    b.Start(),
		EndDate:      b.End(),
		NumberOfBeds: b.NumberOfBeds,
	}
}

func (b *BookingBuilder) BuildReservation() booking.Reservation {
	res, err := booking.NewReservation(b.BuildDomain())
	if err != nil {
		panic("BuildReservation: " + err.Error())
	}
	return res
}

func (b *BookingBuilder) BuildRequestDTO() reqdto.BookingRequest {
	return reqdto.BookingRequest{
		ID:           b.ID,
		StartDate:    reqdto.Date{Time: b.Start()},
		EndDate:      reqdto.Date{Time: b.End()},
		NumberOfBeds: b.NumberOfBeds,
	}
}
