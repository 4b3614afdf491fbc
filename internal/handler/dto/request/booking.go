package request

import (
	"hotel-booking/internal/domain/booking"
)

// BookingRequest carries no binding rules: structural validation belongs to the engine
// and a failure there is answered with 400 by the handler.
type BookingRequest struct {
	ID           string `json:"id"`
	StartDate    Date   `json:"startDate"`
	EndDate      Date   `json:"endDate"`
	NumberOfBeds int    `json:"numberOfBeds"`
}

func (r BookingRequest) ToDomain() booking.Booking {
	return booking.Booking{
		ID:           r.ID,
		StartDate:    r.StartDate.Time,
		EndDate:      r.EndDate.Time,
		NumberOfBeds: r.NumberOfBeds,
	}
}

type AvailabilityQuery struct {
	Start string `form:"start" binding:"required"`
	End   string `form:"end" binding:"required"`
}
