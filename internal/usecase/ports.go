package usecase

import (
	"context"

	"hotel-booking/internal/domain/booking"
)

// ReservationStore serialises access to the reservation set. Update must run fn
// exclusively with respect to every other Update and View.
type ReservationStore interface {
	View(ctx context.Context, fn func(booking.ReservationReader) error) error
	Update(ctx context.Context, fn func(booking.ReservationWriter) error) error
}
