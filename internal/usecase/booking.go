package usecase

//go:generate mockgen -source=booking.go -destination=../../tests/mock/usecase/booking.go -package=usecasemock

import (
	"context"
	"log/slog"
	"time"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/pkg/errs"
)

const (
	msgAlreadyExists = "Booking already exist."
	msgNoReservation = "There is no reservation."
	msgNotFound      = "No reservation was found."
)

var ErrBookingFault = errs.New("booking operation failed")

// BookingResult is the outcome of an engine operation. Business failures are
// reported here with IsError set; only faults come back as a Go error.
type BookingResult struct {
	BookID       string
	IsError      bool
	ErrorMessage string
	SubTotal     booking.Money
	Reservations []booking.Reservation
}

func (r *BookingResult) fail(msg string) {
	r.IsError = true
	r.ErrorMessage = msg
}

type BookingEngine interface {
	GetBook(ctx context.Context, id string) (*BookingResult, error)
	PostBook(ctx context.Context, b booking.Booking) (*BookingResult, error)
	PutBook(ctx context.Context, b booking.Booking) (*BookingResult, error)
	DeleteBook(ctx context.Context, id string) (*BookingResult, error)
	IsStructurallyValid(b booking.Booking) bool
	CheckAvailability(ctx context.Context, id string, start, end time.Time) (bool, error)
}

type bookingEngine struct {
	store     ReservationStore
	validator *booking.Validator
	logger    *slog.Logger
}

func NewBookingEngine(store ReservationStore, validator *booking.Validator, logger *slog.Logger) BookingEngine {
	return &bookingEngine{
		store:     store,
		validator: validator,
		logger:    logger,
	}
}

// GetBook returns every reservation when id is empty, otherwise the one with id.
func (e *bookingEngine) GetBook(ctx context.Context, id string) (*BookingResult, error) {
	result := &BookingResult{BookID: id}

	err := e.store.View(ctx, func(rs booking.ReservationReader) error {
		if id == "" {
			result.Reservations = rs.List()
			return nil
		}

		res, ok := rs.Get(id)
		if !ok {
			result.fail(msgNoReservation)
			return nil
		}
		result.Reservations = []booking.Reservation{res}
		return nil
	})
	if err != nil {
		return nil, e.fault(ctx, "get", id, err)
	}

	return result, nil
}

// PostBook stores a new reservation. Validation, the duplicate check and the
// insert happen under one store lock.
func (e *bookingEngine) PostBook(ctx context.Context, b booking.Booking) (*BookingResult, error) {
	result := &BookingResult{BookID: b.ID}

	err := e.store.Update(ctx, func(tx booking.ReservationWriter) error {
		if status := e.validator.Validate(tx, b); !status.IsOK() {
			result.fail(status.Message())
			return nil
		}

		if _, exists := tx.Get(b.ID); exists {
			result.fail(msgAlreadyExists)
			return nil
		}

		res, err := booking.NewReservation(b)
		if err != nil {
			return err
		}
		if err := tx.Insert(res); err != nil {
			return err
		}

		result.SubTotal = res.Cost()
		return nil
	})
	if err != nil {
		return nil, e.fault(ctx, "create", b.ID, err)
	}

	if !result.IsError {
		e.logger.InfoContext(ctx, "reservation created",
			slog.String("book_id", b.ID),
			slog.Int("beds", b.NumberOfBeds),
			slog.Int("stay_days", b.StayDays()),
			slog.String("sub_total", result.SubTotal.String()),
		)
	}
	return result, nil
}

// PutBook reprices and reschedules an existing reservation in place.
func (e *bookingEngine) PutBook(ctx context.Context, b booking.Booking) (*BookingResult, error) {
	result := &BookingResult{BookID: b.ID}

	err := e.store.Update(ctx, func(tx booking.ReservationWriter) error {
		if status := e.validator.Validate(tx, b); !status.IsOK() {
			result.fail(status.Message())
			return nil
		}

		res, exists := tx.Get(b.ID)
		if !exists {
			result.fail(msgNoReservation)
			return nil
		}

		if err := res.Reschedule(b); err != nil {
			return err
		}
		if err := tx.Replace(res); err != nil {
			return err
		}

		result.SubTotal = res.Cost()
		return nil
	})
	if err != nil {
		return nil, e.fault(ctx, "update", b.ID, err)
	}

	if !result.IsError {
		e.logger.InfoContext(ctx, "reservation updated",
			slog.String("book_id", b.ID),
			slog.Int("beds", b.NumberOfBeds),
			slog.Int("stay_days", b.StayDays()),
			slog.String("sub_total", result.SubTotal.String()),
		)
	}
	return result, nil
}

func (e *bookingEngine) DeleteBook(ctx context.Context, id string) (*BookingResult, error) {
	result := &BookingResult{BookID: id}
	removed := 0

	err := e.store.Update(ctx, func(tx booking.ReservationWriter) error {
		if _, exists := tx.Get(id); !exists {
			result.fail(msgNotFound)
			return nil
		}
		removed = tx.Remove(id)
		return nil
	})
	if err != nil {
		return nil, e.fault(ctx, "delete", id, err)
	}

	if !result.IsError {
		e.logger.InfoContext(ctx, "reservation cancelled",
			slog.String("book_id", id),
			slog.Int("removed", removed),
		)
	}
	return result, nil
}

func (e *bookingEngine) IsStructurallyValid(b booking.Booking) bool {
	return booking.ValidateStructure(b)
}

func (e *bookingEngine) CheckAvailability(ctx context.Context, id string, start, end time.Time) (bool, error) {
	available := false

	err := e.store.View(ctx, func(rs booking.ReservationReader) error {
		available = booking.IsAvailable(rs, id, start, end)
		return nil
	})
	if err != nil {
		return false, e.fault(ctx, "check", id, err)
	}

	return available, nil
}

func (e *bookingEngine) fault(ctx context.Context, op, id string, err error) error {
	e.logger.ErrorContext(ctx, "booking operation failed",
		slog.String("operation", op),
		slog.String("book_id", id),
		slog.String("error", err.Error()),
		slog.Any("stack", errs.ExtractStackLines(err, 8)),
	)
	return errs.Mark(errs.Wrapf(err, "%s %q", op, id), ErrBookingFault)
}
