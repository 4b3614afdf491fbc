package booking

import (
	"time"

	"hotel-booking/internal/pkg/clock"
)

type Validator struct {
	clock clock.Clock
}

func NewValidator(clock clock.Clock) *Validator {
	return &Validator{clock: clock}
}

// ValidateRules checks a candidate stay against the business rules and reports the
// first failure in this order: stay too short, stay too long, start not in the
// future, dates taken, start too far ahead.
//
// A scheduling conflict is reported as StatusInvalidDate, the same status as a
// start date that is not in the future.
func (v *Validator) ValidateRules(rs ReservationReader, id string, start, end time.Time) Status {
	stay := WholeDays(start, end)
	if stay < MinStayDays {
		return StatusDaysInvalid
	}
	if stay > MaxStayDays {
		return StatusStayLimitExceeded
	}

	advance := WholeDays(v.clock.Now(), start)
	if advance < MinAdvanceDays {
		return StatusInvalidDate
	}

	if !IsAvailable(rs, id, start, end) {
		return StatusInvalidDate
	}

	if advance > MaxAdvanceDays {
		return StatusAdvanceLimitExceeded
	}

	return StatusOK
}

func (v *Validator) Validate(rs ReservationReader, b Booking) Status {
	return v.ValidateRules(rs, b.ID, b.StartDate, b.EndDate)
}
