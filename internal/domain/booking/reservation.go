package booking

import "time"

type Reservation struct {
	id        string
	roomType  string
	cost      Money
	stay      int
	startDate time.Time
}

// NewReservation prices a validated booking. The only failure is an unsupported bed count.
func NewReservation(b Booking) (Reservation, error) {
	room, err := RoomFor(b.NumberOfBeds)
	if err != nil {
		return Reservation{}, err
	}
	stay := b.StayDays()
	return Reservation{
		id:        b.ID,
		roomType:  room.Label,
		cost:      room.Cost(stay),
		stay:      stay,
		startDate: b.StartDate,
	}, nil
}

func ReconstructReservation(id, roomType string, cost Money, stay int, startDate time.Time) Reservation {
	return Reservation{
		id:        id,
		roomType:  roomType,
		cost:      cost,
		stay:      stay,
		startDate: startDate,
	}
}

// Reschedule replaces everything but the identifier. On error r is unchanged.
func (r *Reservation) Reschedule(b Booking) error {
	next, err := NewReservation(b)
	if err != nil {
		return err
	}
	r.roomType = next.roomType
	r.cost = next.cost
	r.stay = next.stay
	r.startDate = next.startDate
	return nil
}

func (r Reservation) ID() string           { return r.id }
func (r Reservation) Type() string         { return r.roomType }
func (r Reservation) Cost() Money          { return r.cost }
func (r Reservation) Stay() int            { return r.stay }
func (r Reservation) StartDate() time.Time { return r.startDate }

// EndDate is StartDate plus Stay whole days.
func (r Reservation) EndDate() time.Time {
	return r.startDate.Add(time.Duration(r.stay) * day)
}

// Equal compares identity only.
func (r Reservation) Equal(other Reservation) bool {
	return r.id == other.id
}

// Covers reports whether t lies in [StartDate, EndDate], both ends inclusive.
func (r Reservation) Covers(t time.Time) bool {
	return !r.startDate.After(t) && !r.EndDate().Before(t)
}
