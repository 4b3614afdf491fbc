package booking

import "time"

type ReservationReader interface {
	Get(id string) (Reservation, bool)
	List() []Reservation
	Len() int
}

type ReservationWriter interface {
	ReservationReader
	Insert(r Reservation) error
	Replace(r Reservation) error
	Remove(id string) int
}

// IsAvailable reports whether [start, end] is free of every reservation except excludeID.
//
// Only the candidate's endpoints are tested against each reservation's inclusive
// interval: a candidate that strictly contains a shorter reservation is not a conflict.
func IsAvailable(rs ReservationReader, excludeID string, start, end time.Time) bool {
	if WholeDays(start, end) <= 0 {
		return false
	}
	if rs.Len() == 0 {
		return true
	}

	for _, existing := range rs.List() {
		if existing.ID() == excludeID {
			continue
		}
		if existing.Covers(start) || existing.Covers(end) {
			return false
		}
	}
	return true
}
