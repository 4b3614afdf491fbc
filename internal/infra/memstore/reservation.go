package memstore

import (
	"context"
	"log/slog"
	"slices"
	"sync"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/infra"
)

// ReservationStore keeps reservations in memory, unique by id and listed in
// insertion order. All access goes through View or Update.
type ReservationStore struct {
	mu     sync.RWMutex
	order  []string
	byID   map[string]booking.Reservation
	logger *slog.Logger
}

func NewReservationStore(logger *slog.Logger) *ReservationStore {
	return &ReservationStore{
		byID:   make(map[string]booking.Reservation),
		logger: logger,
	}
}

// View runs fn under the read lock. Views run concurrently with each other.
func (s *ReservationStore) View(ctx context.Context, fn func(booking.ReservationReader) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	return fn(&reader{s: s})
}

// Update runs fn under the write lock, so no other mutation can interleave with
// it. If fn returns an error every change it made is undone.
func (s *ReservationStore) Update(ctx context.Context, fn func(booking.ReservationWriter) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tx := &writer{reader: reader{s: s}}
	if err := fn(tx); err != nil {
		tx.rollback()
		return err
	}
	return nil
}

// Snapshot returns a copy of every reservation in insertion order.
func (s *ReservationStore) Snapshot(ctx context.Context) ([]booking.Reservation, error) {
	var out []booking.Reservation
	err := s.View(ctx, func(rs booking.ReservationReader) error {
		out = rs.List()
		return nil
	})
	return out, err
}

type reader struct {
	s *ReservationStore
}

func (r *reader) Get(id string) (booking.Reservation, bool) {
	res, ok := r.s.byID[id]
	return res, ok
}

func (r *reader) List() []booking.Reservation {
	out := make([]booking.Reservation, 0, len(r.s.order))
	for _, id := range r.s.order {
		out = append(out, r.s.byID[id])
	}
	return out
}

func (r *reader) Len() int {
	return len(r.s.order)
}

type writer struct {
	reader
	undo []func()
}

func (w *writer) Insert(res booking.Reservation) error {
	id := res.ID()
	if _, exists := w.s.byID[id]; exists {
		return infra.WrapStoreErr(w.s.logger, infra.KindDuplicateKey, "reservation already stored", nil)
	}

	w.s.order = append(w.s.order, id)
	w.s.byID[id] = res
	w.undo = append(w.undo, func() {
		w.s.order = w.s.order[:len(w.s.order)-1]
		delete(w.s.byID, id)
	})
	return nil
}

func (w *writer) Replace(res booking.Reservation) error {
	id := res.ID()
	prev, exists := w.s.byID[id]
	if !exists {
		return infra.WrapStoreErr(w.s.logger, infra.KindNotFound, "reservation not stored", nil)
	}

	w.s.byID[id] = res
	w.undo = append(w.undo, func() {
		w.s.byID[id] = prev
	})
	return nil
}

// Remove deletes every entry with id and returns how many there were.
func (w *writer) Remove(id string) int {
	prev, exists := w.s.byID[id]
	if !exists {
		return 0
	}

	prevOrder := slices.Clone(w.s.order)
	removed := 0
	w.s.order = slices.DeleteFunc(w.s.order, func(stored string) bool {
		if stored == id {
			removed++
			return true
		}
		return false
	})
	delete(w.s.byID, id)

	w.undo = append(w.undo, func() {
		w.s.order = prevOrder
		w.s.byID[id] = prev
	})
	return removed
}

func (w *writer) rollback() {
	for i := len(w.undo) - 1; i >= 0; i-- {
		w.undo[i]()
	}
	w.undo = nil
}
