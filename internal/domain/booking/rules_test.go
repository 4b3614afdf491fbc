//go:build unit

package booking_test

import (
	"testing"
	"time"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/pkg/clock"
	"hotel-booking/tests/common/builder"

	"github.com/stretchr/testify/assert"
)

// reservations is a read-only view over a fixed list.
type reservations []booking.Reservation

func (rs reservations) Get(id string) (booking.Reservation, bool) {
	for _, r := range rs {
		if r.ID() == id {
			return r, true
		}
	}
	return booking.Reservation{}, false
}

func (rs reservations) List() []booking.Reservation { return rs }

func (rs reservations) Len() int { return len(rs) }

func TestIsAvailable(t *testing.T) {
	// occupies [now+5d, now+7d]
	existing := builder.NewBookingBuilder().WithID("existing").WithDays(5, 2).BuildReservation()
	store := reservations{existing}
	start := func(offset int) time.Time { return builder.Now.Add(time.Duration(offset) * builder.Day) }

	tests := []struct {
		name       string
		rs         reservations
		exclude    string
		start, end time.Time
		want       bool
	}{
		{name: "empty store", rs: nil, start: start(1), end: start(2), want: true},
		{name: "zero length range on empty store", rs: nil, start: start(1), end: start(1), want: false},
		{name: "reversed range", rs: store, start: start(2), end: start(1), want: false},
		{name: "entirely before", rs: store, start: start(1), end: start(3), want: true},
		{name: "entirely after", rs: store, start: start(8), end: start(10), want: true},
		{name: "end touches existing start", rs: store, start: start(3), end: start(5), want: false},
		{name: "start touches existing end", rs: store, start: start(7), end: start(9), want: false},
		{name: "start inside", rs: store, start: start(6), end: start(9), want: false},
		{name: "containing without touching endpoints", rs: store, start: start(4), end: start(8), want: true},
		{name: "own id excluded", rs: store, exclude: "existing", start: start(5), end: start(7), want: true},
		{name: "other id not excluded", rs: store, exclude: "someone", start: start(5), end: start(7), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, booking.IsAvailable(tt.rs, tt.exclude, tt.start, tt.end))
		})
	}
}

func TestValidateRules(t *testing.T) {
	v := booking.NewValidator(clock.NewMockClock(builder.Now))
	taken := reservations{builder.NewBookingBuilder().WithID("taken").WithDays(10, 2).BuildReservation()}

	tests := []struct {
		name   string
		rs     reservations
		mutate func(*builder.BookingBuilder)
		want   booking.Status
	}{
		{name: "ok", mutate: func(*builder.BookingBuilder) {}, want: booking.StatusOK},
		{name: "start equals end", mutate: func(b *builder.BookingBuilder) { b.StayDays = 0 }, want: booking.StatusDaysInvalid},
		{name: "three day stay", mutate: func(b *builder.BookingBuilder) { b.StayDays = 3 }, want: booking.StatusOK},
		{name: "four day stay", mutate: func(b *builder.BookingBuilder) { b.StayDays = 4 }, want: booking.StatusStayLimitExceeded},
		{name: "starts today", mutate: func(b *builder.BookingBuilder) { b.StartOffset = 0 }, want: booking.StatusInvalidDate},
		{name: "starts in the past", mutate: func(b *builder.BookingBuilder) { b.StartOffset = -3 }, want: booking.StatusInvalidDate},
		{name: "thirty days ahead", mutate: func(b *builder.BookingBuilder) { b.StartOffset = 30 }, want: booking.StatusOK},
		{name: "thirty one days ahead", mutate: func(b *builder.BookingBuilder) { b.StartOffset = 31 }, want: booking.StatusAdvanceLimitExceeded},
		{
			name:   "conflict reported as invalid date",
			rs:     taken,
			mutate: func(b *builder.BookingBuilder) { b.StartOffset, b.StayDays = 9, 1 },
			want:   booking.StatusInvalidDate,
		},
		{
			name:   "stay length checked before conflict",
			rs:     taken,
			mutate: func(b *builder.BookingBuilder) { b.StartOffset, b.StayDays = 9, 5 },
			want:   booking.StatusStayLimitExceeded,
		},
		{
			name:   "conflict checked before advance limit",
			rs:     reservations{builder.NewBookingBuilder().WithID("far").WithDays(40, 2).BuildReservation()},
			mutate: func(b *builder.BookingBuilder) { b.StartOffset, b.StayDays = 41, 2 },
			want:   booking.StatusInvalidDate,
		},
		{
			name:   "update ignores its own reservation",
			rs:     taken,
			mutate: func(b *builder.BookingBuilder) { b.ID, b.StartOffset, b.StayDays = "taken", 10, 2 },
			want:   booking.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := builder.NewBookingBuilder().With(tt.mutate).BuildDomain()
			assert.Equal(t, tt.want, v.Validate(tt.rs, b))
		})
	}
}
