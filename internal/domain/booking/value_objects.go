package booking

import (
	"strconv"

	"hotel-booking/internal/pkg/errs"
)

var ErrBedCountOutOfRange = errs.New("number of beds out of range")

type Money struct {
	cents int64
}

func NewMoney(cents int64) Money {
	return Money{cents: cents}
}

func NewMoneyFromUnits(units int64) Money {
	return Money{cents: units * 100}
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) Amount() float64 {
	return float64(m.cents) / 100.0
}

func (m Money) Times(n int) Money {
	return Money{cents: m.cents * int64(n)}
}

func (m Money) IsZero() bool {
	return m.cents == 0
}

func (m Money) String() string {
	return strconv.FormatFloat(m.Amount(), 'f', 2, 64)
}

type Room struct {
	Beds      int
	Label     string
	DailyRate Money
}

var rooms = map[int]Room{
	1: {Beds: 1, Label: "Room with 1 Bed", DailyRate: NewMoneyFromUnits(50)},
	2: {Beds: 2, Label: "Room with 2 Beds", DailyRate: NewMoneyFromUnits(75)},
	3: {Beds: 3, Label: "Room with 3 Beds", DailyRate: NewMoneyFromUnits(90)},
}

// RoomFor looks up the fixed room catalogue. An unsupported bed count is a
// programming error upstream, reported as ErrBedCountOutOfRange.
func RoomFor(beds int) (Room, error) {
	room, ok := rooms[beds]
	if !ok {
		return Room{}, errs.Mark(
			errs.Newf("number of beds %d: the number of beds should be between 1 and 3", beds),
			ErrBedCountOutOfRange,
		)
	}
	return room, nil
}

// Cost is the daily rate for the room times the stay length.
func (r Room) Cost(stayDays int) Money {
	return r.DailyRate.Times(stayDays)
}
