//go:build unit

package response_test

import (
	"testing"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/handler/dto/response"
	"hotel-booking/internal/usecase"
	"hotel-booking/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromBookingResult(t *testing.T) {
	t.Run("success with line items", func(t *testing.T) {
		first := builder.NewBookingBuilder().WithID("book001").WithDays(1, 2).WithBeds(2).BuildReservation()
		second := builder.NewBookingBuilder().WithID("book002").WithDays(5, 1).WithBeds(3).BuildReservation()

		got, err := response.FromBookingResult(&usecase.BookingResult{
			BookID:       "book001",
			SubTotal:     booking.NewMoney(15050),
			Reservations: []booking.Reservation{first, second},
		})
		require.NoError(t, err)

		want := &response.BookingResponse{
			BookID:   "book001",
			SubTotal: 150.5,
			Reservations: []response.LineItemResponse{
				{ID: "book001", Type: "Room with 2 Beds", Cost: 150, Stay: 2, StartDate: first.StartDate()},
				{ID: "book002", Type: "Room with 3 Beds", Cost: 90, Stay: 1, StartDate: second.StartDate()},
			},
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("FromBookingResult mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("error message only when set", func(t *testing.T) {
		got, err := response.FromBookingResult(&usecase.BookingResult{
			BookID:       "ghost",
			IsError:      true,
			ErrorMessage: "There is no reservation.",
		})
		require.NoError(t, err)

		assert.True(t, got.IsError)
		require.NotNil(t, got.ErrorMessage)
		assert.Equal(t, "There is no reservation.", *got.ErrorMessage)
		assert.Zero(t, got.SubTotal)
		assert.NotNil(t, got.Reservations)
		assert.Empty(t, got.Reservations)

		ok, err := response.FromBookingResult(&usecase.BookingResult{BookID: "book001"})
		require.NoError(t, err)
		assert.Nil(t, ok.ErrorMessage)
	})
}

func TestFromReservation(t *testing.T) {
	res := builder.NewBookingBuilder().WithID("book003").WithDays(2, 3).WithBeds(1).BuildReservation()

	got, err := response.FromReservation(res)
	require.NoError(t, err)

	assert.Equal(t, response.LineItemResponse{
		ID:        "book003",
		Type:      "Room with 1 Bed",
		Cost:      150,
		Stay:      3,
		StartDate: res.StartDate(),
	}, got)
}
