package response

import (
	"time"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/pkg/ptr"
	"hotel-booking/internal/usecase"

	"github.com/jinzhu/copier"
)

type LineItemResponse struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Cost      float64   `json:"cost"`
	Stay      int       `json:"stay"`
	StartDate time.Time `json:"startDate"`
}

type BookingResponse struct {
	BookID       string             `json:"bookID"`
	IsError      bool               `json:"isError"`
	ErrorMessage *string            `json:"errorMessage"`
	SubTotal     float64            `json:"subTotal"`
	Reservations []LineItemResponse `json:"reservations" copier:"-"`
}

// Reservations are read through their getters; field names must match exactly.
var copyOption = copier.Option{
	CaseSensitive: true,
	Converters: []copier.TypeConverter{
		{
			SrcType: booking.Money{},
			DstType: float64(0),
			Fn: func(src any) (any, error) {
				return src.(booking.Money).Amount(), nil
			},
		},
		{
			SrcType: "",
			DstType: (*string)(nil),
			Fn: func(src any) (any, error) {
				return ptr.NonZero(src.(string)), nil
			},
		},
	},
}

func FromBookingResult(result *usecase.BookingResult) (*BookingResponse, error) {
	resp := &BookingResponse{}
	if err := copier.CopyWithOption(resp, result, copyOption); err != nil {
		return nil, err
	}

	resp.Reservations = make([]LineItemResponse, 0, len(result.Reservations))
	for _, res := range result.Reservations {
		item, err := FromReservation(res)
		if err != nil {
			return nil, err
		}
		resp.Reservations = append(resp.Reservations, item)
	}

	return resp, nil
}

func FromReservation(res booking.Reservation) (LineItemResponse, error) {
	var item LineItemResponse
	err := copier.CopyWithOption(&item, res, copyOption)
	return item, err
}
