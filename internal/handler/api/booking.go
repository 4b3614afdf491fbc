package api

import (
	"net/http"

	reqdto "hotel-booking/internal/handler/dto/request"
	resdto "hotel-booking/internal/handler/dto/response"
	"hotel-booking/internal/handler/httperr"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/usecase"

	"github.com/gin-gonic/gin"
)

var errInvalidBooking = errs.New("booking failed structural validation")

type BookingHandler struct {
	engine usecase.BookingEngine
}

func NewBookingHandler(engine usecase.BookingEngine) *BookingHandler {
	return &BookingHandler{
		engine: engine,
	}
}

// @Summary List bookings
// @Description List every active reservation in insertion order
// @Tags bookings
// @Produce json
// @Success 200 {object} resdto.BookingResponse
// @Failure 500 {object} httperr.Response
// @Router /api/book/all [get]
func (h *BookingHandler) GetAllBookings(c *gin.Context) {
	result, err := h.engine.GetBook(c.Request.Context(), "")
	h.render(c, result, err)
}

// @Summary Check availability
// @Description Report whether a date range is free of endpoint conflicts
// @Tags bookings
// @Produce json
// @Param start query string true "Start date (RFC 3339 or YYYY-MM-DD)"
// @Param end query string true "End date (RFC 3339 or YYYY-MM-DD)"
// @Success 200 {boolean} bool
// @Failure 400 {object} httperr.Response
// @Router /api/book/check [get]
func (h *BookingHandler) CheckAvailability(c *gin.Context) {
	var q reqdto.AvailabilityQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "start and end are required", nil)
		return
	}

	start, err := reqdto.ParseDate(q.Start)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid start date", nil)
		return
	}
	end, err := reqdto.ParseDate(q.End)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid end date", nil)
		return
	}

	available, err := h.engine.CheckAvailability(c.Request.Context(), "", start, end)
	if err != nil {
		httperr.AbortInternal(c, err)
		return
	}

	c.JSON(http.StatusOK, available)
}

// @Summary Get booking
// @Description Get the reservation with the given id
// @Tags bookings
// @Produce json
// @Param id query string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 500 {object} httperr.Response
// @Router /api/book [get]
func (h *BookingHandler) GetBooking(c *gin.Context) {
	result, err := h.engine.GetBook(c.Request.Context(), c.Query("id"))
	h.render(c, result, err)
}

// @Summary Create booking
// @Description Validate and store a new reservation
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body reqdto.BookingRequest true "Booking request"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /api/book [post]
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	req, ok := h.bindBooking(c)
	if !ok {
		return
	}

	result, err := h.engine.PostBook(c.Request.Context(), req.ToDomain())
	h.render(c, result, err)
}

// @Summary Update booking
// @Description Reschedule and reprice an existing reservation
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body reqdto.BookingRequest true "Booking request"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /api/book [put]
func (h *BookingHandler) UpdateBooking(c *gin.Context) {
	req, ok := h.bindBooking(c)
	if !ok {
		return
	}

	result, err := h.engine.PutBook(c.Request.Context(), req.ToDomain())
	h.render(c, result, err)
}

// @Summary Cancel booking
// @Description Remove the reservation with the given id
// @Tags bookings
// @Produce json
// @Param id query string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 500 {object} httperr.Response
// @Router /api/book [delete]
func (h *BookingHandler) DeleteBooking(c *gin.Context) {
	result, err := h.engine.DeleteBook(c.Request.Context(), c.Query("id"))
	h.render(c, result, err)
}

func (h *BookingHandler) bindBooking(c *gin.Context) (reqdto.BookingRequest, bool) {
	var req reqdto.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return req, false
	}

	if !h.engine.IsStructurallyValid(req.ToDomain()) {
		httperr.AbortWithError(c, http.StatusBadRequest, errInvalidBooking, "Invalid booking", nil)
		return req, false
	}

	return req, true
}

// render answers 200 for every business outcome; only faults become 500.
func (h *BookingHandler) render(c *gin.Context, result *usecase.BookingResult, err error) {
	if err != nil {
		httperr.AbortInternal(c, err)
		return
	}

	resp, err := resdto.FromBookingResult(result)
	if err != nil {
		httperr.AbortInternal(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
