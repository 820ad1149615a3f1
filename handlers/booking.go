package handlers

import (
	"net/http"

	"coworking/models"
	"coworking/services/booking"
	"coworking/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler serves the widget endpoints.
type BookingHandler struct {
	Service booking.BookingService
}

// NewBookingHandler creates a new BookingHandler.
func NewBookingHandler(svc booking.BookingService) *BookingHandler {
	return &BookingHandler{Service: svc}
}

// CheckAvailability answers 400 for missing or unparsable fields and 200
// for every other outcome, available or not.
func (h *BookingHandler) CheckAvailability(c *gin.Context) {
	logger := getLogger(c)

	var req models.AvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Debug("CheckAvailability: undecodable body", zap.Error(err))
		c.JSON(http.StatusBadRequest, models.AvailabilityResult{Available: false, Message: booking.MsgMissingParams})
		return
	}

	res, err := h.Service.CheckAvailability(c.Request.Context(), req)
	if err != nil {
		c.JSON(booking.HTTPStatus(booking.KindOf(err)), res)
		return
	}
	c.JSON(http.StatusOK, res)
}

// CreateBooking answers 201 with the stored booking or an error body.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	logger := getLogger(c)

	var req models.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Debug("CreateBooking: undecodable body", zap.Error(err))
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: booking.MsgInvalidBooking})
		return
	}

	b, err := h.Service.CreateBooking(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, models.CreateBookingResponse{Success: true, Booking: b})
}

// Quote prices a slot without booking it.
func (h *BookingHandler) Quote(c *gin.Context) {
	var req models.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: booking.MsgMissingParams})
		return
	}
	res, err := h.Service.Quote(req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// writeError maps a service error to its status and public message. Causes
// of dependency and internal errors are logged, never returned.
func writeError(c *gin.Context, err error) {
	status := booking.HTTPStatus(booking.KindOf(err))
	utils.JSONError(c, status, booking.PublicMessage(err), err)
}
