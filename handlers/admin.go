// File: coworking/handlers/admin.go
package handlers

import (
	"net/http"

	"coworking/models"
	"coworking/services/booking"

	"github.com/gin-gonic/gin"
)

// AdminHandler exposes staff-only reads of the booking store.
type AdminHandler struct {
	Service booking.BookingService
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(svc booking.BookingService) *AdminHandler {
	return &AdminHandler{Service: svc}
}

// ListBookingsHandler returns every booking of ?date=YYYY-MM-DD.
func (ah *AdminHandler) ListBookingsHandler(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: booking.MsgMissingParams})
		return
	}
	bookings, err := ah.Service.ListBookings(c.Request.Context(), date)
	if err != nil {
		writeError(c, err)
		return
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}
	c.JSON(http.StatusOK, gin.H{"date": date, "count": len(bookings), "bookings": bookings})
}
