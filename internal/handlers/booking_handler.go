package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/doctorsportal/portal-server/internal/httperr"
	"github.com/doctorsportal/portal-server/internal/httpresp"
	"github.com/doctorsportal/portal-server/internal/models"
	ucbooking "github.com/doctorsportal/portal-server/internal/usecase/booking"
)

type BookingHandler struct {
	createUC *ucbooking.CreateBooking
	listUC   *ucbooking.ListBookings
}

func NewBookingHandler(
	createUC *ucbooking.CreateBooking,
	listUC *ucbooking.ListBookings,
) *BookingHandler {
	return &BookingHandler{
		createUC: createUC,
		listUC:   listUC,
	}
}

// Create serves POST /bookings. Duplicates are a 200 with
// acknowledged=false; callers inspect the payload, not the status.
func (h *BookingHandler) Create(c *gin.Context) {
	var b models.Booking
	if err := c.ShouldBindJSON(&b); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid booking payload.")
		return
	}

	ack, err := h.createUC.Execute(c.Request.Context(), &b)
	if err != nil {
		httperr.Internal(c, "failed_to_create_booking", "Failed to create booking.")
		return
	}

	httpresp.OK(c, ack)
}

// List serves GET /bookings, all bookings for the given email in storage
// order.
func (h *BookingHandler) List(c *gin.Context) {
	email := c.Query("email")

	bookings, err := h.listUC.Execute(c.Request.Context(), email)
	if err != nil {
		httperr.Internal(c, "failed_to_list_bookings", "Failed to list bookings.")
		return
	}

	httpresp.OK(c, bookings)
}
