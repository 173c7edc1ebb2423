package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/doctorsportal/portal-server/internal/httperr"
	"github.com/doctorsportal/portal-server/internal/httpresp"
	ucbooking "github.com/doctorsportal/portal-server/internal/usecase/booking"
)

type AvailabilityHandler struct {
	filter   ucbooking.AvailabilityComputation
	pipeline ucbooking.AvailabilityComputation
}

func NewAvailabilityHandler(
	filter ucbooking.AvailabilityComputation,
	pipeline ucbooking.AvailabilityComputation,
) *AvailabilityHandler {
	return &AvailabilityHandler{
		filter:   filter,
		pipeline: pipeline,
	}
}

// List serves GET /appointmentOptions. A missing date matches no booking,
// so every option comes back with its full slot list.
func (h *AvailabilityHandler) List(c *gin.Context) {
	date := c.Query("date")

	options, err := h.filter.Execute(c.Request.Context(), date)
	if err != nil {
		httperr.Internal(c, "availability_failed", "Failed to compute open slots.")
		return
	}

	httpresp.OK(c, options)
}

// ListV2 serves GET /v2/appointmentOptions with the store-side pipeline.
func (h *AvailabilityHandler) ListV2(c *gin.Context) {
	date := c.Query("date")

	options, err := h.pipeline.Execute(c.Request.Context(), date)
	if err != nil {
		httperr.Internal(c, "availability_failed", "Failed to compute open slots.")
		return
	}

	httpresp.OK(c, options)
}
