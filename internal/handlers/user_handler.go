package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/doctorsportal/portal-server/internal/httperr"
	"github.com/doctorsportal/portal-server/internal/httpresp"
	"github.com/doctorsportal/portal-server/internal/models"
	ucbooking "github.com/doctorsportal/portal-server/internal/usecase/booking"
)

type UserHandler struct {
	createUC *ucbooking.CreateUser
}

func NewUserHandler(createUC *ucbooking.CreateUser) *UserHandler {
	return &UserHandler{createUC: createUC}
}

// Create serves POST /users, idempotent per email.
func (h *UserHandler) Create(c *gin.Context) {
	var u models.User
	if err := c.ShouldBindJSON(&u); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid user payload.")
		return
	}

	ack, err := h.createUC.Execute(c.Request.Context(), &u)
	if err != nil {
		httperr.Internal(c, "failed_to_create_user", "Failed to create user.")
		return
	}

	httpresp.OK(c, ack)
}
