package booking

import (
	"context"
	"fmt"

	"github.com/doctorsportal/portal-server/internal/audit"
	domain "github.com/doctorsportal/portal-server/internal/domain/booking"
	"github.com/doctorsportal/portal-server/internal/httperr"
	"github.com/doctorsportal/portal-server/internal/models"
)

type CreateBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateBooking {
	return &CreateBooking{
		repo:  repo,
		audit: audit,
	}
}

// Execute registers a booking unless the user already holds one for the
// same date and treatment. The dedup key omits the slot on purpose: a
// second slot of the same treatment on the same date is rejected too.
func (uc *CreateBooking) Execute(
	ctx context.Context,
	b *models.Booking,
) (*domain.Ack, error) {

	existing, err := uc.repo.FindBookings(
		ctx,
		b.AppointmentDate,
		b.Email,
		b.Treatment,
	)
	if err != nil {
		return nil, err
	}

	if len(existing) > 0 {
		return uc.reject(b), nil
	}

	id, err := uc.repo.InsertBooking(ctx, b)
	if err != nil {
		// Two requests can pass the pre-check concurrently; the unique
		// index turns the loser into the same rejection.
		if httperr.IsBusiness(err, "already_booked") {
			return uc.reject(b), nil
		}
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "booking_created",
		Entity:   "booking",
		EntityID: id,
		Email:    b.Email,
		Metadata: map[string]any{
			"appointmentDate": b.AppointmentDate,
			"treatment":       b.Treatment,
			"slot":            b.Slot,
		},
	})

	return &domain.Ack{
		Acknowledged: true,
		InsertedID:   id,
	}, nil
}

func (uc *CreateBooking) reject(b *models.Booking) *domain.Ack {
	uc.audit.Dispatch(audit.Event{
		Action: "booking_duplicate",
		Entity: "booking",
		Email:  b.Email,
		Metadata: map[string]any{
			"appointmentDate": b.AppointmentDate,
			"treatment":       b.Treatment,
		},
	})

	return &domain.Ack{
		Acknowledged: false,
		Message: fmt.Sprintf(
			"You already have a booking on %s",
			b.AppointmentDate,
		),
	}
}
