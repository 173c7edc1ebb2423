package booking

import (
	"context"

	domain "github.com/doctorsportal/portal-server/internal/domain/booking"
	"github.com/doctorsportal/portal-server/internal/models"
)

// AvailabilityComputation is the shared contract of the two availability
// strategies; they must produce identical results for identical inputs.
type AvailabilityComputation interface {
	Execute(ctx context.Context, date string) ([]models.AppointmentOption, error)
}

// GetAvailability is the filter strategy: fetch the catalog and the date's
// bookings, subtract in process.
type GetAvailability struct {
	repo domain.Repository
}

func NewGetAvailability(repo domain.Repository) *GetAvailability {
	return &GetAvailability{repo: repo}
}

func (uc *GetAvailability) Execute(
	ctx context.Context,
	date string,
) ([]models.AppointmentOption, error) {

	options, err := uc.repo.ListOptions(ctx)
	if err != nil {
		return nil, err
	}

	booked, err := uc.repo.ListBookingsForDate(ctx, date)
	if err != nil {
		return nil, err
	}

	return domain.Resolve(date, options, booked), nil
}

var _ AvailabilityComputation = (*GetAvailability)(nil)
