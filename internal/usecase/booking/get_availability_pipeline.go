package booking

import (
	"context"

	domain "github.com/doctorsportal/portal-server/internal/domain/booking"
	"github.com/doctorsportal/portal-server/internal/models"
)

// GetAvailabilityPipeline is the pipeline strategy: the join and
// set-difference run inside the store.
type GetAvailabilityPipeline struct {
	repo domain.Repository
}

func NewGetAvailabilityPipeline(repo domain.Repository) *GetAvailabilityPipeline {
	return &GetAvailabilityPipeline{repo: repo}
}

func (uc *GetAvailabilityPipeline) Execute(
	ctx context.Context,
	date string,
) ([]models.AppointmentOption, error) {
	return uc.repo.OpenSlots(ctx, date)
}

var _ AvailabilityComputation = (*GetAvailabilityPipeline)(nil)
