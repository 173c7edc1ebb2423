package booking

import (
	"context"

	"github.com/doctorsportal/portal-server/internal/audit"
	domain "github.com/doctorsportal/portal-server/internal/domain/booking"
	"github.com/doctorsportal/portal-server/internal/httperr"
	"github.com/doctorsportal/portal-server/internal/models"
)

type CreateUser struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateUser(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateUser {
	return &CreateUser{
		repo:  repo,
		audit: audit,
	}
}

// Execute registers an account once per email. Re-registration is a normal
// outcome, not an error: the frontend signs users up on every social login.
func (uc *CreateUser) Execute(
	ctx context.Context,
	u *models.User,
) (*domain.Ack, error) {

	existing, err := uc.repo.FindUsersByEmail(ctx, u.Email)
	if err != nil {
		return nil, err
	}

	if len(existing) > 0 {
		return userExists(), nil
	}

	id, err := uc.repo.InsertUser(ctx, u)
	if err != nil {
		if httperr.IsBusiness(err, "user_exists") {
			return userExists(), nil
		}
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "user_created",
		Entity:   "user",
		EntityID: id,
		Email:    u.Email,
	})

	return &domain.Ack{
		Acknowledged: true,
		InsertedID:   id,
	}, nil
}

func userExists() *domain.Ack {
	return &domain.Ack{
		Acknowledged: false,
		Message:      "User already exists",
	}
}
