package repository

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	domain "github.com/doctorsportal/portal-server/internal/domain/booking"
	"github.com/doctorsportal/portal-server/internal/httperr"
	"github.com/doctorsportal/portal-server/internal/models"
)

// BookingMemoryRepository keeps everything in process memory. It stands in
// for Mongo in tests and implements the same contract, including the unique
// dedup keys enforced at insert time. OpenSlots derives availability with
// its own join so the two strategies can be cross-checked against each
// other rather than against shared code.
type BookingMemoryRepository struct {
	mu       sync.RWMutex
	options  []models.AppointmentOption
	bookings []models.Booking
	users    []models.User
}

func NewBookingMemoryRepository(
	options []models.AppointmentOption,
) *BookingMemoryRepository {
	return &BookingMemoryRepository{options: options}
}

// --------------------------------------------------
// Catalog
// --------------------------------------------------

func (r *BookingMemoryRepository) ListOptions(
	ctx context.Context,
) ([]models.AppointmentOption, error) {

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.AppointmentOption, len(r.options))
	copy(out, r.options)
	return out, nil
}

// --------------------------------------------------
// Availability
// --------------------------------------------------

func (r *BookingMemoryRepository) ListBookingsForDate(
	ctx context.Context,
	date string,
) ([]models.Booking, error) {

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []models.Booking{}
	for _, b := range r.bookings {
		if b.AppointmentDate == date {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *BookingMemoryRepository) OpenSlots(
	ctx context.Context,
	date string,
) ([]models.AppointmentOption, error) {

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.AppointmentOption, 0, len(r.options))
	for _, option := range r.options {
		remaining := []string{}
		for _, slot := range option.Slots {
			taken := false
			for _, b := range r.bookings {
				if b.AppointmentDate == date &&
					b.Treatment == option.Name &&
					b.Slot == slot {
					taken = true
					break
				}
			}
			if !taken {
				remaining = append(remaining, slot)
			}
		}

		option.Slots = remaining
		out = append(out, option)
	}
	return out, nil
}

// --------------------------------------------------
// Booking
// --------------------------------------------------

func (r *BookingMemoryRepository) FindBookings(
	ctx context.Context,
	date string,
	email string,
	treatment string,
) ([]models.Booking, error) {

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []models.Booking{}
	for _, b := range r.bookings {
		if b.AppointmentDate == date &&
			b.Email == email &&
			b.Treatment == treatment {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *BookingMemoryRepository) ListBookingsByEmail(
	ctx context.Context,
	email string,
) ([]models.Booking, error) {

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []models.Booking{}
	for _, b := range r.bookings {
		if b.Email == email {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *BookingMemoryRepository) InsertBooking(
	ctx context.Context,
	b *models.Booking,
) (any, error) {

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.bookings {
		if existing.AppointmentDate == b.AppointmentDate &&
			existing.Email == b.Email &&
			existing.Treatment == b.Treatment {
			return nil, httperr.ErrBusiness("already_booked")
		}
	}

	stored := *b
	stored.ID = primitive.NewObjectID()
	r.bookings = append(r.bookings, stored)
	return stored.ID, nil
}

// --------------------------------------------------
// User
// --------------------------------------------------

func (r *BookingMemoryRepository) FindUsersByEmail(
	ctx context.Context,
	email string,
) ([]models.User, error) {

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []models.User{}
	for _, u := range r.users {
		if u.Email == email {
			out = append(out, u)
		}
	}
	return out, nil
}

func (r *BookingMemoryRepository) InsertUser(
	ctx context.Context,
	u *models.User,
) (any, error) {

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.users {
		if existing.Email == u.Email {
			return nil, httperr.ErrBusiness("user_exists")
		}
	}

	stored := *u
	stored.ID = primitive.NewObjectID()
	r.users = append(r.users, stored)
	return stored.ID, nil
}

// Compile-time check
var _ domain.Repository = (*BookingMemoryRepository)(nil)
