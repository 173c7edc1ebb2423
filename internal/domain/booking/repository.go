package booking

import (
	"context"

	"github.com/doctorsportal/portal-server/internal/models"
)

// Repository is the persistence surface for the booking core. Insert methods
// return the storage-generated identifier; a dedup-index violation surfaces
// as httperr.ErrBusiness("already_booked") / ("user_exists") so the caller
// can map the race-lost insert to the same rejection as the pre-check.
type Repository interface {
	// -------- Catalog --------
	ListOptions(ctx context.Context) ([]models.AppointmentOption, error)

	// -------- Availability --------
	ListBookingsForDate(
		ctx context.Context,
		date string,
	) ([]models.Booking, error)

	// OpenSlots computes remaining slots store-side (join + set-difference).
	OpenSlots(
		ctx context.Context,
		date string,
	) ([]models.AppointmentOption, error)

	// -------- Booking --------
	FindBookings(
		ctx context.Context,
		date string,
		email string,
		treatment string,
	) ([]models.Booking, error)

	ListBookingsByEmail(
		ctx context.Context,
		email string,
	) ([]models.Booking, error)

	InsertBooking(
		ctx context.Context,
		b *models.Booking,
	) (any, error)

	// -------- User --------
	FindUsersByEmail(
		ctx context.Context,
		email string,
	) ([]models.User, error)

	InsertUser(
		ctx context.Context,
		u *models.User,
	) (any, error)
}
