package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	domain "github.com/doctorsportal/portal-server/internal/domain/booking"
	"github.com/doctorsportal/portal-server/internal/httperr"
	"github.com/doctorsportal/portal-server/internal/models"
)

type BookingMongoRepository struct {
	options  *mongo.Collection
	bookings *mongo.Collection
	users    *mongo.Collection
}

func NewBookingMongoRepository(db *mongo.Database) *BookingMongoRepository {
	return &BookingMongoRepository{
		options:  db.Collection("appointmentOptions"),
		bookings: db.Collection("bookings"),
		users:    db.Collection("users"),
	}
}

// --------------------------------------------------
// Catalog
// --------------------------------------------------

func (r *BookingMongoRepository) ListOptions(
	ctx context.Context,
) ([]models.AppointmentOption, error) {

	cur, err := r.options.Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}

	opts := []models.AppointmentOption{}
	if err := cur.All(ctx, &opts); err != nil {
		return nil, err
	}
	return opts, nil
}

// --------------------------------------------------
// Availability
// --------------------------------------------------

func (r *BookingMongoRepository) ListBookingsForDate(
	ctx context.Context,
	date string,
) ([]models.Booking, error) {

	cur, err := r.bookings.Find(ctx, bson.D{
		{Key: "appointmentDate", Value: date},
	})
	if err != nil {
		return nil, err
	}

	booked := []models.Booking{}
	if err := cur.All(ctx, &booked); err != nil {
		return nil, err
	}
	return booked, nil
}

// OpenSlots pushes the availability derivation into the store: a correlated
// $lookup joins bookings for the requested date onto each option by
// treatment name, then $setDifference strips the booked slot labels.
func (r *BookingMongoRepository) OpenSlots(
	ctx context.Context,
	date string,
) ([]models.AppointmentOption, error) {

	pipeline := mongo.Pipeline{
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: "bookings"},
			{Key: "localField", Value: "name"},
			{Key: "foreignField", Value: "treatment"},
			{Key: "pipeline", Value: bson.A{
				bson.D{{Key: "$match", Value: bson.D{
					{Key: "$expr", Value: bson.D{
						{Key: "$eq", Value: bson.A{"$appointmentDate", date}},
					}},
				}}},
			}},
			{Key: "as", Value: "booked"},
		}}},
		{{Key: "$project", Value: bson.D{
			{Key: "name", Value: 1},
			{Key: "slots", Value: 1},
			{Key: "price", Value: 1},
			{Key: "booked", Value: bson.D{
				{Key: "$map", Value: bson.D{
					{Key: "input", Value: "$booked"},
					{Key: "as", Value: "book"},
					{Key: "in", Value: "$$book.slot"},
				}},
			}},
		}}},
		{{Key: "$project", Value: bson.D{
			{Key: "name", Value: 1},
			{Key: "price", Value: 1},
			{Key: "slots", Value: bson.D{
				{Key: "$setDifference", Value: bson.A{"$slots", "$booked"}},
			}},
		}}},
	}

	cur, err := r.options.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}

	opts := []models.AppointmentOption{}
	if err := cur.All(ctx, &opts); err != nil {
		return nil, err
	}
	return opts, nil
}

// --------------------------------------------------
// Booking
// --------------------------------------------------

func (r *BookingMongoRepository) FindBookings(
	ctx context.Context,
	date string,
	email string,
	treatment string,
) ([]models.Booking, error) {

	cur, err := r.bookings.Find(ctx, bson.D{
		{Key: "appointmentDate", Value: date},
		{Key: "email", Value: email},
		{Key: "treatment", Value: treatment},
	})
	if err != nil {
		return nil, err
	}

	booked := []models.Booking{}
	if err := cur.All(ctx, &booked); err != nil {
		return nil, err
	}
	return booked, nil
}

func (r *BookingMongoRepository) ListBookingsByEmail(
	ctx context.Context,
	email string,
) ([]models.Booking, error) {

	cur, err := r.bookings.Find(ctx, bson.D{
		{Key: "email", Value: email},
	})
	if err != nil {
		return nil, err
	}

	bookings := []models.Booking{}
	if err := cur.All(ctx, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *BookingMongoRepository) InsertBooking(
	ctx context.Context,
	b *models.Booking,
) (any, error) {

	res, err := r.bookings.InsertOne(ctx, b)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, httperr.ErrBusiness("already_booked")
		}
		return nil, err
	}
	return res.InsertedID, nil
}

// --------------------------------------------------
// User
// --------------------------------------------------

func (r *BookingMongoRepository) FindUsersByEmail(
	ctx context.Context,
	email string,
) ([]models.User, error) {

	cur, err := r.users.Find(ctx, bson.D{
		{Key: "email", Value: email},
	})
	if err != nil {
		return nil, err
	}

	users := []models.User{}
	if err := cur.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *BookingMongoRepository) InsertUser(
	ctx context.Context,
	u *models.User,
) (any, error) {

	res, err := r.users.InsertOne(ctx, u)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, httperr.ErrBusiness("user_exists")
		}
		return nil, err
	}
	return res.InsertedID, nil
}

// Compile-time check
var _ domain.Repository = (*BookingMongoRepository)(nil)
