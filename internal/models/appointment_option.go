package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// AppointmentOption is a catalog entry for one treatment and the full list
// of bookable time-slot labels for a day. The catalog is maintained by an
// external admin process and never mutated here.
type AppointmentOption struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name  string             `bson:"name" json:"name"`
	Slots []string           `bson:"slots" json:"slots"`
	Price float64            `bson:"price" json:"price"`
}
