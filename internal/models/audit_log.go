package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type AuditLog struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Action   string             `bson:"action" json:"action"`
	Entity   string             `bson:"entity" json:"entity"`
	EntityID any                `bson:"entityId,omitempty" json:"entity_id,omitempty"`
	Email    string             `bson:"email,omitempty" json:"email,omitempty"`
	Metadata any                `bson:"metadata,omitempty" json:"metadata,omitempty"`

	CreatedAt time.Time `bson:"createdAt" json:"created_at"`
}
