package audit

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/doctorsportal/portal-server/internal/models"
)

type Logger struct {
	col *mongo.Collection
}

func New(db *mongo.Database) *Logger {
	return &Logger{col: db.Collection("auditLogs")}
}

func (l *Logger) Record(ev Event) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	doc := models.AuditLog{
		Action:    ev.Action,
		Entity:    ev.Entity,
		EntityID:  ev.EntityID,
		Email:     ev.Email,
		Metadata:  ev.Metadata,
		CreatedAt: time.Now().UTC(),
	}

	_, err := l.col.InsertOne(ctx, doc)
	return err
}

var _ Recorder = (*Logger)(nil)
