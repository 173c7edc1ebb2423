package db

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/doctorsportal/portal-server/internal/config"
)

func NewDB(cfg *config.Config) *mongo.Database {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		log.Fatalf("failed to ping database: %v", err)
	}

	database := client.Database(cfg.DBName)

	if err := ensureIndexes(ctx, database); err != nil {
		log.Fatalf("failed to create indexes: %v", err)
	}

	return database
}

// ensureIndexes backs the check-then-insert registration paths with unique
// indexes, so a race between two identical requests loses at the insert
// instead of double-writing. The booking key deliberately omits the slot.
func ensureIndexes(ctx context.Context, database *mongo.Database) error {
	_, err := database.Collection("bookings").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "appointmentDate", Value: 1},
			{Key: "email", Value: 1},
			{Key: "treatment", Value: 1},
		},
		Options: options.Index().
			SetName("uniq_date_email_treatment").
			SetUnique(true),
	})
	if err != nil {
		return err
	}

	_, err = database.Collection("users").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "email", Value: 1}},
		Options: options.Index().
			SetName("uniq_email").
			SetUnique(true),
	})
	return err
}
