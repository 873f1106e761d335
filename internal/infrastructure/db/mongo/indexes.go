package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates all collection indexes at startup.
//
// users and records carry the uniqueness constraints of the data model.
// boats gets a plain slot index for the overlap query; it is deliberately
// NOT unique per (slot, interval) — the check-then-write in the boat
// service is the documented place where concurrent bookings can race.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	unique := options.Index().SetUnique(true)

	specs := map[string][]mongo.IndexModel{
		usersCollection: {
			{Keys: bson.D{{Key: "username", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: unique},
		},
		recordsCollection: {
			{Keys: bson.D{{Key: "username", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: unique},
		},
		boatsCollection: {
			{Keys: bson.D{{Key: "slot", Value: 1}}},
		},
		meetingsCollection: {
			{Keys: bson.D{{Key: "start_time", Value: 1}}},
		},
		messagesCollection: {
			{Keys: bson.D{{Key: "sent_at", Value: 1}}},
		},
	}

	for coll, indexes := range specs {
		if _, err := db.Collection(coll).Indexes().CreateMany(ctx, indexes); err != nil {
			return fmt.Errorf("create indexes on %s: %w", coll, err)
		}
	}
	return nil
}
