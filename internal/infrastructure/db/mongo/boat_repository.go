package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/batforeningen/marina-api/internal/core/domain"
)

const boatsCollection = "boats"

type BoatRepository struct {
	coll *mongo.Collection
}

func NewBoatRepository(db *mongo.Database) *BoatRepository {
	return &BoatRepository{coll: db.Collection(boatsCollection)}
}

type boatDoc struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	Slot       int                `bson:"slot"`
	Address    string             `bson:"address"`
	PostalCode int                `bson:"postal_code"`
	City       string             `bson:"city"`
	StartUse   time.Time          `bson:"start_use"`
	EndUse     time.Time          `bson:"end_use"`
	OwnerEmail string             `bson:"owner_email"`
}

func (d boatDoc) toDomain() *domain.Reservation {
	return &domain.Reservation{
		ID:         d.ID.Hex(),
		Slot:       d.Slot,
		Address:    d.Address,
		PostalCode: d.PostalCode,
		City:       d.City,
		StartUse:   d.StartUse.UTC(),
		EndUse:     d.EndUse.UTC(),
		OwnerEmail: d.OwnerEmail,
	}
}

func (r *BoatRepository) Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := boatDoc{
		Slot:       res.Slot,
		Address:    res.Address,
		PostalCode: res.PostalCode,
		City:       res.City,
		StartUse:   res.StartUse,
		EndUse:     res.EndUse,
		OwnerEmail: res.OwnerEmail,
	}

	insert, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert reservation: %w", err)
	}

	doc.ID = insert.InsertedID.(primitive.ObjectID)
	return doc.toDomain(), nil
}

// CountOverlapping counts reservations on slot whose closed interval
// intersects [start, end]: existing.start <= end AND existing.end >= start.
func (r *BoatRepository) CountOverlapping(ctx context.Context, slot int, start, end time.Time) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{
		"slot":      slot,
		"start_use": bson.M{"$lte": end},
		"end_use":   bson.M{"$gte": start},
	}

	n, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("count overlapping reservations: %w", err)
	}
	return n, nil
}

func (r *BoatRepository) List(ctx context.Context) ([]*domain.Reservation, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list reservations: %w", err)
	}
	defer cur.Close(ctx)

	var reservations []*domain.Reservation
	for cur.Next(ctx) {
		var doc boatDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode reservation: %w", err)
		}
		reservations = append(reservations, doc.toDomain())
	}
	return reservations, cur.Err()
}
