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

const recordsCollection = "records"

type RecordRepository struct {
	coll *mongo.Collection
}

func NewRecordRepository(db *mongo.Database) *RecordRepository {
	return &RecordRepository{coll: db.Collection(recordsCollection)}
}

type recordDoc struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	Username string             `bson:"username"`
	Email    string             `bson:"email"`
	Date     time.Time          `bson:"date"`
	Reason   string             `bson:"reason"`
}

func (d recordDoc) toDomain() *domain.Record {
	return &domain.Record{
		ID:       d.ID.Hex(),
		Username: d.Username,
		Email:    d.Email,
		Date:     d.Date.UTC(),
		Reason:   d.Reason,
	}
}

func (r *RecordRepository) Create(ctx context.Context, rec *domain.Record) (*domain.Record, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := recordDoc{
		Username: rec.Username,
		Email:    rec.Email,
		Date:     rec.Date,
		Reason:   rec.Reason,
	}

	insert, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, &domain.DuplicateError{Field: duplicateField(err, "username", "email")}
		}
		return nil, fmt.Errorf("insert record: %w", err)
	}

	doc.ID = insert.InsertedID.(primitive.ObjectID)
	return doc.toDomain(), nil
}

func (r *RecordRepository) List(ctx context.Context) ([]*domain.Record, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	defer cur.Close(ctx)

	var records []*domain.Record
	for cur.Next(ctx) {
		var doc recordDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode record: %w", err)
		}
		records = append(records, doc.toDomain())
	}
	return records, cur.Err()
}
