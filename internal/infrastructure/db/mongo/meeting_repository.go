package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/batforeningen/marina-api/internal/core/domain"
)

const meetingsCollection = "meetings"

type MeetingRepository struct {
	coll *mongo.Collection
}

func NewMeetingRepository(db *mongo.Database) *MeetingRepository {
	return &MeetingRepository{coll: db.Collection(meetingsCollection)}
}

type meetingDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       string             `bson:"title"`
	StartTime   time.Time          `bson:"start_time"`
	EndTime     time.Time          `bson:"end_time"`
	Location    string             `bson:"location"`
	Agenda      string             `bson:"agenda"`
	IsCompleted bool               `bson:"is_completed"`
}

func (d meetingDoc) toDomain() *domain.Meeting {
	return &domain.Meeting{
		ID:          d.ID.Hex(),
		Title:       d.Title,
		StartTime:   d.StartTime.UTC(),
		EndTime:     d.EndTime.UTC(),
		Location:    d.Location,
		Agenda:      d.Agenda,
		IsCompleted: d.IsCompleted,
	}
}

func (r *MeetingRepository) Create(ctx context.Context, m *domain.Meeting) (*domain.Meeting, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := meetingDoc{
		Title:       m.Title,
		StartTime:   m.StartTime,
		EndTime:     m.EndTime,
		Location:    m.Location,
		Agenda:      m.Agenda,
		IsCompleted: m.IsCompleted,
	}

	insert, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert meeting: %w", err)
	}

	doc.ID = insert.InsertedID.(primitive.ObjectID)
	return doc.toDomain(), nil
}

func (r *MeetingRepository) List(ctx context.Context) ([]*domain.Meeting, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "start_time", Value: 1}})
	cur, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list meetings: %w", err)
	}
	defer cur.Close(ctx)

	var meetings []*domain.Meeting
	for cur.Next(ctx) {
		var doc meetingDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode meeting: %w", err)
		}
		meetings = append(meetings, doc.toDomain())
	}
	return meetings, cur.Err()
}

func (r *MeetingRepository) SetCompleted(ctx context.Context, id string, completed bool) (*domain.Meeting, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrMalformedID
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	update := bson.M{"$set": bson.M{"is_completed": completed}}

	var doc meetingDoc
	if err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrMeetingNotFound
		}
		return nil, fmt.Errorf("update meeting: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *MeetingRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrMalformedID
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete meeting: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrMeetingNotFound
	}
	return nil
}
