package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"warcat/internal/model"
	"warcat/internal/storage"
)

// IMeetingRepository defines meeting persistence
type IMeetingRepository interface {
	Create(ctx context.Context, meeting *model.Meeting) (*model.Meeting, error)
	FindByMeetingID(ctx context.Context, meetingID string) (*model.Meeting, error)
	Update(ctx context.Context, meeting *model.Meeting) error
	FindAll(ctx context.Context) ([]model.Meeting, error)
	FindByDepartments(ctx context.Context, depIDs []string) ([]model.Meeting, error)
}

// MeetingRepository implements meeting persistence over MongoDB
type MeetingRepository struct {
	collection *mongo.Collection
}

func NewMeetingRepository(db *mongo.Database) IMeetingRepository {
	return &MeetingRepository{collection: db.Collection("meetings")}
}

func (r *MeetingRepository) Create(ctx context.Context, meeting *model.Meeting) (*model.Meeting, error) {
	meeting.CreatedAt = time.Now()
	res, err := r.collection.InsertOne(ctx, meeting)
	if err != nil {
		return nil, err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		meeting.ID = oid
	}
	return meeting, nil
}

func (r *MeetingRepository) FindByMeetingID(ctx context.Context, meetingID string) (*model.Meeting, error) {
	var meeting model.Meeting
	err := r.collection.FindOne(ctx, bson.M{"meetingId": meetingID}).Decode(&meeting)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, storage.ErrNotFound
		}
		return nil, err
	}
	return &meeting, nil
}

func (r *MeetingRepository) Update(ctx context.Context, meeting *model.Meeting) error {
	res, err := r.collection.ReplaceOne(ctx, bson.M{"_id": meeting.ID}, meeting)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// FindAll returns every meeting, newest first.
func (r *MeetingRepository) FindAll(ctx context.Context) ([]model.Meeting, error) {
	return r.find(ctx, bson.M{})
}

// FindByDepartments returns meetings whose department set intersects
// depIDs, newest first.
func (r *MeetingRepository) FindByDepartments(ctx context.Context, depIDs []string) ([]model.Meeting, error) {
	return r.find(ctx, bson.M{"departmentIds": bson.M{"$in": depIDs}})
}

func (r *MeetingRepository) find(ctx context.Context, filter bson.M) ([]model.Meeting, error) {
	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}})
	cur, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	var meetings []model.Meeting
	if err := cur.All(ctx, &meetings); err != nil {
		return nil, err
	}
	return meetings, nil
}
