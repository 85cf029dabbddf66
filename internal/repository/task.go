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

// ITaskRepository defines task persistence
type ITaskRepository interface {
	Create(ctx context.Context, task *model.Task) (*model.Task, error)
	FindByTaskID(ctx context.Context, taskID string) (*model.Task, error)
	Update(ctx context.Context, task *model.Task) error
	FindByTargetDate(ctx context.Context, date string) ([]model.Task, error)
}

// TaskRepository implements task persistence over MongoDB
type TaskRepository struct {
	collection *mongo.Collection
}

func NewTaskRepository(db *mongo.Database) ITaskRepository {
	return &TaskRepository{collection: db.Collection("tasks")}
}

func (r *TaskRepository) Create(ctx context.Context, task *model.Task) (*model.Task, error) {
	task.CreatedAt = time.Now()
	res, err := r.collection.InsertOne(ctx, task)
	if err != nil {
		return nil, err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		task.ID = oid
	}
	return task, nil
}

func (r *TaskRepository) FindByTaskID(ctx context.Context, taskID string) (*model.Task, error) {
	var task model.Task
	err := r.collection.FindOne(ctx, bson.M{"taskId": taskID}).Decode(&task)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, storage.ErrNotFound
		}
		return nil, err
	}
	return &task, nil
}

func (r *TaskRepository) Update(ctx context.Context, task *model.Task) error {
	res, err := r.collection.ReplaceOne(ctx, bson.M{"_id": task.ID}, task)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// FindByTargetDate returns tasks due on the given YYYY-MM-DD date,
// newest first.
func (r *TaskRepository) FindByTargetDate(ctx context.Context, date string) ([]model.Task, error) {
	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}})
	cur, err := r.collection.Find(ctx, bson.M{"target_date": date}, opts)
	if err != nil {
		return nil, err
	}
	var tasks []model.Task
	if err := cur.All(ctx, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}
