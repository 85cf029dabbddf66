package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"warcat/internal/model"
)

// IDepartmentRepository defines department persistence
type IDepartmentRepository interface {
	Create(ctx context.Context, dep *model.Department) (*model.Department, error)
	FindAll(ctx context.Context) ([]model.Department, error)
	FindByIDs(ctx context.Context, ids []string) ([]model.Department, error)
}

// DepartmentRepository implements department persistence over MongoDB
type DepartmentRepository struct {
	collection *mongo.Collection
}

func NewDepartmentRepository(db *mongo.Database) IDepartmentRepository {
	return &DepartmentRepository{collection: db.Collection("departments")}
}

func (r *DepartmentRepository) Create(ctx context.Context, dep *model.Department) (*model.Department, error) {
	res, err := r.collection.InsertOne(ctx, dep)
	if err != nil {
		return nil, err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		dep.ID = oid
	}
	return dep, nil
}

func (r *DepartmentRepository) FindAll(ctx context.Context) ([]model.Department, error) {
	return r.find(ctx, bson.M{})
}

// FindByIDs resolves department hex ids to records. Unparseable ids
// are skipped, so unknown references simply fall out of the result.
func (r *DepartmentRepository) FindByIDs(ctx context.Context, ids []string) ([]model.Department, error) {
	objIDs := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		oid, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			continue
		}
		objIDs = append(objIDs, oid)
	}
	if len(objIDs) == 0 {
		return nil, nil
	}
	return r.find(ctx, bson.M{"_id": bson.M{"$in": objIDs}})
}

func (r *DepartmentRepository) find(ctx context.Context, filter bson.M) ([]model.Department, error) {
	cur, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	var deps []model.Department
	if err := cur.All(ctx, &deps); err != nil {
		return nil, err
	}
	return deps, nil
}
