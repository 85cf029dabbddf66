package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"warcat/internal/model"
)

// IPaymentRepository defines payment persistence. Payments are
// append-only; there is no update path.
type IPaymentRepository interface {
	Create(ctx context.Context, payment *model.Payment) (*model.Payment, error)
}

// PaymentRepository implements payment persistence over MongoDB
type PaymentRepository struct {
	collection *mongo.Collection
}

func NewPaymentRepository(db *mongo.Database) IPaymentRepository {
	return &PaymentRepository{collection: db.Collection("payments")}
}

func (r *PaymentRepository) Create(ctx context.Context, payment *model.Payment) (*model.Payment, error) {
	payment.CreatedAt = time.Now()
	res, err := r.collection.InsertOne(ctx, payment)
	if err != nil {
		return nil, err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		payment.ID = oid
	}
	return payment, nil
}
