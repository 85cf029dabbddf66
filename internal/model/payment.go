package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Payment is an append-only record of a completed payment event.
type Payment struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	Email         string             `bson:"email" json:"email"`
	UserID        string             `bson:"userId" json:"userId"`
	UserPaymentID string             `bson:"userPaymentId" json:"userPaymentId"`
	PayFor        string             `bson:"payFor" json:"payFor"`
	CreatedAt     time.Time          `bson:"timestamp" json:"timestamp"`
}
