package model

import "go.mongodb.org/mongo-driver/bson/primitive"

type Department struct {
	ID   primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name string             `bson:"department_name" json:"department_name"`
}
