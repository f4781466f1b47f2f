package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Province tỉnh/thành phố
type Province struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name   string             `bson:"name" json:"name"`
	Status string             `bson:"status" json:"status"`
}
