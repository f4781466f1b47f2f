package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Review đánh giá của người dùng cho một địa điểm
type Review struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	LocationID primitive.ObjectID `bson:"locationId" json:"locationId"`
	Rating     int                `bson:"rating" json:"rating"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
}

// Giới hạn điểm đánh giá
const (
	MinRating = 1
	MaxRating = 5
)

// IsValidRating kiểm tra điểm nằm trong [1,5]
func (r *Review) IsValidRating() bool {
	return r.Rating >= MinRating && r.Rating <= MaxRating
}
