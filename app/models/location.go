package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Tên collection MongoDB
const (
	CollectionLocations  = "locations"
	CollectionCategories = "categories"
	CollectionProvinces  = "provinces"
	CollectionReviews    = "reviews"
)

// Location địa điểm du lịch do cộng đồng đóng góp
type Location struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Category    string             `bson:"category" json:"category"` // danh mục lá
	Province    string             `bson:"province" json:"province"`
	Description string             `bson:"description" json:"description"`
	ImageURL    string             `bson:"imageUrl,omitempty" json:"imageUrl,omitempty"`
	Status      string             `bson:"status,omitempty" json:"-"` // nội bộ, không trả ra ngoài
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`

	// Chỉ có khi tìm kiếm kèm đánh giá
	RatingAvg   *float64 `bson:"ratingAvg,omitempty" json:"ratingAvg,omitempty"`
	RatingCount *int     `bson:"ratingCount,omitempty" json:"ratingCount,omitempty"`
}

// Location status constants
const (
	LocationStatusPending  = "pending"
	LocationStatusApproved = "approved"
	LocationStatusHidden   = "hidden"
	LocationStatusRejected = "rejected"
)

// IsValidStatus kiểm tra status có hợp lệ không
func (l *Location) IsValidStatus() bool {
	switch l.Status {
	case LocationStatusPending, LocationStatusApproved, LocationStatusHidden, LocationStatusRejected:
		return true
	}
	return false
}
