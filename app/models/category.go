package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Category danh mục địa điểm, cây hai cấp: gốc và con trực tiếp
type Category struct {
	ID       primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	Name     string              `bson:"name" json:"name"`
	ParentID *primitive.ObjectID `bson:"parentId,omitempty" json:"parentId,omitempty"`
	Status   string              `bson:"status" json:"status"`
}

// Trạng thái dùng chung cho danh mục và tỉnh
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// IsRoot danh mục gốc không có cha
func (c *Category) IsRoot() bool {
	return c.ParentID == nil || c.ParentID.IsZero()
}
