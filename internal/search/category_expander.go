package search

import (
	"context"
	"fmt"

	"github.com/location-search/app/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CategoryLookup truy vấn danh mục
type CategoryLookup interface {
	// FindByName so khớp chính xác, không phân biệt hoa thường; nil nếu không có
	FindByName(ctx context.Context, name string) (*models.Category, error)
	// FindChildren danh mục con trực tiếp
	FindChildren(ctx context.Context, parentID primitive.ObjectID) ([]models.Category, error)
}

// CategoryExpander mở rộng một danh mục thành chính nó và các con trực tiếp
type CategoryExpander struct {
	lookup CategoryLookup
}

// NewCategoryExpander tạo mới CategoryExpander
func NewCategoryExpander(lookup CategoryLookup) *CategoryExpander {
	return &CategoryExpander{lookup: lookup}
}

// Expand chỉ xuống một cấp. Tên không có bản ghi được trả lại nguyên vẹn.
func (ce *CategoryExpander) Expand(ctx context.Context, name string) ([]string, error) {
	if name == "" {
		return nil, nil
	}

	category, err := ce.lookup.FindByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("lỗi tìm danh mục %q: %w", name, err)
	}
	if category == nil {
		return []string{name}, nil
	}

	children, err := ce.lookup.FindChildren(ctx, category.ID)
	if err != nil {
		return nil, fmt.Errorf("lỗi tìm danh mục con của %q: %w", category.Name, err)
	}

	names := make([]string, 0, len(children)+1)
	names = append(names, category.Name)
	seen := map[string]bool{category.Name: true}
	for _, child := range children {
		if seen[child.Name] {
			continue
		}
		seen[child.Name] = true
		names = append(names, child.Name)
	}
	return names, nil
}
