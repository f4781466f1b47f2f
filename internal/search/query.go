package search

import (
	"math"
	"strings"

	"github.com/location-search/helpers/utils"
)

// SortMode thứ tự sắp xếp kết quả
type SortMode string

const (
	SortRelevant SortMode = "relevant"
	SortRating   SortMode = "rating"
	SortNewest   SortMode = "newest"
)

// ParseSortMode giá trị lạ được coi như không truyền
func ParseSortMode(s string) SortMode {
	switch SortMode(strings.ToLower(strings.TrimSpace(s))) {
	case SortRating:
		return SortRating
	case SortNewest:
		return SortNewest
	default:
		return SortRelevant
	}
}

// RatingRange khoảng điểm trung bình, hai đầu độc lập và đều tính cả biên
type RatingRange struct {
	Min *float64
	Max *float64
}

// IsZero không có cận nào
func (r RatingRange) IsZero() bool {
	return r.Min == nil && r.Max == nil
}

// Contains kiểm tra avg nằm trong khoảng
func (r RatingRange) Contains(avg float64) bool {
	if r.Min != nil && avg < *r.Min {
		return false
	}
	if r.Max != nil && avg > *r.Max {
		return false
	}
	return true
}

// Query tham số tìm kiếm đã được kiểm tra ở tầng request, không lưu trữ
type Query struct {
	FreeText       string
	Province       string
	Category       string
	Rating         RatingRange
	IncludeRatings bool
	Sort           SortMode
	Page           int
	PageSize       int
}

// Page trang kết quả, Number và Size luôn >= 1
type Page struct {
	Number int
	Size   int
}

// NewPage chặn giá trị không hợp lệ về 1
func NewPage(number, size int) Page {
	return Page{
		Number: utils.ClampInt(number, 1, 0),
		Size:   utils.ClampInt(size, 1, 0),
	}
}

// Skip số bản ghi bỏ qua. Trang quá lớn bão hòa ở MaxInt64 thay vì tràn số âm,
// kết quả là trang rỗng với tổng vẫn đúng.
func (p Page) Skip() int64 {
	n, size := int64(p.Number-1), int64(p.Size)
	if size > 0 && n > math.MaxInt64/size {
		return math.MaxInt64
	}
	return n * size
}

// Limit số bản ghi tối đa của trang
func (p Page) Limit() int64 {
	return int64(p.Size)
}

// Pagination metadata trả về cùng kết quả
type Pagination struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"pageSize"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

// NewPagination trang vượt quá TotalPages vẫn hợp lệ, chỉ là không có item
func NewPagination(p Page, total int64) Pagination {
	return Pagination{
		Page:       p.Number,
		PageSize:   p.Size,
		Total:      total,
		TotalPages: utils.TotalPages(total, p.Size),
	}
}
