package search

import (
	"regexp"

	"github.com/location-search/app/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Filter điều kiện lọc địa điểm, bất biến sau khi Compile.
// Cả hai chế độ thực thi dùng chung một giá trị Filter nên bật đánh giá chỉ đổi
// thứ tự và thông tin kèm theo, không đổi tập địa điểm hợp lệ.
type Filter struct {
	keyword    string
	province   string
	categories []string
}

// Compile dựng filter từ từ khóa còn lại, tỉnh và tập danh mục đã mở rộng
func Compile(keyword, province string, categories []string) Filter {
	var cats []string
	if len(categories) > 0 {
		cats = make([]string, len(categories))
		copy(cats, categories)
	}
	return Filter{
		keyword:    keyword,
		province:   province,
		categories: cats,
	}
}

// Status luôn là approved trên đường tìm kiếm công khai
func (f Filter) Status() string { return models.LocationStatusApproved }

// Keyword từ khóa so khớp một phần tên, rỗng nếu không lọc
func (f Filter) Keyword() string { return f.keyword }

// Province tỉnh so khớp một phần, rỗng nếu không lọc
func (f Filter) Province() string { return f.province }

// Categories bản sao tập danh mục được chấp nhận, nil nếu không lọc
func (f Filter) Categories() []string {
	if f.categories == nil {
		return nil
	}
	out := make([]string, len(f.categories))
	copy(out, f.categories)
	return out
}

// BSON điều kiện $match tương ứng
func (f Filter) BSON() bson.D {
	doc := bson.D{{Key: "status", Value: f.Status()}}
	if f.keyword != "" {
		doc = append(doc, bson.E{Key: "name", Value: containsFold(f.keyword)})
	}
	if len(f.categories) > 0 {
		doc = append(doc, bson.E{Key: "category", Value: bson.D{{Key: "$in", Value: f.Categories()}}})
	}
	if f.province != "" {
		doc = append(doc, bson.E{Key: "province", Value: containsFold(f.province)})
	}
	return doc
}

// containsFold chuỗi con không phân biệt hoa thường, ký tự đặc biệt được escape
func containsFold(s string) primitive.Regex {
	return primitive.Regex{Pattern: regexp.QuoteMeta(s), Options: "i"}
}
