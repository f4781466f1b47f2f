package parser

import (
	"strings"

	"github.com/location-search/internal/normalizer"
	"go.uber.org/zap"
)

// Source nguồn gốc của giá trị một trục lọc
type Source string

const (
	SourceNone     Source = ""
	SourceExplicit Source = "explicit"
	SourceInferred Source = "inferred"
)

// Dictionaries tỉnh và danh mục đang hoạt động, giữ nguyên thứ tự từ điển
type Dictionaries struct {
	Provinces  []string `json:"provinces"`
	Categories []string `json:"categories"`
}

// ParseInput đầu vào thô của một lượt tìm kiếm
type ParseInput struct {
	FreeText string
	Province string // giá trị người dùng chọn trên bộ lọc, có thể rỗng
	Category string
}

// ParsedQuery kết quả phân tích câu tìm kiếm
type ParsedQuery struct {
	Keyword        string `json:"keyword"`
	Province       string `json:"province,omitempty"`
	Category       string `json:"category,omitempty"`
	ProvinceSource Source `json:"province_source,omitempty"`
	CategorySource Source `json:"category_source,omitempty"`
}

// QueryParser nhận diện tỉnh/danh mục trong câu tìm kiếm và tách từ khóa còn lại
type QueryParser struct {
	newMatcher MatcherFactory
	stripper   *PhraseStripper
	logger     *zap.Logger
}

// NewQueryParser tạo mới QueryParser
func NewQueryParser(newMatcher MatcherFactory, stripper *PhraseStripper, logger *zap.Logger) *QueryParser {
	if newMatcher == nil {
		newMatcher = OrderedMatcherFactory
	}
	return &QueryParser{
		newMatcher: newMatcher,
		stripper:   stripper,
		logger:     logger,
	}
}

// Parse không lưu trạng thái giữa các lần gọi; matcher dựng lại từ dict mỗi lần.
func (qp *QueryParser) Parse(in ParseInput, dict Dictionaries) ParsedQuery {
	text := normalizer.NormalizeSearchText(in.FreeText)

	var pq ParsedQuery
	pq.Province, pq.ProvinceSource = qp.resolveAxis("province", in.Province, text, qp.newMatcher(dict.Provinces))
	// danh mục quét trên cùng văn bản gốc, không phụ thuộc kết quả tỉnh
	pq.Category, pq.CategorySource = qp.resolveAxis("category", in.Category, text, qp.newMatcher(dict.Categories))
	pq.Keyword = qp.stripper.Strip(in.FreeText, pq.Province, pq.Category)

	qp.logger.Debug("Đã phân tích câu tìm kiếm",
		zap.String("raw", in.FreeText),
		zap.String("keyword", pq.Keyword),
		zap.String("province", pq.Province),
		zap.String("province_source", string(pq.ProvinceSource)),
		zap.String("category", pq.Category),
		zap.String("category_source", string(pq.CategorySource)))

	return pq
}

// resolveAxis giá trị tường minh luôn thắng; chỉ nhận diện từ văn bản khi không có
func (qp *QueryParser) resolveAxis(axis, explicit, text string, m EntityMatcher) (string, Source) {
	if strings.TrimSpace(explicit) != "" {
		if e, ok := m.Lookup(explicit); ok {
			return e.Name, SourceExplicit
		}
		qp.logger.Debug("Bỏ qua giá trị lọc không có trong từ điển",
			zap.String("axis", axis),
			zap.String("value", explicit))
	}
	if e, ok := m.Match(text); ok {
		return e.Name, SourceInferred
	}
	return "", SourceNone
}
