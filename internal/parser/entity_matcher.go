package parser

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/location-search/internal/normalizer"
)

// Entity một tên trong từ điển (tỉnh hoặc danh mục)
type Entity struct {
	Name string // tên gốc có dấu, dùng cho filter
	Key  string // dạng đã chuẩn hóa để so khớp
}

// EntityMatcher tìm entity trong một tập ứng viên (tỉnh hoặc danh mục).
type EntityMatcher interface {
	// Match tìm entity xuất hiện nguyên từ trong văn bản đã chuẩn hóa
	Match(text string) (Entity, bool)
	// Lookup tìm entity có tên trùng hoàn toàn với name sau chuẩn hóa
	Lookup(name string) (Entity, bool)
}

// MatcherFactory dựng matcher từ danh sách tên theo thứ tự từ điển
type MatcherFactory func(names []string) EntityMatcher

// OrderedMatcherFactory là MatcherFactory mặc định
func OrderedMatcherFactory(names []string) EntityMatcher {
	return NewOrderedMatcher(names)
}

// OrderedMatcher duyệt ứng viên theo thứ tự từ điển và dừng ở ứng viên đầu tiên
// khớp nguyên từ. Không chọn chuỗi dài nhất hay khớp tốt nhất.
type OrderedMatcher struct {
	entities []Entity
}

// NewOrderedMatcher tạo matcher từ danh sách tên theo đúng thứ tự truyền vào
func NewOrderedMatcher(names []string) *OrderedMatcher {
	entities := make([]Entity, 0, len(names))
	for _, name := range names {
		key := normalizer.NormalizeSearchText(name)
		if key == "" {
			continue
		}
		entities = append(entities, Entity{Name: name, Key: key})
	}
	return &OrderedMatcher{entities: entities}
}

// Match text phải đã qua normalizer.NormalizeSearchText
func (m *OrderedMatcher) Match(text string) (Entity, bool) {
	if text == "" {
		return Entity{}, false
	}
	for _, e := range m.entities {
		if containsWholeWord(text, e.Key) {
			return e, true
		}
	}
	return Entity{}, false
}

// Lookup tìm entity có key trùng hoàn toàn với name (không dấu, không phân biệt hoa thường)
func (m *OrderedMatcher) Lookup(name string) (Entity, bool) {
	key := normalizer.NormalizeSearchText(name)
	if key == "" {
		return Entity{}, false
	}
	for _, e := range m.entities {
		if e.Key == key {
			return e, true
		}
	}
	return Entity{}, false
}

// containsWholeWord kiểm tra word xuất hiện trong text với biên là ký tự không phải chữ/số
// hoặc đầu/cuối chuỗi.
func containsWholeWord(text, word string) bool {
	if word == "" {
		return false
	}
	offset := 0
	for offset <= len(text)-len(word) {
		i := strings.Index(text[offset:], word)
		if i < 0 {
			return false
		}
		start := offset + i
		end := start + len(word)
		if isBoundaryBefore(text, start) && isBoundaryAfter(text, end) {
			return true
		}
		_, size := utf8.DecodeRuneInString(text[start:])
		offset = start + size
	}
	return false
}

func isBoundaryBefore(s string, i int) bool {
	if i == 0 {
		return true
	}
	r, _ := utf8.DecodeLastRuneInString(s[:i])
	return !isWordRune(r)
}

func isBoundaryAfter(s string, i int) bool {
	if i >= len(s) {
		return true
	}
	r, _ := utf8.DecodeRuneInString(s[i:])
	return !isWordRune(r)
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
