package parser

import (
	"strings"
	"unicode"

	"github.com/location-search/internal/normalizer"
	"golang.org/x/text/unicode/norm"
)

// PhraseStripper cắt tên entity đã nhận diện và từ nối khỏi câu tìm kiếm gốc,
// phần còn lại là từ khóa.
//
// Tên entity bị xóa như chuỗi con (không cần biên từ), lỏng hơn quy tắc nguyên từ
// của OrderedMatcher. Từ nối chỉ bị xóa khi đứng thành từ riêng.
type PhraseStripper struct {
	stopwords [][]rune
}

// NewPhraseStripper tạo stripper với danh sách từ nối
func NewPhraseStripper(stopwords []string) *PhraseStripper {
	ps := &PhraseStripper{stopwords: make([][]rune, 0, len(stopwords))}
	for _, sw := range stopwords {
		sw = collapseSpaces(sw)
		if sw == "" {
			continue
		}
		ps.stopwords = append(ps.stopwords, []rune(norm.NFC.String(sw)))
	}
	return ps
}

// Strip trả về từ khóa còn lại, có thể rỗng
func (ps *PhraseStripper) Strip(raw string, entities ...string) string {
	// gom khoảng trắng trước để khớp với văn bản mà OrderedMatcher đã thấy
	text := []rune(norm.NFC.String(collapseSpaces(raw)))

	for _, name := range entities {
		name = collapseSpaces(name)
		if name == "" {
			continue
		}
		text = deletePhrase(text, []rune(norm.NFC.String(name)), false)
		text = deletePhrase(text, []rune(normalizer.RemoveAccentsAndLowercase(name)), false)
	}

	for _, sw := range ps.stopwords {
		text = deletePhrase(text, sw, true)
	}

	return collapseSpaces(string(text))
}

// deletePhrase xóa mọi lần xuất hiện (không chồng lấn, trái sang phải) của phrase,
// không phân biệt hoa thường.
func deletePhrase(text, phrase []rune, wholeWord bool) []rune {
	n := len(phrase)
	if n == 0 || n > len(text) {
		return text
	}

	out := make([]rune, 0, len(text))
	i := 0
	for i < len(text) {
		if i+n <= len(text) && equalFoldRunes(text[i:i+n], phrase) {
			// biên trái xét trên phần đã giữ lại để hai từ nối liền nhau đều bị xóa
			if !wholeWord || (boundaryAtEnd(out) && (i+n == len(text) || !isWordRune(text[i+n]))) {
				i += n
				continue
			}
		}
		out = append(out, text[i])
		i++
	}
	return out
}

func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func boundaryAtEnd(kept []rune) bool {
	return len(kept) == 0 || !isWordRune(kept[len(kept)-1])
}

func equalFoldRunes(a, b []rune) bool {
	for i := range a {
		if a[i] == b[i] {
			continue
		}
		if unicode.ToLower(a[i]) != unicode.ToLower(b[i]) && unicode.ToUpper(a[i]) != unicode.ToUpper(b[i]) {
			return false
		}
	}
	return true
}
