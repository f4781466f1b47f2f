package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderedMatcher_WholeWord(t *testing.T) {
	m := NewOrderedMatcher([]string{"Đà Nẵng", "Hà Nội", "Huế"})

	testCases := []struct {
		name     string
		text     string
		expected string
		found    bool
	}{
		{name: "accent folded", text: "quan an da nang", expected: "Đà Nẵng", found: true},
		{name: "at start", text: "ha noi pho co", expected: "Hà Nội", found: true},
		{name: "whole text", text: "hue", expected: "Huế", found: true},
		{name: "punctuation boundary", text: "bun bo (hue), ngon", expected: "Huế", found: true},
		{name: "inside word", text: "thue xe may", found: false},
		{name: "prefix of word", text: "da nangx", found: false},
		{name: "no match", text: "sai gon", found: false},
		{name: "empty", text: "", found: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			e, ok := m.Match(tc.text)
			assert.Equal(t, tc.found, ok)
			if tc.found {
				assert.Equal(t, tc.expected, e.Name)
			}
		})
	}
}

func TestOrderedMatcher_FirstMatchInDictionaryOrder(t *testing.T) {
	// cả hai đều xuất hiện; thắng là ứng viên đứng trước trong từ điển, không phải chuỗi dài hơn
	m := NewOrderedMatcher([]string{"Hà Nội", "Đà Nẵng"})
	e, ok := m.Match("tu ha noi di da nang")
	require.True(t, ok)
	assert.Equal(t, "Hà Nội", e.Name)

	m = NewOrderedMatcher([]string{"Đà Nẵng", "Hà Nội"})
	e, ok = m.Match("tu ha noi di da nang")
	require.True(t, ok)
	assert.Equal(t, "Đà Nẵng", e.Name)

	m = NewOrderedMatcher([]string{"Cà phê", "Cà phê muối"})
	e, ok = m.Match("ca phe muoi hue")
	require.True(t, ok)
	assert.Equal(t, "Cà phê", e.Name)
}

func TestOrderedMatcher_SkipsEmptyNames(t *testing.T) {
	m := NewOrderedMatcher([]string{"", "   ", "Huế"})
	e, ok := m.Match("di hue")
	require.True(t, ok)
	assert.Equal(t, "Huế", e.Name)
}

func TestOrderedMatcher_Lookup(t *testing.T) {
	m := NewOrderedMatcher([]string{"Đà Nẵng", "Hà Nội"})

	e, ok := m.Lookup("da nang")
	require.True(t, ok)
	assert.Equal(t, "Đà Nẵng", e.Name)

	e, ok = m.Lookup("  HÀ   NỘI ")
	require.True(t, ok)
	assert.Equal(t, "Hà Nội", e.Name)

	_, ok = m.Lookup("Nẵng")
	assert.False(t, ok)
}

func TestContainsWholeWord_RepeatedOccurrence(t *testing.T) {
	// lần đầu dính chữ, lần sau đứng riêng
	assert.True(t, containsWholeWord("hueh hue", "hue"))
	assert.False(t, containsWholeWord("huehue", "hue"))
	assert.False(t, containsWholeWord("abc", ""))
}
