package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTotalPages(t *testing.T) {
	testCases := []struct {
		total    int64
		size     int
		expected int
	}{
		{0, 10, 0},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{25, 1, 25},
		{5, 0, 0},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.expected, TotalPages(tc.total, tc.size), "total=%d size=%d", tc.total, tc.size)
	}
}

func TestClampInt(t *testing.T) {
	assert.Equal(t, 1, ClampInt(0, 1, 50))
	assert.Equal(t, 50, ClampInt(99, 1, 50))
	assert.Equal(t, 99, ClampInt(99, 1, 0))
	assert.Equal(t, 7, ClampInt(7, 1, 50))
}

func TestRequestIDs(t *testing.T) {
	id := GenerateUUID()
	assert.True(t, IsValidRequestID(id))
	assert.False(t, IsValidRequestID("not-a-uuid"))
	assert.Len(t, GenerateShortID(), 8)
}
