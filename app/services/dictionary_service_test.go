package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestDictionaryService_FreshPerLoadWithoutCache(t *testing.T) {
	src := &fakeSource{provinces: []string{"Hà Nội", "Đà Nẵng"}, categories: []string{"Ẩm thực"}}
	ds := NewDictionaryService(src, nil, zap.NewNop())
	ctx := context.Background()

	dict, err := ds.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Hà Nội", "Đà Nẵng"}, dict.Provinces)

	// tỉnh mới kích hoạt phải có ngay ở lần tìm sau
	src.provinces = append(src.provinces, "Huế")
	dict, err = ds.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Hà Nội", "Đà Nẵng", "Huế"}, dict.Provinces)
	assert.Equal(t, int32(2), src.calls.Load())

	stats, err := ds.CacheStats(ctx)
	assert.NoError(t, err)
	assert.Nil(t, stats)
	assert.NoError(t, ds.Invalidate(ctx))
}

func TestDictionaryService_MemoryCacheAndInvalidate(t *testing.T) {
	src := &fakeSource{provinces: []string{"Hà Nội"}, categories: []string{"Cafe"}}
	ds := NewDictionaryService(src, NewMemoryCacheService(time.Minute), zap.NewNop())
	ctx := context.Background()

	_, err := ds.Load(ctx)
	require.NoError(t, err)
	src.provinces = []string{"Hà Nội", "Huế"}

	dict, err := ds.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Hà Nội"}, dict.Provinces)
	assert.Equal(t, int32(1), src.calls.Load())

	require.NoError(t, ds.Invalidate(ctx))
	dict, err = ds.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Hà Nội", "Huế"}, dict.Provinces)

	stats, err := ds.CacheStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.TotalHits)
	assert.Equal(t, int64(2), stats.TotalMiss)
}

func TestDictionaryService_SourceError(t *testing.T) {
	ds := NewDictionaryService(&fakeSource{err: errBoom}, NewMemoryCacheService(time.Minute), zap.NewNop())
	_, err := ds.Load(context.Background())
	assert.ErrorIs(t, err, errBoom)
}
