package services

import (
	"context"
	"fmt"

	"github.com/location-search/internal/metrics"
	"github.com/location-search/internal/parser"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// DictionarySource nguồn danh sách tỉnh và danh mục đang hoạt động
type DictionarySource interface {
	ListActiveProvinces(ctx context.Context) ([]string, error)
	ListActiveCategories(ctx context.Context) ([]string, error)
}

// DictionaryService nạp từ điển cho mỗi lượt tìm kiếm.
// Không có cache thì luôn đọc mới từ database.
type DictionaryService struct {
	source DictionarySource
	cache  IDictionaryCache // nil = tắt cache
	logger *zap.Logger
}

// NewDictionaryService cache có thể nil
func NewDictionaryService(source DictionarySource, cache IDictionaryCache, logger *zap.Logger) *DictionaryService {
	return &DictionaryService{
		source: source,
		cache:  cache,
		logger: logger,
	}
}

// Load trả về ảnh chụp tỉnh + danh mục. Lỗi cache chỉ ghi log rồi đọc từ database.
func (ds *DictionaryService) Load(ctx context.Context) (*parser.Dictionaries, error) {
	if ds.cache != nil {
		dict, found, err := ds.cache.Get(ctx)
		if err != nil {
			ds.logger.Warn("Lỗi đọc cache từ điển, đọc lại từ database", zap.Error(err))
		} else if found {
			metrics.ObserveDictionaryLoad("cache")
			return dict, nil
		}
	}

	dict, err := ds.fetch(ctx)
	if err != nil {
		metrics.ObserveDictionaryLoad("error")
		return nil, err
	}
	metrics.ObserveDictionaryLoad("store")

	if ds.cache != nil {
		if err := ds.cache.Set(ctx, dict); err != nil {
			ds.logger.Warn("Lỗi lưu cache từ điển", zap.Error(err))
		}
	}
	return dict, nil
}

// fetch hai truy vấn độc lập chạy song song
func (ds *DictionaryService) fetch(ctx context.Context) (*parser.Dictionaries, error) {
	var dict parser.Dictionaries
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		provinces, err := ds.source.ListActiveProvinces(gctx)
		if err != nil {
			return err
		}
		dict.Provinces = provinces
		return nil
	})
	g.Go(func() error {
		categories, err := ds.source.ListActiveCategories(gctx)
		if err != nil {
			return err
		}
		dict.Categories = categories
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("lỗi nạp từ điển: %w", err)
	}
	return &dict, nil
}

// Invalidate bỏ ảnh chụp đang cache, không làm gì khi tắt cache
func (ds *DictionaryService) Invalidate(ctx context.Context) error {
	if ds.cache == nil {
		return nil
	}
	return ds.cache.Invalidate(ctx)
}

// CacheStats nil khi tắt cache
func (ds *DictionaryService) CacheStats(ctx context.Context) (*CacheStats, error) {
	if ds.cache == nil {
		return nil, nil
	}
	return ds.cache.GetStats(ctx)
}
