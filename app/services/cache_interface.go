package services

import (
	"context"

	"github.com/location-search/internal/parser"
)

// CacheStats thống kê cache
type CacheStats struct {
	Backend    string  `json:"backend"`
	HitRate    float64 `json:"hit_rate"`
	TotalHits  int64   `json:"total_hits"`
	TotalMiss  int64   `json:"total_miss"`
	TotalItems int64   `json:"total_items"`
}

// IDictionaryCache cache ảnh chụp từ điển (tỉnh + danh mục).
// Giá trị lưu là nguyên ảnh chụp đã sắp thứ tự nên thứ tự từ điển không đổi khi đọc lại.
type IDictionaryCache interface {
	// Get lấy ảnh chụp, found=false khi chưa có hoặc đã hết hạn
	Get(ctx context.Context) (*parser.Dictionaries, bool, error)

	// Set lưu ảnh chụp mới
	Set(ctx context.Context, dict *parser.Dictionaries) error

	// Invalidate xóa ảnh chụp, lần tìm kiếm sau sẽ đọc lại từ database
	Invalidate(ctx context.Context) error

	// GetStats lấy thống kê cache
	GetStats(ctx context.Context) (*CacheStats, error)

	// Close đóng kết nối (nếu cần)
	Close() error
}

// dictionaryKey key duy nhất, có version để đổi format không đọc nhầm dữ liệu cũ
const dictionaryKey = "dictionaries:v1"

func hitRate(hits, misses int64) float64 {
	total := hits + misses
	if total == 0 {
		return 0
	}
	return float64(hits) / float64(total)
}
