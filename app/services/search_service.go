package services

import (
	"context"
	"time"

	"github.com/location-search/app/models"
	"github.com/location-search/internal/metrics"
	"github.com/location-search/internal/parser"
	"github.com/location-search/internal/search"
	"go.uber.org/zap"
)

// DictionaryLoader nạp ảnh chụp từ điển cho một lượt tìm kiếm
type DictionaryLoader interface {
	Load(ctx context.Context) (*parser.Dictionaries, error)
}

// CategoryDirectory tra cứu cây danh mục
type CategoryDirectory interface {
	search.CategoryLookup
	ParentNames(ctx context.Context, names []string) (map[string]string, error)
}

// SearchResult một trang kết quả tìm kiếm
type SearchResult struct {
	Items      []models.Location  `json:"items"`
	Pagination search.Pagination  `json:"pagination"`
	Parsed     parser.ParsedQuery `json:"-"`
	Mode       search.Mode        `json:"-"`
}

// SearchService điều phối một lượt tìm kiếm: từ điển, phân tích câu, mở rộng danh mục,
// dựng filter/plan, thực thi và hậu xử lý.
// Không giữ trạng thái giữa các lượt, gọi đồng thời an toàn.
type SearchService struct {
	dictionaries DictionaryLoader
	parser       *parser.QueryParser
	categories   CategoryDirectory
	expander     *search.CategoryExpander
	store        search.LocationStore
	logger       *zap.Logger
}

// NewSearchService tạo mới SearchService
func NewSearchService(dictionaries DictionaryLoader, queryParser *parser.QueryParser, categories CategoryDirectory, store search.LocationStore, logger *zap.Logger) *SearchService {
	return &SearchService{
		dictionaries: dictionaries,
		parser:       queryParser,
		categories:   categories,
		expander:     search.NewCategoryExpander(categories),
		store:        store,
		logger:       logger,
	}
}

// Search lỗi từ database luôn trả về ErrUpstreamFailure, không có kết quả một phần
func (ss *SearchService) Search(ctx context.Context, q search.Query) (*SearchResult, error) {
	start := time.Now()
	mode := search.ModeSimple

	result, err := ss.search(ctx, q, &mode)
	switch {
	case err != nil:
		metrics.ObserveSearch(mode.String(), "error", time.Since(start))
		return nil, err
	case len(result.Items) == 0:
		metrics.ObserveSearch(mode.String(), "empty", time.Since(start))
	default:
		metrics.ObserveSearch(mode.String(), "ok", time.Since(start))
	}
	return result, nil
}

func (ss *SearchService) search(ctx context.Context, q search.Query, mode *search.Mode) (*SearchResult, error) {
	dict, err := ss.dictionaries.Load(ctx)
	if err != nil {
		return nil, ss.upstream("Lỗi nạp từ điển", err)
	}

	parsed := ss.parser.Parse(parser.ParseInput{
		FreeText: q.FreeText,
		Province: q.Province,
		Category: q.Category,
	}, *dict)

	var categories []string
	if parsed.Category != "" {
		categories, err = ss.expander.Expand(ctx, parsed.Category)
		if err != nil {
			return nil, ss.upstream("Lỗi mở rộng danh mục", err)
		}
	}

	filter := search.Compile(parsed.Keyword, parsed.Province, categories)
	plan := search.NewPlan(filter, q)
	*mode = plan.Mode()

	rs, err := ss.store.Execute(ctx, plan)
	if err != nil {
		return nil, ss.upstream("Lỗi truy vấn địa điểm", err)
	}

	items := rs.Items
	if items == nil {
		items = []models.Location{}
	}
	if err := ss.rewriteCategories(ctx, items); err != nil {
		return nil, ss.upstream("Lỗi tra cứu danh mục cha", err)
	}

	ss.logger.Debug("Tìm kiếm hoàn tất",
		zap.String("mode", plan.Mode().String()),
		zap.String("sort", string(plan.Sort())),
		zap.Strings("categories", filter.Categories()),
		zap.Int64("total", rs.Total),
		zap.Int("items", len(items)))

	return &SearchResult{
		Items:      items,
		Pagination: search.NewPagination(plan.Page(), rs.Total),
		Parsed:     parsed,
		Mode:       plan.Mode(),
	}, nil
}

// rewriteCategories người dùng luôn thấy danh mục cha, lọc và lưu trữ vẫn dùng danh mục lá
func (ss *SearchService) rewriteCategories(ctx context.Context, items []models.Location) error {
	if len(items) == 0 {
		return nil
	}

	seen := make(map[string]bool)
	names := make([]string, 0, len(items))
	for _, item := range items {
		if item.Category != "" && !seen[item.Category] {
			seen[item.Category] = true
			names = append(names, item.Category)
		}
	}

	parents, err := ss.categories.ParentNames(ctx, names)
	if err != nil {
		return err
	}
	for i := range items {
		if parent, ok := parents[items[i].Category]; ok {
			items[i].Category = parent
		}
	}
	return nil
}

func (ss *SearchService) upstream(msg string, err error) error {
	ss.logger.Error(msg, zap.Error(err))
	return ErrUpstreamFailure
}
