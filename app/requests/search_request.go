package requests

import (
	"math"
	"strconv"
	"strings"

	"github.com/location-search/helpers/utils"
	"github.com/location-search/internal/search"
)

// SearchLocationsRequest query string của GET /v1/locations/search.
// Mọi field đều là string để bind không bao giờ lỗi; giá trị sai bị bỏ qua khi ToQuery.
type SearchLocationsRequest struct {
	FreeText       string `form:"freeText"`
	Q              string `form:"q"` // alias ngắn của freeText
	Province       string `form:"province"`
	Category       string `form:"category"`
	RatingMin      string `form:"ratingMin"`
	RatingMax      string `form:"ratingMax"`
	IncludeRatings string `form:"includeRatings"`
	Sort           string `form:"sort"`
	Page           string `form:"page"`
	PageSize       string `form:"pageSize"`
}

// ToQuery chuyển request thành search.Query đã kiểm tra.
// page >= 1; pageSize trong [1, maxPageSize], thiếu thì dùng defaultPageSize.
func (r SearchLocationsRequest) ToQuery(defaultPageSize, maxPageSize int) search.Query {
	freeText := r.FreeText
	if strings.TrimSpace(freeText) == "" {
		freeText = r.Q
	}

	return search.Query{
		FreeText:       strings.TrimSpace(freeText),
		Province:       strings.TrimSpace(r.Province),
		Category:       strings.TrimSpace(r.Category),
		Rating:         search.RatingRange{Min: parseRating(r.RatingMin), Max: parseRating(r.RatingMax)},
		IncludeRatings: parseBool(r.IncludeRatings),
		Sort:           search.ParseSortMode(r.Sort),
		Page:           utils.ClampInt(parseInt(r.Page, 1), 1, 0),
		PageSize:       utils.ClampInt(parseInt(r.PageSize, defaultPageSize), 1, maxPageSize),
	}
}

// parseRating giá trị không phải số hữu hạn coi như không truyền
func parseRating(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

func parseInt(s string, fallback int) int {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fallback
	}
	return v
}

func parseBool(s string) bool {
	v, err := strconv.ParseBool(strings.TrimSpace(s))
	return err == nil && v
}
