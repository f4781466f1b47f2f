package search

import (
	"context"

	"github.com/location-search/app/models"
)

// ResultSet một trang địa điểm cùng tổng số bản ghi thỏa điều kiện
type ResultSet struct {
	Items []models.Location
	Total int64
}

// LocationStore thực thi Plan trên kho địa điểm
type LocationStore interface {
	Execute(ctx context.Context, plan Plan) (ResultSet, error)
}
