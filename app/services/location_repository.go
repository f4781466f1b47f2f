package services

import (
	"context"
	"fmt"

	"github.com/location-search/app/models"
	"github.com/location-search/internal/search"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// LocationRepository thực thi Plan trên MongoDB
type LocationRepository struct {
	db     *mongo.Database
	logger *zap.Logger
}

// NewLocationRepository tạo mới LocationRepository
func NewLocationRepository(db *mongo.Database, logger *zap.Logger) *LocationRepository {
	return &LocationRepository{db: db, logger: logger}
}

// Execute chọn cách thực thi theo mode của plan
func (lr *LocationRepository) Execute(ctx context.Context, plan search.Plan) (search.ResultSet, error) {
	if plan.Mode() == search.ModeFaceted {
		return lr.executeFaceted(ctx, plan)
	}
	return lr.executeSimple(ctx, plan)
}

// executeSimple find và count là hai lần đọc độc lập, có thể lệch nhau khi đang có ghi đồng thời
func (lr *LocationRepository) executeSimple(ctx context.Context, plan search.Plan) (search.ResultSet, error) {
	coll := lr.db.Collection(models.CollectionLocations)
	filter := plan.Filter().BSON()

	var rs search.ResultSet
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		cursor, err := coll.Find(gctx, filter, plan.FindOptions())
		if err != nil {
			return fmt.Errorf("lỗi find locations: %w", err)
		}
		defer cursor.Close(gctx)

		items := make([]models.Location, 0, plan.Page().Size)
		if err := cursor.All(gctx, &items); err != nil {
			return fmt.Errorf("lỗi decode locations: %w", err)
		}
		rs.Items = items
		return nil
	})
	g.Go(func() error {
		total, err := coll.CountDocuments(gctx, filter)
		if err != nil {
			return fmt.Errorf("lỗi count locations: %w", err)
		}
		rs.Total = total
		return nil
	})
	if err := g.Wait(); err != nil {
		return search.ResultSet{}, err
	}
	return rs, nil
}

type facetResult struct {
	Items []models.Location `bson:"items"`
	Total []struct {
		Count int64 `bson:"count"`
	} `bson:"total"`
}

// executeFaceted trang và tổng lấy từ cùng một pipeline
func (lr *LocationRepository) executeFaceted(ctx context.Context, plan search.Plan) (search.ResultSet, error) {
	cursor, err := lr.db.Collection(models.CollectionLocations).Aggregate(ctx, plan.FacetPipeline())
	if err != nil {
		return search.ResultSet{}, fmt.Errorf("lỗi aggregate locations: %w", err)
	}
	defer cursor.Close(ctx)

	var facets []facetResult
	if err := cursor.All(ctx, &facets); err != nil {
		return search.ResultSet{}, fmt.Errorf("lỗi decode facet: %w", err)
	}

	rs := search.ResultSet{Items: []models.Location{}}
	if len(facets) == 0 {
		return rs, nil
	}
	if facets[0].Items != nil {
		rs.Items = facets[0].Items
	}
	if len(facets[0].Total) > 0 {
		rs.Total = facets[0].Total[0].Count
	}
	return rs, nil
}

// EnsureIndexes tạo các index phục vụ tìm kiếm, gọi lại nhiều lần không sao
func (lr *LocationRepository) EnsureIndexes(ctx context.Context) error {
	indexes := map[string][]mongo.IndexModel{
		models.CollectionLocations: {
			{Keys: bson.D{{Key: "status", Value: 1}, {Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}},
			{Keys: bson.D{{Key: "status", Value: 1}, {Key: "category", Value: 1}}},
			{Keys: bson.D{{Key: "status", Value: 1}, {Key: "province", Value: 1}}},
		},
		models.CollectionReviews: {
			{Keys: bson.D{{Key: "locationId", Value: 1}}},
		},
		models.CollectionCategories: {
			{Keys: bson.D{{Key: "name", Value: 1}}},
			{Keys: bson.D{{Key: "parentId", Value: 1}}},
			{Keys: bson.D{{Key: "status", Value: 1}}},
		},
		models.CollectionProvinces: {
			{Keys: bson.D{{Key: "status", Value: 1}}},
		},
	}

	for collection, idx := range indexes {
		names, err := lr.db.Collection(collection).Indexes().CreateMany(ctx, idx)
		if err != nil {
			return fmt.Errorf("lỗi tạo index cho %s: %w", collection, err)
		}
		lr.logger.Info("Đã tạo index", zap.String("collection", collection), zap.Strings("indexes", names))
	}
	return nil
}
