package search

import (
	"github.com/location-search/app/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// SortDocument _id giảm dần luôn là khóa cuối để ranh giới trang ổn định
func (p Plan) SortDocument() bson.D {
	if p.sort == SortRating {
		return bson.D{
			{Key: "ratingAvg", Value: -1},
			{Key: "ratingCount", Value: -1},
			{Key: "_id", Value: -1},
		}
	}
	return bson.D{
		{Key: "createdAt", Value: -1},
		{Key: "_id", Value: -1},
	}
}

// FindOptions tùy chọn cho nhánh find của ModeSimple
func (p Plan) FindOptions() *options.FindOptions {
	return options.Find().
		SetSort(p.SortDocument()).
		SetSkip(p.page.Skip()).
		SetLimit(p.page.Limit())
}

// RatingStages join đánh giá, tính điểm trung bình (0 khi chưa có) và số lượt,
// rồi lọc theo khoảng điểm nếu có
func (p Plan) RatingStages() mongo.Pipeline {
	stages := mongo.Pipeline{
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: models.CollectionReviews},
			{Key: "localField", Value: "_id"},
			{Key: "foreignField", Value: "locationId"},
			{Key: "as", Value: "reviews"},
		}}},
		{{Key: "$addFields", Value: bson.D{
			{Key: "ratingAvg", Value: bson.D{{Key: "$ifNull", Value: bson.A{
				bson.D{{Key: "$avg", Value: "$reviews.rating"}}, 0,
			}}}},
			{Key: "ratingCount", Value: bson.D{{Key: "$size", Value: "$reviews"}}},
		}}},
	}

	if !p.rating.IsZero() {
		bounds := bson.D{}
		if p.rating.Min != nil {
			bounds = append(bounds, bson.E{Key: "$gte", Value: *p.rating.Min})
		}
		if p.rating.Max != nil {
			bounds = append(bounds, bson.E{Key: "$lte", Value: *p.rating.Max})
		}
		stages = append(stages, bson.D{{Key: "$match", Value: bson.D{{Key: "ratingAvg", Value: bounds}}}})
	}
	return stages
}

// FacetPipeline pipeline của ModeFaceted: trang và tổng tính trên cùng một tập trung gian
func (p Plan) FacetPipeline() mongo.Pipeline {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: p.filter.BSON()}},
	}
	pipeline = append(pipeline, p.RatingStages()...)
	pipeline = append(pipeline,
		bson.D{{Key: "$sort", Value: p.SortDocument()}},
		bson.D{{Key: "$facet", Value: bson.D{
			{Key: "items", Value: bson.A{
				bson.D{{Key: "$skip", Value: p.page.Skip()}},
				bson.D{{Key: "$limit", Value: p.page.Limit()}},
				bson.D{{Key: "$project", Value: bson.D{
					{Key: "reviews", Value: 0},
					{Key: "status", Value: 0},
				}}},
			}},
			{Key: "total", Value: bson.A{
				bson.D{{Key: "$count", Value: "count"}},
			}},
		}}},
	)
	return pipeline
}
