package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"github.com/location-search/app/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// Directory đọc danh sách tỉnh và cây danh mục từ MongoDB
type Directory struct {
	db     *mongo.Database
	logger *zap.Logger
}

// NewDirectory tạo mới Directory
func NewDirectory(db *mongo.Database, logger *zap.Logger) *Directory {
	return &Directory{db: db, logger: logger}
}

// byInsertion thứ tự từ điển là thứ tự chèn, ObjectID tăng theo thời gian tạo
var byInsertion = options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})

// ListActiveProvinces tên các tỉnh đang hoạt động theo thứ tự từ điển
func (d *Directory) ListActiveProvinces(ctx context.Context) ([]string, error) {
	var provinces []models.Province
	if err := d.findAll(ctx, models.CollectionProvinces, bson.M{"status": models.StatusActive}, &provinces); err != nil {
		return nil, fmt.Errorf("lỗi lấy danh sách tỉnh: %w", err)
	}
	names := make([]string, 0, len(provinces))
	for _, p := range provinces {
		names = append(names, p.Name)
	}
	return names, nil
}

// ListActiveCategories tên các danh mục đang hoạt động (cả gốc và con) theo thứ tự từ điển
func (d *Directory) ListActiveCategories(ctx context.Context) ([]string, error) {
	var categories []models.Category
	if err := d.findAll(ctx, models.CollectionCategories, bson.M{"status": models.StatusActive}, &categories); err != nil {
		return nil, fmt.Errorf("lỗi lấy danh sách danh mục: %w", err)
	}
	names := make([]string, 0, len(categories))
	for _, c := range categories {
		names = append(names, c.Name)
	}
	return names, nil
}

// FindByName so khớp nguyên tên, không phân biệt hoa thường
func (d *Directory) FindByName(ctx context.Context, name string) (*models.Category, error) {
	filter := bson.M{"name": primitive.Regex{Pattern: "^" + regexp.QuoteMeta(name) + "$", Options: "i"}}

	var category models.Category
	err := d.db.Collection(models.CollectionCategories).FindOne(ctx, filter, options.FindOne().SetSort(bson.D{{Key: "_id", Value: 1}})).Decode(&category)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("lỗi tìm danh mục: %w", err)
	}
	return &category, nil
}

// FindChildren danh mục con trực tiếp, không lọc theo status
func (d *Directory) FindChildren(ctx context.Context, parentID primitive.ObjectID) ([]models.Category, error) {
	var children []models.Category
	if err := d.findAll(ctx, models.CollectionCategories, bson.M{"parentId": parentID}, &children); err != nil {
		return nil, fmt.Errorf("lỗi tìm danh mục con: %w", err)
	}
	return children, nil
}

// ParentNames map tên danh mục lá -> tên danh mục cha.
// Danh mục gốc hoặc tên không có bản ghi không xuất hiện trong kết quả.
func (d *Directory) ParentNames(ctx context.Context, names []string) (map[string]string, error) {
	result := make(map[string]string)
	if len(names) == 0 {
		return result, nil
	}

	var leaves []models.Category
	filter := bson.M{"name": bson.M{"$in": names}, "parentId": bson.M{"$ne": nil}}
	if err := d.findAll(ctx, models.CollectionCategories, filter, &leaves); err != nil {
		return nil, fmt.Errorf("lỗi tìm danh mục lá: %w", err)
	}
	if len(leaves) == 0 {
		return result, nil
	}

	parentIDs := make([]primitive.ObjectID, 0, len(leaves))
	for _, leaf := range leaves {
		if !leaf.IsRoot() {
			parentIDs = append(parentIDs, *leaf.ParentID)
		}
	}

	var parents []models.Category
	if err := d.findAll(ctx, models.CollectionCategories, bson.M{"_id": bson.M{"$in": parentIDs}}, &parents); err != nil {
		return nil, fmt.Errorf("lỗi tìm danh mục cha: %w", err)
	}
	parentByID := make(map[primitive.ObjectID]string, len(parents))
	for _, p := range parents {
		parentByID[p.ID] = p.Name
	}

	for _, leaf := range leaves {
		if leaf.IsRoot() {
			continue
		}
		if parent, ok := parentByID[*leaf.ParentID]; ok {
			if _, seen := result[leaf.Name]; !seen {
				result[leaf.Name] = parent
			}
		}
	}
	return result, nil
}

func (d *Directory) findAll(ctx context.Context, collection string, filter interface{}, out interface{}) error {
	cursor, err := d.db.Collection(collection).Find(ctx, filter, byInsertion)
	if err != nil {
		return err
	}
	defer cursor.Close(ctx)
	return cursor.All(ctx, out)
}
