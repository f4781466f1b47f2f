package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/location-search/app/models"
	"github.com/location-search/app/services"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// SeedFile dữ liệu demo. Danh mục con tham chiếu cha bằng tên,
// thứ tự trong file là thứ tự từ điển.
type SeedFile struct {
	Provinces []struct {
		Name   string `yaml:"name"`
		Status string `yaml:"status"`
	} `yaml:"provinces"`
	Categories []struct {
		Name   string `yaml:"name"`
		Parent string `yaml:"parent"`
		Status string `yaml:"status"`
	} `yaml:"categories"`
	Locations []struct {
		Name        string `yaml:"name"`
		Category    string `yaml:"category"`
		Province    string `yaml:"province"`
		Description string `yaml:"description"`
		ImageURL    string `yaml:"image_url"`
		Status      string `yaml:"status"`
		DaysAgo     int    `yaml:"days_ago"`
		Ratings     []int  `yaml:"ratings"`
	} `yaml:"locations"`
}

func main() {
	mongoURL := flag.String("mongo", envOr("MONGO_URL", "mongodb://localhost:27017"), "MongoDB URI")
	dbName := flag.String("db", envOr("MONGO_DATABASE", "location_search"), "database name")
	file := flag.String("file", "", "YAML file dữ liệu demo; bỏ trống thì chỉ tạo index")
	drop := flag.Bool("drop", false, "xóa dữ liệu cũ trước khi seed")
	flag.Parse()

	logger, _ := zap.NewDevelopment()
	defer logger.Sync()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(*mongoURL))
	if err != nil {
		logger.Fatal("Không thể kết nối MongoDB", zap.Error(err))
	}
	defer client.Disconnect(context.Background())
	db := client.Database(*dbName)

	if *file != "" {
		seed, err := readSeedFile(*file)
		if err != nil {
			logger.Fatal("Lỗi đọc file seed", zap.Error(err))
		}
		if *drop {
			for _, coll := range []string{models.CollectionLocations, models.CollectionCategories, models.CollectionProvinces, models.CollectionReviews} {
				if err := db.Collection(coll).Drop(ctx); err != nil {
					logger.Fatal("Lỗi drop collection", zap.String("collection", coll), zap.Error(err))
				}
			}
		}
		if err := insertSeed(ctx, db, seed, time.Now().UTC(), logger); err != nil {
			logger.Fatal("Lỗi seed dữ liệu", zap.Error(err))
		}
	}

	if err := services.NewLocationRepository(db, logger).EnsureIndexes(ctx); err != nil {
		logger.Fatal("Lỗi tạo index", zap.Error(err))
	}
	logger.Info("Seed hoàn tất", zap.String("database", *dbName))
}

func readSeedFile(path string) (*SeedFile, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var seed SeedFile
	if err := yaml.Unmarshal(b, &seed); err != nil {
		return nil, fmt.Errorf("lỗi parse YAML: %w", err)
	}
	return &seed, nil
}

// buildDocuments chuyển file seed thành document; ObjectID sinh theo thứ tự file
func buildDocuments(seed *SeedFile, now time.Time) (provinces, categories, locations, reviews []interface{}, err error) {
	for _, p := range seed.Provinces {
		provinces = append(provinces, models.Province{ID: primitive.NewObjectID(), Name: p.Name, Status: orDefault(p.Status, models.StatusActive)})
	}

	ids := make(map[string]primitive.ObjectID)
	for _, c := range seed.Categories {
		ids[c.Name] = primitive.NewObjectID()
	}
	for _, c := range seed.Categories {
		cat := models.Category{ID: ids[c.Name], Name: c.Name, Status: orDefault(c.Status, models.StatusActive)}
		if c.Parent != "" {
			parentID, ok := ids[c.Parent]
			if !ok {
				return nil, nil, nil, nil, fmt.Errorf("danh mục %q tham chiếu cha không tồn tại %q", c.Name, c.Parent)
			}
			cat.ParentID = &parentID
		}
		categories = append(categories, cat)
	}

	for _, l := range seed.Locations {
		loc := models.Location{
			ID:          primitive.NewObjectID(),
			Name:        l.Name,
			Category:    l.Category,
			Province:    l.Province,
			Description: l.Description,
			ImageURL:    l.ImageURL,
			Status:      orDefault(l.Status, models.LocationStatusApproved),
			CreatedAt:   now.AddDate(0, 0, -l.DaysAgo),
		}
		if !loc.IsValidStatus() {
			return nil, nil, nil, nil, fmt.Errorf("địa điểm %q có status không hợp lệ %q", l.Name, l.Status)
		}
		locations = append(locations, loc)

		for _, rating := range l.Ratings {
			r := models.Review{ID: primitive.NewObjectID(), LocationID: loc.ID, Rating: rating, CreatedAt: now}
			if !r.IsValidRating() {
				return nil, nil, nil, nil, fmt.Errorf("địa điểm %q có điểm không hợp lệ %d", l.Name, rating)
			}
			reviews = append(reviews, r)
		}
	}
	return provinces, categories, locations, reviews, nil
}

func insertSeed(ctx context.Context, db *mongo.Database, seed *SeedFile, now time.Time, logger *zap.Logger) error {
	provinces, categories, locations, reviews, err := buildDocuments(seed, now)
	if err != nil {
		return err
	}

	batches := []struct {
		collection string
		docs       []interface{}
	}{
		{models.CollectionProvinces, provinces},
		{models.CollectionCategories, categories},
		{models.CollectionLocations, locations},
		{models.CollectionReviews, reviews},
	}
	for _, b := range batches {
		if len(b.docs) == 0 {
			continue
		}
		// ordered để _id tăng đúng thứ tự từ điển
		if _, err := db.Collection(b.collection).InsertMany(ctx, b.docs, options.InsertMany().SetOrdered(true)); err != nil {
			return fmt.Errorf("lỗi insert %s: %w", b.collection, err)
		}
		logger.Info("Đã seed", zap.String("collection", b.collection), zap.Int("count", len(b.docs)))
	}
	return nil
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
