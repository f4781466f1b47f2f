package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/location-search/app/config"
	"github.com/location-search/app/controllers"
	"github.com/location-search/app/services"
	"github.com/location-search/internal/metrics"
	"github.com/location-search/internal/parser"
	"github.com/location-search/routes"
	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

func main() {
	// 1. Load configuration
	loadConfig()
	if err := config.Load(viper.GetString("search.config")); err != nil {
		log.Printf("Warning: Cannot read search config, using defaults: %v", err)
	}

	// 2. Khởi tạo logger
	logger := initLogger()
	defer logger.Sync()

	logger.Info("Starting Location Search Service")

	// 3. Kết nối MongoDB
	mongoDB := initMongoDB(logger)
	defer func() {
		if err := mongoDB.Client().Disconnect(context.Background()); err != nil {
			logger.Error("Error disconnecting MongoDB", zap.Error(err))
		}
	}()

	// 4. Cache từ điển (tắt mặc định)
	dictCache := initDictionaryCache(logger)
	if dictCache != nil {
		defer dictCache.Close()
	}

	// 5. Khởi tạo services
	directory := services.NewDirectory(mongoDB, logger)
	repository := services.NewLocationRepository(mongoDB, logger)
	dictionaryService := services.NewDictionaryService(directory, dictCache, logger)
	queryParser := parser.NewQueryParser(parser.OrderedMatcherFactory, parser.NewPhraseStripper(parser.DefaultStopwords()), logger)
	searchService := services.NewSearchService(dictionaryService, queryParser, directory, repository, logger)
	adminService := services.NewAdminService(mongoDB, dictionaryService, logger)

	// 6. Khởi tạo controllers
	searchController := controllers.NewSearchController(searchService, logger)
	adminController := controllers.NewAdminController(adminService, logger)

	// 7. Khởi tạo Gin router
	if viper.GetString("app.env") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	routes.SetupAllRoutes(router, searchController, adminController, metrics.InitRegistry())

	// 8. Khởi động server
	port := viper.GetString("app.port")
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		logger.Info("Location Search Service starting", zap.String("port", port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}
	logger.Info("Server exited")
}

// loadConfig load configuration từ file và env vars
func loadConfig() {
	viper.SetConfigName("app")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")

	viper.SetDefault("app.port", "8080")
	viper.SetDefault("app.env", "development")
	viper.SetDefault("mongo.url", "mongodb://localhost:27017")
	viper.SetDefault("mongo.database", "location_search")
	viper.SetDefault("redis.url", "redis://localhost:6379/0")
	viper.SetDefault("search.config", "config/search.yaml")

	// APP_PORT, MONGO_URL, REDIS_URL...
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: Cannot read config file: %v", err)
	}
}

// initLogger khởi tạo structured logger
func initLogger() *zap.Logger {
	var cfg zap.Config
	if viper.GetString("app.env") == "production" {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
	}

	logger, err := cfg.Build()
	if err != nil {
		log.Fatal("Cannot initialize logger:", err)
	}
	return logger
}

// initMongoDB khởi tạo kết nối MongoDB
func initMongoDB(logger *zap.Logger) *mongo.Database {
	mongoURL := viper.GetString("mongo.url")

	client, err := mongo.Connect(context.Background(), options.Client().ApplyURI(mongoURL))
	if err != nil {
		logger.Fatal("Failed to connect to MongoDB", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := client.Ping(ctx, nil); err != nil {
		logger.Fatal("Failed to ping MongoDB", zap.Error(err))
	}

	dbName := viper.GetString("mongo.database")
	logger.Info("Connected to MongoDB", zap.String("database", dbName))
	return client.Database(dbName)
}

// initDictionaryCache nil khi cache tắt hoặc Redis không kết nối được
func initDictionaryCache(logger *zap.Logger) services.IDictionaryCache {
	ttl := config.DictionaryCacheTTL()
	backend := config.C.DictionaryCache.Backend
	logger.Info("Dictionary cache", zap.String("backend", backend), zap.Duration("ttl", ttl))

	switch backend {
	case config.CacheMemory:
		return services.NewMemoryCacheService(ttl)
	case config.CacheRedis, config.CacheHybrid:
		redisCache, err := services.NewRedisCacheService(viper.GetString("redis.url"), ttl, logger)
		if err != nil {
			// từ điển vẫn đọc được từ MongoDB, chỉ mất cache
			logger.Warn("Failed to initialize Redis cache, dictionary cache disabled", zap.Error(err))
			return nil
		}
		if backend == config.CacheRedis {
			return redisCache
		}
		return services.NewHybridCacheService(services.NewMemoryCacheService(ttl), redisCache, logger)
	default:
		return nil
	}
}
