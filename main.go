package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/beka-birhanu/mazeraster/api"
	api_i "github.com/beka-birhanu/mazeraster/api/i"
	"github.com/beka-birhanu/mazeraster/api/identity"
	"github.com/beka-birhanu/mazeraster/api/mazeapi"
	"github.com/beka-birhanu/mazeraster/config"
	"github.com/beka-birhanu/mazeraster/infrastruture/cache"
	"github.com/beka-birhanu/mazeraster/infrastruture/repo"
	"github.com/beka-birhanu/mazeraster/infrastruture/token"
	"github.com/beka-birhanu/mazeraster/service"
	"github.com/beka-birhanu/mazeraster/service/i"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Global variables for dependencies
var (
	mongoClient    *mongo.Client
	redisClient    *redis.Client
	mazeRepo       i.MazeRepo
	imageCache     i.ImageCache
	jwtTokenizer   *token.JwtService
	mazeService    i.MazeService
	mazeController api_i.Controller
	router         *api.Router
	appLogger      *logrus.Entry
)

func initMongo(ctx context.Context) {
	uri := fmt.Sprintf("mongodb://%s:%s@%s:%v", config.Envs.DBUser, config.Envs.DBPassword, config.Envs.DBHost, config.Envs.DBPort)

	clientOptions := options.Client().ApplyURI(uri)
	var err error
	mongoClient, err = mongo.Connect(ctx, clientOptions)
	if err != nil {
		appLogger.Errorf("Failed to connect to MongoDB: %v", err)
		os.Exit(1)
	}
	if err = mongoClient.Ping(ctx, nil); err != nil {
		appLogger.Errorf("MongoDB ping failed: %v", err)
		os.Exit(1)
	}
	appLogger.Info("Connected to MongoDB")
}

func initMazeRepo(client *mongo.Client) {
	mazeRepo = repo.NewMazeRepo(client, config.Envs.DBName, "mazes")
	appLogger.Info("Maze repository initialized")
}

func initRedis(ctx context.Context) {
	redisClient = redis.NewClient(&redis.Options{
		Addr:     config.Envs.RedisAddr,
		Password: config.Envs.RedisPassword,
	})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		appLogger.Errorf("Redis ping failed: %v", err)
		os.Exit(1)
	}
	appLogger.Info("Connected to Redis")
}

func initImageCache(client *redis.Client) {
	var err error
	imageCache, err = cache.NewRedisImageCache(client, config.Envs.CacheTTLSeconds)
	if err != nil {
		appLogger.Errorf("Creating image cache: %v", err)
		os.Exit(1)
	}
	appLogger.Info("Image cache initialized")
}

func initJWTTokenizer() {
	jwtTokenizer = token.NewJwtService(config.Envs.JWTSecret, config.Envs.JWTIssuer)
	appLogger.Info("JWT Tokenizer initialized")
}

func initMazeService() {
	serviceLogger := config.NewLogger("MAZE-SERVICE", config.Envs.LogLevel, os.Stdout)

	var err error
	mazeService, err = service.NewMazeService(mazeRepo, imageCache, serviceLogger, &service.Options{
		Prefix:   config.Envs.CachePrefix,
		MaxCells: config.Envs.MaxCells,
	})
	if err != nil {
		appLogger.Errorf("Creating maze service: %v", err)
		os.Exit(1)
	}
	appLogger.Info("Maze service initialized")
}

func initMazeController() {
	var err error
	mazeController, err = mazeapi.NewMazeController(mazeService)
	if err != nil {
		appLogger.Errorf("Creating maze controller: %v", err)
		os.Exit(1)
	}
	appLogger.Info("Maze controller initialized")
}

func initRouter(t i.Tokenizer) {
	gin.SetMode(config.Envs.GinMode)
	router = api.NewRouter(api.Config{
		Addr:                    fmt.Sprintf("%s:%v", config.Envs.HostIP, config.Envs.RESTPort),
		BaseURL:                 "/api",
		Controllers:             []api_i.Controller{mazeController},
		AuthorizationMiddleware: identity.Authoriz(t, token.ScopeCreateMaze),
		Logger:                  config.NewLogger("HTTP", config.Envs.LogLevel, os.Stdout),
	})
	appLogger.Info("Router initialized")
}

func main() {
	config.Load()
	appLogger = config.NewLogger("APP", config.Envs.LogLevel, os.Stdout)

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel() // Ensure the context is always canceled

	initMongo(ctx)
	defer func() {
		_ = mongoClient.Disconnect(context.Background())
	}()

	initRedis(ctx)
	defer redisClient.Close()

	initMazeRepo(mongoClient)
	initImageCache(redisClient)
	initJWTTokenizer()
	initMazeService()
	initMazeController()
	initRouter(jwtTokenizer)

	// Run HTTP server
	if err := router.Run(); err != nil {
		appLogger.Errorf("Starting server: %v", err)
		os.Exit(1)
	}
}
