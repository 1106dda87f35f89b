package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/mikiasgoitom/Piiquante/internal/domain/contract"
	handlerHttp "github.com/mikiasgoitom/Piiquante/internal/handler/http"
	redisclient "github.com/mikiasgoitom/Piiquante/internal/infrastructure/cache"
	"github.com/mikiasgoitom/Piiquante/internal/infrastructure/config"
	database "github.com/mikiasgoitom/Piiquante/internal/infrastructure/database"
	"github.com/mikiasgoitom/Piiquante/internal/infrastructure/jwt"
	"github.com/mikiasgoitom/Piiquante/internal/infrastructure/logger"
	"github.com/mikiasgoitom/Piiquante/internal/infrastructure/metrics"
	passwordservice "github.com/mikiasgoitom/Piiquante/internal/infrastructure/password_service"
	"github.com/mikiasgoitom/Piiquante/internal/infrastructure/repository/memory"
	"github.com/mikiasgoitom/Piiquante/internal/infrastructure/repository/mongodb"
	"github.com/mikiasgoitom/Piiquante/internal/infrastructure/store"
	"github.com/mikiasgoitom/Piiquante/internal/infrastructure/uuidgen"
	"github.com/mikiasgoitom/Piiquante/internal/infrastructure/validator"
	"github.com/mikiasgoitom/Piiquante/internal/usecase"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	appConfig := config.NewConfig()
	appLogger := logger.NewSlogLogger(appConfig.GetLogLevel(), appConfig.GetLogFormat())
	if err := appConfig.Validate(); err != nil {
		appLogger.Fatalf("invalid configuration: %v", err)
	}

	// Dependency Injection: Repositories
	var (
		sauceRepo contract.ISauceRepository
		userRepo  contract.IUserRepository
	)
	if appConfig.UsesMemoryStore() {
		appLogger.Warnf("MONGODB_URI=%s: data is kept in memory and lost on restart", config.MemoryURI)
		sauceRepo = memory.NewSauceRepository()
		userRepo = memory.NewUserRepository()
	} else {
		mongoClient, err := database.NewMongoDBClient(appConfig.GetMongoURI())
		if err != nil {
			appLogger.Fatalf("Failed to connect to MongoDB: %v", err)
		}
		defer mongoClient.Disconnect()

		db := mongoClient.Client.Database(appConfig.GetMongoDBName())
		indexCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := database.EnsureIndexes(indexCtx, db); err != nil {
			cancel()
			appLogger.Fatalf("Failed to create indexes: %v", err)
		}
		cancel()
		sauceRepo = mongodb.NewSauceRepository(db)
		userRepo = mongodb.NewMongoUserRepository(db.Collection("users"))
	}

	// Dependency Injection: Services
	validator.RegisterCustomValidators()
	hasher := passwordservice.NewHasher()
	jwtManager := jwt.NewJWTManager(appConfig.GetJWTSecret(), appConfig.GetTokenExpiry())
	jwtService := jwt.NewJWTService(jwtManager)
	appValidator := validator.NewValidator()
	uuidGenerator := uuidgen.NewGenerator()
	voteMetrics := metrics.NewVoteMetrics(prometheus.DefaultRegisterer)
	httpMetrics := metrics.NewHTTPMetrics(prometheus.DefaultRegisterer)

	// Optional Dependency Injection: Redis lock and cache
	var locker contract.IItemLocker = store.NewLocalLocker()
	var sauceCache contract.ISauceCache
	if redisURL := appConfig.GetRedisURL(); redisURL != "" {
		rdb, err := redisclient.NewRedisFromURL(context.Background(), redisURL)
		if err != nil {
			appLogger.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisclient.Close(rdb)
		locker = store.NewRedisLocker(rdb, appConfig.GetVoteLockTTL())
		sauceCache = store.NewSauceCacheStore(rdb, appConfig.GetCacheTTL())
	}

	// Dependency Injection: Usecases
	userUsecase := usecase.NewUserUsecase(userRepo, hasher, jwtService, appLogger, appValidator, uuidGenerator)
	sauceUsecase := usecase.NewSauceUseCase(sauceRepo, uuidGenerator, appValidator, appLogger)
	voteLedger := usecase.NewVoteLedger(sauceRepo, locker, appLogger, appConfig.GetVoteMaxConflictRetries())
	voteLedger.SetRecorder(voteMetrics)
	if sauceCache != nil {
		sauceUsecase.SetSauceCache(sauceCache)
		voteLedger.SetSauceCache(sauceCache)
	}

	// Setup API routes
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	appRouter := handlerHttp.NewRouter(
		userUsecase, sauceUsecase, voteLedger,
		appConfig, appLogger.Slog(), httpMetrics, prometheus.DefaultGatherer,
	)
	appRouter.SetupRoutes(router)

	srv := &http.Server{
		Addr:              ":" + appConfig.GetPort(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		appLogger.Infof("Server running on port %s", appConfig.GetPort())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Errorf("Failed to start server: %v", err)
			stop()
		}
	}()

	<-ctx.Done()
	appLogger.Infof("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.Errorf("Graceful shutdown failed: %v", err)
	}
}
