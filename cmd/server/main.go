package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"nexaterminal/internal/cache"
	"nexaterminal/internal/config"
	"nexaterminal/internal/metrics"
	"nexaterminal/internal/questionbank"
	"nexaterminal/internal/repository"
	"nexaterminal/internal/service"
	"nexaterminal/internal/transport/rest"
)

func main() {
	configPath := flag.String("config", "", "Path to config file (overrides NEXA_CONFIG)")
	flag.Parse()

	// .env is optional
	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	level, _ := cfg.SlogLevel()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	if err := run(cfg, logger); err != nil {
		logger.Error("Server failed", "error", err)
		os.Exit(1)
	}
	logger.Info("Server exited")
}

func run(cfg *config.Config, logger *slog.Logger) error {
	ctx := context.Background()

	// MongoDB connection
	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		return err
	}
	defer mongoClient.Disconnect(context.Background())

	setupCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := mongoClient.Ping(setupCtx, nil); err != nil {
		return err
	}
	logger.Info("Connected to MongoDB", "database", cfg.MongoDatabase)

	db := mongoClient.Database(cfg.MongoDatabase)

	// Redis connection
	redisOpts, err := cfg.RedisOptions()
	if err != nil {
		return err
	}
	rdb := redis.NewClient(redisOpts)
	defer rdb.Close()

	if err := rdb.Ping(setupCtx).Err(); err != nil {
		return err
	}
	logger.Info("Connected to Redis", "addr", redisOpts.Addr)

	banks, err := loadBanks(cfg.BanksDir)
	if err != nil {
		return err
	}
	logger.Info("Question banks loaded", "topics", banks.Topics())

	// Initialize repositories
	assessmentRepo := repository.NewAssessmentRepo(db)
	if err := assessmentRepo.EnsureIndexes(setupCtx); err != nil {
		return err
	}

	// Initialize caches
	results := cache.NewResultCache(rdb, cfg.ResultCacheTTL)
	stats := cache.NewViolationStats(rdb)

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	// Initialize services
	authSvc := service.NewAuthService(cfg.JWTSecret)
	assessmentSvc := service.NewAssessmentService(banks, assessmentRepo, results, stats, metrics.New(reg), logger)

	router := rest.NewRouter(&rest.Container{
		AuthService:       authSvc,
		AssessmentService: assessmentSvc,
		Metrics:           reg,
		CORS:              cfg.CORS,
		Logger:            logger,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Server starting", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	// Wait for interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-errCh:
		return err
	case <-quit:
	}
	logger.Info("Shutting down server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	return srv.Shutdown(shutdownCtx)
}

// loadBanks registers the built-in banks, then any YAML banks from dir,
// which replace built-ins with the same topic
func loadBanks(dir string) (*questionbank.Registry, error) {
	banks := questionbank.Builtin()
	if dir != "" {
		extra, err := questionbank.LoadDir(dir)
		if err != nil {
			return nil, err
		}
		banks = append(banks, extra...)
	}
	return questionbank.NewRegistry(banks...)
}
