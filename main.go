// File: coworking/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"coworking/config"
	"coworking/cron"
	"coworking/database"
	bookingRepo "coworking/database/repository/booking"
	"coworking/handlers"
	"coworking/middleware"
	"coworking/routes"
	"coworking/services/booking"
	"coworking/services/tasks"
	"coworking/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger := utils.GetLogger()
	defer logger.Sync()

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	repo, redisPinger := openStore(cfg, logger)

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		logger.Sugar().Fatalf("main: invalid TIMEZONE %q: %v", cfg.Timezone, err)
	}

	var enqueuer tasks.Enqueuer
	if cfg.QueueEnabled {
		queue := asynq.NewClient(cron.RedisOpt())
		defer queue.Close()
		enqueuer = queue
		cron.InitConfirmationWorker(ctx, logger)
	}

	bookingService := &booking.DefaultBookingService{
		Repo:     repo,
		Tasks:    enqueuer,
		Capacity: cfg.CoworkingSeats,
		Location: loc,
		Logger:   logger,
	}

	utils.StartHealthMonitor(ctx, repo, redisPinger)

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.RateLimitMiddleware(cfg.MaxRequestsPerMin))

	handlerBundle := handlers.NewHandlerBundle(
		handlers.NewBookingHandler(bookingService),
		handlers.NewAdminHandler(bookingService),
		cfg.JWTSecret,
	)
	routes.RegisterRoutes(router, handlerBundle, cfg.Origins())

	port := cfg.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:              "0.0.0.0:" + port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Sugar().Infof("Starting server on %s (store=%s)...", srv.Addr, cfg.StoreBackend)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}
	if err := database.CloseDB(shutdownCtx); err != nil {
		logger.Warn("main: mongo disconnect", zap.Error(err))
	}

	logger.Sugar().Info("main: server stopped gracefully")
}

// openStore builds the booking repository selected by STORE_BACKEND. The
// returned pinger is nil when the backend does not use Redis.
func openStore(cfg config.Config, logger *zap.Logger) (bookingRepo.BookingRepository, utils.Pinger) {
	switch cfg.StoreBackend {
	case config.BackendMongo:
		db, err := database.InitDB(cfg)
		if err != nil {
			logger.Sugar().Fatalf("main: %v", err)
		}
		repo, err := bookingRepo.NewMongoBookingRepo(db)
		if err != nil {
			logger.Sugar().Fatalf("main: failed to prepare bookings collection: %v", err)
		}
		return repo, nil

	case config.BackendSupabase:
		client := utils.GetLockClient()
		locker := utils.NewRedisLocker(client, time.Duration(cfg.LockTTLSeconds)*time.Second)
		repo, err := bookingRepo.NewSupabaseBookingRepo(cfg.SupabaseURL, cfg.SupabaseKey, locker)
		if err != nil {
			logger.Sugar().Fatalf("main: failed to initialize supabase client: %v", err)
		}
		return repo, utils.PingFunc(func(ctx context.Context) error { return client.Ping(ctx).Err() })

	case config.BackendMemory:
		logger.Warn("main: using the in-memory booking store; bookings are lost on restart")
		return bookingRepo.NewMemoryBookingRepo(), nil

	default:
		logger.Sugar().Fatalf("main: unknown STORE_BACKEND %q", cfg.StoreBackend)
		return nil, nil
	}
}
