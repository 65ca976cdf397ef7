package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"linkhop/config"
	_ "linkhop/docs"
	"linkhop/internal/geo"
	"linkhop/internal/handler"
	"linkhop/internal/maintenance"
	"linkhop/internal/producer"
	"linkhop/internal/ratelimit"
	"linkhop/internal/repository"
	"linkhop/internal/router"
	"linkhop/internal/service"
	"linkhop/internal/storage"
	grpcserver "linkhop/internal/transport/grpc"
	"linkhop/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
)

//	@title						linkhop API
//	@version					1.0
//	@description				Short links with per-user domains and click analytics.
//	@BasePath					/
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
func main() {
	_ = godotenv.Load()
	isDev := os.Getenv("ENV") == "development"
	if err := logger.Init(isDev); err != nil {
		panic(err)
	}
	defer logger.Sync()

	log := logger.L()

	cfg := config.Load(log)
	if !cfg.IsDev {
		gin.SetMode(gin.ReleaseMode)
	}

	db := storage.ConnectDB(&cfg.DB, log)
	if db == nil {
		log.Fatal("Failed to connect to the database")
	}
	storage.Migrate(db, log)

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	userRepo := repository.NewUserRepository(db)
	linkRepo := repository.NewLinkRepository(db)
	rtRepo := repository.NewRefreshTokenRepository(db)
	clickRepo := repository.NewClickRepository(db)

	var mailer service.EmailSender = producer.Nop{}
	if len(cfg.KafkaBrokers) > 0 {
		kp := producer.NewKafkaEmailProducer(cfg.KafkaBrokers, cfg.KafkaTopic, log)
		defer kp.Close()
		mailer = kp
		log.Info("Kafka email producer enabled", zap.Strings("brokers", cfg.KafkaBrokers), zap.String("topic", cfg.KafkaTopic))
	}

	var locator geo.Locator = geo.Nop{}
	if cfg.GeoIPPath != "" {
		mm, err := geo.Open(cfg.GeoIPPath, log)
		if err != nil {
			log.Warn("GeoIP database unavailable, countries will not be recorded", zap.Error(err))
		} else {
			defer mm.Close()
			locator = mm
		}
	}

	var limiter ratelimit.Limiter = ratelimit.Nop{}
	if cfg.Redis.Addr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr, Password: cfg.Redis.Password})
		defer rdb.Close()
		limiter = ratelimit.NewRedisLimiter(rdb, cfg.LoginRateLimit, cfg.LoginRateWindow)
		log.Info("Auth rate limiting enabled", zap.Int("limit", cfg.LoginRateLimit), zap.Duration("window", cfg.LoginRateWindow))
	}

	userService := service.NewUserService(userRepo, rtRepo, mailer, &cfg.JWT, log)
	linkService := service.NewLinkService(linkRepo, cfg.BaseURL, log)
	domainService := service.NewDomainService(userRepo, linkRepo, log)
	analyticsService := service.NewAnalyticsService(linkRepo, log)
	redirectService := service.NewRedirectService(linkRepo, locator, log)
	statsService := service.NewStatsService(linkRepo, clickRepo, log)

	scheduler := maintenance.NewScheduler(log, maintenance.TokenCleanupJob(rtRepo))
	if err := scheduler.Start(ctx); err != nil {
		log.Fatal("Failed to start maintenance scheduler", zap.Error(err))
	}

	r := router.Router(log, router.Handlers{
		User:      handler.NewUserHandler(userService, !cfg.IsDev),
		Link:      handler.NewLinkHandler(linkService),
		Domain:    handler.NewDomainHandler(domainService),
		Analytics: handler.NewAnalyticsHandler(analyticsService),
		Redirect:  handler.NewRedirectHandler(redirectService),
		Stats:     handler.NewStatsHandler(statsService),
	}, userService, limiter, cfg)

	srv := &http.Server{
		Addr:              cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("Starting HTTP server", zap.String("addr", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	var grpcServer *grpc.Server
	if cfg.GRPCPort != "" {
		lis, err := net.Listen("tcp", cfg.GRPCPort)
		if err != nil {
			log.Fatal("failed to listen", zap.Error(err))
		}
		var healthSrv *health.Server
		grpcServer, healthSrv = grpcserver.NewServer(log)
		go grpcserver.WatchDB(ctx, db, healthSrv, log)
		go func() {
			log.Info("Starting gRPC health server", zap.String("addr", cfg.GRPCPort))
			if err := grpcServer.Serve(lis); err != nil {
				log.Fatal("gRPC server failed", zap.Error(err))
			}
		}()
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}
	if grpcServer != nil {
		grpcServer.GracefulStop()
	}

	storage.CloseDB(db, log)
	log.Info("Server exiting")
}
