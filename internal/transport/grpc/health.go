package grpc

import (
	"context"
	"time"

	grpc_middleware "github.com/grpc-ecosystem/go-grpc-middleware"
	grpc_zap "github.com/grpc-ecosystem/go-grpc-middleware/logging/zap"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/recovery"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
	"gorm.io/gorm"
)

const checkInterval = 10 * time.Second

// NewServer builds the gRPC server exposing grpc.health.v1.Health for the process.
func NewServer(log *zap.Logger) (*grpc.Server, *health.Server) {
	srv := grpc.NewServer(
		grpc.UnaryInterceptor(
			grpc_middleware.ChainUnaryServer(
				grpc_recovery.UnaryServerInterceptor(),
				grpc_zap.UnaryServerInterceptor(log),
			),
		),
	)

	healthSrv := health.NewServer()
	grpc_health_v1.RegisterHealthServer(srv, healthSrv)
	healthSrv.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)

	reflection.Register(srv)
	return srv, healthSrv
}

// WatchDB flips the overall serving status with database reachability until ctx is done.
func WatchDB(ctx context.Context, db *gorm.DB, healthSrv *health.Server, log *zap.Logger) {
	ticker := time.NewTicker(checkInterval)
	defer ticker.Stop()

	last := grpc_health_v1.HealthCheckResponse_SERVING
	for {
		select {
		case <-ctx.Done():
			healthSrv.Shutdown()
			return
		case <-ticker.C:
			status := probe(ctx, db)
			if status != last {
				log.Warn("health status changed", zap.String("status", status.String()))
				last = status
			}
			healthSrv.SetServingStatus("", status)
		}
	}
}

func probe(ctx context.Context, db *gorm.DB) grpc_health_v1.HealthCheckResponse_ServingStatus {
	sqlDB, err := db.DB()
	if err != nil {
		return grpc_health_v1.HealthCheckResponse_NOT_SERVING
	}
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		return grpc_health_v1.HealthCheckResponse_NOT_SERVING
	}
	return grpc_health_v1.HealthCheckResponse_SERVING
}
