package grpcclient

import (
	"context"
	"errors"
	"fmt"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/keepalive"
	"marketplace/pkg/logger"
	"marketplace/pkg/retrier"
	"marketplace/pkg/retrier/backoff_adapter"
)

const (
	KeepaliveTime                = 5 * time.Minute
	KeepaliveTimeout             = 3 * time.Second
	KeepalivePermitWithoutStream = false
)

var ErrNotServing = errors.New("service is not serving")

func NewConnClient(target string) (*grpc.ClientConn, error) {
	conn, err := grpc.NewClient(
		target,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithKeepaliveParams(keepalive.ClientParameters{
			Time:                KeepaliveTime,
			Timeout:             KeepaliveTimeout,
			PermitWithoutStream: KeepalivePermitWithoutStream,
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create gRPC client: %w", err)
	}
	return conn, nil
}

// WaitServing polls grpc.health.v1 Check until the service reports SERVING
// or the retry budget runs out.
func WaitServing(ctx context.Context, log logger.Logger, conn *grpc.ClientConn, service string, cfg retrier.Config) error {
	client := healthpb.NewHealthClient(conn)
	r := backoff_adapter.New(cfg)

	probeLog := log.With(
		logger.NewField("component", "grpc-client"),
		logger.NewField("target", conn.Target()),
		logger.NewField("service", service),
	)

	var attempt uint64
	err := r.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		probeLog.Debug("health check", logger.NewField("attempt", attempt))

		resp, err := client.Check(ctx, &healthpb.HealthCheckRequest{Service: service})
		if err != nil {
			return err
		}
		if resp.GetStatus() != healthpb.HealthCheckResponse_SERVING {
			return fmt.Errorf("%w: %s", ErrNotServing, resp.GetStatus())
		}
		return nil
	})
	if err != nil {
		probeLog.Error("health check failed after retries",
			logger.NewField("error", err),
			logger.NewField("attempts", attempt),
		)
		return fmt.Errorf("health check: %w", err)
	}

	probeLog.Info("service is serving", logger.NewField("attempts", attempt))
	return nil
}
