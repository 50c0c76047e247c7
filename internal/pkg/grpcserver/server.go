package grpcserver

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/keepalive"
	"marketplace/pkg/logger"
)

// ServiceName is the name probes ask about; "" reports the whole server.
const ServiceName = "marketplace.Orders"

const (
	keepaliveTime    = 5 * time.Minute
	keepaliveTimeout = 3 * time.Second
)

type serverLogger interface {
	Info(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
}

// Server exposes grpc.health.v1 for orchestrator probes.
type Server struct {
	log    serverLogger
	grpc   *grpc.Server
	health *health.Server
}

func New(log serverLogger) *Server {
	srv := grpc.NewServer(
		grpc.KeepaliveParams(keepalive.ServerParameters{
			Time:    keepaliveTime,
			Timeout: keepaliveTimeout,
		}),
	)
	hs := health.NewServer()
	healthpb.RegisterHealthServer(srv, hs)

	s := &Server{
		log:    log,
		grpc:   srv,
		health: hs,
	}
	s.SetServing(false)
	return s
}

// SetServing flips both the named service and the server-wide status.
func (s *Server) SetServing(serving bool) {
	status := healthpb.HealthCheckResponse_NOT_SERVING
	if serving {
		status = healthpb.HealthCheckResponse_SERVING
	}
	s.health.SetServingStatus("", status)
	s.health.SetServingStatus(ServiceName, status)
}

// Serve blocks until Stop is called or the listener fails.
func (s *Server) Serve(lis net.Listener) error {
	s.log.Info("gRPC health server starting", logger.NewField("addr", lis.Addr().String()))

	if err := s.grpc.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return fmt.Errorf("grpc serve: %w", err)
	}
	return nil
}

// ListenAndServe listens on :port and calls Serve.
func (s *Server) ListenAndServe(port string) error {
	lis, err := net.Listen("tcp", ":"+port)
	if err != nil {
		return fmt.Errorf("listen :%s: %w", port, err)
	}
	return s.Serve(lis)
}

// Stop marks the server NOT_SERVING and drains open streams. When ctx ends
// first the remaining connections are closed hard.
func (s *Server) Stop(ctx context.Context) {
	s.health.Shutdown()

	done := make(chan struct{})
	go func() {
		s.grpc.GracefulStop()
		close(done)
	}()

	select {
	case <-done:
		s.log.Info("gRPC health server stopped")
	case <-ctx.Done():
		s.log.Error("gRPC graceful stop timed out, forcing", logger.NewField("error", ctx.Err()))
		s.grpc.Stop()
	}
}
