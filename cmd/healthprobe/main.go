// Command healthprobe exits 0 when the service's gRPC health endpoint
// reports SERVING. It is the container healthcheck.
package main

import (
	"context"
	"flag"
	stdlog "log"
	"os"
	"time"

	"marketplace/internal/pkg/grpcclient"
	"marketplace/internal/pkg/grpcserver"
	"marketplace/pkg/logger"
	"marketplace/pkg/logger/zap_adapter"
	"marketplace/pkg/retrier"
)

func main() {
	target := flag.String("addr", "localhost:"+os.Getenv("GRPC_HEALTH_PORT"), "gRPC health endpoint")
	wait := flag.Duration("wait", 5*time.Second, "how long to retry before failing")
	flag.Parse()

	zapLogger, err := zap_adapter.NewZapAdapter(os.Getenv("LOG_LEVEL"))
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() { _ = zapLogger.Sync() }()

	conn, err := grpcclient.NewConnClient(*target)
	if err != nil {
		zapLogger.Error("dial", logger.NewField("error", err))
		os.Exit(1)
	}
	defer func() { _ = conn.Close() }()

	cfg := retrier.StartupConfig()
	cfg.MaxElapsedTime = *wait

	ctx, cancel := context.WithTimeout(context.Background(), *wait+time.Second)
	defer cancel()

	if err := grpcclient.WaitServing(ctx, zapLogger, conn, grpcserver.ServiceName, cfg); err != nil {
		os.Exit(1) //nolint:gocritic // exit code is the probe result
	}
}
