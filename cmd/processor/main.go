package main

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"go.opentelemetry.io/otel"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/example/processing-orchestrator/internal/config"
	"github.com/example/processing-orchestrator/internal/downstream"
	"github.com/example/processing-orchestrator/internal/logger"
	"github.com/example/processing-orchestrator/internal/orchestrator"
	pb "github.com/example/processing-orchestrator/internal/processingpb"
	"github.com/example/processing-orchestrator/internal/telemetry"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		fail("config load", err)
	}

	baseLogger, err := logger.New(cfg.App.Env, cfg.App.LogLevel)
	if err != nil {
		fail("logger init", err)
	}

	tel, err := telemetry.Setup(ctx, telemetry.Config{
		Endpoint:    cfg.Telemetry.Endpoint,
		ServiceName: cfg.Telemetry.ServiceName,
		Enabled:     cfg.Telemetry.Enabled,
	})
	if err != nil {
		fail("telemetry init", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tel.Shutdown(shutdownCtx); err != nil {
			baseLogger.Error().Err(err).Msg("telemetry shutdown failed")
		}
	}()

	log := logger.WithOTelBridge(baseLogger, tel.Logs).With().Str("service", cfg.Telemetry.ServiceName).Logger()

	metrics, err := telemetry.NewMetrics(tel.Metrics, cfg.Telemetry.ServiceName)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create metrics")
	}

	computer, err := downstream.NewComputerClient(cfg.Downstream.ComputerAddr, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create computer client")
	}

	validator, err := downstream.NewValidatorClient(cfg.Downstream.ValidatorAddr, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create validator client")
	}

	server, err := orchestrator.New(orchestrator.Dependencies{
		Computer:  computer,
		Validator: validator,
		Metrics:   metrics,
		Tracer:    otel.Tracer(cfg.Telemetry.ServiceName),
		Logger:    log,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialise processor server")
	}

	lis, err := net.Listen("tcp", cfg.ListenAddr())
	if err != nil {
		log.Fatal().Err(err).Str("addr", cfg.ListenAddr()).Msg("failed to listen")
	}

	grpcServer := grpc.NewServer(grpc.StatsHandler(otelgrpc.NewServerHandler()))
	pb.RegisterProcessorServer(grpcServer, server)

	healthServer := health.NewServer()
	healthServer.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(grpcServer, healthServer)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info().
			Str("addr", lis.Addr().String()).
			Str("computer_addr", cfg.Downstream.ComputerAddr).
			Str("validator_addr", cfg.Downstream.ValidatorAddr).
			Msg("processor listening")
		return grpcServer.Serve(lis)
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info().Msg("shutdown signal received")
		healthServer.Shutdown()
		grpcServer.GracefulStop()
		return nil
	})

	if err := g.Wait(); err != nil {
		log.Error().Err(err).Msg("server terminated with error")
	}
}

func fail(stage string, err error) {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	logger.Fatal().Err(err).Str("stage", stage).Msg("processor init failed")
}
