package main

import (
	"context"
	"flag"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"

	"github.com/example/processing-orchestrator/internal/logger"
	pb "github.com/example/processing-orchestrator/internal/processingpb"
	"github.com/example/processing-orchestrator/internal/sim"
)

func main() {
	var (
		validatorAddr = flag.String("validator-addr", "0.0.0.0:50054", "validator listen address")
		computerAddr  = flag.String("computer-addr", "0.0.0.0:50055", "computer listen address")
		failValidator = flag.String("fail-validator", "", "force validator failures with this message")
		failComputer  = flag.String("fail-computer", "", "force computer failures with this message")
		env           = flag.String("env", "development", "logging environment")
		level         = flag.String("level", "debug", "log level")
	)
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	baseLogger, err := logger.New(*env, *level)
	if err != nil {
		zerolog.New(os.Stdout).With().Timestamp().Logger().Fatal().Err(err).Msg("logger init failed")
	}
	log := baseLogger.With().Str("service", "downstream-sim").Logger()

	var vopts []sim.ValidatorOption
	if *failValidator != "" {
		vopts = append(vopts, sim.WithValidatorFailure(*failValidator))
	}
	var copts []sim.ComputerOption
	if *failComputer != "" {
		copts = append(copts, sim.WithComputerFailure(*failComputer))
	}

	validatorSrv := grpc.NewServer()
	pb.RegisterValidatorServer(validatorSrv, sim.NewValidator(log, vopts...))

	computerSrv := grpc.NewServer()
	pb.RegisterComputerServer(computerSrv, sim.NewComputer(log, copts...))

	g, gctx := errgroup.WithContext(ctx)
	g.Go(serve(gctx, log, "validator", *validatorAddr, validatorSrv))
	g.Go(serve(gctx, log, "computer", *computerAddr, computerSrv))

	if err := g.Wait(); err != nil {
		log.Fatal().Err(err).Msg("downstream sim terminated with error")
	}
}

// serve runs one gRPC server until the context is cancelled.
func serve(ctx context.Context, log zerolog.Logger, name, addr string, srv *grpc.Server) func() error {
	return func() error {
		lis, err := net.Listen("tcp", addr)
		if err != nil {
			return fmt.Errorf("%s: listen on %s: %w", name, addr, err)
		}

		go func() {
			<-ctx.Done()
			srv.GracefulStop()
		}()

		log.Info().Str("addr", addr).Str("server", name).Msg("sim server listening")
		return srv.Serve(lis)
	}
}
