package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	pb "github.com/example/processing-orchestrator/internal/processingpb"
)

func main() {
	var (
		target      = flag.String("target", "localhost:50052", "processor address")
		count       = flag.Int("count", 1, "number of requests to send")
		interval    = flag.Duration("interval", 500*time.Millisecond, "pause after each request")
		concurrency = flag.Int("concurrency", 1, "number of concurrent senders")
		callTimeout = flag.Duration("timeout", 10*time.Second, "per request timeout")
	)
	flag.Parse()

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()

	if *count < 1 || *concurrency < 1 {
		logger.Fatal().Msg("count and concurrency must be >= 1")
	}

	conn, err := grpc.Dial(*target, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		logger.Fatal().Err(err).Str("target", *target).Msg("failed to dial processor")
	}
	defer conn.Close()

	client := pb.NewProcessorClient(conn)

	var succeeded, failed atomic.Int64

	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(*concurrency)

	for i := 0; i < *count; i++ {
		seq := i
		g.Go(func() error {
			req := &pb.ProcessRequest{
				Metadata: &pb.RequestMetadata{
					RequestId:     uuid.NewString(),
					CallerService: "processor-client",
					TimestampMs:   time.Now().UnixMilli(),
				},
				Payload: &pb.DataPayload{
					Id:      uuid.NewString(),
					Content: fmt.Sprintf("workload item %d", seq),
				},
			}

			callCtx, cancel := context.WithTimeout(ctx, *callTimeout)
			defer cancel()

			resp, err := client.ProcessData(callCtx, req)
			if err != nil {
				failed.Add(1)
				logger.Error().Err(err).Int("seq", seq).Msg("request failed")
				return nil
			}

			if resp.GetStatus().GetSuccess() {
				succeeded.Add(1)
				logger.Info().
					Int("seq", seq).
					Str("result_id", resp.GetResult().GetId()).
					Int64("duration_ms", resp.GetMetrics().GetProcessingTimeMs()).
					Msg(resp.GetStatus().GetMessage())
			} else {
				failed.Add(1)
				logger.Warn().
					Int("seq", seq).
					Str("result_id", resp.GetResult().GetId()).
					Msg(resp.GetStatus().GetMessage())
			}

			if *interval > 0 {
				time.Sleep(*interval)
			}
			return nil
		})
	}

	_ = g.Wait()

	logger.Info().
		Int64("succeeded", succeeded.Load()).
		Int64("failed", failed.Load()).
		Msg("workload finished")

	if failed.Load() > 0 {
		os.Exit(1)
	}
}
