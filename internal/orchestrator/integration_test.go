package orchestrator_test

import (
	"context"
	"net"
	"testing"

	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/test/bufconn"

	"github.com/example/processing-orchestrator/internal/downstream"
	"github.com/example/processing-orchestrator/internal/orchestrator"
	pb "github.com/example/processing-orchestrator/internal/processingpb"
	"github.com/example/processing-orchestrator/internal/sim"
)

func startServer(t *testing.T, register func(*grpc.Server)) *bufconn.Listener {
	t.Helper()

	lis := bufconn.Listen(1 << 20)
	srv := grpc.NewServer()
	register(srv)
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)
	return lis
}

func bufDial(lis *bufconn.Listener) downstream.DialFunc {
	return func(ctx context.Context, target string) (downstream.ClientConn, error) {
		return grpc.NewClient("passthrough:///bufnet",
			grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
				return lis.DialContext(ctx)
			}),
			grpc.WithTransportCredentials(insecure.NewCredentials()),
		)
	}
}

// startStack wires sim backends, real downstream clients and the processor
// server together over in-memory connections and returns a processor client.
func startStack(t *testing.T, validatorOpts []sim.ValidatorOption, computerOpts []sim.ComputerOption) pb.ProcessorClient {
	t.Helper()

	computerOpts = append([]sim.ComputerOption{sim.WithComputerLatencyRange(0, 0)}, computerOpts...)
	validatorOpts = append([]sim.ValidatorOption{sim.WithValidatorLatencyRange(0, 0)}, validatorOpts...)

	computerLis := startServer(t, func(s *grpc.Server) {
		pb.RegisterComputerServer(s, sim.NewComputer(zerolog.Nop(), computerOpts...))
	})
	validatorLis := startServer(t, func(s *grpc.Server) {
		pb.RegisterValidatorServer(s, sim.NewValidator(zerolog.Nop(), validatorOpts...))
	})

	computer, err := downstream.NewComputerClient("bufnet", zerolog.Nop(),
		downstream.WithDialer(bufDial(computerLis)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	validator, err := downstream.NewValidatorClient("bufnet", zerolog.Nop(),
		downstream.WithDialer(bufDial(validatorLis)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	srv, err := orchestrator.New(orchestrator.Dependencies{
		Computer:  computer,
		Validator: validator,
		Metrics:   &metricsRecorder{},
		Sleep:     skipSleep,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	processorLis := startServer(t, func(s *grpc.Server) {
		pb.RegisterProcessorServer(s, srv)
	})

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return processorLis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })

	return pb.NewProcessorClient(conn)
}

func TestProcessDataOverWire(t *testing.T) {
	client := startStack(t, nil, nil)

	resp, err := client.ProcessData(context.Background(), &pb.ProcessRequest{
		Metadata: &pb.RequestMetadata{RequestId: "req-9", CallerService: "service-a"},
		Payload: &pb.DataPayload{
			Id:         "data-9",
			Content:    "inbound content",
			Attributes: map[string]string{"origin": "wire-test"},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !resp.GetStatus().GetSuccess() {
		t.Fatalf("expected success, got %s", resp.GetStatus().GetMessage())
	}
	if got := resp.GetStatus().GetMessage(); got != "Processing completed successfully" {
		t.Fatalf("unexpected message %q", got)
	}
	if got := resp.GetResult().GetId(); got != "processed-data-9" {
		t.Fatalf("expected processed-data-9, got %q", got)
	}
	if got := resp.GetResult().GetContent(); got != "Processed data" {
		t.Fatalf("unexpected result content %q", got)
	}
	if got := resp.GetMetrics().GetProcessorId(); got != "service-b-processor" {
		t.Fatalf("unexpected processor id %q", got)
	}
	if got := resp.GetMetrics().GetItemsProcessed(); got != 1 {
		t.Fatalf("expected items_processed=1, got %d", got)
	}
}

func TestProcessDataOverWireValidatorDown(t *testing.T) {
	client := startStack(t, []sim.ValidatorOption{sim.WithValidatorFailure("validator maintenance")}, nil)

	resp, err := client.ProcessData(context.Background(), &pb.ProcessRequest{
		Payload: &pb.DataPayload{Id: "data-10", Content: "inbound content"},
	})
	if err != nil {
		t.Fatalf("downstream failure must not fail the RPC: %v", err)
	}

	if resp.GetStatus().GetSuccess() {
		t.Fatalf("expected failure status")
	}
	want := "Partial failure: Validator: Validator returned failure: validator maintenance"
	if got := resp.GetStatus().GetMessage(); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}
