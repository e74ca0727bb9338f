package sim

import (
	"context"
	"math/rand"
	"reflect"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"google.golang.org/grpc/status"

	pb "github.com/example/processing-orchestrator/internal/processingpb"
)

// ComputerOption customises the behaviour of the computer stub.
type ComputerOption func(*Computer)

// WithComputerFailure forces every call to report a logical failure with
// the given message instead of computing.
func WithComputerFailure(message string) ComputerOption {
	return func(c *Computer) {
		c.failWith = message
	}
}

// WithComputerLatencyRange overrides the simulated work window. Negative
// values are clamped to zero and max is coerced up to min.
func WithComputerLatencyRange(min, max time.Duration) ComputerOption {
	return func(c *Computer) {
		if min < 0 {
			min = 0
		}
		if max < min {
			max = min
		}
		c.minLatency = min
		c.maxLatency = max
	}
}

// WithComputerRandomSeed makes the latency sampling deterministic.
func WithComputerRandomSeed(seed int64) ComputerOption {
	return func(c *Computer) {
		c.rnd = rand.New(rand.NewSource(seed)) // #nosec G404 -- deterministic seed for tests.
	}
}

// Computer implements the Computer gRPC service against in-memory data.
// It simulates a small amount of work, applies the requested operation and
// reports compute metrics the way the real service would.
type Computer struct {
	pb.UnimplementedComputerServer

	logger     zerolog.Logger
	failWith   string
	minLatency time.Duration
	maxLatency time.Duration

	mu  sync.Mutex
	rnd *rand.Rand
}

// NewComputer constructs a computer stub with an 8-12ms work window.
func NewComputer(logger zerolog.Logger, opts ...ComputerOption) *Computer {
	if reflect.ValueOf(logger).IsZero() {
		logger = zerolog.Nop()
	}

	c := &Computer{
		logger:     logger.With().Str("component", "computer-sim").Logger(),
		minLatency: 8 * time.Millisecond,
		maxLatency: 12 * time.Millisecond,
		rnd:        rand.New(rand.NewSource(time.Now().UnixNano())), // #nosec G404
	}

	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}

	return c
}

// Compute applies the requested operation to the input values.
func (c *Computer) Compute(ctx context.Context, req *pb.ComputeRequest) (*pb.ComputeResponse, error) {
	start := time.Now()

	c.logger.Debug().
		Str("operation", req.GetOperation()).
		Int("inputs", len(req.GetInputValues())).
		Str("caller", req.GetMetadata().GetCallerService()).
		Msg("compute called")

	if err := sleep(ctx, c.sampleLatency()); err != nil {
		return nil, status.FromContextError(err).Err()
	}

	if c.failWith != "" {
		return &pb.ComputeResponse{
			Status: &pb.ResponseStatus{Success: false, Message: c.failWith, ErrorCode: 1},
		}, nil
	}

	outputs := applyOperation(req.GetOperation(), req.GetInputValues())

	return &pb.ComputeResponse{
		Status:       &pb.ResponseStatus{Success: true, Message: "Computation successful"},
		OutputValues: outputs,
		Metrics: &pb.ComputeMetrics{
			ComputeTimeMs:       time.Since(start).Milliseconds(),
			OperationsPerformed: int32(len(outputs)),
			MemoryUsedMb:        0.5,
		},
	}, nil
}

func (c *Computer) sampleLatency() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.maxLatency <= c.minLatency {
		return c.minLatency
	}
	delta := c.maxLatency - c.minLatency
	return c.minLatency + time.Duration(c.rnd.Int63n(int64(delta)+1))
}

// applyOperation implements the supported operations: sum and average
// reduce to a single value, transform maps each value to v*2+1 and any
// other operation echoes the inputs unchanged.
func applyOperation(operation string, inputs []float64) []float64 {
	switch operation {
	case "sum":
		var sum float64
		for _, v := range inputs {
			sum += v
		}
		return []float64{sum}
	case "average":
		if len(inputs) == 0 {
			return nil
		}
		var sum float64
		for _, v := range inputs {
			sum += v
		}
		return []float64{sum / float64(len(inputs))}
	case "transform":
		out := make([]float64, 0, len(inputs))
		for _, v := range inputs {
			out = append(out, v*2+1)
		}
		return out
	default:
		return append([]float64(nil), inputs...)
	}
}
