package sim

import (
	"context"
	"math/rand"
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"google.golang.org/grpc/status"

	pb "github.com/example/processing-orchestrator/internal/processingpb"
)

// ValidatorOption customises the behaviour of the validator stub.
type ValidatorOption func(*Validator)

// WithValidatorFailure forces every call to report a logical failure with
// the given message regardless of the payload.
func WithValidatorFailure(message string) ValidatorOption {
	return func(v *Validator) {
		v.failWith = message
	}
}

// WithValidatorLatencyRange overrides the simulated work window. Negative
// values are clamped to zero and max is coerced up to min.
func WithValidatorLatencyRange(min, max time.Duration) ValidatorOption {
	return func(v *Validator) {
		if min < 0 {
			min = 0
		}
		if max < min {
			max = min
		}
		v.minLatency = min
		v.maxLatency = max
	}
}

// WithValidatorRandomSeed makes the latency sampling deterministic.
func WithValidatorRandomSeed(seed int64) ValidatorOption {
	return func(v *Validator) {
		v.rnd = rand.New(rand.NewSource(seed)) // #nosec G404 -- deterministic seed for tests.
	}
}

// Validator implements the Validator gRPC service by evaluating the
// requested rules against the submitted payload. Unknown rules pass, so
// callers can probe newer rule names safely.
type Validator struct {
	pb.UnimplementedValidatorServer

	logger     zerolog.Logger
	failWith   string
	minLatency time.Duration
	maxLatency time.Duration

	mu  sync.Mutex
	rnd *rand.Rand
}

// NewValidator constructs a validator stub with a 5-10ms work window.
func NewValidator(logger zerolog.Logger, opts ...ValidatorOption) *Validator {
	if reflect.ValueOf(logger).IsZero() {
		logger = zerolog.Nop()
	}

	v := &Validator{
		logger:     logger.With().Str("component", "validator-sim").Logger(),
		minLatency: 5 * time.Millisecond,
		maxLatency: 10 * time.Millisecond,
		rnd:        rand.New(rand.NewSource(time.Now().UnixNano())), // #nosec G404
	}

	for _, opt := range opts {
		if opt != nil {
			opt(v)
		}
	}

	return v
}

// ValidateData evaluates the requested validation rules against the data.
func (v *Validator) ValidateData(ctx context.Context, req *pb.ValidationRequest) (*pb.ValidationResponse, error) {
	v.logger.Debug().
		Str("data_id", req.GetData().GetId()).
		Strs("rules", req.GetValidationRules()).
		Str("caller", req.GetMetadata().GetCallerService()).
		Msg("validate called")

	if err := sleep(ctx, v.sampleLatency()); err != nil {
		return nil, status.FromContextError(err).Err()
	}

	if v.failWith != "" {
		return &pb.ValidationResponse{
			Status: &pb.ResponseStatus{Success: false, Message: v.failWith, ErrorCode: 1},
		}, nil
	}

	violations := checkRules(req.GetData(), req.GetValidationRules())
	if len(violations) > 0 {
		return &pb.ValidationResponse{
			Status: &pb.ResponseStatus{
				Success:   false,
				Message:   "Validation failed: " + strings.Join(violations, ", "),
				ErrorCode: 1,
			},
		}, nil
	}

	return &pb.ValidationResponse{
		Status:  &pb.ResponseStatus{Success: true, Message: "Validation successful"},
		IsValid: true,
	}, nil
}

func (v *Validator) sampleLatency() time.Duration {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.maxLatency <= v.minLatency {
		return v.minLatency
	}
	delta := v.maxLatency - v.minLatency
	return v.minLatency + time.Duration(v.rnd.Int63n(int64(delta)+1))
}

func checkRules(data *pb.DataPayload, rules []string) []string {
	var violations []string
	for _, rule := range rules {
		switch rule {
		case "required":
			if data.GetId() == "" {
				violations = append(violations, "required: data id is missing")
			}
		case "format":
			if data.GetContent() == "" {
				violations = append(violations, "format: content is empty")
			}
		}
	}
	return violations
}
