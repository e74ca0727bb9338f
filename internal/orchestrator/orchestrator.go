// Package orchestrator implements the Processor service: one inbound
// request fans out to the computer and validator services and both
// outcomes are folded into a single aggregated response.
package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
	grpcstatus "google.golang.org/grpc/status"

	pb "github.com/example/processing-orchestrator/internal/processingpb"
)

const (
	methodProcessData = "ProcessData"

	// Identity reported to downstream services and in response metrics.
	callerService = "service-b"
	processorID   = "service-b-processor"

	successMessage       = "Processing completed successfully"
	partialFailurePrefix = "Partial failure: "
	resultIDPrefix       = "processed-"
	resultContent        = "Processed data"

	// Simulated local work, sampled uniformly from the inclusive range.
	minProcessingDelay = 10 * time.Millisecond
	maxProcessingDelay = 20 * time.Millisecond
)

// Fixed computation submitted on every request. The inbound payload is not
// consulted; the values are a stable workload for the computer service.
var (
	computeInputs    = []float64{1, 2, 3, 4, 5}
	computeOperation = "sum"
	validationRules  = []string{"required", "format"}
)

// ComputeCaller submits a computation to the computer service.
type ComputeCaller interface {
	Compute(ctx context.Context, req *pb.ComputeRequest) error
}

// ValidateCaller submits payload data to the validator service.
type ValidateCaller interface {
	Validate(ctx context.Context, req *pb.ValidationRequest) error
}

// MetricsSink receives the per request counter and latency observations.
type MetricsSink interface {
	RecordRequest(ctx context.Context, method, status string)
	RecordLatency(ctx context.Context, method string, durationMS float64)
}

// Dependencies collects the runtime collaborators required by the server.
// Tracer, Logger, Now and Sleep are optional and default to a noop tracer,
// a nop logger, time.Now and a timer based wait respectively.
type Dependencies struct {
	Computer  ComputeCaller
	Validator ValidateCaller
	Metrics   MetricsSink
	Tracer    trace.Tracer
	Logger    zerolog.Logger
	Now       func() time.Time
	Sleep     func(ctx context.Context, d time.Duration) error
}

// Server implements the Processor gRPC service.
type Server struct {
	pb.UnimplementedProcessorServer

	computer  ComputeCaller
	validator ValidateCaller
	metrics   MetricsSink
	tracer    trace.Tracer
	logger    zerolog.Logger

	now   func() time.Time
	sleep func(ctx context.Context, d time.Duration) error

	randMu sync.Mutex
	rnd    *rand.Rand
}

// New constructs the processor server. Dependencies are validated up front
// to surface wiring mistakes at startup rather than on the first request.
func New(deps Dependencies) (*Server, error) {
	if deps.Computer == nil {
		return nil, errors.New("orchestrator: computer dependency is required")
	}
	if deps.Validator == nil {
		return nil, errors.New("orchestrator: validator dependency is required")
	}
	if deps.Metrics == nil {
		return nil, errors.New("orchestrator: metrics dependency is required")
	}

	logger := deps.Logger
	if reflect.ValueOf(logger).IsZero() {
		logger = zerolog.Nop()
	}
	logger = logger.With().Str("component", "processor").Logger()

	tracer := deps.Tracer
	if tracer == nil {
		tracer = noop.NewTracerProvider().Tracer("orchestrator")
	}

	nowFunc := deps.Now
	if nowFunc == nil {
		nowFunc = time.Now
	}

	sleepFunc := deps.Sleep
	if sleepFunc == nil {
		sleepFunc = wait
	}

	return &Server{
		computer:  deps.Computer,
		validator: deps.Validator,
		metrics:   deps.Metrics,
		tracer:    tracer,
		logger:    logger,
		now:       nowFunc,
		sleep:     sleepFunc,
		rnd:       rand.New(rand.NewSource(time.Now().UnixNano())),
	}, nil
}

// ProcessData handles one orchestration request: simulate local work, fan
// out to both downstream services, then assemble the aggregated response.
// Downstream failures never fail the RPC; they are reported through the
// response status.
func (s *Server) ProcessData(ctx context.Context, req *pb.ProcessRequest) (*pb.ProcessResponse, error) {
	start := s.now()
	dataID := req.GetPayload().GetId()

	s.logger.Info().Str("data_id", dataID).Msg("processing request received")

	if err := s.sleep(ctx, s.sampleDelay()); err != nil {
		return nil, grpcstatus.FromContextError(err).Err()
	}

	computeErr, validateErr := s.fanOut(ctx, req)

	durationMS := s.now().Sub(start).Milliseconds()

	// Aggregation order is fixed regardless of which call finished first.
	var failures []string
	if computeErr != nil {
		failures = append(failures, fmt.Sprintf("Computer: %s", computeErr.Error()))
	}
	if validateErr != nil {
		failures = append(failures, fmt.Sprintf("Validator: %s", validateErr.Error()))
	}

	resp := &pb.ProcessResponse{
		Status: &pb.ResponseStatus{Success: true},
		Result: &pb.DataPayload{
			Id:         resultIDPrefix + dataID,
			Content:    resultContent,
			Attributes: map[string]string{},
		},
		Metrics: &pb.ProcessingMetrics{
			ProcessingTimeMs: durationMS,
			ItemsProcessed:   1,
			ProcessorId:      processorID,
		},
	}

	if len(failures) > 0 {
		joined := strings.Join(failures, "; ")
		resp.Status.Success = false
		resp.Status.Message = partialFailurePrefix + joined
		s.logger.Warn().
			Str("data_id", dataID).
			Str("errors", joined).
			Msg("request completed with downstream failures")
		s.metrics.RecordRequest(ctx, methodProcessData, "error")
	} else {
		resp.Status.Message = successMessage
		s.metrics.RecordRequest(ctx, methodProcessData, "ok")
	}
	s.metrics.RecordLatency(ctx, methodProcessData, float64(durationMS))

	s.logger.Info().
		Str("data_id", dataID).
		Int64("duration_ms", durationMS).
		Msg("processing finished")

	return resp, nil
}

// fanOut issues both downstream calls concurrently and waits for both to
// finish; a failure of one never cancels the other.
func (s *Server) fanOut(ctx context.Context, req *pb.ProcessRequest) (computeErr, validateErr error) {
	computeReq := &pb.ComputeRequest{
		Metadata:    newMetadata(s.now().UnixMilli()),
		InputValues: append([]float64(nil), computeInputs...),
		Operation:   computeOperation,
	}
	validateReq := &pb.ValidationRequest{
		Metadata:        newMetadata(s.now().UnixMilli()),
		Data:            clonePayload(req.GetPayload()),
		ValidationRules: append([]string(nil), validationRules...),
	}

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		callCtx, span := s.tracer.Start(ctx, "call-computer")
		defer span.End()
		if err := s.computer.Compute(callCtx, computeReq); err != nil {
			span.RecordError(err)
			computeErr = err
		}
	}()

	go func() {
		defer wg.Done()
		callCtx, span := s.tracer.Start(ctx, "call-validator")
		defer span.End()
		if err := s.validator.Validate(callCtx, validateReq); err != nil {
			span.RecordError(err)
			validateErr = err
		}
	}()

	wg.Wait()
	return computeErr, validateErr
}

func (s *Server) sampleDelay() time.Duration {
	s.randMu.Lock()
	defer s.randMu.Unlock()

	steps := int64((maxProcessingDelay-minProcessingDelay)/time.Millisecond) + 1
	return minProcessingDelay + time.Duration(s.rnd.Int63n(steps))*time.Millisecond
}

func newMetadata(timestampMS int64) *pb.RequestMetadata {
	return &pb.RequestMetadata{
		CallerService: callerService,
		TimestampMs:   timestampMS,
	}
}

// clonePayload deep copies the inbound payload so the validator request
// cannot alias mutable request state.
func clonePayload(p *pb.DataPayload) *pb.DataPayload {
	if p == nil {
		return nil
	}
	clone := &pb.DataPayload{Id: p.Id, Content: p.Content}
	if len(p.Attributes) > 0 {
		clone.Attributes = make(map[string]string, len(p.Attributes))
		for k, v := range p.Attributes {
			clone.Attributes[k] = v
		}
	}
	return clone
}

func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
