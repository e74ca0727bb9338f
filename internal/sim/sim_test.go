package sim_test

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"google.golang.org/grpc/codes"
	grpcstatus "google.golang.org/grpc/status"

	pb "github.com/example/processing-orchestrator/internal/processingpb"
	"github.com/example/processing-orchestrator/internal/sim"
)

func newComputer(opts ...sim.ComputerOption) *sim.Computer {
	opts = append([]sim.ComputerOption{sim.WithComputerLatencyRange(0, 0)}, opts...)
	return sim.NewComputer(zerolog.Nop(), opts...)
}

func newValidator(opts ...sim.ValidatorOption) *sim.Validator {
	opts = append([]sim.ValidatorOption{sim.WithValidatorLatencyRange(0, 0)}, opts...)
	return sim.NewValidator(zerolog.Nop(), opts...)
}

func TestComputerSum(t *testing.T) {
	resp, err := newComputer().Compute(context.Background(), &pb.ComputeRequest{
		InputValues: []float64{1, 2, 3, 4, 5},
		Operation:   "sum",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !resp.GetStatus().GetSuccess() {
		t.Fatalf("expected success, got %s", resp.GetStatus().GetMessage())
	}
	if got := resp.GetStatus().GetMessage(); got != "Computation successful" {
		t.Fatalf("unexpected message %q", got)
	}
	if out := resp.GetOutputValues(); len(out) != 1 || out[0] != 15 {
		t.Fatalf("expected [15], got %v", out)
	}
	if got := resp.GetMetrics().GetOperationsPerformed(); got != 1 {
		t.Fatalf("expected one operation, got %d", got)
	}
	if got := resp.GetMetrics().GetMemoryUsedMb(); got != 0.5 {
		t.Fatalf("expected 0.5mb, got %v", got)
	}
}

func TestComputerOperations(t *testing.T) {
	cases := []struct {
		name      string
		operation string
		inputs    []float64
		want      []float64
	}{
		{"average", "average", []float64{2, 4, 6}, []float64{4}},
		{"transform", "transform", []float64{1, 2}, []float64{3, 5}},
		{"unknown echoes", "noop", []float64{7, 8}, []float64{7, 8}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			resp, err := newComputer().Compute(context.Background(), &pb.ComputeRequest{
				InputValues: c.inputs,
				Operation:   c.operation,
			})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			out := resp.GetOutputValues()
			if len(out) != len(c.want) {
				t.Fatalf("expected %v, got %v", c.want, out)
			}
			for i := range c.want {
				if out[i] != c.want[i] {
					t.Fatalf("expected %v, got %v", c.want, out)
				}
			}
		})
	}
}

func TestComputerForcedFailure(t *testing.T) {
	resp, err := newComputer(sim.WithComputerFailure("compute overloaded")).
		Compute(context.Background(), &pb.ComputeRequest{Operation: "sum"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if resp.GetStatus().GetSuccess() {
		t.Fatalf("expected failure status")
	}
	if got := resp.GetStatus().GetMessage(); got != "compute overloaded" {
		t.Fatalf("unexpected message %q", got)
	}
	if got := resp.GetStatus().GetErrorCode(); got != 1 {
		t.Fatalf("expected error code 1, got %d", got)
	}
	if len(resp.GetOutputValues()) != 0 {
		t.Fatalf("expected no outputs, got %v", resp.GetOutputValues())
	}
}

func TestComputerCancelled(t *testing.T) {
	computer := sim.NewComputer(zerolog.Nop(), sim.WithComputerLatencyRange(50*time.Millisecond, 50*time.Millisecond))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := computer.Compute(ctx, &pb.ComputeRequest{Operation: "sum"})
	if got := grpcstatus.Code(err); got != codes.Canceled {
		t.Fatalf("expected Canceled status, got %v (err=%v)", got, err)
	}
}

func TestValidatorPass(t *testing.T) {
	resp, err := newValidator().ValidateData(context.Background(), &pb.ValidationRequest{
		Data:            &pb.DataPayload{Id: "data-1", Content: "payload"},
		ValidationRules: []string{"required", "format"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !resp.GetStatus().GetSuccess() || !resp.GetIsValid() {
		t.Fatalf("expected valid response, got %v", resp)
	}
	if got := resp.GetStatus().GetMessage(); got != "Validation successful" {
		t.Fatalf("unexpected message %q", got)
	}
}

func TestValidatorViolations(t *testing.T) {
	cases := []struct {
		name string
		data *pb.DataPayload
		want string
	}{
		{
			"missing id",
			&pb.DataPayload{Content: "payload"},
			"Validation failed: required: data id is missing",
		},
		{
			"empty content",
			&pb.DataPayload{Id: "data-1"},
			"Validation failed: format: content is empty",
		},
		{
			"both",
			&pb.DataPayload{},
			"Validation failed: required: data id is missing, format: content is empty",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			resp, err := newValidator().ValidateData(context.Background(), &pb.ValidationRequest{
				Data:            c.data,
				ValidationRules: []string{"required", "format"},
			})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if resp.GetIsValid() {
				t.Fatalf("expected invalid response")
			}
			if got := resp.GetStatus().GetMessage(); got != c.want {
				t.Fatalf("expected %q, got %q", c.want, got)
			}
		})
	}
}

func TestValidatorUnknownRulePasses(t *testing.T) {
	resp, err := newValidator().ValidateData(context.Background(), &pb.ValidationRequest{
		Data:            &pb.DataPayload{},
		ValidationRules: []string{"schema"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !resp.GetIsValid() {
		t.Fatalf("expected unknown rule to pass, got %s", resp.GetStatus().GetMessage())
	}
}

func TestValidatorForcedFailure(t *testing.T) {
	resp, err := newValidator(sim.WithValidatorFailure("validation store offline")).
		ValidateData(context.Background(), &pb.ValidationRequest{
			Data:            &pb.DataPayload{Id: "data-1", Content: "payload"},
			ValidationRules: []string{"required"},
		})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if resp.GetStatus().GetSuccess() {
		t.Fatalf("expected failure status")
	}
	if got := resp.GetStatus().GetMessage(); got != "validation store offline" {
		t.Fatalf("unexpected message %q", got)
	}
}
