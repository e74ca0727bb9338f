package downstream

import (
	"context"

	"github.com/rs/zerolog"
	"google.golang.org/grpc"

	pb "github.com/example/processing-orchestrator/internal/processingpb"
)

const computerName = "Computer"

// ComputerClient calls the numeric computation service.
type ComputerClient struct {
	dep dependency
}

// NewComputerClient constructs a client for the computer service at target.
func NewComputerClient(target string, logger zerolog.Logger, opts ...Option) (*ComputerClient, error) {
	dep, err := newDependency(computerName, target, logger, opts...)
	if err != nil {
		return nil, err
	}
	return &ComputerClient{dep: dep}, nil
}

// Compute submits the request and returns a descriptive error when the
// connection, the call or the computation itself fails.
func (c *ComputerClient) Compute(ctx context.Context, req *pb.ComputeRequest) error {
	c.dep.logger.Info().
		Str("operation", req.GetOperation()).
		Int("inputs", len(req.GetInputValues())).
		Msg("calling computer")

	var resp *pb.ComputeResponse
	err := c.dep.call(ctx, func(conn grpc.ClientConnInterface) (*pb.ResponseStatus, error) {
		var callErr error
		resp, callErr = pb.NewComputerClient(conn).Compute(ctx, req)
		if callErr != nil {
			return nil, callErr
		}
		return resp.GetStatus(), nil
	})
	if err != nil {
		return err
	}

	c.dep.logger.Info().
		Floats64("output_values", resp.GetOutputValues()).
		Msg("computation completed")
	return nil
}
