package downstream

import (
	"context"

	"github.com/rs/zerolog"
	"google.golang.org/grpc"

	pb "github.com/example/processing-orchestrator/internal/processingpb"
)

const validatorName = "Validator"

// ValidatorClient calls the data validation service.
type ValidatorClient struct {
	dep dependency
}

// NewValidatorClient constructs a client for the validator service at target.
func NewValidatorClient(target string, logger zerolog.Logger, opts ...Option) (*ValidatorClient, error) {
	dep, err := newDependency(validatorName, target, logger, opts...)
	if err != nil {
		return nil, err
	}
	return &ValidatorClient{dep: dep}, nil
}

// Validate submits payload data for rule validation and returns a
// descriptive error when the connection, the call or the validation itself
// fails.
func (c *ValidatorClient) Validate(ctx context.Context, req *pb.ValidationRequest) error {
	c.dep.logger.Info().
		Str("data_id", req.GetData().GetId()).
		Strs("rules", req.GetValidationRules()).
		Msg("calling validator")

	err := c.dep.call(ctx, func(conn grpc.ClientConnInterface) (*pb.ResponseStatus, error) {
		resp, callErr := pb.NewValidatorClient(conn).ValidateData(ctx, req)
		if callErr != nil {
			return nil, callErr
		}
		return resp.GetStatus(), nil
	})
	if err != nil {
		return err
	}

	c.dep.logger.Info().Msg("validation completed")
	return nil
}
