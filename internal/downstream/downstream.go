// Package downstream contains the gRPC clients for the services the
// orchestrator fans out to. Both clients dial per call and fold every
// failure mode into a single descriptive error whose text is part of the
// service contract.
package downstream

import (
	"context"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	pb "github.com/example/processing-orchestrator/internal/processingpb"
)

const dialTimeout = 5 * time.Second

// ClientConn is the subset of grpc.ClientConn the downstream clients use.
type ClientConn interface {
	grpc.ClientConnInterface
	Close() error
}

// DialFunc establishes a connection to a downstream target.
type DialFunc func(ctx context.Context, target string) (ClientConn, error)

// GRPCDialer is the production DialFunc. It connects eagerly with a bounded
// timeout so that an unreachable target is reported as a connection failure
// instead of surfacing later inside the call.
func GRPCDialer(ctx context.Context, target string) (ClientConn, error) {
	dialCtx, cancel := context.WithTimeout(ctx, dialTimeout)
	defer cancel()

	conn, err := grpc.DialContext(dialCtx, target,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithStatsHandler(otelgrpc.NewClientHandler()),
		grpc.WithBlock(),
		grpc.FailOnNonTempDialError(true),
	)
	if err != nil {
		return nil, err
	}
	return conn, nil
}

// Option configures a downstream client.
type Option func(*dependency)

// WithDialer swaps the connection factory used to reach the dependency.
func WithDialer(dial DialFunc) Option {
	return func(d *dependency) {
		if dial != nil {
			d.dial = dial
		}
	}
}

type dependency struct {
	name   string
	target string
	dial   DialFunc
	logger zerolog.Logger
}

func newDependency(name, target string, logger zerolog.Logger, opts ...Option) (dependency, error) {
	if strings.TrimSpace(target) == "" {
		return dependency{}, fmt.Errorf("downstream: %s target is required", strings.ToLower(name))
	}
	if reflect.ValueOf(logger).IsZero() {
		logger = zerolog.Nop()
	}

	d := dependency{
		name:   name,
		target: target,
		dial:   GRPCDialer,
		logger: logger.With().Str("component", strings.ToLower(name)+"-client").Logger(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&d)
		}
	}
	return d, nil
}

// call runs one RPC against the dependency. A fresh connection is dialed
// per call and closed on return. Connection, transport and application
// failures collapse into a single error whose message format is part of the
// service contract; upstream responses embed it verbatim. A reply that
// carries no status counts as success; only an explicit success=false is a
// logical failure.
func (d *dependency) call(ctx context.Context, invoke func(conn grpc.ClientConnInterface) (*pb.ResponseStatus, error)) error {
	conn, err := d.dial(ctx, d.target)
	if err != nil {
		return d.failure(fmt.Errorf("Failed to connect to %s: %v", d.name, err))
	}
	defer conn.Close()

	status, err := invoke(conn)
	if err != nil {
		return d.failure(fmt.Errorf("%s call failed: %v", d.name, err))
	}
	if status != nil && !status.GetSuccess() {
		return d.failure(fmt.Errorf("%s returned failure: %s", d.name, status.GetMessage()))
	}
	return nil
}

func (d *dependency) failure(err error) error {
	d.logger.Error().Err(err).Msg("downstream call failed")
	return err
}
