// Package plugin implements the FizzBeeMbtPluginService gRPC API on top of
// the dispatcher and the sequence engine.
package plugin

import (
	"context"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/louisbranch/fizzbee-mbt/internal/codec"
	"github.com/louisbranch/fizzbee-mbt/internal/dispatch"
	apperrors "github.com/louisbranch/fizzbee-mbt/internal/platform/errors"
	"github.com/louisbranch/fizzbee-mbt/internal/sequence"
	"github.com/louisbranch/fizzbee-mbt/internal/wire"
	"github.com/louisbranch/fizzbee-mbt/mbt"
)

// Service implements the fizzbee.mbt.FizzBeeMbtPluginService gRPC API.
type Service struct {
	wire.UnimplementedPluginServiceServer
	dispatcher *dispatch.Dispatcher
	engine     *sequence.Engine
	clock      func() time.Time
}

// NewService creates a Service over d. All recorded intervals are offsets from
// the moment the service is created.
func NewService(d *dispatch.Dispatcher) *Service {
	epoch := time.Now()
	return &Service{
		dispatcher: d,
		engine:     sequence.NewEngineAt(d, epoch),
		clock:      time.Now,
	}
}

// Init initializes the model and reports its roles.
func (s *Service) Init(ctx context.Context, in *wire.InitRequest) (*wire.InitResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "init request is required")
	}
	topo, err := s.dispatcher.Init(ctx, in.GetOptions().GetCaptureState())
	if err != nil {
		return &wire.InitResponse{Status: apperrors.Status(err)}, nil
	}
	return &wire.InitResponse{
		Status:     apperrors.OK(),
		Roles:      codec.RolesToRefs(topo.Roles),
		RoleStates: encodeStates(topo.States),
	}, nil
}

// Cleanup tears the model down.
func (s *Service) Cleanup(ctx context.Context, in *wire.CleanupRequest) (*wire.CleanupResponse, error) {
	return &wire.CleanupResponse{Status: apperrors.Status(s.dispatcher.Cleanup(ctx))}, nil
}

// ExecuteAction runs one action and, on success, reports the refreshed roles.
func (s *Service) ExecuteAction(ctx context.Context, in *wire.ExecuteActionRequest) (*wire.ExecuteActionResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "execute action request is required")
	}
	if in.GetRole() == nil {
		return nil, status.Error(codes.InvalidArgument, "role is required")
	}
	args, err := codec.DecodeArgs(in.GetArgs())
	if err != nil {
		return nil, apperrors.ToGRPCStatus(err)
	}

	role := codec.RoleFromRef(in.GetRole())
	start := s.clock()
	v, err := s.dispatcher.Execute(ctx, role, in.GetActionName(), args)
	end := s.clock()
	interval := s.interval(start, end)
	if err != nil {
		return &wire.ExecuteActionResponse{ExecTime: interval, Status: apperrors.Status(err)}, nil
	}

	topo, err := s.dispatcher.Topology(ctx, in.GetOptions().GetCaptureState())
	if err != nil {
		return nil, apperrors.ToGRPCStatus(err)
	}
	return &wire.ExecuteActionResponse{
		ReturnValues: returnValues(v),
		ExecTime:     interval,
		Status:       apperrors.OK(),
		Roles:        codec.RolesToRefs(topo.Roles),
		RoleStates:   encodeStates(topo.States),
	}, nil
}

// ExecuteActionSequences runs every sequence concurrently. Any critical
// failure fails the whole call and no partial results are returned.
func (s *Service) ExecuteActionSequences(ctx context.Context, in *wire.ExecuteActionSequencesRequest) (*wire.ExecuteActionSequencesResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "execute action sequences request is required")
	}
	bundles, err := decodeSequences(in.GetActionSequence())
	if err != nil {
		return nil, apperrors.ToGRPCStatus(err)
	}
	if err := s.engine.Run(ctx, bundles); err != nil {
		return nil, apperrors.ToGRPCStatus(err)
	}

	results := make([]*wire.ActionSequenceResult, len(bundles))
	for i, bundle := range bundles {
		responses := make([]*wire.ExecuteActionResponse, len(bundle))
		for j, cmd := range bundle {
			responses[j] = s.commandResponse(cmd)
		}
		results[i] = &wire.ActionSequenceResult{Responses: responses}
	}
	return &wire.ExecuteActionSequencesResponse{Results: results}, nil
}

func (s *Service) commandResponse(cmd sequence.Command) *wire.ExecuteActionResponse {
	resp := &wire.ExecuteActionResponse{}
	if !cmd.Executed {
		resp.Status = apperrors.Status(mbt.Other("action was not executed"))
		return resp
	}
	resp.ExecTime = &wire.Interval{
		StartUnixNano: cmd.Start.Nanoseconds(),
		EndUnixNano:   cmd.End.Nanoseconds(),
	}
	if cmd.Err != nil {
		resp.Status = apperrors.Status(cmd.Err)
		return resp
	}
	resp.ReturnValues = returnValues(cmd.Return)
	resp.Status = apperrors.OK()
	return resp
}

func (s *Service) interval(start, end time.Time) *wire.Interval {
	epoch := s.engine.Epoch()
	return &wire.Interval{
		StartUnixNano: start.Sub(epoch).Nanoseconds(),
		EndUnixNano:   end.Sub(epoch).Nanoseconds(),
	}
}

func decodeSequences(in []*wire.ActionSequence) ([]sequence.Bundle, error) {
	bundles := make([]sequence.Bundle, len(in))
	for i, seq := range in {
		bundle := make(sequence.Bundle, len(seq.GetRequests()))
		for j, req := range seq.GetRequests() {
			args, err := codec.DecodeArgs(req.GetArgs())
			if err != nil {
				return nil, err
			}
			bundle[j] = sequence.Command{
				Role:   codec.RoleFromRef(req.GetRole()),
				Action: req.GetActionName(),
				Args:   args,
			}
		}
		bundles[i] = bundle
	}
	return bundles, nil
}

func returnValues(v mbt.Value) []*wire.Value {
	if v.IsNone() {
		return nil
	}
	return []*wire.Value{codec.Encode(v)}
}

func encodeStates(states []dispatch.RoleState) []*wire.RoleState {
	if len(states) == 0 {
		return nil
	}
	out := make([]*wire.RoleState, len(states))
	for i, st := range states {
		out[i] = codec.EncodeState(st.Role, st.State)
	}
	return out
}
