package wire

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	PluginService_Init_FullMethodName                   = "/fizzbee.mbt.FizzBeeMbtPluginService/Init"
	PluginService_Cleanup_FullMethodName                = "/fizzbee.mbt.FizzBeeMbtPluginService/Cleanup"
	PluginService_ExecuteAction_FullMethodName          = "/fizzbee.mbt.FizzBeeMbtPluginService/ExecuteAction"
	PluginService_ExecuteActionSequences_FullMethodName = "/fizzbee.mbt.FizzBeeMbtPluginService/ExecuteActionSequences"
)

// PluginServiceClient is the client API for FizzBeeMbtPluginService.
type PluginServiceClient interface {
	Init(ctx context.Context, in *InitRequest, opts ...grpc.CallOption) (*InitResponse, error)
	Cleanup(ctx context.Context, in *CleanupRequest, opts ...grpc.CallOption) (*CleanupResponse, error)
	ExecuteAction(ctx context.Context, in *ExecuteActionRequest, opts ...grpc.CallOption) (*ExecuteActionResponse, error)
	ExecuteActionSequences(ctx context.Context, in *ExecuteActionSequencesRequest, opts ...grpc.CallOption) (*ExecuteActionSequencesResponse, error)
}

type pluginServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewPluginServiceClient returns a client that encodes with Codec regardless of
// the connection's default codec.
func NewPluginServiceClient(cc grpc.ClientConnInterface) PluginServiceClient {
	return &pluginServiceClient{cc}
}

func (c *pluginServiceClient) invoke(ctx context.Context, method string, in, out any, opts []grpc.CallOption) error {
	callOpts := append([]grpc.CallOption{grpc.ForceCodec(Codec{})}, opts...)
	return c.cc.Invoke(ctx, method, in, out, callOpts...)
}

func (c *pluginServiceClient) Init(ctx context.Context, in *InitRequest, opts ...grpc.CallOption) (*InitResponse, error) {
	out := new(InitResponse)
	if err := c.invoke(ctx, PluginService_Init_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *pluginServiceClient) Cleanup(ctx context.Context, in *CleanupRequest, opts ...grpc.CallOption) (*CleanupResponse, error) {
	out := new(CleanupResponse)
	if err := c.invoke(ctx, PluginService_Cleanup_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *pluginServiceClient) ExecuteAction(ctx context.Context, in *ExecuteActionRequest, opts ...grpc.CallOption) (*ExecuteActionResponse, error) {
	out := new(ExecuteActionResponse)
	if err := c.invoke(ctx, PluginService_ExecuteAction_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *pluginServiceClient) ExecuteActionSequences(ctx context.Context, in *ExecuteActionSequencesRequest, opts ...grpc.CallOption) (*ExecuteActionSequencesResponse, error) {
	out := new(ExecuteActionSequencesResponse)
	if err := c.invoke(ctx, PluginService_ExecuteActionSequences_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

// PluginServiceServer is the server API for FizzBeeMbtPluginService.
type PluginServiceServer interface {
	Init(context.Context, *InitRequest) (*InitResponse, error)
	Cleanup(context.Context, *CleanupRequest) (*CleanupResponse, error)
	ExecuteAction(context.Context, *ExecuteActionRequest) (*ExecuteActionResponse, error)
	ExecuteActionSequences(context.Context, *ExecuteActionSequencesRequest) (*ExecuteActionSequencesResponse, error)
}

// UnimplementedPluginServiceServer answers Unimplemented for every method.
type UnimplementedPluginServiceServer struct{}

func (UnimplementedPluginServiceServer) Init(context.Context, *InitRequest) (*InitResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Init not implemented")
}

func (UnimplementedPluginServiceServer) Cleanup(context.Context, *CleanupRequest) (*CleanupResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Cleanup not implemented")
}

func (UnimplementedPluginServiceServer) ExecuteAction(context.Context, *ExecuteActionRequest) (*ExecuteActionResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ExecuteAction not implemented")
}

func (UnimplementedPluginServiceServer) ExecuteActionSequences(context.Context, *ExecuteActionSequencesRequest) (*ExecuteActionSequencesResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ExecuteActionSequences not implemented")
}

// RegisterPluginServiceServer registers srv on s. The server must be built with
// grpc.ForceServerCodec(Codec{}).
func RegisterPluginServiceServer(s grpc.ServiceRegistrar, srv PluginServiceServer) {
	s.RegisterService(&PluginService_ServiceDesc, srv)
}

func _PluginService_Init_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(InitRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PluginServiceServer).Init(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: PluginService_Init_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(PluginServiceServer).Init(ctx, req.(*InitRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PluginService_Cleanup_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(CleanupRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PluginServiceServer).Cleanup(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: PluginService_Cleanup_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(PluginServiceServer).Cleanup(ctx, req.(*CleanupRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PluginService_ExecuteAction_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(ExecuteActionRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PluginServiceServer).ExecuteAction(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: PluginService_ExecuteAction_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(PluginServiceServer).ExecuteAction(ctx, req.(*ExecuteActionRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PluginService_ExecuteActionSequences_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(ExecuteActionSequencesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PluginServiceServer).ExecuteActionSequences(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: PluginService_ExecuteActionSequences_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(PluginServiceServer).ExecuteActionSequences(ctx, req.(*ExecuteActionSequencesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// PluginService_ServiceDesc is the grpc.ServiceDesc for FizzBeeMbtPluginService.
var PluginService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "fizzbee.mbt.FizzBeeMbtPluginService",
	HandlerType: (*PluginServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Init", Handler: _PluginService_Init_Handler},
		{MethodName: "Cleanup", Handler: _PluginService_Cleanup_Handler},
		{MethodName: "ExecuteAction", Handler: _PluginService_ExecuteAction_Handler},
		{MethodName: "ExecuteActionSequences", Handler: _PluginService_ExecuteActionSequences_Handler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "fizzbee/mbt/v1/plugin.proto",
}
