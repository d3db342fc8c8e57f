// Package server hosts the plugin gRPC API on a unix socket.
package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"os"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	grpc_health_v1 "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/louisbranch/fizzbee-mbt/internal/api/grpc/interceptors"
	grpcmeta "github.com/louisbranch/fizzbee-mbt/internal/api/grpc/metadata"
	"github.com/louisbranch/fizzbee-mbt/internal/platform/timeouts"
	"github.com/louisbranch/fizzbee-mbt/internal/wire"
)

// serviceName is the health service key reported alongside the overall status.
const serviceName = "fizzbee.mbt.FizzBeeMbtPluginService"

// Server hosts the plugin gRPC server.
type Server struct {
	listener        net.Listener
	grpcServer      *grpc.Server
	health          *health.Server
	shutdownTimeout time.Duration
}

// Listen removes any stale file at socketPath and binds a unix listener there.
func Listen(socketPath string) (net.Listener, error) {
	if err := os.Remove(socketPath); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("remove stale socket %s: %w", socketPath, err)
	}
	listener, err := net.Listen("unix", socketPath)
	if err != nil {
		return nil, fmt.Errorf("listen on %s: %w", socketPath, err)
	}
	return listener, nil
}

// New creates a server for svc that will serve on listener.
func New(listener net.Listener, svc wire.PluginServiceServer) *Server {
	grpcServer := grpc.NewServer(
		grpc.ForceServerCodec(wire.Codec{}),
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
		grpc.ChainUnaryInterceptor(
			interceptors.RecoveryInterceptor(),
			grpcmeta.UnaryServerInterceptor(nil),
			interceptors.LoggingInterceptor(nil),
		),
	)
	healthServer := health.NewServer()
	wire.RegisterPluginServiceServer(grpcServer, svc)
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(serviceName, grpc_health_v1.HealthCheckResponse_SERVING)

	return &Server{
		listener:        listener,
		grpcServer:      grpcServer,
		health:          healthServer,
		shutdownTimeout: timeouts.Shutdown,
	}
}

// Addr returns the listener address for the server.
func (s *Server) Addr() string {
	if s == nil || s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// Serve serves until the server stops or ctx ends. On cancellation in-flight
// calls get timeouts.Shutdown to finish before the server is stopped hard.
func (s *Server) Serve(ctx context.Context) error {
	if s == nil {
		return errors.New("server is nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	log.Printf("plugin server listening at %v", s.listener.Addr())
	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.grpcServer.Serve(s.listener)
	}()

	select {
	case <-ctx.Done():
		s.stop()
		return handleServeErr(<-serveErr)
	case err := <-serveErr:
		s.health.Shutdown()
		s.grpcServer.Stop()
		return handleServeErr(err)
	}
}

func (s *Server) stop() {
	s.health.Shutdown()
	done := make(chan struct{})
	go func() {
		s.grpcServer.GracefulStop()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(s.shutdownTimeout):
		log.Printf("plugin server did not drain within %s, forcing stop", s.shutdownTimeout)
		s.grpcServer.Stop()
		<-done
	}
}

func handleServeErr(err error) error {
	if err == nil || errors.Is(err, grpc.ErrServerStopped) {
		return nil
	}
	return fmt.Errorf("serve gRPC: %w", err)
}
