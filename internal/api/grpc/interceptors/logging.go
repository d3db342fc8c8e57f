// Package interceptors holds the unary interceptors installed on the plugin server.
package interceptors

import (
	"context"
	"log"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/status"

	grpcmeta "github.com/louisbranch/fizzbee-mbt/internal/api/grpc/metadata"
	"github.com/louisbranch/fizzbee-mbt/internal/wire"
)

// lifecycleMethods are logged on every call; other methods only on failure.
var lifecycleMethods = map[string]struct{}{
	wire.PluginService_Init_FullMethodName:    {},
	wire.PluginService_Cleanup_FullMethodName: {},
}

// LoggingInterceptor logs lifecycle calls and every call that fails with a
// gRPC error. logf defaults to log.Printf.
func LoggingInterceptor(logf func(string, ...any)) grpc.UnaryServerInterceptor {
	if logf == nil {
		logf = log.Printf
	}
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()
		resp, err := handler(ctx, req)
		_, lifecycle := lifecycleMethods[info.FullMethod]
		if err == nil && !lifecycle {
			return resp, err
		}

		code := status.Code(err)
		logf("%s request_id=%s code=%s duration=%s%s",
			info.FullMethod,
			grpcmeta.RequestIDFromContext(ctx),
			code,
			time.Since(start).Round(time.Microsecond),
			errSuffix(err),
		)
		return resp, err
	}
}

func errSuffix(err error) string {
	if err == nil {
		return ""
	}
	return " err=" + status.Convert(err).Message()
}
