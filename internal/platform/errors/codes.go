// Package errors maps bridge errors onto gRPC statuses and wire statuses.
package errors

import (
	"google.golang.org/grpc/codes"

	"github.com/louisbranch/fizzbee-mbt/internal/wire"
	"github.com/louisbranch/fizzbee-mbt/mbt"
)

// GRPCCode returns the gRPC status code for an error code.
func GRPCCode(c mbt.Code) codes.Code {
	switch c {
	case mbt.CodeNotImplemented:
		return codes.Unimplemented
	case mbt.CodeInterrupted, mbt.CodeTerminated:
		return codes.Canceled
	case mbt.CodeServerExited, mbt.CodeChildFailed:
		return codes.Unavailable
	case mbt.CodeTaskFailed:
		return codes.Internal
	default:
		return codes.Internal
	}
}

// StatusCode returns the wire status code reported for err.
func StatusCode(err error) wire.StatusCode {
	switch {
	case err == nil:
		return statusOK
	case mbt.IsNotImplemented(err):
		return statusNotImplemented
	default:
		return statusExecutionFailed
	}
}
