package errors

import (
	"fmt"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/status"

	"github.com/louisbranch/fizzbee-mbt/internal/wire"
	"github.com/louisbranch/fizzbee-mbt/mbt"
)

// Domain is the error domain attached to gRPC error details.
const Domain = "github.com/louisbranch/fizzbee-mbt"

const (
	statusOK              = wire.StatusCode_STATUS_OK
	statusNotImplemented  = wire.StatusCode_STATUS_NOT_IMPLEMENTED
	statusExecutionFailed = wire.StatusCode_STATUS_EXECUTION_FAILED
)

// OK is the status of a successful operation.
func OK() *wire.Status {
	return &wire.Status{Code: statusOK, Message: "OK"}
}

// Status converts a model error into the status carried inside a response.
// A nil error yields OK.
func Status(err error) *wire.Status {
	switch code := StatusCode(err); code {
	case statusOK:
		return OK()
	case statusNotImplemented:
		return &wire.Status{Code: code, Message: fmt.Sprintf("Not Implemented: %v", err)}
	default:
		return &wire.Status{Code: code, Message: fmt.Sprintf("Execution Failed: %v", err)}
	}
}

// ToGRPCStatus converts err to a gRPC error with an ErrorInfo detail whose
// reason is the bridge error code. Errors that already carry a gRPC status are
// returned unchanged.
func ToGRPCStatus(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}
	code := mbt.CodeOf(err)
	grpcCode := GRPCCode(code)
	msg := fmt.Sprintf("MBT Execution Error: %v", err)

	st, detailErr := status.New(grpcCode, msg).WithDetails(&errdetails.ErrorInfo{
		Reason: string(code),
		Domain: Domain,
	})
	if detailErr != nil {
		return status.New(grpcCode, msg).Err()
	}
	return st.Err()
}

// Reason extracts the bridge error code from a gRPC error built by
// ToGRPCStatus. It returns false when no ErrorInfo detail is present.
func Reason(err error) (mbt.Code, bool) {
	st, ok := status.FromError(err)
	if !ok {
		return "", false
	}
	for _, d := range st.Details() {
		if info, ok := d.(*errdetails.ErrorInfo); ok && info.GetDomain() == Domain {
			return mbt.Code(info.GetReason()), true
		}
	}
	return "", false
}
