package runtime

import (
	"context"
	stderrors "errors"
	"fmt"
	"strings"

	"github.com/juju/errors"

	"github.com/rohanpednekar/presto/types"
)

// ErrAbandoned is recorded on tasks whose coordinator stopped polling.
const ErrAbandoned = errors.ConstError("task abandoned by coordinator")

// ToFailure translates any internal failure into the uniform descriptor the
// coordinator consumes. Translation is total: unrecognized kinds fall back
// to GENERIC_INTERNAL_ERROR, and a nil error yields nil.
func ToFailure(err error) *types.ExecutionFailureInfo {
	if err == nil {
		return nil
	}

	failure := &types.ExecutionFailureInfo{
		Type:      fmt.Sprintf("%T", errors.Cause(err)),
		Message:   err.Error(),
		Stack:     strings.Split(errors.ErrorStack(err), "\n"),
		ErrorCode: toErrorCode(err),
	}
	if cause := stderrors.Unwrap(err); cause != nil && cause != err {
		failure.Cause = ToFailure(cause)
	}
	return failure
}

func toErrorCode(err error) types.ErrorCode {
	switch {
	case stderrors.Is(err, ErrAbandoned):
		return types.AbandonedTask
	case stderrors.Is(err, context.Canceled):
		return types.UserCanceled
	case stderrors.Is(err, context.DeadlineExceeded), errors.IsTimeout(err):
		return types.ExceededTimeLimit
	case errors.IsQuotaLimitExceeded(err):
		return types.ExceededMemory
	case errors.IsNotFound(err):
		return types.NotFound
	case errors.IsAlreadyExists(err):
		return types.AlreadyExists
	case errors.IsNotValid(err), errors.IsBadRequest(err):
		return types.InvalidArguments
	case errors.IsNotSupported(err), errors.IsNotImplemented(err):
		return types.NotSupported
	case errors.IsForbidden(err), errors.IsUnauthorized(err):
		return types.PermissionDenied
	default:
		return types.GenericInternal
	}
}
