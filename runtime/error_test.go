package runtime

import (
	"context"
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/juju/errors"
	"github.com/stretchr/testify/assert"

	"github.com/rohanpednekar/presto/types"
)

func TestToFailureNil(t *testing.T) {
	assert.Nil(t, ToFailure(nil))
}

func TestToFailureGenericFallback(t *testing.T) {
	failure := ToFailure(stderrors.New("something broke"))
	assert.NotNil(t, failure)
	assert.Equal(t, "something broke", failure.Message)
	assert.Equal(t, types.GenericInternal, failure.ErrorCode)
	assert.Equal(t, types.ErrorTypeInternal, failure.ErrorCode.Type)
	assert.NotEmpty(t, failure.Stack)
}

func TestToFailureRecognizedKinds(t *testing.T) {
	cases := []struct {
		err  error
		want types.ErrorCode
	}{
		{errors.NotFoundf("split"), types.NotFound},
		{errors.AlreadyExistsf("task"), types.AlreadyExists},
		{errors.NotValidf("plan"), types.InvalidArguments},
		{errors.NotSupportedf("bucketed execution"), types.NotSupported},
		{errors.Forbiddenf("catalog access"), types.PermissionDenied},
		{errors.Timeoutf("split fetch"), types.ExceededTimeLimit},
		{errors.QuotaLimitExceededf("memory pool"), types.ExceededMemory},
		{context.Canceled, types.UserCanceled},
		{context.DeadlineExceeded, types.ExceededTimeLimit},
		{ErrAbandoned, types.AbandonedTask},
	}
	for _, c := range cases {
		failure := ToFailure(c.err)
		assert.NotNil(t, failure, c.err.Error())
		assert.Equal(t, c.want, failure.ErrorCode, c.err.Error())
	}
}

func TestToFailureCauseChain(t *testing.T) {
	root := stderrors.New("disk full")
	wrapped := fmt.Errorf("spill failed: %w", root)

	failure := ToFailure(wrapped)
	assert.Equal(t, "spill failed: disk full", failure.Message)
	assert.NotNil(t, failure.Cause)
	assert.Equal(t, "disk full", failure.Cause.Message)
	assert.Nil(t, failure.Cause.Cause)
}

func TestToFailureNeverPanics(t *testing.T) {
	// translation must be total for arbitrary error values
	for _, err := range []error{
		stderrors.New(""),
		fmt.Errorf("wrapped: %w", context.Canceled),
		errors.Trace(errors.NotFoundf("gone")),
	} {
		assert.NotNil(t, ToFailure(err))
	}

	traced := ToFailure(errors.Trace(errors.NotFoundf("gone")))
	assert.Equal(t, types.NotFound, traced.ErrorCode)
}
