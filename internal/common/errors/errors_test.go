package errors

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingLogger struct {
	entries []map[string]interface{}
}

func (r *recordingLogger) Error(msg string, fields map[string]interface{}) {
	r.entries = append(r.entries, fields)
}

func TestConstructors_CodesAndRetryability(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")

	tests := []struct {
		name      string
		err       *StandardError
		code      ErrorCode
		retryable bool
		category  string
	}{
		{"remote unavailable", NewRemoteUnavailableError("vaccines", cause), ErrCodeRemoteUnavailable, true, "REMOTE"},
		{"remote timeout", NewRemoteTimeoutError("vaccines", context.DeadlineExceeded), ErrCodeRemoteTimeout, true, "REMOTE"},
		{"bad status 503", NewRemoteBadStatusError("schedules", 503), ErrCodeRemoteBadStatus, true, "REMOTE"},
		{"bad status 404", NewRemoteBadStatusError("schedules", 404), ErrCodeRemoteBadStatus, false, "REMOTE"},
		{"decode", NewRemoteDecodeFailedError("health-centers", cause), ErrCodeRemoteDecodeFailed, false, "REMOTE"},
		{"knowledge", NewKnowledgeLoadFailedError("vaccine_data.json", cause), ErrCodeKnowledgeLoadFailed, false, "KNOWLEDGE"},
		{"log write", NewLogWriteFailedError("csv", cause), ErrCodeLogWriteFailed, true, "PERSISTENCE"},
		{"missing slot", NewMissingSlotError("vaccine_name"), ErrCodeMissingSlot, false, "DIALOGUE"},
		{"unresolved", NewEntityUnresolvedError("vaccine", "xyz"), ErrCodeEntityUnresolved, false, "DIALOGUE"},
		{"session", NewSessionStoreFailedError("load", cause), ErrCodeSessionStoreFailed, true, "SESSION"},
		{"action", NewActionFailedError("action_get_vaccine_price", cause), ErrCodeActionFailed, false, "ACTION"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.retryable, tt.err.Retryable)
			assert.Equal(t, tt.category, GetErrorCategory(tt.err.Code))
			assert.False(t, tt.err.Timestamp.IsZero())
			assert.Contains(t, tt.err.Error(), string(tt.code))
		})
	}
}

func TestStandardError_Unwrap(t *testing.T) {
	err := NewRemoteTimeoutError("vaccines", context.DeadlineExceeded)
	wrapped := fmt.Errorf("fetch: %w", err)

	assert.True(t, errors.Is(wrapped, context.DeadlineExceeded))
	assert.Equal(t, ErrCodeRemoteTimeout, CodeOf(wrapped))
	assert.True(t, IsRetryable(wrapped))
	assert.Equal(t, ErrCodeInternal, CodeOf(errors.New("plain")))
	assert.False(t, IsRetryable(errors.New("plain")))
}

func TestGetRetryCount(t *testing.T) {
	assert.Equal(t, 2, GetRetryCount(ErrCodeRemoteUnavailable))
	assert.Equal(t, 1, GetRetryCount(ErrCodeRemoteTimeout))
	assert.Equal(t, 0, GetRetryCount(ErrCodeMissingSlot))
	assert.True(t, IsRetryableErrorCode(ErrCodeRemoteBadStatus))
	assert.False(t, IsRetryableErrorCode(ErrCodeKnowledgeInvalid))
}

func TestErrorHandler_Handle(t *testing.T) {
	log := &recordingLogger{}
	h := NewErrorHandler(log)

	stdErr := h.Handle("action_get_vaccine_info", errors.New("nil map"))
	require.NotNil(t, stdErr)
	assert.Equal(t, ErrCodeActionFailed, stdErr.Code)
	assert.Equal(t, "action_get_vaccine_info", stdErr.Metadata["boundary"])

	known := NewRemoteUnavailableError("health-centers", errors.New("refused"))
	assert.Same(t, known, h.Handle("action_get_vaccination_location", known))

	panicErr := h.HandlePanic("action_get_side_effects", "index out of range")
	assert.Contains(t, panicErr.Details, "panic: index out of range")

	require.Len(t, log.entries, 3)
	assert.Equal(t, "REMOTE", log.entries[1]["errorCategory"])
}
