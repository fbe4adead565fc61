// Package errors provides the standardized error taxonomy of the assistant.
package errors

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ==========================
// 1. Standard Error Types
// ==========================

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodeEntityUnresolved ErrorCode = "ENTITY_UNRESOLVED"
	ErrCodeMissingSlot      ErrorCode = "MISSING_SLOT"

	ErrCodeRemoteUnavailable  ErrorCode = "REMOTE_UNAVAILABLE"
	ErrCodeRemoteTimeout      ErrorCode = "REMOTE_TIMEOUT"
	ErrCodeRemoteBadStatus    ErrorCode = "REMOTE_BAD_STATUS"
	ErrCodeRemoteDecodeFailed ErrorCode = "REMOTE_DECODE_FAILED"

	ErrCodeKnowledgeLoadFailed ErrorCode = "KNOWLEDGE_LOAD_FAILED"
	ErrCodeKnowledgeInvalid    ErrorCode = "KNOWLEDGE_ENTRY_INVALID"

	ErrCodeLogReadFailed  ErrorCode = "LOG_READ_FAILED"
	ErrCodeLogWriteFailed ErrorCode = "LOG_WRITE_FAILED"

	ErrCodeSessionStoreFailed ErrorCode = "SESSION_STORE_FAILED"

	ErrCodeActionFailed ErrorCode = "ACTION_FAILED"
	ErrCodeInternal     ErrorCode = "INTERNAL_ERROR"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
	cause     error
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

func (e *StandardError) Unwrap() error {
	return e.cause
}

// WithMetadata attaches a key/value pair and returns the same error.
func (e *StandardError) WithMetadata(key string, value interface{}) *StandardError {
	if e.Metadata == nil {
		e.Metadata = make(map[string]interface{})
	}
	e.Metadata[key] = value
	return e
}

// ==========================
// 2. Error Constructors
// ==========================

func newError(code ErrorCode, message, details string, retryable bool, cause error) *StandardError {
	return &StandardError{
		Code:      code,
		Message:   message,
		Details:   details,
		Retryable: retryable,
		Timestamp: time.Now().UTC(),
		cause:     cause,
	}
}

// NewEntityUnresolvedError marks a resolver fallback to a best-effort label.
func NewEntityUnresolvedError(entity, input string) *StandardError {
	return newError(ErrCodeEntityUnresolved, "Entity could not be resolved",
		fmt.Sprintf("entity: %s, input: %s", entity, input), false, nil)
}

// NewMissingSlotError is returned when an action precondition slot is unset.
func NewMissingSlotError(slot string) *StandardError {
	return newError(ErrCodeMissingSlot, "Required slot is not set",
		fmt.Sprintf("slot: %s", slot), false, nil)
}

// NewRemoteUnavailableError wraps connection failures against the catalogue API.
func NewRemoteUnavailableError(endpoint string, err error) *StandardError {
	return newError(ErrCodeRemoteUnavailable, "Catalogue API unavailable",
		fmt.Sprintf("endpoint: %s, error: %v", endpoint, err), true, err)
}

// NewRemoteTimeoutError wraps deadline expiry against the catalogue API.
func NewRemoteTimeoutError(endpoint string, err error) *StandardError {
	return newError(ErrCodeRemoteTimeout, "Catalogue API timeout",
		fmt.Sprintf("endpoint: %s, error: %v", endpoint, err), true, err)
}

// NewRemoteBadStatusError reports a non-2xx answer.
func NewRemoteBadStatusError(endpoint string, status int) *StandardError {
	retryable := status >= 500 || status == 429
	return newError(ErrCodeRemoteBadStatus, "Catalogue API returned an error status",
		fmt.Sprintf("endpoint: %s, status: %d", endpoint, status), retryable, nil).
		WithMetadata("status", status)
}

// NewRemoteDecodeFailedError reports an undecodable payload.
func NewRemoteDecodeFailedError(endpoint string, err error) *StandardError {
	return newError(ErrCodeRemoteDecodeFailed, "Catalogue API response could not be decoded",
		fmt.Sprintf("endpoint: %s, error: %v", endpoint, err), false, err)
}

// NewKnowledgeLoadFailedError reports an unreadable knowledge document.
func NewKnowledgeLoadFailedError(path string, err error) *StandardError {
	return newError(ErrCodeKnowledgeLoadFailed, "Knowledge document could not be loaded",
		fmt.Sprintf("path: %s, error: %v", path, err), false, err)
}

// NewKnowledgeEntryInvalidError reports one rejected knowledge entry.
func NewKnowledgeEntryInvalidError(key string, problems []string) *StandardError {
	return newError(ErrCodeKnowledgeInvalid, "Knowledge entry rejected",
		fmt.Sprintf("key: %s, problems: %s", key, strings.Join(problems, "; ")), false, nil)
}

// NewLogReadFailedError reports a failed duplicate check against the out-of-scope log.
func NewLogReadFailedError(sink string, err error) *StandardError {
	return newError(ErrCodeLogReadFailed, "Out-of-scope log read failed",
		fmt.Sprintf("sink: %s, error: %v", sink, err), true, err)
}

// NewLogWriteFailedError reports a failed append to the out-of-scope log.
func NewLogWriteFailedError(sink string, err error) *StandardError {
	return newError(ErrCodeLogWriteFailed, "Out-of-scope log write failed",
		fmt.Sprintf("sink: %s, error: %v", sink, err), true, err)
}

// NewSessionStoreFailedError reports slot persistence problems.
func NewSessionStoreFailedError(op string, err error) *StandardError {
	return newError(ErrCodeSessionStoreFailed, "Session store operation failed",
		fmt.Sprintf("op: %s, error: %v", op, err), true, err)
}

// NewActionFailedError wraps an action handler failure or panic.
func NewActionFailedError(action string, err error) *StandardError {
	return newError(ErrCodeActionFailed, "Action handler failed",
		fmt.Sprintf("action: %s, error: %v", action, err), false, err)
}

// ==========================
// 3. Utility Functions
// ==========================

// AsStandardError unwraps err into a *StandardError when possible.
func AsStandardError(err error) (*StandardError, bool) {
	var stdErr *StandardError
	if errors.As(err, &stdErr) {
		return stdErr, true
	}
	return nil, false
}

// CodeOf returns the error code of err, or INTERNAL_ERROR for foreign errors.
func CodeOf(err error) ErrorCode {
	if stdErr, ok := AsStandardError(err); ok {
		return stdErr.Code
	}
	return ErrCodeInternal
}

// GetRetryCount returns the recommended retry count for a code.
func GetRetryCount(code ErrorCode) int {
	switch code {
	case ErrCodeRemoteUnavailable, ErrCodeRemoteBadStatus:
		return 2
	case ErrCodeRemoteTimeout:
		return 1
	case ErrCodeLogWriteFailed, ErrCodeSessionStoreFailed:
		return 1
	default:
		return 0
	}
}

// IsRetryableErrorCode checks if an error code is retryable.
func IsRetryableErrorCode(code ErrorCode) bool {
	return GetRetryCount(code) > 0
}

// IsRetryable reports whether err is a retryable StandardError.
func IsRetryable(err error) bool {
	stdErr, ok := AsStandardError(err)
	return ok && stdErr.Retryable
}

// GetErrorCategory returns the category of the error code.
func GetErrorCategory(code ErrorCode) string {
	codeStr := string(code)
	switch {
	case strings.HasPrefix(codeStr, "REMOTE"):
		return "REMOTE"
	case strings.HasPrefix(codeStr, "KNOWLEDGE"):
		return "KNOWLEDGE"
	case strings.HasPrefix(codeStr, "LOG"):
		return "PERSISTENCE"
	case strings.HasPrefix(codeStr, "SESSION"):
		return "SESSION"
	case strings.Contains(codeStr, "ENTITY") || strings.Contains(codeStr, "SLOT"):
		return "DIALOGUE"
	case strings.HasPrefix(codeStr, "ACTION"):
		return "ACTION"
	default:
		return "OTHER"
	}
}
