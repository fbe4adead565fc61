// internal/common/errors/handler.go
package errors

import (
	"fmt"
	"time"
)

// ErrorHandler turns arbitrary failures at a boundary into logged StandardErrors.
type ErrorHandler struct {
	logger Logger
}

type Logger interface {
	Error(msg string, fields map[string]interface{})
}

func NewErrorHandler(logger Logger) *ErrorHandler {
	return &ErrorHandler{logger: logger}
}

// Handle normalizes err, logs it against the boundary name and returns it.
func (h *ErrorHandler) Handle(boundary string, err error) *StandardError {
	stdErr := h.normalizeError(boundary, err)
	h.logError(boundary, stdErr)
	return stdErr
}

// HandlePanic converts a recovered panic value.
func (h *ErrorHandler) HandlePanic(boundary string, recovered interface{}) *StandardError {
	return h.Handle(boundary, fmt.Errorf("panic: %v", recovered))
}

func (h *ErrorHandler) normalizeError(boundary string, err error) *StandardError {
	if stdErr, ok := AsStandardError(err); ok {
		return stdErr
	}
	return &StandardError{
		Code:      ErrCodeActionFailed,
		Message:   "Unexpected error",
		Details:   err.Error(),
		Retryable: false,
		Metadata:  map[string]interface{}{"boundary": boundary},
		Timestamp: time.Now().UTC(),
		cause:     err,
	}
}

func (h *ErrorHandler) logError(boundary string, stdErr *StandardError) {
	h.logger.Error("boundary failure", map[string]interface{}{
		"boundary":      boundary,
		"errorCode":     string(stdErr.Code),
		"message":       stdErr.Message,
		"details":       stdErr.Details,
		"retryable":     stdErr.Retryable,
		"errorCategory": GetErrorCategory(stdErr.Code),
	})
}
