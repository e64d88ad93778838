package perrors

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"runtime"
)

type ErrCode struct {
	Code   string `json:"code"`
	Status int    `json:"status"`
}

var (
	ErrCodeInvalidRequest   ErrCode = ErrCode{"invalid_request", http.StatusBadRequest}
	ErrCodeInternalServer           = ErrCode{"internal_server_error", http.StatusInternalServerError}
	ErrCodeNotFound                 = ErrCode{"not_found", http.StatusNotFound}
	ErrCodeMethodNotAllowed         = ErrCode{"method_not_allowed", http.StatusMethodNotAllowed}
)

// Err is the error type surfaced to HTTP callers. Only Err and Details are
// serialized; Message, Cause and Args stay in the logs.
type Err struct {
	Message    string                   `json:"-"`
	Err        string                   `json:"error"`
	Details    *string                  `json:"details,omitempty"`
	Code       ErrCode                  `json:"-"`
	Cause      error                    `json:"-"`
	Stacktrace []string                 `json:"-"`
	Args       []map[string]interface{} `json:"-"`
}

func (e Err) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Err, e.Cause)
	}
	return e.Err
}

func (e Err) Unwrap() error {
	return e.Cause
}

func (e Err) HttpStatus() int {
	return e.Code.Status
}

// WithDetails attaches caller-visible diagnostic text.
func (e Err) WithDetails(details string) Err {
	e.Details = &details
	return e
}

func (e Err) Print(ctx context.Context) {
	args := []any{slog.String("error", e.Err), slog.String("code", e.Code.Code)}
	if e.Cause != nil {
		args = append(args, slog.Any("cause", e.Cause))
	}
	if len(e.Args) > 0 {
		for k, v := range e.Args[0] {
			args = append(args, slog.Any(k, v))
		}
	}
	args = append(args, slog.Any("stacktrace", e.Stacktrace))
	slog.ErrorContext(ctx, e.Message, args...)
}

// New builds an Err. msg is logged, public is what the caller sees.
func New(code ErrCode, msg string, public string, cause error, args ...map[string]interface{}) Err {
	pc := make([]uintptr, 20)
	count := runtime.Callers(2, pc)
	frames := runtime.CallersFrames(pc[:count])

	var stacktrace []string
	for frame, hasMore := frames.Next(); hasMore; frame, hasMore = frames.Next() {
		stacktrace = append(stacktrace, fmt.Sprintf("%s:%d", frame.File, frame.Line))
	}

	return Err{
		Code:       code,
		Message:    msg,
		Err:        public,
		Cause:      cause,
		Stacktrace: stacktrace,
		Args:       args,
	}
}

func NewErrInvalidRequest(msg string, public string, cause error, args ...map[string]interface{}) Err {
	return New(ErrCodeInvalidRequest, msg, public, cause, args...)
}

func NewErrInternalServerError(msg string, public string, cause error, args ...map[string]interface{}) Err {
	return New(ErrCodeInternalServer, msg, public, cause, args...)
}
