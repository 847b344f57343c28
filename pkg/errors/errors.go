package errors

import (
	"errors"
	"fmt"
	"net/http"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	CodeAuthFailure          = "AUTH_FAILURE"
	CodeProfileFetchFailure  = "PROFILE_FETCH_FAILURE"
	CodeWriteFailure         = "WRITE_FAILURE"
	CodeBackendUnavailable   = "BACKEND_UNAVAILABLE"
	CodePermissionDenied     = "PERMISSION_DENIED"
	CodeConfirmationRequired = "CONFIRMATION_REQUIRED"
	CodeNotFound             = "NOT_FOUND"
	CodeBadRequest           = "BAD_REQUEST"
	CodeUnauthorized         = "UNAUTHORIZED"
	CodeForbidden            = "FORBIDDEN"
	CodeConflict             = "CONFLICT"
	CodeInternal             = "INTERNAL_ERROR"
)

type AppError struct {
	Code    string
	Message string
	Status  int
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code string, message string, status int, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Status:  status,
		Err:     err,
	}
}

func NotFound(resource string, err error) *AppError {
	return New(CodeNotFound, fmt.Sprintf("%s not found", resource), http.StatusNotFound, err)
}

func BadRequest(message string, err error) *AppError {
	return New(CodeBadRequest, message, http.StatusBadRequest, err)
}

func Unauthorized(message string, err error) *AppError {
	return New(CodeUnauthorized, message, http.StatusUnauthorized, err)
}

func Forbidden(message string, err error) *AppError {
	return New(CodeForbidden, message, http.StatusForbidden, err)
}

func Conflict(message string) *AppError {
	return New(CodeConflict, message, http.StatusConflict, nil)
}

func Internal(message string, err error) *AppError {
	return New(CodeInternal, message, http.StatusInternalServerError, err)
}

// AuthFailure carries the provider's message so the client can show it verbatim.
func AuthFailure(err error) *AppError {
	message := "Authentication failed"
	if err != nil {
		message = err.Error()
	}
	return New(CodeAuthFailure, message, http.StatusUnauthorized, err)
}

func WriteFailure(message string, err error) *AppError {
	return New(CodeWriteFailure, message, http.StatusBadGateway, err)
}

func BackendUnavailable(message string, err error) *AppError {
	return New(CodeBackendUnavailable, message, http.StatusServiceUnavailable, err)
}

func PermissionDenied(message string, err error) *AppError {
	return New(CodePermissionDenied, message, http.StatusForbidden, err)
}

func ConfirmationRequired(message string) *AppError {
	return New(CodeConfirmationRequired, message, http.StatusPreconditionRequired, nil)
}

// FromFirestore classifies a Firestore/gRPC error raised while performing action.
func FromFirestore(action string, err error) *AppError {
	if err == nil {
		return nil
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	switch status.Code(err) {
	case codes.NotFound:
		return NotFound("Document", err)
	case codes.AlreadyExists:
		return New(CodeConflict, fmt.Sprintf("Cannot %s: record already exists", action), http.StatusConflict, err)
	case codes.PermissionDenied, codes.Unauthenticated:
		return PermissionDenied(fmt.Sprintf("Not allowed to %s", action), err)
	case codes.Unavailable, codes.DeadlineExceeded, codes.ResourceExhausted:
		return BackendUnavailable(fmt.Sprintf("Database unavailable while trying to %s", action), err)
	default:
		return WriteFailure(fmt.Sprintf("Failed to %s", action), err)
	}
}

func Is(err error, code string) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}
