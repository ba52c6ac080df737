package common

import (
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// AppError represents application-specific errors
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// ErrValidation is the base class of rejected inputs and transitions.
var ErrValidation = errors.New("validation failed")

// Pipeline error classes. Each processed record fails (or degrades) with
// exactly one of these: metadata and persistence failures are fatal for the
// record, extraction failures are captured on the staging row instead.
var (
	ErrMetadataResolution = errors.New("metadata resolution failed")
	ErrExtractionService  = errors.New("extraction service failure")
	ErrPersistence        = errors.New("staging persistence failed")
)

// Error constructors
func NewAppError(code, message string, cause error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

func NewMetadataResolutionError(message string, cause error) *AppError {
	return NewAppError("METADATA_RESOLUTION", message, errors.Join(ErrMetadataResolution, cause))
}

func NewExtractionServiceError(message string, cause error) *AppError {
	return NewAppError("EXTRACTION_SERVICE", message, errors.Join(ErrExtractionService, cause))
}

func NewPersistenceError(message string, cause error) *AppError {
	return NewAppError("PERSISTENCE", message, errors.Join(ErrPersistence, cause))
}

func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// gRPC error helpers
func InvalidArgumentError(message string) error {
	return status.Error(codes.InvalidArgument, message)
}

func NotFoundError(message string) error {
	return status.Error(codes.NotFound, message)
}

func InternalError(message string) error {
	return status.Error(codes.Internal, message)
}

func FailedPreconditionError(message string) error {
	return status.Error(codes.FailedPrecondition, message)
}

func InvalidArgumentErrorf(format string, args ...interface{}) error {
	return InvalidArgumentError(fmt.Sprintf(format, args...))
}

func InternalErrorf(format string, args ...interface{}) error {
	return InternalError(fmt.Sprintf(format, args...))
}
