package common

import (
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Analysis failure taxonomy. All four are terminal for a single request:
// nothing is retried internally, the caller maps them to user-facing codes.
var (
	// ErrUnsupportedFormat: the document extension/content is not one the
	// text-recovery stage knows how to handle.
	ErrUnsupportedFormat = errors.New("unsupported document format")
	// ErrExtraction: the OCR engine failed outright or produced no usable text.
	ErrExtraction = errors.New("text extraction failed")
	// ErrInsufficientContent: text was recovered but is too short to be a real
	// report.
	ErrInsufficientContent = errors.New("insufficient text content")
	// ErrNoMetricsFound: text was recovered but no catalog parameter resolved.
	ErrNoMetricsFound = errors.New("no blood-test parameters found")
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

// Common application errors
var (
	ErrNotFound     = errors.New("resource not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrInternal     = errors.New("internal error")
	ErrDatabase     = errors.New("database error")
)

func NewAppError(code, message string, cause error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
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

func InvalidArgumentErrorf(format string, args ...interface{}) error {
	return InvalidArgumentError(fmt.Sprintf(format, args...))
}

func InternalErrorf(format string, args ...interface{}) error {
	return InternalError(fmt.Sprintf(format, args...))
}

// GRPCStatus maps an analysis pipeline error onto a gRPC status. The four
// taxonomy errors are client-addressable (clearer scan, supported format),
// everything else is internal.
func GRPCStatus(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrUnsupportedFormat):
		return status.Errorf(codes.InvalidArgument, "unsupported document format: %v", err)
	case errors.Is(err, ErrExtraction):
		return status.Error(codes.InvalidArgument, "could not extract text from the document; please upload a clearer scan")
	case errors.Is(err, ErrInsufficientContent):
		return status.Error(codes.InvalidArgument, "could not extract sufficient text from the document; please ensure the image is clear")
	case errors.Is(err, ErrNoMetricsFound):
		return status.Error(codes.InvalidArgument, "could not identify blood test parameters; please ensure the document contains valid test results")
	case errors.Is(err, ErrNotFound):
		return status.Error(codes.NotFound, err.Error())
	default:
		return status.Errorf(codes.Internal, "processing report: %v", err)
	}
}
