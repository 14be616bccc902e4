package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInvalidAmount       = 4001
	CodeInvalidNetID        = 4002
	CodeNotMember           = 4003
	CodeDuplicateUser       = 4004
	CodeAmountOutOfRange    = 4005
	CodeConstraintViolation = 4006
	CodeUnauthorized        = 4030
	CodeUserNotFound        = 4040
	CodeTransactionNotFound = 4041

	// 5xxx - Server errors
	CodeInternalServer = 5000
	CodePaymentFailed  = 5020
)

// Base error types
var (
	// ErrInvalidAmount is returned when the transaction amount format is invalid
	ErrInvalidAmount = errors.New("invalid amount format")

	// ErrInvalidNetID is returned when the netid is empty or malformed
	ErrInvalidNetID = errors.New("netid cannot be empty")

	// ErrNotMember is returned when the identity service does not recognize the netid
	ErrNotMember = errors.New("not a valid user")

	// ErrAmountOutOfRange is returned when a payment amount falls outside the configured bounds
	ErrAmountOutOfRange = errors.New("payment amount outside allowed range")

	// ErrUserNotFound is returned when the requested user doesn't exist
	ErrUserNotFound = errors.New("user not found")

	// ErrTransactionNotFound is returned when the requested transaction doesn't exist
	ErrTransactionNotFound = errors.New("unknown transaction")

	// ErrDuplicateUser is returned when trying to create a user that already exists
	ErrDuplicateUser = errors.New("user already exists")

	// ErrUnauthorized is returned when the caller cannot be resolved to an admin
	ErrUnauthorized = errors.New("not authorized")

	// ErrInvalidRequest is returned when the request format is invalid
	ErrInvalidRequest = errors.New("invalid request")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")

	// ErrDatabaseConnection is returned when there's a problem talking to the database
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrConstraintViolation is returned when a database constraint is violated
	ErrConstraintViolation = errors.New("database constraint violation")

	// ErrUserLocked is returned when a user row is locked by another operation
	ErrUserLocked = errors.New("user is locked by another operation")

	// ErrPaymentFailed is the base error for all payment processor failures
	ErrPaymentFailed = errors.New("payment failed")

	// ErrNotFound is returned when a generic resource is not found
	ErrNotFound = errors.New("resource not found")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInvalidAmount):
		return CodeInvalidAmount
	case errors.Is(err, ErrInvalidNetID):
		return CodeInvalidNetID
	case errors.Is(err, ErrNotMember):
		return CodeNotMember
	case errors.Is(err, ErrDuplicateUser):
		return CodeDuplicateUser
	case errors.Is(err, ErrAmountOutOfRange):
		return CodeAmountOutOfRange
	case errors.Is(err, ErrConstraintViolation):
		return CodeConstraintViolation
	case errors.Is(err, ErrUserNotFound):
		return CodeUserNotFound
	case errors.Is(err, ErrTransactionNotFound):
		return CodeTransactionNotFound
	case errors.Is(err, ErrUnauthorized):
		return CodeUnauthorized
	case errors.Is(err, ErrPaymentFailed):
		return CodePaymentFailed
	default:
		return CodeInternalServer
	}
}

// PaymentErrorKind discriminates payment processor failures so callers can
// tell transient failures from permanent ones
type PaymentErrorKind string

const (
	// PaymentDeclined means the processor rejected the card
	PaymentDeclined PaymentErrorKind = "declined"
	// PaymentNetworkError means the processor could not be reached
	PaymentNetworkError PaymentErrorKind = "network_error"
	// PaymentInvalidRequest means the processor rejected the request itself
	PaymentInvalidRequest PaymentErrorKind = "invalid_request"
)

// PaymentError represents a failure reported by the payment processor
type PaymentError struct {
	Kind    PaymentErrorKind
	Message string
	Err     error
}

// Error implements the error interface
func (e *PaymentError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("payment failed (%s): %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("payment failed (%s): %s", e.Kind, e.Message)
}

// Unwrap returns the underlying error
func (e *PaymentError) Unwrap() error {
	return e.Err
}

// Is checks if the target error is an ErrPaymentFailed
func (e *PaymentError) Is(target error) bool {
	return target == ErrPaymentFailed
}

// LogFields returns a map of fields for structured logging
func (e *PaymentError) LogFields() map[string]any {
	fields := map[string]any{
		"error_type": "payment_error",
		"kind":       string(e.Kind),
		"message":    e.Message,
		"error_code": CodePaymentFailed,
	}
	if e.Err != nil {
		fields["error"] = e.Err.Error()
	}
	return fields
}

// NewPaymentError creates a discriminated payment error
func NewPaymentError(kind PaymentErrorKind, message string, err error) error {
	return &PaymentError{
		Kind:    kind,
		Message: message,
		Err:     err,
	}
}

// IsPaymentError checks if the error came from the payment processor
func IsPaymentError(err error) bool {
	return errors.Is(err, ErrPaymentFailed)
}

// PaymentKind returns the kind of a payment error, or "" for other errors
func PaymentKind(err error) PaymentErrorKind {
	var pe *PaymentError
	if errors.As(err, &pe) {
		return pe.Kind
	}
	return ""
}

// ValidationError wraps a field-level validation failure with context
type ValidationError struct {
	Field string
	Value string
	Err   error
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %q: %v", e.Field, e.Value, e.Err)
}

// Unwrap returns the underlying error
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// NewValidationError creates a field-level validation error
func NewValidationError(field, value string, err error) error {
	return &ValidationError{Field: field, Value: value, Err: err}
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrTransactionNotFound)
}

// IsUserNotFoundError checks if the error is a user not found error
func IsUserNotFoundError(err error) bool {
	return errors.Is(err, ErrUserNotFound)
}

// IsValidationError checks if the error should be reported as a 400
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidAmount) ||
		errors.Is(err, ErrInvalidNetID) ||
		errors.Is(err, ErrNotMember) ||
		errors.Is(err, ErrAmountOutOfRange) ||
		errors.Is(err, ErrDuplicateUser) ||
		errors.Is(err, ErrInvalidRequest)
}
