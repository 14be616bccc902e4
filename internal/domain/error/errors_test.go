package error

import (
	"errors"
	"fmt"
	"testing"
)

func TestBaseErrorTypes(t *testing.T) {
	// Test to ensure all base error types are defined properly
	if ErrNotMember.Error() != "not a valid user" {
		t.Errorf("ErrNotMember has unexpected message: %s", ErrNotMember.Error())
	}
	if ErrInvalidAmount.Error() != "invalid amount format" {
		t.Errorf("ErrInvalidAmount has unexpected message: %s", ErrInvalidAmount.Error())
	}
	if ErrTransactionNotFound.Error() != "unknown transaction" {
		t.Errorf("ErrTransactionNotFound has unexpected message: %s", ErrTransactionNotFound.Error())
	}
}

func TestErrorCode(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{"InvalidAmount", ErrInvalidAmount, 4001},
		{"InvalidNetID", ErrInvalidNetID, 4002},
		{"NotMember", ErrNotMember, 4003},
		{"DuplicateUser", ErrDuplicateUser, 4004},
		{"AmountOutOfRange", ErrAmountOutOfRange, 4005},
		{"Unauthorized", ErrUnauthorized, 4030},
		{"UserNotFound", ErrUserNotFound, 4040},
		{"TransactionNotFound", ErrTransactionNotFound, 4041},
		{"PaymentFailed", ErrPaymentFailed, 5020},
		{"UnknownError", errors.New("unknown error"), 5000},
		{"WrappedError", fmt.Errorf("wrapped: %w", ErrNotMember), 4003},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			code := ErrorCode(tc.err)
			if code != tc.expected {
				t.Errorf("ErrorCode(%v) = %d, want %d", tc.err, code, tc.expected)
			}
		})
	}
}

func TestPaymentError(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewPaymentError(PaymentNetworkError, "charging card", cause)

	// A payment error is an ErrPaymentFailed regardless of kind
	if !errors.Is(err, ErrPaymentFailed) {
		t.Errorf("errors.Is(err, ErrPaymentFailed) = false, want true")
	}
	if !IsPaymentError(err) {
		t.Errorf("IsPaymentError(err) = false, want true")
	}

	// The cause stays reachable through Unwrap
	if !errors.Is(err, cause) {
		t.Errorf("errors.Is(err, cause) = false, want true")
	}

	if kind := PaymentKind(err); kind != PaymentNetworkError {
		t.Errorf("PaymentKind(err) = %q, want %q", kind, PaymentNetworkError)
	}

	// Wrapping preserves the kind
	wrapped := fmt.Errorf("processing payment: %w", err)
	if kind := PaymentKind(wrapped); kind != PaymentNetworkError {
		t.Errorf("PaymentKind(wrapped) = %q, want %q", kind, PaymentNetworkError)
	}

	// Non-payment errors have no kind
	if kind := PaymentKind(errors.New("other")); kind != "" {
		t.Errorf("PaymentKind(other) = %q, want empty", kind)
	}

	expectedMsg := "payment failed (network_error): charging card: connection refused"
	if err.Error() != expectedMsg {
		t.Errorf("err.Error() = %s, want %s", err.Error(), expectedMsg)
	}
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("netid", "  ", ErrInvalidNetID)

	if !errors.Is(err, ErrInvalidNetID) {
		t.Errorf("errors.Is(err, ErrInvalidNetID) = false, want true")
	}

	expectedMsg := `invalid netid "  ": netid cannot be empty`
	if err.Error() != expectedMsg {
		t.Errorf("err.Error() = %s, want %s", err.Error(), expectedMsg)
	}
}

func TestErrorClassification(t *testing.T) {
	t.Run("Not found errors", func(t *testing.T) {
		for _, err := range []error{ErrNotFound, ErrUserNotFound, ErrTransactionNotFound} {
			if !IsNotFoundError(err) {
				t.Errorf("IsNotFoundError(%v) = false, want true", err)
			}
		}
		if IsNotFoundError(ErrInvalidAmount) {
			t.Errorf("IsNotFoundError(ErrInvalidAmount) = true, want false")
		}
	})

	t.Run("Validation errors", func(t *testing.T) {
		validationErrs := []error{
			ErrInvalidAmount,
			ErrInvalidNetID,
			ErrNotMember,
			ErrAmountOutOfRange,
			ErrDuplicateUser,
			ErrInvalidRequest,
		}
		for _, err := range validationErrs {
			if !IsValidationError(err) {
				t.Errorf("IsValidationError(%v) = false, want true", err)
			}
		}
		if IsValidationError(ErrUserNotFound) {
			t.Errorf("IsValidationError(ErrUserNotFound) = true, want false")
		}
		if IsValidationError(ErrUnauthorized) {
			t.Errorf("IsValidationError(ErrUnauthorized) = true, want false")
		}
	})
}
