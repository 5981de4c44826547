package errors

import (
	"errors"
	"fmt"

	"github.com/IT22898920/GYM-App-sub004/internal/domain/entity"
)

var (
	// ErrMemberNotFound indicates the referenced member does not exist.
	ErrMemberNotFound = errors.New("member not found")

	// ErrGymNotFound indicates the referenced gym does not exist.
	ErrGymNotFound = errors.New("gym not found")

	// ErrPlanNotFound indicates the referenced workout plan does not exist.
	ErrPlanNotFound = errors.New("workout plan not found")

	// ErrReceiptNotFound indicates the member has no stored receipt.
	ErrReceiptNotFound = errors.New("receipt not found")
)

// Validation failure reasons surfaced to callers.
const (
	ReasonRequired       = "required"
	ReasonInvalidEmail   = "invalid_email"
	ReasonUnknownValue   = "unknown_value"
	ReasonMissingReceipt = "missing_receipt"
)

// ValidationError reports a user-correctable intake failure. It is
// always recoverable by the caller and never fatal to the process.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s (field: %s)", e.Reason, e.Field)
}

// NewValidationError creates a validation error for a field.
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// NewMissingReceiptError creates the validation error raised when a
// receipt-requiring payment method arrives without an attachment.
func NewMissingReceiptError() *ValidationError {
	return &ValidationError{Field: "receipt", Reason: ReasonMissingReceipt}
}

// UnknownPaymentMethodError reports a payment method outside the known
// enum. This is a programmer or config error: the request is rejected
// loudly rather than defaulting, since a silent default to active would
// grant an unpaid membership.
type UnknownPaymentMethodError struct {
	Method string
}

func (e *UnknownPaymentMethodError) Error() string {
	return fmt.Sprintf("unknown payment method: %q", e.Method)
}

// NewUnknownPaymentMethodError creates an unknown payment method error.
func NewUnknownPaymentMethodError(method string) *UnknownPaymentMethodError {
	return &UnknownPaymentMethodError{Method: method}
}

// InvalidStateTransitionError reports a confirm/reject on a member whose
// payment status is no longer pending. Repeated confirms must fail, not
// silently succeed, so double-billing bugs stay visible.
type InvalidStateTransitionError struct {
	MemberID string
	Action   string
	Current  entity.PaymentStatus
}

func (e *InvalidStateTransitionError) Error() string {
	return fmt.Sprintf("invalid state transition: cannot %s member %s with payment status %q",
		e.Action, e.MemberID, e.Current)
}

// NewInvalidStateTransitionError creates an invalid transition error.
func NewInvalidStateTransitionError(memberID, action string, current entity.PaymentStatus) *InvalidStateTransitionError {
	return &InvalidStateTransitionError{MemberID: memberID, Action: action, Current: current}
}

// StoreUnavailableError reports an infrastructure failure talking to the
// membership record store. Callers retry with backoff; it is never
// silently swallowed.
type StoreUnavailableError struct {
	Op    string
	Cause error
}

func (e *StoreUnavailableError) Error() string {
	return fmt.Sprintf("membership store unavailable during %s: %v", e.Op, e.Cause)
}

func (e *StoreUnavailableError) Unwrap() error {
	return e.Cause
}

// NewStoreUnavailableError creates a store unavailable error.
func NewStoreUnavailableError(op string, cause error) *StoreUnavailableError {
	return &StoreUnavailableError{Op: op, Cause: cause}
}
