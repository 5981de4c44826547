package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	dErrors "github.com/IT22898920/GYM-App-sub004/internal/domain/errors"
)

// errorBody is the JSON shape of every non-2xx response. Code is the
// machine-checkable error kind; Field/Reason are set for validation
// failures.
type errorBody struct {
	Error  string `json:"error"`
	Code   string `json:"code"`
	Field  string `json:"field,omitempty"`
	Reason string `json:"reason,omitempty"`
}

// writeError maps domain errors onto HTTP status codes. Unrecognized
// errors become 500 without leaking internals.
func writeError(c echo.Context, err error) error {
	var validationErr *dErrors.ValidationError
	if errors.As(err, &validationErr) {
		return c.JSON(http.StatusBadRequest, errorBody{
			Error:  "validation failed",
			Code:   "VALIDATION_ERROR",
			Field:  validationErr.Field,
			Reason: validationErr.Reason,
		})
	}

	var methodErr *dErrors.UnknownPaymentMethodError
	if errors.As(err, &methodErr) {
		return c.JSON(http.StatusUnprocessableEntity, errorBody{
			Error:  "unknown payment method",
			Code:   "UNKNOWN_PAYMENT_METHOD",
			Field:  "payment_method",
			Reason: dErrors.ReasonUnknownValue,
		})
	}

	var transitionErr *dErrors.InvalidStateTransitionError
	if errors.As(err, &transitionErr) {
		return c.JSON(http.StatusConflict, errorBody{
			Error: transitionErr.Error(),
			Code:  "INVALID_STATE_TRANSITION",
		})
	}

	var storeErr *dErrors.StoreUnavailableError
	if errors.As(err, &storeErr) {
		return c.JSON(http.StatusServiceUnavailable, errorBody{
			Error: "storage temporarily unavailable",
			Code:  "STORE_UNAVAILABLE",
		})
	}

	switch {
	case errors.Is(err, dErrors.ErrMemberNotFound),
		errors.Is(err, dErrors.ErrGymNotFound),
		errors.Is(err, dErrors.ErrPlanNotFound),
		errors.Is(err, dErrors.ErrUserNotFound),
		errors.Is(err, dErrors.ErrReceiptNotFound):
		return c.JSON(http.StatusNotFound, errorBody{Error: err.Error(), Code: "NOT_FOUND"})
	case errors.Is(err, dErrors.ErrInvalidCredentials):
		return c.JSON(http.StatusUnauthorized, errorBody{Error: "invalid credentials", Code: "INVALID_CREDENTIALS"})
	case errors.Is(err, dErrors.ErrEmailTaken):
		return c.JSON(http.StatusConflict, errorBody{Error: "email already registered", Code: "EMAIL_TAKEN"})
	}

	return c.JSON(http.StatusInternalServerError, errorBody{Error: "internal server error", Code: "INTERNAL"})
}
