package provider

import (
	"context"

	"github.com/shopspring/decimal"
)

// CardProcessor attempts to capture a card payment at registration time.
// A declined card is a normal outcome, not an error: Captured is false
// and FailureCode names the decline. Errors are reserved for transport
// or configuration failures.
type CardProcessor interface {
	Capture(ctx context.Context, req *CaptureRequest) (*CaptureResult, error)
	Name() string
}

// CaptureRequest describes one registration-fee charge.
type CaptureRequest struct {
	Reference string          `json:"reference"`
	Amount    decimal.Decimal `json:"amount"`
	Currency  string          `json:"currency"`
	CardToken string          `json:"card_token"`
}

// CaptureResult is the outcome of a capture attempt.
type CaptureResult struct {
	Captured      bool   `json:"captured"`
	TransactionID string `json:"transaction_id,omitempty"`
	FailureCode   string `json:"failure_code,omitempty"`
}
