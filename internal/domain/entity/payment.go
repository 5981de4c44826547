package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment is the ledger record written for every resolved registration.
// Status mirrors the member's payment status at the time of writing.
type Payment struct {
	ID            string          `json:"id"`
	MemberID      string          `json:"member_id"`
	GymID         string          `json:"gym_id"`
	Plan          string          `json:"plan"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency"`
	Method        PaymentMethod   `json:"method"`
	Status        PaymentStatus   `json:"status"`
	TransactionID string          `json:"transaction_id,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
}
