package entity

import (
	"io"
	"time"
)

// MemberStatus gates facility access. It is derived from the payment
// status and never set independently.
type MemberStatus string

const (
	MemberStatusActive   MemberStatus = "active"
	MemberStatusInactive MemberStatus = "inactive"
)

// PaymentStatus tracks verification of a member's registration payment.
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
)

// PaymentMethod is how the member pays the registration fee.
type PaymentMethod string

const (
	PaymentMethodCard         PaymentMethod = "card"
	PaymentMethodBankTransfer PaymentMethod = "bank_transfer"
	PaymentMethodManual       PaymentMethod = "manual"
)

// Valid reports whether the method is one of the known enum values.
func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodCard, PaymentMethodBankTransfer, PaymentMethodManual:
		return true
	}
	return false
}

// RequiresReceipt reports whether registrations with this method must
// attach a proof-of-payment receipt.
func (m PaymentMethod) RequiresReceipt() bool {
	return m == PaymentMethodBankTransfer || m == PaymentMethodManual
}

// PaymentDetails is the payment value object embedded in a member.
// Method is set once at creation; PaymentStatus is the only field with
// a transition history.
type PaymentDetails struct {
	Method        PaymentMethod `json:"method"`
	PaymentStatus PaymentStatus `json:"payment_status"`
	ReceiptPath   string        `json:"receipt_path,omitempty"`
}

// Member is a gym customer's persisted membership record.
type Member struct {
	ID             string         `json:"id"`
	GymID          string         `json:"gym_id"`
	Name           string         `json:"name"`
	Email          string         `json:"email"`
	Phone          string         `json:"phone"`
	Plan           string         `json:"plan"`
	Status         MemberStatus   `json:"status"`
	PaymentDetails PaymentDetails `json:"payment_details"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

// ReceiptAttachment is an opaque handle for an uploaded proof-of-payment
// file. Content is consumed exactly once when the receipt is persisted.
type ReceiptAttachment struct {
	Filename string
	Size     int64
	Content  io.Reader
}

// MembershipApplication is a validated, normalized registration request.
// It is immutable after intake and carries no storage identity yet.
type MembershipApplication struct {
	Name      string
	Email     string
	Phone     string
	Plan      string
	Method    PaymentMethod
	CardToken string
	Receipt   *ReceiptAttachment
}
