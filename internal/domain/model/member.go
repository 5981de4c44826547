package model

import (
	"database/sql/driver"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// MemberStatus is the persisted access state of a member.
type MemberStatus string

const (
	MemberStatusActive   MemberStatus = "active"
	MemberStatusInactive MemberStatus = "inactive"
)

// Scan implements sql.Scanner.
func (s *MemberStatus) Scan(src interface{}) error {
	switch v := src.(type) {
	case string:
		*s = MemberStatus(v)
	case []byte:
		*s = MemberStatus(v)
	default:
		return fmt.Errorf("unsupported member status source: %T", src)
	}
	return nil
}

// Value implements driver.Valuer.
func (s MemberStatus) Value() (driver.Value, error) {
	return string(s), nil
}

// PaymentStatus is the persisted verification state of a payment.
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
)

// Scan implements sql.Scanner.
func (s *PaymentStatus) Scan(src interface{}) error {
	switch v := src.(type) {
	case string:
		*s = PaymentStatus(v)
	case []byte:
		*s = PaymentStatus(v)
	default:
		return fmt.Errorf("unsupported payment status source: %T", src)
	}
	return nil
}

// Value implements driver.Valuer.
func (s PaymentStatus) Value() (driver.Value, error) {
	return string(s), nil
}

// Member represents a membership record. The payment value object is
// flattened into payment_* columns.
type Member struct {
	ID            uuid.UUID     `gorm:"type:uuid;primaryKey" json:"id"`
	GymID         uuid.UUID     `gorm:"type:uuid;not null;index" json:"gym_id"`
	Name          string        `gorm:"size:100;not null" json:"name"`
	Email         string        `gorm:"size:100;not null;index" json:"email"`
	Phone         string        `gorm:"size:30;not null" json:"phone"`
	Plan          string        `gorm:"size:50;not null" json:"plan"`
	Status        MemberStatus  `gorm:"size:20;not null;index" json:"status"`
	PaymentMethod string        `gorm:"size:30;not null" json:"payment_method"`
	PaymentStatus PaymentStatus `gorm:"size:20;not null;index" json:"payment_status"`
	ReceiptPath   *string       `gorm:"size:255" json:"receipt_path,omitempty"`
	CreatedAt     time.Time     `gorm:"not null" json:"created_at"`
	UpdatedAt     time.Time     `gorm:"not null" json:"updated_at"`
}

// TableName specifies the table name for GORM.
func (Member) TableName() string {
	return "members"
}
