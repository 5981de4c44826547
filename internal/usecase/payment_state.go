package usecase

import (
	"github.com/IT22898920/GYM-App-sub004/internal/domain/entity"
	dErrors "github.com/IT22898920/GYM-App-sub004/internal/domain/errors"
)

// MemberState is the (status, payment status) pair assigned to a member.
type MemberState struct {
	Status        entity.MemberStatus
	PaymentStatus entity.PaymentStatus
}

// ResolveInitialState maps a payment method and card-capture outcome to
// the member's initial state pair. Any method that needs a human to
// confirm funds receipt cannot mark the member active at intake time.
//
// The mapping is total over the enum; an unknown method fails loudly
// instead of defaulting, because defaulting to active would be a free
// membership and defaulting to inactive would hide the bug.
func ResolveInitialState(method entity.PaymentMethod, cardCaptured bool) (MemberState, error) {
	switch method {
	case entity.PaymentMethodCard:
		if cardCaptured {
			return MemberState{
				Status:        entity.MemberStatusActive,
				PaymentStatus: entity.PaymentStatusCompleted,
			}, nil
		}
		return MemberState{
			Status:        entity.MemberStatusInactive,
			PaymentStatus: entity.PaymentStatusFailed,
		}, nil

	case entity.PaymentMethodBankTransfer, entity.PaymentMethodManual:
		return MemberState{
			Status:        entity.MemberStatusInactive,
			PaymentStatus: entity.PaymentStatusPending,
		}, nil

	default:
		return MemberState{}, dErrors.NewUnknownPaymentMethodError(string(method))
	}
}
