package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/IT22898920/GYM-App-sub004/internal/domain/entity"
	dErrors "github.com/IT22898920/GYM-App-sub004/internal/domain/errors"
	"github.com/IT22898920/GYM-App-sub004/internal/usecase"
)

func TestResolveInitialState(t *testing.T) {
	tests := []struct {
		name          string
		method        entity.PaymentMethod
		cardCaptured  bool
		wantStatus    entity.MemberStatus
		wantPayment   entity.PaymentStatus
		wantUnknown   bool
	}{
		{
			name:         "card captured activates member",
			method:       entity.PaymentMethodCard,
			cardCaptured: true,
			wantStatus:   entity.MemberStatusActive,
			wantPayment:  entity.PaymentStatusCompleted,
		},
		{
			name:         "card declined leaves member inactive failed",
			method:       entity.PaymentMethodCard,
			cardCaptured: false,
			wantStatus:   entity.MemberStatusInactive,
			wantPayment:  entity.PaymentStatusFailed,
		},
		{
			name:        "bank transfer awaits verification",
			method:      entity.PaymentMethodBankTransfer,
			wantStatus:  entity.MemberStatusInactive,
			wantPayment: entity.PaymentStatusPending,
		},
		{
			name:        "manual payment awaits verification",
			method:      entity.PaymentMethodManual,
			wantStatus:  entity.MemberStatusInactive,
			wantPayment: entity.PaymentStatusPending,
		},
		{
			name:        "unknown method fails loudly",
			method:      entity.PaymentMethod("crypto"),
			wantUnknown: true,
		},
		{
			name:        "empty method fails loudly",
			method:      entity.PaymentMethod(""),
			wantUnknown: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state, err := usecase.ResolveInitialState(tt.method, tt.cardCaptured)

			if tt.wantUnknown {
				var methodErr *dErrors.UnknownPaymentMethodError
				assert.ErrorAs(t, err, &methodErr)
				assert.Equal(t, string(tt.method), methodErr.Method)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.wantStatus, state.Status)
			assert.Equal(t, tt.wantPayment, state.PaymentStatus)
		})
	}
}

// Active membership must always mean a completed payment, whatever the
// method and capture outcome.
func TestResolveInitialState_ActiveImpliesCompleted(t *testing.T) {
	methods := []entity.PaymentMethod{
		entity.PaymentMethodCard,
		entity.PaymentMethodBankTransfer,
		entity.PaymentMethodManual,
	}

	for _, method := range methods {
		for _, captured := range []bool{true, false} {
			state, err := usecase.ResolveInitialState(method, captured)
			assert.NoError(t, err)

			if state.Status == entity.MemberStatusActive {
				assert.Equal(t, entity.PaymentStatusCompleted, state.PaymentStatus,
					"method %s captured=%v", method, captured)
			}
			if state.PaymentStatus == entity.PaymentStatusCompleted {
				assert.Equal(t, entity.MemberStatusActive, state.Status,
					"method %s captured=%v", method, captured)
			}
		}
	}
}
