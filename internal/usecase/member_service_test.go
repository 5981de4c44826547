package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/IT22898920/GYM-App-sub004/internal/domain/entity"
	dErrors "github.com/IT22898920/GYM-App-sub004/internal/domain/errors"
	"github.com/IT22898920/GYM-App-sub004/internal/usecase"
)

func pendingMember(id string) *entity.Member {
	return &entity.Member{
		ID:     id,
		GymID:  "gym-1",
		Name:   "Jamie Fernando",
		Status: entity.MemberStatusInactive,
		PaymentDetails: entity.PaymentDetails{
			Method:        entity.PaymentMethodBankTransfer,
			PaymentStatus: entity.PaymentStatusPending,
		},
	}
}

func TestMemberService_ConfirmPayment(t *testing.T) {
	ctx := context.Background()

	t.Run("confirms pending member", func(t *testing.T) {
		members := new(MockMemberRepository)
		service := usecase.NewMemberService(members, zap.NewNop())

		confirmed := pendingMember("m1")
		confirmed.Status = entity.MemberStatusActive
		confirmed.PaymentDetails.PaymentStatus = entity.PaymentStatusCompleted

		members.On("TransitionPaymentState", ctx, "m1",
			entity.PaymentStatusPending, entity.PaymentStatusCompleted, entity.MemberStatusActive).
			Return(true, nil)
		members.On("GetByID", ctx, "m1").Return(confirmed, nil)

		member, err := service.ConfirmPayment(ctx, "m1")

		assert.NoError(t, err)
		assert.Equal(t, entity.MemberStatusActive, member.Status)
		assert.Equal(t, entity.PaymentStatusCompleted, member.PaymentDetails.PaymentStatus)
	})

	t.Run("second confirm fails with invalid transition", func(t *testing.T) {
		members := new(MockMemberRepository)
		service := usecase.NewMemberService(members, zap.NewNop())

		already := pendingMember("m1")
		already.Status = entity.MemberStatusActive
		already.PaymentDetails.PaymentStatus = entity.PaymentStatusCompleted

		members.On("TransitionPaymentState", ctx, "m1",
			entity.PaymentStatusPending, entity.PaymentStatusCompleted, entity.MemberStatusActive).
			Return(false, nil)
		members.On("GetByID", ctx, "m1").Return(already, nil)

		_, err := service.ConfirmPayment(ctx, "m1")

		var transitionErr *dErrors.InvalidStateTransitionError
		assert.ErrorAs(t, err, &transitionErr)
		assert.Equal(t, "m1", transitionErr.MemberID)
		assert.Equal(t, "confirm", transitionErr.Action)
		assert.Equal(t, entity.PaymentStatusCompleted, transitionErr.Current)
	})

	t.Run("confirm after reject fails", func(t *testing.T) {
		members := new(MockMemberRepository)
		service := usecase.NewMemberService(members, zap.NewNop())

		rejected := pendingMember("m1")
		rejected.PaymentDetails.PaymentStatus = entity.PaymentStatusFailed

		members.On("TransitionPaymentState", ctx, "m1",
			entity.PaymentStatusPending, entity.PaymentStatusCompleted, entity.MemberStatusActive).
			Return(false, nil)
		members.On("GetByID", ctx, "m1").Return(rejected, nil)

		_, err := service.ConfirmPayment(ctx, "m1")

		var transitionErr *dErrors.InvalidStateTransitionError
		assert.ErrorAs(t, err, &transitionErr)
		assert.Equal(t, entity.PaymentStatusFailed, transitionErr.Current)
	})

	t.Run("missing member surfaces not found", func(t *testing.T) {
		members := new(MockMemberRepository)
		service := usecase.NewMemberService(members, zap.NewNop())

		members.On("TransitionPaymentState", ctx, "ghost",
			entity.PaymentStatusPending, entity.PaymentStatusCompleted, entity.MemberStatusActive).
			Return(false, nil)
		members.On("GetByID", ctx, "ghost").Return(nil, dErrors.ErrMemberNotFound)

		_, err := service.ConfirmPayment(ctx, "ghost")

		assert.ErrorIs(t, err, dErrors.ErrMemberNotFound)
	})

	t.Run("store failure propagates", func(t *testing.T) {
		members := new(MockMemberRepository)
		service := usecase.NewMemberService(members, zap.NewNop())

		members.On("TransitionPaymentState", ctx, "m1",
			entity.PaymentStatusPending, entity.PaymentStatusCompleted, entity.MemberStatusActive).
			Return(false, dErrors.NewStoreUnavailableError("transition", assert.AnError))

		_, err := service.ConfirmPayment(ctx, "m1")

		var storeErr *dErrors.StoreUnavailableError
		assert.ErrorAs(t, err, &storeErr)
	})
}

func TestMemberService_RejectPayment(t *testing.T) {
	ctx := context.Background()

	t.Run("rejects pending member", func(t *testing.T) {
		members := new(MockMemberRepository)
		service := usecase.NewMemberService(members, zap.NewNop())

		rejected := pendingMember("m1")
		rejected.PaymentDetails.PaymentStatus = entity.PaymentStatusFailed

		members.On("TransitionPaymentState", ctx, "m1",
			entity.PaymentStatusPending, entity.PaymentStatusFailed, entity.MemberStatusInactive).
			Return(true, nil)
		members.On("GetByID", ctx, "m1").Return(rejected, nil)

		member, err := service.RejectPayment(ctx, "m1")

		assert.NoError(t, err)
		assert.Equal(t, entity.MemberStatusInactive, member.Status)
		assert.Equal(t, entity.PaymentStatusFailed, member.PaymentDetails.PaymentStatus)
	})

	t.Run("reject after confirm fails", func(t *testing.T) {
		members := new(MockMemberRepository)
		service := usecase.NewMemberService(members, zap.NewNop())

		confirmed := pendingMember("m1")
		confirmed.Status = entity.MemberStatusActive
		confirmed.PaymentDetails.PaymentStatus = entity.PaymentStatusCompleted

		members.On("TransitionPaymentState", ctx, "m1",
			entity.PaymentStatusPending, entity.PaymentStatusFailed, entity.MemberStatusInactive).
			Return(false, nil)
		members.On("GetByID", ctx, "m1").Return(confirmed, nil)

		_, err := service.RejectPayment(ctx, "m1")

		var transitionErr *dErrors.InvalidStateTransitionError
		assert.ErrorAs(t, err, &transitionErr)
		assert.Equal(t, "reject", transitionErr.Action)
	})
}

func TestMemberService_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("empty id is not found", func(t *testing.T) {
		service := usecase.NewMemberService(new(MockMemberRepository), zap.NewNop())

		_, err := service.Get(ctx, "")

		assert.ErrorIs(t, err, dErrors.ErrMemberNotFound)
	})
}

func TestMemberService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("normalizes pagination", func(t *testing.T) {
		members := new(MockMemberRepository)
		service := usecase.NewMemberService(members, zap.NewNop())

		members.On("List", ctx, "gym-1", entity.MemberStatus(""), mock.MatchedBy(func(p entity.PaginationParams) bool {
			return p.Limit == entity.DefaultPageSize && p.Offset == 0
		})).Return([]*entity.Member{}, nil)

		_, err := service.List(ctx, "gym-1", "", entity.PaginationParams{Limit: -3, Offset: -1})

		assert.NoError(t, err)
		members.AssertExpectations(t)
	})
}
