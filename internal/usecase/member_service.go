package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/IT22898920/GYM-App-sub004/internal/domain/entity"
	dErrors "github.com/IT22898920/GYM-App-sub004/internal/domain/errors"
	"github.com/IT22898920/GYM-App-sub004/internal/domain/repository"
	"github.com/IT22898920/GYM-App-sub004/internal/metrics"
)

// MemberService serves the member query side and the gym owner's
// payment-state transitions.
type MemberService struct {
	members repository.MemberRepository
	logger  *zap.Logger
}

// NewMemberService creates a new member service.
func NewMemberService(members repository.MemberRepository, logger *zap.Logger) *MemberService {
	return &MemberService{
		members: members,
		logger:  logger,
	}
}

// Get returns a single member.
func (s *MemberService) Get(ctx context.Context, id string) (*entity.Member, error) {
	if id == "" {
		return nil, dErrors.ErrMemberNotFound
	}
	return s.members.GetByID(ctx, id)
}

// List returns a gym's members, optionally filtered by status.
func (s *MemberService) List(ctx context.Context, gymID string, status entity.MemberStatus, p entity.PaginationParams) ([]*entity.Member, error) {
	p.Normalize()
	return s.members.List(ctx, gymID, status, p)
}

// ListPending returns the members awaiting manual payment verification
// for gym-owner review, ordered oldest first.
func (s *MemberService) ListPending(ctx context.Context, gymID string, p entity.PaginationParams) ([]*entity.Member, error) {
	p.Normalize()
	return s.members.ListPending(ctx, gymID, p)
}

// ConfirmPayment moves a pending member to (active, completed). The
// transition is a compare-and-swap on the payment status; a member that
// is no longer pending fails with InvalidStateTransition and the record
// stays unchanged.
func (s *MemberService) ConfirmPayment(ctx context.Context, id string) (*entity.Member, error) {
	return s.transition(ctx, id, "confirm",
		entity.PaymentStatusCompleted, entity.MemberStatusActive)
}

// RejectPayment moves a pending member to (inactive, failed).
func (s *MemberService) RejectPayment(ctx context.Context, id string) (*entity.Member, error) {
	return s.transition(ctx, id, "reject",
		entity.PaymentStatusFailed, entity.MemberStatusInactive)
}

func (s *MemberService) transition(ctx context.Context, id, action string, to entity.PaymentStatus, status entity.MemberStatus) (*entity.Member, error) {
	updated, err := s.members.TransitionPaymentState(ctx, id, entity.PaymentStatusPending, to, status)
	if err != nil {
		return nil, err
	}

	if !updated {
		// Distinguish a missing member from a lost race / duplicate action.
		member, err := s.members.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		s.logger.Warn("Rejected payment state transition",
			zap.String("member_id", id),
			zap.String("action", action),
			zap.String("current_payment_status", string(member.PaymentDetails.PaymentStatus)))
		metrics.PaymentTransitionsTotal.WithLabelValues(action, "rejected").Inc()
		return nil, dErrors.NewInvalidStateTransitionError(id, action, member.PaymentDetails.PaymentStatus)
	}

	member, err := s.members.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	metrics.PaymentTransitionsTotal.WithLabelValues(action, "applied").Inc()

	s.logger.Info("Payment state transition applied",
		zap.String("member_id", id),
		zap.String("action", action),
		zap.String("status", string(member.Status)),
		zap.String("payment_status", string(member.PaymentDetails.PaymentStatus)))

	return member, nil
}
