package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/IT22898920/GYM-App-sub004/internal/domain/entity"
	"github.com/IT22898920/GYM-App-sub004/internal/domain/repository"
)

// PaymentService serves the payment ledger read side.
type PaymentService struct {
	payments repository.PaymentRepository
	logger   *zap.Logger
}

// NewPaymentService creates a new payment service.
func NewPaymentService(payments repository.PaymentRepository, logger *zap.Logger) *PaymentService {
	return &PaymentService{
		payments: payments,
		logger:   logger,
	}
}

// ListByGym returns a gym's payment records.
func (s *PaymentService) ListByGym(ctx context.Context, gymID string, p entity.PaginationParams) ([]*entity.Payment, error) {
	p.Normalize()
	return s.payments.ListByGym(ctx, gymID, p)
}

// ListByMember returns a member's payment records.
func (s *PaymentService) ListByMember(ctx context.Context, memberID string) ([]*entity.Payment, error) {
	return s.payments.ListByMember(ctx, memberID)
}
