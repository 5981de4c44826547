package repository

import (
	"context"

	"github.com/IT22898920/GYM-App-sub004/internal/domain/entity"
)

// PaymentRepository stores the payment ledger.
type PaymentRepository interface {
	Create(ctx context.Context, payment *entity.Payment) error
	ListByGym(ctx context.Context, gymID string, p entity.PaginationParams) ([]*entity.Payment, error)
	ListByMember(ctx context.Context, memberID string) ([]*entity.Payment, error)
}
