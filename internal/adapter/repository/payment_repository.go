package repository

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/IT22898920/GYM-App-sub004/internal/domain/entity"
	dErrors "github.com/IT22898920/GYM-App-sub004/internal/domain/errors"
	"github.com/IT22898920/GYM-App-sub004/internal/domain/model"
	"github.com/IT22898920/GYM-App-sub004/internal/domain/repository"
)

type paymentRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewPaymentRepository creates a GORM-backed payment ledger store.
func NewPaymentRepository(db *gorm.DB, logger *zap.Logger) repository.PaymentRepository {
	return &paymentRepository{
		db:     db,
		logger: logger,
	}
}

func (r *paymentRepository) Create(ctx context.Context, payment *entity.Payment) error {
	m, err := paymentEntityToModel(payment)
	if err != nil {
		return err
	}

	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		r.logger.Error("Failed to create payment",
			zap.String("member_id", payment.MemberID),
			zap.Error(err))
		return dErrors.NewStoreUnavailableError("create payment", err)
	}

	return nil
}

func (r *paymentRepository) ListByGym(ctx context.Context, gymID string, p entity.PaginationParams) ([]*entity.Payment, error) {
	var payments []model.Payment
	err := r.db.WithContext(ctx).
		Where("gym_id = ?", gymID).
		Order("created_at DESC").
		Limit(p.Limit).
		Offset(p.Offset).
		Find(&payments).Error
	if err != nil {
		return nil, dErrors.NewStoreUnavailableError("list payments", err)
	}

	entities := make([]*entity.Payment, len(payments))
	for i := range payments {
		entities[i] = paymentModelToEntity(&payments[i])
	}

	return entities, nil
}

func (r *paymentRepository) ListByMember(ctx context.Context, memberID string) ([]*entity.Payment, error) {
	var payments []model.Payment
	err := r.db.WithContext(ctx).
		Where("member_id = ?", memberID).
		Order("created_at DESC").
		Find(&payments).Error
	if err != nil {
		return nil, dErrors.NewStoreUnavailableError("list member payments", err)
	}

	entities := make([]*entity.Payment, len(payments))
	for i := range payments {
		entities[i] = paymentModelToEntity(&payments[i])
	}

	return entities, nil
}
