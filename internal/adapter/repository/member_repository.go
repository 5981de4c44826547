package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/IT22898920/GYM-App-sub004/internal/domain/entity"
	dErrors "github.com/IT22898920/GYM-App-sub004/internal/domain/errors"
	"github.com/IT22898920/GYM-App-sub004/internal/domain/model"
	"github.com/IT22898920/GYM-App-sub004/internal/domain/repository"
)

type memberRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewMemberRepository creates a GORM-backed membership record store.
func NewMemberRepository(db *gorm.DB, logger *zap.Logger) repository.MemberRepository {
	return &memberRepository{
		db:     db,
		logger: logger,
	}
}

// Create persists the member and its ledger payment in one transaction.
func (r *memberRepository) Create(ctx context.Context, member *entity.Member, payment *entity.Payment) error {
	m, err := memberEntityToModel(member)
	if err != nil {
		return err
	}

	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(m).Error; err != nil {
			return err
		}

		if payment != nil {
			p, err := paymentEntityToModel(payment)
			if err != nil {
				return err
			}
			if err := tx.Create(p).Error; err != nil {
				return err
			}
		}

		return nil
	})

	if err != nil {
		r.logger.Error("Failed to create member",
			zap.String("gym_id", member.GymID),
			zap.String("email", member.Email),
			zap.Error(err))
		return dErrors.NewStoreUnavailableError("create member", err)
	}

	return nil
}

func (r *memberRepository) GetByID(ctx context.Context, id string) (*entity.Member, error) {
	memberID, err := uuid.Parse(id)
	if err != nil {
		return nil, dErrors.ErrMemberNotFound
	}

	var m model.Member
	err = r.db.WithContext(ctx).First(&m, "id = ?", memberID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, dErrors.ErrMemberNotFound
		}
		r.logger.Error("Failed to get member",
			zap.String("member_id", id),
			zap.Error(err))
		return nil, dErrors.NewStoreUnavailableError("get member", err)
	}

	return memberModelToEntity(&m), nil
}

func (r *memberRepository) List(ctx context.Context, gymID string, status entity.MemberStatus, p entity.PaginationParams) ([]*entity.Member, error) {
	query := r.db.WithContext(ctx).Where("gym_id = ?", gymID)
	if status != "" {
		query = query.Where("status = ?", string(status))
	}

	var members []model.Member
	err := query.
		Order("created_at ASC").
		Limit(p.Limit).
		Offset(p.Offset).
		Find(&members).Error
	if err != nil {
		r.logger.Error("Failed to list members",
			zap.String("gym_id", gymID),
			zap.Error(err))
		return nil, dErrors.NewStoreUnavailableError("list members", err)
	}

	return memberModelsToEntities(members), nil
}

// ListPending selects inactive members whose payment is still pending
// or was made by the manual method. Manual-method inactive members
// always qualify even after a reject, so owners can re-review them.
func (r *memberRepository) ListPending(ctx context.Context, gymID string, p entity.PaginationParams) ([]*entity.Member, error) {
	var members []model.Member
	err := r.db.WithContext(ctx).
		Where("gym_id = ? AND status = ?", gymID, model.MemberStatusInactive).
		Where("payment_status = ? OR payment_method = ?", model.PaymentStatusPending, string(entity.PaymentMethodManual)).
		Order("created_at ASC").
		Limit(p.Limit).
		Offset(p.Offset).
		Find(&members).Error
	if err != nil {
		r.logger.Error("Failed to list pending members",
			zap.String("gym_id", gymID),
			zap.Error(err))
		return nil, dErrors.NewStoreUnavailableError("list pending members", err)
	}

	return memberModelsToEntities(members), nil
}

// TransitionPaymentState is the update-if-current-state-matches contract
// that serializes racing confirm/reject calls: the conditional UPDATE
// applies only when payment_status still equals from, so the first
// transition wins and the second sees zero rows affected.
func (r *memberRepository) TransitionPaymentState(ctx context.Context, id string, from, to entity.PaymentStatus, status entity.MemberStatus) (bool, error) {
	memberID, err := uuid.Parse(id)
	if err != nil {
		return false, dErrors.ErrMemberNotFound
	}

	result := r.db.WithContext(ctx).
		Model(&model.Member{}).
		Where("id = ? AND payment_status = ?", memberID, string(from)).
		Updates(map[string]interface{}{
			"payment_status": string(to),
			"status":         string(status),
		})

	if result.Error != nil {
		r.logger.Error("Failed to transition payment state",
			zap.String("member_id", id),
			zap.String("to", string(to)),
			zap.Error(result.Error))
		return false, dErrors.NewStoreUnavailableError("transition payment state", result.Error)
	}

	return result.RowsAffected > 0, nil
}
