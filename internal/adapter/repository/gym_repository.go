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

type gymRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewGymRepository creates a GORM-backed gym profile store.
func NewGymRepository(db *gorm.DB, logger *zap.Logger) repository.GymRepository {
	return &gymRepository{
		db:     db,
		logger: logger,
	}
}

func (r *gymRepository) Create(ctx context.Context, gym *entity.Gym) error {
	m, err := gymEntityToModel(gym)
	if err != nil {
		return err
	}

	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		r.logger.Error("Failed to create gym",
			zap.String("owner_id", gym.OwnerID),
			zap.Error(err))
		return dErrors.NewStoreUnavailableError("create gym", err)
	}

	return nil
}

func (r *gymRepository) GetByID(ctx context.Context, id string) (*entity.Gym, error) {
	gymID, err := uuid.Parse(id)
	if err != nil {
		return nil, dErrors.ErrGymNotFound
	}

	var m model.Gym
	err = r.db.WithContext(ctx).First(&m, "id = ?", gymID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, dErrors.ErrGymNotFound
		}
		return nil, dErrors.NewStoreUnavailableError("get gym", err)
	}

	return gymModelToEntity(&m), nil
}

func (r *gymRepository) GetByOwnerID(ctx context.Context, ownerID string) (*entity.Gym, error) {
	owner, err := uuid.Parse(ownerID)
	if err != nil {
		return nil, dErrors.ErrGymNotFound
	}

	var m model.Gym
	err = r.db.WithContext(ctx).First(&m, "owner_id = ?", owner).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, dErrors.ErrGymNotFound
		}
		return nil, dErrors.NewStoreUnavailableError("get gym by owner", err)
	}

	return gymModelToEntity(&m), nil
}

func (r *gymRepository) Update(ctx context.Context, gym *entity.Gym) error {
	m, err := gymEntityToModel(gym)
	if err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&model.Gym{}).
		Where("id = ?", m.ID).
		Updates(map[string]interface{}{
			"name":        m.Name,
			"address":     m.Address,
			"phone":       m.Phone,
			"email":       m.Email,
			"description": m.Description,
			"updated_at":  m.UpdatedAt,
		})

	if result.Error != nil {
		return dErrors.NewStoreUnavailableError("update gym", result.Error)
	}
	if result.RowsAffected == 0 {
		return dErrors.ErrGymNotFound
	}

	return nil
}

func (r *gymRepository) List(ctx context.Context, p entity.PaginationParams) ([]*entity.Gym, error) {
	var gyms []model.Gym
	err := r.db.WithContext(ctx).
		Order("created_at ASC").
		Limit(p.Limit).
		Offset(p.Offset).
		Find(&gyms).Error
	if err != nil {
		return nil, dErrors.NewStoreUnavailableError("list gyms", err)
	}

	entities := make([]*entity.Gym, len(gyms))
	for i := range gyms {
		entities[i] = gymModelToEntity(&gyms[i])
	}

	return entities, nil
}
