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

type workoutPlanRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewWorkoutPlanRepository creates a GORM-backed workout plan store.
func NewWorkoutPlanRepository(db *gorm.DB, logger *zap.Logger) repository.WorkoutPlanRepository {
	return &workoutPlanRepository{
		db:     db,
		logger: logger,
	}
}

func (r *workoutPlanRepository) Create(ctx context.Context, plan *entity.WorkoutPlan) error {
	m, err := planEntityToModel(plan)
	if err != nil {
		return err
	}

	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		r.logger.Error("Failed to create workout plan",
			zap.String("gym_id", plan.GymID),
			zap.Error(err))
		return dErrors.NewStoreUnavailableError("create workout plan", err)
	}

	return nil
}

func (r *workoutPlanRepository) GetByID(ctx context.Context, id string) (*entity.WorkoutPlan, error) {
	planID, err := uuid.Parse(id)
	if err != nil {
		return nil, dErrors.ErrPlanNotFound
	}

	var m model.WorkoutPlan
	err = r.db.WithContext(ctx).First(&m, "id = ?", planID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, dErrors.ErrPlanNotFound
		}
		return nil, dErrors.NewStoreUnavailableError("get workout plan", err)
	}

	return planModelToEntity(&m), nil
}

func (r *workoutPlanRepository) ListByGym(ctx context.Context, gymID string, p entity.PaginationParams) ([]*entity.WorkoutPlan, error) {
	var plans []model.WorkoutPlan
	err := r.db.WithContext(ctx).
		Where("gym_id = ?", gymID).
		Order("created_at ASC").
		Limit(p.Limit).
		Offset(p.Offset).
		Find(&plans).Error
	if err != nil {
		return nil, dErrors.NewStoreUnavailableError("list workout plans", err)
	}

	entities := make([]*entity.WorkoutPlan, len(plans))
	for i := range plans {
		entities[i] = planModelToEntity(&plans[i])
	}

	return entities, nil
}

func (r *workoutPlanRepository) Update(ctx context.Context, plan *entity.WorkoutPlan) error {
	m, err := planEntityToModel(plan)
	if err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&model.WorkoutPlan{}).
		Where("id = ?", m.ID).
		Updates(map[string]interface{}{
			"name":        m.Name,
			"description": m.Description,
			"difficulty":  m.Difficulty,
			"schedule":    m.Schedule,
			"price":       m.Price,
			"updated_at":  m.UpdatedAt,
		})

	if result.Error != nil {
		return dErrors.NewStoreUnavailableError("update workout plan", result.Error)
	}
	if result.RowsAffected == 0 {
		return dErrors.ErrPlanNotFound
	}

	return nil
}

func (r *workoutPlanRepository) Delete(ctx context.Context, id string) error {
	planID, err := uuid.Parse(id)
	if err != nil {
		return dErrors.ErrPlanNotFound
	}

	result := r.db.WithContext(ctx).Delete(&model.WorkoutPlan{}, "id = ?", planID)
	if result.Error != nil {
		return dErrors.NewStoreUnavailableError("delete workout plan", result.Error)
	}
	if result.RowsAffected == 0 {
		return dErrors.ErrPlanNotFound
	}

	return nil
}
