package repository

import (
	"context"

	"github.com/IT22898920/GYM-App-sub004/internal/domain/entity"
)

// WorkoutPlanRepository stores training programs per gym.
type WorkoutPlanRepository interface {
	Create(ctx context.Context, plan *entity.WorkoutPlan) error
	GetByID(ctx context.Context, id string) (*entity.WorkoutPlan, error)
	ListByGym(ctx context.Context, gymID string, p entity.PaginationParams) ([]*entity.WorkoutPlan, error)
	Update(ctx context.Context, plan *entity.WorkoutPlan) error
	Delete(ctx context.Context, id string) error
}
