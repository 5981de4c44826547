package repository

import (
	"context"

	"github.com/IT22898920/GYM-App-sub004/internal/domain/entity"
)

// GymRepository stores gym profiles.
type GymRepository interface {
	Create(ctx context.Context, gym *entity.Gym) error
	GetByID(ctx context.Context, id string) (*entity.Gym, error)
	GetByOwnerID(ctx context.Context, ownerID string) (*entity.Gym, error)
	Update(ctx context.Context, gym *entity.Gym) error
	List(ctx context.Context, p entity.PaginationParams) ([]*entity.Gym, error)
}
