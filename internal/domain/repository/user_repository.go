package repository

import (
	"context"

	"github.com/IT22898920/GYM-App-sub004/internal/domain/entity"
)

// UserRepository stores accounts. PasswordHash travels alongside the
// entity only through this interface.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User, passwordHash string) error
	GetByEmail(ctx context.Context, email string) (*entity.User, string, error)
	GetByID(ctx context.Context, id string) (*entity.User, error)
}
