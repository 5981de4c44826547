package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/IT22898920/GYM-App-sub004/internal/domain/entity"
	dErrors "github.com/IT22898920/GYM-App-sub004/internal/domain/errors"
	"github.com/IT22898920/GYM-App-sub004/internal/domain/model"
	"github.com/IT22898920/GYM-App-sub004/internal/domain/repository"
)

type userRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewUserRepository creates a GORM-backed account store.
func NewUserRepository(db *gorm.DB, logger *zap.Logger) repository.UserRepository {
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

func (r *userRepository) Create(ctx context.Context, user *entity.User, passwordHash string) error {
	m, err := userEntityToModel(user, passwordHash)
	if err != nil {
		return err
	}

	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) || strings.Contains(err.Error(), "UNIQUE") || strings.Contains(err.Error(), "duplicate") {
			return dErrors.ErrEmailTaken
		}
		r.logger.Error("Failed to create user",
			zap.String("email", user.Email),
			zap.Error(err))
		return dErrors.NewStoreUnavailableError("create user", err)
	}

	return nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*entity.User, string, error) {
	var m model.User
	err := r.db.WithContext(ctx).First(&m, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", dErrors.ErrUserNotFound
		}
		return nil, "", dErrors.NewStoreUnavailableError("get user by email", err)
	}

	return userModelToEntity(&m), m.PasswordHash, nil
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	userID, err := uuid.Parse(id)
	if err != nil {
		return nil, dErrors.ErrUserNotFound
	}

	var m model.User
	err = r.db.WithContext(ctx).First(&m, "id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, dErrors.ErrUserNotFound
		}
		return nil, dErrors.NewStoreUnavailableError("get user", err)
	}

	return userModelToEntity(&m), nil
}
