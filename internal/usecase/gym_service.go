package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/IT22898920/GYM-App-sub004/internal/domain/entity"
	dErrors "github.com/IT22898920/GYM-App-sub004/internal/domain/errors"
	"github.com/IT22898920/GYM-App-sub004/internal/domain/repository"
)

// GymService manages gym profiles.
type GymService struct {
	gyms   repository.GymRepository
	logger *zap.Logger
}

// NewGymService creates a new gym service.
func NewGymService(gyms repository.GymRepository, logger *zap.Logger) *GymService {
	return &GymService{
		gyms:   gyms,
		logger: logger,
	}
}

// GymInput carries the mutable gym profile fields.
type GymInput struct {
	Name        string `json:"name" validate:"required,max=100"`
	Address     string `json:"address" validate:"max=255"`
	Phone       string `json:"phone" validate:"max=30"`
	Email       string `json:"email" validate:"omitempty,email"`
	Description string `json:"description"`
}

// Create registers a new gym profile for an owner.
func (s *GymService) Create(ctx context.Context, ownerID string, input GymInput) (*entity.Gym, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, dErrors.NewValidationError("name", dErrors.ReasonRequired)
	}

	now := time.Now().UTC()
	gym := &entity.Gym{
		ID:          uuid.NewString(),
		OwnerID:     ownerID,
		Name:        strings.TrimSpace(input.Name),
		Address:     input.Address,
		Phone:       input.Phone,
		Email:       input.Email,
		Description: input.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.gyms.Create(ctx, gym); err != nil {
		return nil, err
	}

	s.logger.Info("Gym created",
		zap.String("gym_id", gym.ID),
		zap.String("owner_id", ownerID))

	return gym, nil
}

// Get returns a gym profile.
func (s *GymService) Get(ctx context.Context, id string) (*entity.Gym, error) {
	return s.gyms.GetByID(ctx, id)
}

// GetByOwner returns the gym owned by the given account.
func (s *GymService) GetByOwner(ctx context.Context, ownerID string) (*entity.Gym, error) {
	return s.gyms.GetByOwnerID(ctx, ownerID)
}

// List returns gym profiles.
func (s *GymService) List(ctx context.Context, p entity.PaginationParams) ([]*entity.Gym, error) {
	p.Normalize()
	return s.gyms.List(ctx, p)
}

// Update replaces a gym's mutable profile fields. Only the owner of the
// gym may update it.
func (s *GymService) Update(ctx context.Context, id, ownerID string, input GymInput) (*entity.Gym, error) {
	gym, err := s.gyms.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if gym.OwnerID != ownerID {
		return nil, dErrors.ErrGymNotFound
	}

	if strings.TrimSpace(input.Name) == "" {
		return nil, dErrors.NewValidationError("name", dErrors.ReasonRequired)
	}

	gym.Name = strings.TrimSpace(input.Name)
	gym.Address = input.Address
	gym.Phone = input.Phone
	gym.Email = input.Email
	gym.Description = input.Description
	gym.UpdatedAt = time.Now().UTC()

	if err := s.gyms.Update(ctx, gym); err != nil {
		return nil, err
	}

	return gym, nil
}
