package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/IT22898920/GYM-App-sub004/internal/domain/entity"
	dErrors "github.com/IT22898920/GYM-App-sub004/internal/domain/errors"
	"github.com/IT22898920/GYM-App-sub004/internal/domain/repository"
)

// WorkoutPlanService manages a gym's training programs.
type WorkoutPlanService struct {
	plans  repository.WorkoutPlanRepository
	logger *zap.Logger
}

// NewWorkoutPlanService creates a new workout plan service.
func NewWorkoutPlanService(plans repository.WorkoutPlanRepository, logger *zap.Logger) *WorkoutPlanService {
	return &WorkoutPlanService{
		plans:  plans,
		logger: logger,
	}
}

// WorkoutPlanInput carries the mutable workout plan fields.
type WorkoutPlanInput struct {
	Name        string   `json:"name" validate:"required,max=100"`
	Description string   `json:"description"`
	Difficulty  string   `json:"difficulty" validate:"required"`
	Schedule    []string `json:"schedule"`
	Price       string   `json:"price" validate:"required"`
}

func (s *WorkoutPlanService) parseInput(input WorkoutPlanInput) (string, string, decimal.Decimal, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return "", "", decimal.Zero, dErrors.NewValidationError("name", dErrors.ReasonRequired)
	}

	if !entity.ValidDifficulty(input.Difficulty) {
		return "", "", decimal.Zero, dErrors.NewValidationError("difficulty", dErrors.ReasonUnknownValue)
	}

	price, err := decimal.NewFromString(input.Price)
	if err != nil || price.IsNegative() {
		return "", "", decimal.Zero, dErrors.NewValidationError("price", dErrors.ReasonUnknownValue)
	}

	return name, input.Difficulty, price, nil
}

// Create adds a training program to a gym.
func (s *WorkoutPlanService) Create(ctx context.Context, gymID, instructorID string, input WorkoutPlanInput) (*entity.WorkoutPlan, error) {
	name, difficulty, price, err := s.parseInput(input)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	plan := &entity.WorkoutPlan{
		ID:           uuid.NewString(),
		GymID:        gymID,
		InstructorID: instructorID,
		Name:         name,
		Description:  input.Description,
		Difficulty:   difficulty,
		Schedule:     input.Schedule,
		Price:        price,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.plans.Create(ctx, plan); err != nil {
		return nil, err
	}

	s.logger.Info("Workout plan created",
		zap.String("plan_id", plan.ID),
		zap.String("gym_id", gymID),
		zap.String("instructor_id", instructorID))

	return plan, nil
}

// Get returns a single workout plan.
func (s *WorkoutPlanService) Get(ctx context.Context, id string) (*entity.WorkoutPlan, error) {
	return s.plans.GetByID(ctx, id)
}

// ListByGym returns a gym's workout plans.
func (s *WorkoutPlanService) ListByGym(ctx context.Context, gymID string, p entity.PaginationParams) ([]*entity.WorkoutPlan, error) {
	p.Normalize()
	return s.plans.ListByGym(ctx, gymID, p)
}

// Update replaces a plan's mutable fields. Only staff of the owning gym
// may update it, which the caller enforces through the route guard plus
// the gym scope check here.
func (s *WorkoutPlanService) Update(ctx context.Context, id, gymID string, input WorkoutPlanInput) (*entity.WorkoutPlan, error) {
	plan, err := s.plans.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if plan.GymID != gymID {
		return nil, dErrors.ErrPlanNotFound
	}

	name, difficulty, price, err := s.parseInput(input)
	if err != nil {
		return nil, err
	}

	plan.Name = name
	plan.Description = input.Description
	plan.Difficulty = difficulty
	plan.Schedule = input.Schedule
	plan.Price = price
	plan.UpdatedAt = time.Now().UTC()

	if err := s.plans.Update(ctx, plan); err != nil {
		return nil, err
	}

	return plan, nil
}

// Delete removes a plan within the caller's gym scope.
func (s *WorkoutPlanService) Delete(ctx context.Context, id, gymID string) error {
	plan, err := s.plans.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if plan.GymID != gymID {
		return dErrors.ErrPlanNotFound
	}

	return s.plans.Delete(ctx, id)
}
