package database

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	adapter "github.com/IT22898920/GYM-App-sub004/internal/adapter/repository"
	"github.com/IT22898920/GYM-App-sub004/internal/domain/repository"
)

// Repositories bundles every persistence adapter built on one *gorm.DB.
type Repositories struct {
	Members      repository.MemberRepository
	Gyms         repository.GymRepository
	WorkoutPlans repository.WorkoutPlanRepository
	Payments     repository.PaymentRepository
	Users        repository.UserRepository
}

// NewRepositories wires the GORM repository implementations.
func NewRepositories(db *gorm.DB, logger *zap.Logger) *Repositories {
	return &Repositories{
		Members:      adapter.NewMemberRepository(db, logger),
		Gyms:         adapter.NewGymRepository(db, logger),
		WorkoutPlans: adapter.NewWorkoutPlanRepository(db, logger),
		Payments:     adapter.NewPaymentRepository(db, logger),
		Users:        adapter.NewUserRepository(db, logger),
	}
}
