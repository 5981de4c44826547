package database

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/IT22898920/GYM-App-sub004/internal/domain/model"
)

// Migrate runs schema auto-migration for all models and creates the
// partial index backing the pending-members view.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&model.User{},
		&model.Gym{},
		&model.Member{},
		&model.WorkoutPlan{},
		&model.Payment{},
	); err != nil {
		return fmt.Errorf("auto migration failed: %w", err)
	}

	// Partial index for the pending-payment listing. Postgres only;
	// sqlite test databases skip it.
	if db.Dialector.Name() == "postgres" {
		stmt := `CREATE INDEX IF NOT EXISTS idx_members_pending
			ON members (gym_id, created_at)
			WHERE status = 'inactive'
			AND (payment_status = 'pending' OR payment_method = 'manual')`
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("failed to create pending members index: %w", err)
		}
	}

	return nil
}
