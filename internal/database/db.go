package database

import (
	"payrates/internal/model"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// NewConnection opens the postgres pool and migrates the pay rate schema
func NewConnection(dsn string, logger *zap.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := Migrate(db); err != nil {
		logger.Warn("failed to auto-migrate models", zap.Error(err))
	}

	return db, nil
}

// Migrate creates or updates every table, parents first
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.Industry{},
		&model.Award{},
		&model.EmploymentType{},
		&model.Classification{},
		&model.PenaltyRate{},
		&model.Allowance{},
		&model.Tag{},
		&model.TagPenaltyMapping{},
		&model.TagAllowanceMapping{},
		&model.Tenant{},
		&model.TenantAward{},
		&model.ComputedPayRule{},
		&model.ComputedRuleAllowance{},
		&model.ComputedRuleTag{},
		&model.AuditLog{},
	)
}
