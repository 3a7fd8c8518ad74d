package repository

import (
	"context"

	"payrates/internal/model"

	"gorm.io/gorm"
)

type EmploymentTypeRepository interface {
	FindActiveByCode(ctx context.Context, code string) (*model.EmploymentType, error)
	ExistsActiveByCode(ctx context.Context, code string) (bool, error)
}

type employmentTypeRepository struct {
	db *gorm.DB
}

func NewEmploymentTypeRepository(db *gorm.DB) EmploymentTypeRepository {
	return &employmentTypeRepository{db: db}
}

func (r *employmentTypeRepository) FindActiveByCode(ctx context.Context, code string) (*model.EmploymentType, error) {
	var et model.EmploymentType
	if err := GetDB(ctx, r.db).Scopes(Active).First(&et, "code = ?", code).Error; err != nil {
		return nil, err
	}
	return &et, nil
}

func (r *employmentTypeRepository) ExistsActiveByCode(ctx context.Context, code string) (bool, error) {
	var count int64
	if err := GetDB(ctx, r.db).Model(&model.EmploymentType{}).Scopes(Active).Where("code = ?", code).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
