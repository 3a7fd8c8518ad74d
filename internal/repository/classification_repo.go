package repository

import (
	"context"
	"time"

	"payrates/internal/model"

	"gorm.io/gorm"
)

type ClassificationRepository interface {
	FindEffective(ctx context.Context, awardID, level, employmentTypeID int, asOf time.Time) (*model.Classification, error)
	ListActiveEffective(ctx context.Context, awardID int, asOf time.Time) ([]model.Classification, error)
}

type classificationRepository struct {
	db *gorm.DB
}

func NewClassificationRepository(db *gorm.DB) ClassificationRepository {
	return &classificationRepository{db: db}
}

func (r *classificationRepository) FindEffective(ctx context.Context, awardID, level, employmentTypeID int, asOf time.Time) (*model.Classification, error) {
	var c model.Classification
	if err := GetDB(ctx, r.db).
		Scopes(Active, EffectiveAt(asOf)).
		Where("award_id = ? AND level = ? AND employment_type_id = ?", awardID, level, employmentTypeID).
		Order("operative_from DESC").
		First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *classificationRepository) ListActiveEffective(ctx context.Context, awardID int, asOf time.Time) ([]model.Classification, error) {
	var list []model.Classification
	if err := GetDB(ctx, r.db).
		Scopes(Active, EffectiveAt(asOf)).
		Where("award_id = ?", awardID).
		Order("employment_type_id, level").
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}
