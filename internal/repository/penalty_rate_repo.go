package repository

import (
	"context"
	"time"

	"payrates/internal/model"

	"gorm.io/gorm"
)

type PenaltyRateRepository interface {
	ListActiveEffective(ctx context.Context, awardID int, asOf time.Time) ([]model.PenaltyRate, error)
	// IDsForTags returns the distinct penalty rate ids mapped to any of the tags.
	IDsForTags(ctx context.Context, tagIDs []int) ([]int, error)
}

type penaltyRateRepository struct {
	db *gorm.DB
}

func NewPenaltyRateRepository(db *gorm.DB) PenaltyRateRepository {
	return &penaltyRateRepository{db: db}
}

func (r *penaltyRateRepository) ListActiveEffective(ctx context.Context, awardID int, asOf time.Time) ([]model.PenaltyRate, error) {
	var list []model.PenaltyRate
	if err := GetDB(ctx, r.db).
		Scopes(Active, EffectiveAt(asOf)).
		Where("award_id = ?", awardID).
		Order("id").
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *penaltyRateRepository) IDsForTags(ctx context.Context, tagIDs []int) ([]int, error) {
	if len(tagIDs) == 0 {
		return []int{}, nil
	}
	var ids []int
	if err := GetDB(ctx, r.db).
		Model(&model.TagPenaltyMapping{}).
		Distinct("penalty_rate_id").
		Where("tag_id IN ?", tagIDs).
		Pluck("penalty_rate_id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}
