package repository

import (
	"context"
	"time"

	"payrates/internal/model"

	"gorm.io/gorm"
)

type AllowanceRepository interface {
	ListActiveEffectiveByIDs(ctx context.Context, awardID int, ids []int, asOf time.Time) ([]model.Allowance, error)
}

type allowanceRepository struct {
	db *gorm.DB
}

func NewAllowanceRepository(db *gorm.DB) AllowanceRepository {
	return &allowanceRepository{db: db}
}

func (r *allowanceRepository) ListActiveEffectiveByIDs(ctx context.Context, awardID int, ids []int, asOf time.Time) ([]model.Allowance, error) {
	if len(ids) == 0 {
		return []model.Allowance{}, nil
	}
	var list []model.Allowance
	if err := GetDB(ctx, r.db).
		Scopes(Active, EffectiveAt(asOf)).
		Where("award_id = ? AND id IN ?", awardID, ids).
		Order("id").
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}
