package repository

import (
	"context"

	"payrates/internal/model"

	"gorm.io/gorm"
)

type AwardRepository interface {
	FindByID(ctx context.Context, id int) (*model.Award, error)
	FindActiveByID(ctx context.Context, id int) (*model.Award, error)
	ExistsActive(ctx context.Context, id int) (bool, error)
	ListActiveIDs(ctx context.Context) ([]int, error)
	List(ctx context.Context, page, limit int, activeOnly bool) ([]model.Award, int64, error)
}

type awardRepository struct {
	db *gorm.DB
}

func NewAwardRepository(db *gorm.DB) AwardRepository {
	return &awardRepository{db: db}
}

func (r *awardRepository) FindByID(ctx context.Context, id int) (*model.Award, error) {
	var award model.Award
	if err := GetDB(ctx, r.db).First(&award, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &award, nil
}

func (r *awardRepository) FindActiveByID(ctx context.Context, id int) (*model.Award, error) {
	var award model.Award
	if err := GetDB(ctx, r.db).Scopes(Active).First(&award, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &award, nil
}

func (r *awardRepository) ExistsActive(ctx context.Context, id int) (bool, error) {
	var count int64
	if err := GetDB(ctx, r.db).Model(&model.Award{}).Scopes(Active).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *awardRepository) ListActiveIDs(ctx context.Context) ([]int, error) {
	var ids []int
	if err := GetDB(ctx, r.db).Model(&model.Award{}).Scopes(Active).Order("id").Pluck("id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *awardRepository) List(ctx context.Context, page, limit int, activeOnly bool) ([]model.Award, int64, error) {
	var awards []model.Award
	var total int64

	query := GetDB(ctx, r.db).Model(&model.Award{})
	if activeOnly {
		query = query.Scopes(Active)
	}
	query = query.Session(&gorm.Session{})
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	if err := query.Preload("Industry").Order("code").Offset(offset).Limit(limit).Find(&awards).Error; err != nil {
		return nil, 0, err
	}

	return awards, total, nil
}
