package repository

import (
	"context"

	"payrates/internal/model"

	"gorm.io/gorm"
)

type TagRepository interface {
	NamesByIDs(ctx context.Context, ids []int) ([]string, error)
}

type tagRepository struct {
	db *gorm.DB
}

func NewTagRepository(db *gorm.DB) TagRepository {
	return &tagRepository{db: db}
}

func (r *tagRepository) NamesByIDs(ctx context.Context, ids []int) ([]string, error) {
	if len(ids) == 0 {
		return []string{}, nil
	}
	var names []string
	if err := GetDB(ctx, r.db).Model(&model.Tag{}).Where("id IN ?", ids).Order("id").Pluck("name", &names).Error; err != nil {
		return nil, err
	}
	return names, nil
}
