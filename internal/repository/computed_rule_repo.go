package repository

import (
	"context"
	"time"

	"payrates/internal/model"

	"gorm.io/gorm"
)

const ruleInsertBatchSize = 500

// RuleFilter narrows computed rule listings. Zero values mean "any".
type RuleFilter struct {
	AwardID          int
	EmploymentTypeID int
	ClassificationID int
	AsOf             *time.Time
}

type ComputedRuleRepository interface {
	DeleteByAwardAndEffectiveFrom(ctx context.Context, awardID int, effectiveFrom time.Time) (int64, error)
	// CloseOpenBefore ends the window of older open generations of the award at effectiveFrom.
	CloseOpenBefore(ctx context.Context, awardID int, effectiveFrom time.Time) (int64, error)
	// NextEffectiveFrom returns the earliest generation date of the award after effectiveFrom, if any.
	NextEffectiveFrom(ctx context.Context, awardID int, effectiveFrom time.Time) (*time.Time, error)
	CreateBatch(ctx context.Context, rules []model.ComputedPayRule) error
	List(ctx context.Context, filter RuleFilter, page, limit int) ([]model.ComputedPayRule, int64, error)
	ListAll(ctx context.Context, filter RuleFilter) ([]model.ComputedPayRule, error)
}

type computedRuleRepository struct {
	db *gorm.DB
}

func NewComputedRuleRepository(db *gorm.DB) ComputedRuleRepository {
	return &computedRuleRepository{db: db}
}

func (r *computedRuleRepository) DeleteByAwardAndEffectiveFrom(ctx context.Context, awardID int, effectiveFrom time.Time) (int64, error) {
	res := GetDB(ctx, r.db).
		Where("award_id = ? AND effective_from = ?", awardID, effectiveFrom).
		Delete(&model.ComputedPayRule{})
	return res.RowsAffected, res.Error
}

func (r *computedRuleRepository) CloseOpenBefore(ctx context.Context, awardID int, effectiveFrom time.Time) (int64, error) {
	res := GetDB(ctx, r.db).
		Model(&model.ComputedPayRule{}).
		Where("award_id = ? AND effective_from < ? AND (effective_to IS NULL OR effective_to > ?)", awardID, effectiveFrom, effectiveFrom).
		Update("effective_to", effectiveFrom)
	return res.RowsAffected, res.Error
}

func (r *computedRuleRepository) NextEffectiveFrom(ctx context.Context, awardID int, effectiveFrom time.Time) (*time.Time, error) {
	var next []time.Time
	if err := GetDB(ctx, r.db).
		Model(&model.ComputedPayRule{}).
		Where("award_id = ? AND effective_from > ?", awardID, effectiveFrom).
		Order("effective_from").
		Limit(1).
		Pluck("effective_from", &next).Error; err != nil {
		return nil, err
	}
	if len(next) == 0 {
		return nil, nil
	}
	return &next[0], nil
}

func (r *computedRuleRepository) CreateBatch(ctx context.Context, rules []model.ComputedPayRule) error {
	if len(rules) == 0 {
		return nil
	}
	return GetDB(ctx, r.db).CreateInBatches(&rules, ruleInsertBatchSize).Error
}

func (r *computedRuleRepository) List(ctx context.Context, filter RuleFilter, page, limit int) ([]model.ComputedPayRule, int64, error) {
	var rules []model.ComputedPayRule
	var total int64

	query := r.filtered(ctx, filter)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	if err := query.
		Preload("Classification").Preload("EmploymentType").Preload("PenaltyRate").
		Order("award_id, classification_id, penalty_rate_id NULLS FIRST").
		Offset(offset).Limit(limit).
		Find(&rules).Error; err != nil {
		return nil, 0, err
	}

	return rules, total, nil
}

func (r *computedRuleRepository) ListAll(ctx context.Context, filter RuleFilter) ([]model.ComputedPayRule, error) {
	var rules []model.ComputedPayRule
	if err := r.filtered(ctx, filter).
		Preload("Award").Preload("Classification").Preload("EmploymentType").Preload("PenaltyRate").
		Order("award_id, classification_id, penalty_rate_id NULLS FIRST").
		Find(&rules).Error; err != nil {
		return nil, err
	}
	return rules, nil
}

func (r *computedRuleRepository) filtered(ctx context.Context, filter RuleFilter) *gorm.DB {
	query := GetDB(ctx, r.db).Model(&model.ComputedPayRule{}).Scopes(Active)
	if filter.AwardID > 0 {
		query = query.Where("award_id = ?", filter.AwardID)
	}
	if filter.EmploymentTypeID > 0 {
		query = query.Where("employment_type_id = ?", filter.EmploymentTypeID)
	}
	if filter.ClassificationID > 0 {
		query = query.Where("classification_id = ?", filter.ClassificationID)
	}
	if filter.AsOf != nil {
		query = query.Scopes(RuleEffectiveAt(*filter.AsOf))
	}
	return query.Session(&gorm.Session{})
}
