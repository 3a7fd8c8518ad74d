package repository

import (
	"context"
	"fmt"
	"time"

	"payrates/internal/model"

	"gorm.io/gorm"
)

type StatisticsRepository interface {
	// RuleStatistics groups the active computed rules effective at asOf by award.
	RuleStatistics(ctx context.Context, asOf time.Time) ([]model.AwardRuleStatistics, error)
}

type statisticsRepository struct {
	db *gorm.DB
}

func NewStatisticsRepository(db *gorm.DB) StatisticsRepository {
	return &statisticsRepository{db: db}
}

func (r *statisticsRepository) RuleStatistics(ctx context.Context, asOf time.Time) ([]model.AwardRuleStatistics, error) {
	var stats []model.AwardRuleStatistics
	if err := GetDB(ctx, r.db).Table("computed_pay_rules").
		Select("computed_pay_rules.award_id, awards.code as award_code, awards.name as award_name, COUNT(*) as rule_count, " +
			"MIN(computed_pay_rules.base_hourly_rate * computed_pay_rules.penalty_multiplier) as min_hourly_rate, " +
			"MAX(computed_pay_rules.base_hourly_rate * computed_pay_rules.penalty_multiplier) as max_hourly_rate").
		Joins("JOIN awards ON awards.id = computed_pay_rules.award_id").
		Where("computed_pay_rules.is_active = ?", true).
		Where("computed_pay_rules.effective_from <= ? AND (computed_pay_rules.effective_to IS NULL OR computed_pay_rules.effective_to > ?)", asOf, asOf).
		Group("computed_pay_rules.award_id, awards.code, awards.name").
		Order("awards.code").
		Scan(&stats).Error; err != nil {
		return nil, fmt.Errorf("failed to query rule statistics: %w", err)
	}
	return stats, nil
}
