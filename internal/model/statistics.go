package model

import "github.com/shopspring/decimal"

// RuleStatisticsResponse aggregates the computed rule table as of one date
type RuleStatisticsResponse struct {
	AsOf          string                `json:"as_of"`
	TotalRules    int64                 `json:"total_rules"`
	AwardsCovered int                   `json:"awards_covered"`
	Awards        []AwardRuleStatistics `json:"awards"`
}

// AwardRuleStatistics summarizes the computed rules of one award
type AwardRuleStatistics struct {
	AwardID       int             `json:"award_id"`
	AwardCode     string          `json:"award_code"`
	AwardName     string          `json:"award_name"`
	RuleCount     int64           `json:"rule_count"`
	MinHourlyRate decimal.Decimal `json:"min_hourly_rate"`
	MaxHourlyRate decimal.Decimal `json:"max_hourly_rate"`
}
