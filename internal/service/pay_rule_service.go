package service

import (
	"context"
	"fmt"
	"io"
	"time"

	"payrates/internal/model"
	"payrates/internal/report"
	"payrates/internal/repository"

	"github.com/shopspring/decimal"
)

// --- DTOs ---

// RuleQuery selects computed rules. A nil AsOf means today.
type RuleQuery struct {
	AwardID          int
	EmploymentTypeID int
	ClassificationID int
	AsOf             *time.Time
}

type ComputedRuleResponse struct {
	ID                  int64           `json:"id"`
	AwardID             int             `json:"award_id"`
	EmploymentTypeCode  string          `json:"employment_type_code"`
	ClassificationLevel int             `json:"classification_level"`
	ClassificationName  string          `json:"classification_name"`
	PenaltyRateID       *int            `json:"penalty_rate_id"`
	PenaltyName         string          `json:"penalty_name,omitempty"`
	BaseHourlyRate      decimal.Decimal `json:"base_hourly_rate"`
	PenaltyMultiplier   decimal.Decimal `json:"penalty_multiplier"`
	HourlyRate          decimal.Decimal `json:"hourly_rate"`
	WeeklyRate          decimal.Decimal `json:"weekly_rate"`
	AnnualRate          decimal.Decimal `json:"annual_rate"`
	EffectiveFrom       string          `json:"effective_from"`
	EffectiveTo         *string         `json:"effective_to"`
	GeneratedAt         time.Time       `json:"generated_at"`
	GeneratedBy         string          `json:"generated_by"`
	GenerationID        string          `json:"generation_id"`
}

// --- Interface ---

type PayRuleService interface {
	ListRules(ctx context.Context, query RuleQuery, page, limit int) ([]ComputedRuleResponse, int64, error)
	// ExportRules writes every matching rule to w as an XLSX workbook and returns the row count.
	ExportRules(ctx context.Context, query RuleQuery, w io.Writer) (int, error)
}

type payRuleService struct {
	ruleRepo repository.ComputedRuleRepository
	clock    Clock
}

func NewPayRuleService(ruleRepo repository.ComputedRuleRepository, clock Clock) PayRuleService {
	return &payRuleService{ruleRepo: ruleRepo, clock: clock}
}

// --- Implementation ---

func (s *payRuleService) ListRules(ctx context.Context, query RuleQuery, page, limit int) ([]ComputedRuleResponse, int64, error) {
	rules, total, err := s.ruleRepo.List(ctx, s.filter(query), page, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list computed rules: %w", err)
	}

	res := make([]ComputedRuleResponse, 0, len(rules))
	for _, r := range rules {
		res = append(res, toRuleResponse(r))
	}
	return res, total, nil
}

func (s *payRuleService) ExportRules(ctx context.Context, query RuleQuery, w io.Writer) (int, error) {
	rules, err := s.ruleRepo.ListAll(ctx, s.filter(query))
	if err != nil {
		return 0, fmt.Errorf("failed to load computed rules: %w", err)
	}

	rows := make([]report.RuleRow, 0, len(rules))
	for _, r := range rules {
		row := report.RuleRow{
			BaseHourlyRate: r.BaseHourlyRate,
			Multiplier:     r.PenaltyMultiplier,
			HourlyRate:     r.CalculatedHourlyRate(),
			WeeklyRate:     r.CalculatedWeeklyRate(),
			AnnualRate:     r.CalculatedAnnualRate(),
			EffectiveFrom:  formatDate(r.EffectiveFrom),
			GenerationID:   r.GenerationID.String(),
		}
		if r.Award != nil {
			row.AwardCode = r.Award.Code
			row.AwardName = r.Award.Name
		}
		if r.EmploymentType != nil {
			row.EmploymentType = r.EmploymentType.Code
		}
		if r.Classification != nil {
			row.ClassificationLevel = r.Classification.Level
			row.ClassificationName = r.Classification.Name
		}
		if r.PenaltyRate != nil {
			row.PenaltyName = r.PenaltyRate.Name
		}
		if r.EffectiveTo != nil {
			row.EffectiveTo = formatDate(*r.EffectiveTo)
		}
		rows = append(rows, row)
	}

	if err := report.WriteRulesWorkbook(w, rows); err != nil {
		return 0, err
	}
	return len(rows), nil
}

func (s *payRuleService) filter(query RuleQuery) repository.RuleFilter {
	asOf := resolveDate(s.clock, query.AsOf)
	return repository.RuleFilter{
		AwardID:          query.AwardID,
		EmploymentTypeID: query.EmploymentTypeID,
		ClassificationID: query.ClassificationID,
		AsOf:             &asOf,
	}
}

func toRuleResponse(r model.ComputedPayRule) ComputedRuleResponse {
	res := ComputedRuleResponse{
		ID:                r.ID,
		AwardID:           r.AwardID,
		PenaltyRateID:     r.PenaltyRateID,
		BaseHourlyRate:    r.BaseHourlyRate,
		PenaltyMultiplier: r.PenaltyMultiplier,
		HourlyRate:        r.CalculatedHourlyRate(),
		WeeklyRate:        r.CalculatedWeeklyRate(),
		AnnualRate:        r.CalculatedAnnualRate(),
		EffectiveFrom:     formatDate(r.EffectiveFrom),
		GeneratedAt:       r.GeneratedAt,
		GeneratedBy:       r.GeneratedBy,
		GenerationID:      r.GenerationID.String(),
	}
	if r.EmploymentType != nil {
		res.EmploymentTypeCode = r.EmploymentType.Code
	}
	if r.Classification != nil {
		res.ClassificationLevel = r.Classification.Level
		res.ClassificationName = r.Classification.Name
	}
	if r.PenaltyRate != nil {
		res.PenaltyName = r.PenaltyRate.Name
	}
	if r.EffectiveTo != nil {
		to := formatDate(*r.EffectiveTo)
		res.EffectiveTo = &to
	}
	return res
}
