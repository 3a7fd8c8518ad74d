package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"payrates/internal/model"
	"payrates/internal/repository"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// --- DTOs ---

type PayRateCalculationRequest struct {
	AwardID             int    `json:"award_id"`
	EmploymentTypeCode  string `json:"employment_type_code"`
	ClassificationLevel int    `json:"classification_level"`
	AllowanceIDs        []int  `json:"allowance_ids"`
	TagIDs              []int  `json:"tag_ids"`
	TenantID            *int   `json:"tenant_id"`      // Accepted for callers; not used in the calculation
	EffectiveDate       string `json:"effective_date"` // YYYY-MM-DD, defaults to today
}

type EmploymentTypeSummary struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

type ClassificationSummary struct {
	Level int    `json:"level"`
	Name  string `json:"name"`
}

type BasePay struct {
	HourlyRate decimal.Decimal `json:"hourly_rate"`
	WeeklyRate decimal.Decimal `json:"weekly_rate"`
	AnnualRate decimal.Decimal `json:"annual_rate"`
}

type PenaltyRateLine struct {
	Name       string          `json:"name"`
	Multiplier decimal.Decimal `json:"multiplier"`
	HourlyRate decimal.Decimal `json:"hourly_rate"`
	WeeklyRate decimal.Decimal `json:"weekly_rate"`
}

type AllowanceLine struct {
	Name             string           `json:"name"`
	Amount           decimal.Decimal  `json:"amount"`
	Unit             string           `json:"unit"`
	WeeklyEquivalent *decimal.Decimal `json:"weekly_equivalent,omitempty"` // absent for per_occasion, per_km
}

type PayRateCalculationResponse struct {
	AwardCode              string                `json:"award_code"`
	AwardName              string                `json:"award_name"`
	EmploymentType         EmploymentTypeSummary `json:"employment_type"`
	Classification         ClassificationSummary `json:"classification"`
	BasePay                BasePay               `json:"base_pay"`
	PenaltyRates           []PenaltyRateLine     `json:"penalty_rates"`
	Allowances             []AllowanceLine       `json:"allowances"`
	TotalAllowancesPerWeek decimal.Decimal       `json:"total_allowances_per_week"`
	TotalWeeklyPay         decimal.Decimal       `json:"total_weekly_pay"`
	AppliedTags            []string              `json:"applied_tags"`
	EffectiveDate          string                `json:"effective_date"`
}

type ValidationResult struct {
	IsValid bool     `json:"is_valid"`
	Errors  []string `json:"errors"`
}

// --- Interface ---

type RuleEngineService interface {
	CalculatePayRates(ctx context.Context, req PayRateCalculationRequest) (PayRateCalculationResponse, error)
	ValidateConditions(ctx context.Context, req PayRateCalculationRequest) (ValidationResult, error)
}

type ruleEngineService struct {
	awardRepo          repository.AwardRepository
	employmentTypeRepo repository.EmploymentTypeRepository
	classificationRepo repository.ClassificationRepository
	penaltyRepo        repository.PenaltyRateRepository
	allowanceRepo      repository.AllowanceRepository
	tagRepo            repository.TagRepository
	clock              Clock
	logger             *zap.Logger
}

func NewRuleEngineService(
	awardRepo repository.AwardRepository,
	employmentTypeRepo repository.EmploymentTypeRepository,
	classificationRepo repository.ClassificationRepository,
	penaltyRepo repository.PenaltyRateRepository,
	allowanceRepo repository.AllowanceRepository,
	tagRepo repository.TagRepository,
	clock Clock,
	logger *zap.Logger,
) RuleEngineService {
	return &ruleEngineService{
		awardRepo:          awardRepo,
		employmentTypeRepo: employmentTypeRepo,
		classificationRepo: classificationRepo,
		penaltyRepo:        penaltyRepo,
		allowanceRepo:      allowanceRepo,
		tagRepo:            tagRepo,
		clock:              clock,
		logger:             logger,
	}
}

// --- Implementation ---

// CalculatePayRates builds the pay breakdown for one classification.
// Penalty lines are informational: only base weekly pay and allowance weekly equivalents are summed.
func (s *ruleEngineService) CalculatePayRates(ctx context.Context, req PayRateCalculationRequest) (PayRateCalculationResponse, error) {
	validation, err := s.ValidateConditions(ctx, req)
	if err != nil {
		return PayRateCalculationResponse{}, err
	}
	if !validation.IsValid {
		return PayRateCalculationResponse{}, invalidInput("Invalid request: %s", strings.Join(validation.Errors, ", "))
	}

	effectiveDate, err := s.effectiveDate(req.EffectiveDate)
	if err != nil {
		return PayRateCalculationResponse{}, err
	}

	award, err := s.awardRepo.FindActiveByID(ctx, req.AwardID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return PayRateCalculationResponse{}, invalidInput("Award %d not found or inactive", req.AwardID)
		}
		return PayRateCalculationResponse{}, fmt.Errorf("failed to load award: %w", err)
	}

	employmentType, err := s.employmentTypeRepo.FindActiveByCode(ctx, req.EmploymentTypeCode)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return PayRateCalculationResponse{}, invalidInput("Employment type %s not found", req.EmploymentTypeCode)
		}
		return PayRateCalculationResponse{}, fmt.Errorf("failed to load employment type: %w", err)
	}

	classification, err := s.classificationRepo.FindEffective(ctx, req.AwardID, req.ClassificationLevel, employmentType.ID, effectiveDate)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return PayRateCalculationResponse{}, invalidInput("Classification level %d not found for award %d", req.ClassificationLevel, req.AwardID)
		}
		return PayRateCalculationResponse{}, fmt.Errorf("failed to load classification: %w", err)
	}

	penaltyRates, err := s.penaltyRepo.ListActiveEffective(ctx, req.AwardID, effectiveDate)
	if err != nil {
		return PayRateCalculationResponse{}, fmt.Errorf("failed to load penalty rates: %w", err)
	}

	if len(req.TagIDs) > 0 {
		taggedIDs, err := s.penaltyRepo.IDsForTags(ctx, req.TagIDs)
		if err != nil {
			return PayRateCalculationResponse{}, fmt.Errorf("failed to load tag penalty mappings: %w", err)
		}
		penaltyRates = filterPenaltiesByID(penaltyRates, taggedIDs)
	}

	allowances, err := s.allowanceRepo.ListActiveEffectiveByIDs(ctx, req.AwardID, req.AllowanceIDs, effectiveDate)
	if err != nil {
		return PayRateCalculationResponse{}, fmt.Errorf("failed to load allowances: %w", err)
	}

	appliedTags, err := s.tagRepo.NamesByIDs(ctx, req.TagIDs)
	if err != nil {
		return PayRateCalculationResponse{}, fmt.Errorf("failed to load tags: %w", err)
	}

	res := buildBreakdown(award, employmentType, classification, penaltyRates, allowances)
	res.AppliedTags = appliedTags
	res.EffectiveDate = formatDate(effectiveDate)

	s.logger.Debug("pay rates calculated",
		zap.Int("award_id", req.AwardID),
		zap.String("employment_type", req.EmploymentTypeCode),
		zap.Int("level", req.ClassificationLevel),
		zap.Int("penalty_lines", len(res.PenaltyRates)),
		zap.Int("allowance_lines", len(res.Allowances)),
		zap.String("total_weekly_pay", res.TotalWeeklyPay.String()),
	)

	return res, nil
}

// ValidateConditions accumulates every problem with the request.
// The error return is reserved for store failures.
func (s *ruleEngineService) ValidateConditions(ctx context.Context, req PayRateCalculationRequest) (ValidationResult, error) {
	result := ValidationResult{IsValid: true, Errors: []string{}}
	fail := func(msg string) {
		result.IsValid = false
		result.Errors = append(result.Errors, msg)
	}

	awardExists, err := s.awardRepo.ExistsActive(ctx, req.AwardID)
	if err != nil {
		return ValidationResult{}, fmt.Errorf("failed to check award: %w", err)
	}
	if !awardExists {
		fail(fmt.Sprintf("Award %d not found or inactive", req.AwardID))
	}

	if req.EmploymentTypeCode == "" {
		fail("Employment type code is required")
	} else {
		etExists, err := s.employmentTypeRepo.ExistsActiveByCode(ctx, req.EmploymentTypeCode)
		if err != nil {
			return ValidationResult{}, fmt.Errorf("failed to check employment type: %w", err)
		}
		if !etExists {
			fail(fmt.Sprintf("Employment type %s not found or inactive", req.EmploymentTypeCode))
		}
	}

	if req.ClassificationLevel < 1 {
		fail("Classification level must be greater than 0")
	}

	if req.EffectiveDate != "" {
		if _, err := ParseDate(req.EffectiveDate); err != nil {
			fail("Effective date must be formatted as YYYY-MM-DD")
		}
	}

	return result, nil
}

// --- Helpers ---

func (s *ruleEngineService) effectiveDate(raw string) (time.Time, error) {
	if raw == "" {
		return resolveDate(s.clock, nil), nil
	}
	t, err := ParseDate(raw)
	if err != nil {
		return time.Time{}, &InvalidInputError{Message: err.Error()}
	}
	return resolveDate(s.clock, &t), nil
}

func filterPenaltiesByID(rates []model.PenaltyRate, ids []int) []model.PenaltyRate {
	keep := make(map[int]struct{}, len(ids))
	for _, id := range ids {
		keep[id] = struct{}{}
	}

	filtered := make([]model.PenaltyRate, 0, len(rates))
	for _, p := range rates {
		if _, ok := keep[p.ID]; ok {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

func buildBreakdown(
	award *model.Award,
	employmentType *model.EmploymentType,
	classification *model.Classification,
	penaltyRates []model.PenaltyRate,
	allowances []model.Allowance,
) PayRateCalculationResponse {
	annual := decimal.Zero
	if classification.BaseAnnualRate != nil {
		annual = *classification.BaseAnnualRate
	}

	res := PayRateCalculationResponse{
		AwardCode:      award.Code,
		AwardName:      award.Name,
		EmploymentType: EmploymentTypeSummary{Code: employmentType.Code, Name: employmentType.Name},
		Classification: ClassificationSummary{Level: classification.Level, Name: classification.Name},
		BasePay: BasePay{
			HourlyRate: classification.BaseHourlyRate,
			WeeklyRate: classification.BaseWeeklyRate,
			AnnualRate: annual,
		},
		PenaltyRates: make([]PenaltyRateLine, 0, len(penaltyRates)),
		Allowances:   make([]AllowanceLine, 0, len(allowances)),
		AppliedTags:  []string{},
	}

	for _, p := range penaltyRates {
		hourly := PenaltyHourlyRate(classification.BaseHourlyRate, p.RateMultiplier)
		res.PenaltyRates = append(res.PenaltyRates, PenaltyRateLine{
			Name:       p.Name,
			Multiplier: p.RateMultiplier,
			HourlyRate: hourly,
			WeeklyRate: HourlyToWeekly(hourly),
		})
	}

	totalAllowances := decimal.Zero
	for _, a := range allowances {
		line := AllowanceLine{Name: a.Name, Amount: a.Amount, Unit: a.Unit}
		if weekly, ok := WeeklyEquivalent(a.Amount, a.Unit); ok {
			line.WeeklyEquivalent = &weekly
			totalAllowances = totalAllowances.Add(weekly)
		}
		res.Allowances = append(res.Allowances, line)
	}

	res.TotalAllowancesPerWeek = totalAllowances
	res.TotalWeeklyPay = classification.BaseWeeklyRate.Add(totalAllowances)
	return res
}
