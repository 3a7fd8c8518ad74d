package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"payrates/internal/model"
	"payrates/internal/ratelock"
	"payrates/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Websocket event names
const (
	EventRulesGenerated   = "rules.generated"
	EventRulesRegenerated = "rules.regenerated"
)

// EventPublisher pushes notifications to connected admin clients.
type EventPublisher interface {
	Publish(event string, data interface{})
}

// --- DTOs ---

type RuleGenerationResponse struct {
	AwardID             int       `json:"award_id"`
	GeneratedRulesCount int       `json:"generated_rules_count"`
	EffectiveFrom       string    `json:"effective_from"`
	GeneratedAt         time.Time `json:"generated_at"`
	GenerationID        string    `json:"generation_id"`
}

// AwardGenerationResult is one award's outcome inside a batch regeneration
type AwardGenerationResult struct {
	AwardID             int    `json:"award_id"`
	Succeeded           bool   `json:"succeeded"`
	GeneratedRulesCount int    `json:"generated_rules_count"`
	Error               string `json:"error,omitempty"`
}

type RegenerationResponse struct {
	GeneratedRulesCount int                     `json:"generated_rules_count"`
	EffectiveFrom       string                  `json:"effective_from"`
	GeneratedAt         time.Time               `json:"generated_at"`
	SucceededAwards     int                     `json:"succeeded_awards"`
	FailedAwards        int                     `json:"failed_awards"`
	Results             []AwardGenerationResult `json:"results"`
}

// RuleStamp carries the metadata copied onto every generated rule
type RuleStamp struct {
	EffectiveFrom time.Time
	EffectiveTo   *time.Time
	GeneratedAt   time.Time
	GeneratedBy   string
	GenerationID  uuid.UUID
}

// --- Interface ---

type RuleBuilderService interface {
	// GeneratePayRulesForAward replaces the award's rules for effectiveFrom (today when nil).
	GeneratePayRulesForAward(ctx context.Context, awardID int, effectiveFrom *time.Time, generatedBy string) (RuleGenerationResponse, error)
	// RegenerateAllRules runs GeneratePayRulesForAward for every active award, isolating failures per award.
	RegenerateAllRules(ctx context.Context, effectiveFrom *time.Time, generatedBy string) (RegenerationResponse, error)
}

type ruleBuilderService struct {
	awardRepo          repository.AwardRepository
	classificationRepo repository.ClassificationRepository
	penaltyRepo        repository.PenaltyRateRepository
	ruleRepo           repository.ComputedRuleRepository
	auditRepo          repository.AuditRepository
	txManager          repository.TransactionManager
	locker             ratelock.Locker
	events             EventPublisher
	clock              Clock
	logger             *zap.Logger
}

func NewRuleBuilderService(
	awardRepo repository.AwardRepository,
	classificationRepo repository.ClassificationRepository,
	penaltyRepo repository.PenaltyRateRepository,
	ruleRepo repository.ComputedRuleRepository,
	auditRepo repository.AuditRepository,
	txManager repository.TransactionManager,
	locker ratelock.Locker,
	events EventPublisher,
	clock Clock,
	logger *zap.Logger,
) RuleBuilderService {
	return &ruleBuilderService{
		awardRepo:          awardRepo,
		classificationRepo: classificationRepo,
		penaltyRepo:        penaltyRepo,
		ruleRepo:           ruleRepo,
		auditRepo:          auditRepo,
		txManager:          txManager,
		locker:             locker,
		events:             events,
		clock:              clock,
		logger:             logger,
	}
}

// --- Implementation ---

func (s *ruleBuilderService) GeneratePayRulesForAward(ctx context.Context, awardID int, effectiveFrom *time.Time, generatedBy string) (RuleGenerationResponse, error) {
	from := resolveDate(s.clock, effectiveFrom)
	if generatedBy == "" {
		generatedBy = model.GeneratedBySystem
	}

	release, err := s.lockAward(ctx, awardID)
	if err != nil {
		return RuleGenerationResponse{}, err
	}
	defer release()

	stamp := RuleStamp{
		EffectiveFrom: from,
		GeneratedAt:   s.clock.Now().UTC(),
		GeneratedBy:   generatedBy,
		GenerationID:  uuid.New(),
	}

	var count int
	err = s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		n, err := s.replaceRules(txCtx, awardID, stamp)
		count = n
		return err
	})
	if err != nil {
		s.logger.Error("rule generation failed",
			zap.Int("award_id", awardID),
			zap.String("effective_from", formatDate(from)),
			zap.Error(err),
		)
		return RuleGenerationResponse{}, err
	}

	res := RuleGenerationResponse{
		AwardID:             awardID,
		GeneratedRulesCount: count,
		EffectiveFrom:       formatDate(from),
		GeneratedAt:         stamp.GeneratedAt,
		GenerationID:        stamp.GenerationID.String(),
	}

	s.logger.Info("pay rules generated",
		zap.Int("award_id", awardID),
		zap.Int("count", count),
		zap.String("effective_from", res.EffectiveFrom),
		zap.String("generation_id", res.GenerationID),
	)
	s.events.Publish(EventRulesGenerated, res)

	return res, nil
}

func (s *ruleBuilderService) RegenerateAllRules(ctx context.Context, effectiveFrom *time.Time, generatedBy string) (RegenerationResponse, error) {
	from := resolveDate(s.clock, effectiveFrom)

	awardIDs, err := s.awardRepo.ListActiveIDs(ctx)
	if err != nil {
		return RegenerationResponse{}, fmt.Errorf("failed to list active awards: %w", err)
	}

	res := RegenerationResponse{
		EffectiveFrom: formatDate(from),
		GeneratedAt:   s.clock.Now().UTC(),
		Results:       make([]AwardGenerationResult, 0, len(awardIDs)),
	}

	for _, awardID := range awardIDs {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		entry := AwardGenerationResult{AwardID: awardID}
		gen, err := s.GeneratePayRulesForAward(ctx, awardID, &from, generatedBy)
		if err != nil {
			entry.Error = clientMessage(err, "rule generation failed")
			res.FailedAwards++
		} else {
			entry.Succeeded = true
			entry.GeneratedRulesCount = gen.GeneratedRulesCount
			res.GeneratedRulesCount += gen.GeneratedRulesCount
			res.SucceededAwards++
		}
		res.Results = append(res.Results, entry)
	}

	s.writeAuditLog(ctx, generatedBy, model.ActionRegenerateRules, res.EffectiveFrom, "all active awards", map[string]interface{}{
		"effective_from":        res.EffectiveFrom,
		"generated_rules_count": res.GeneratedRulesCount,
		"succeeded_awards":      res.SucceededAwards,
		"failed_awards":         res.FailedAwards,
	})

	s.logger.Info("pay rules regenerated",
		zap.String("effective_from", res.EffectiveFrom),
		zap.Int("count", res.GeneratedRulesCount),
		zap.Int("succeeded_awards", res.SucceededAwards),
		zap.Int("failed_awards", res.FailedAwards),
	)
	s.events.Publish(EventRulesRegenerated, res)

	return res, nil
}

// replaceRules runs inside the generation transaction: delete, rebuild, insert, audit.
func (s *ruleBuilderService) replaceRules(txCtx context.Context, awardID int, stamp RuleStamp) (int, error) {
	if _, err := s.ruleRepo.DeleteByAwardAndEffectiveFrom(txCtx, awardID, stamp.EffectiveFrom); err != nil {
		return 0, fmt.Errorf("failed to delete existing rules: %w", err)
	}

	classifications, err := s.classificationRepo.ListActiveEffective(txCtx, awardID, stamp.EffectiveFrom)
	if err != nil {
		return 0, fmt.Errorf("failed to load classifications: %w", err)
	}
	if len(classifications) == 0 {
		return 0, nil
	}

	penaltyRates, err := s.penaltyRepo.ListActiveEffective(txCtx, awardID, stamp.EffectiveFrom)
	if err != nil {
		return 0, fmt.Errorf("failed to load penalty rates: %w", err)
	}

	// Older open generations end where this one starts; a later generation bounds this one.
	if _, err := s.ruleRepo.CloseOpenBefore(txCtx, awardID, stamp.EffectiveFrom); err != nil {
		return 0, fmt.Errorf("failed to close previous rules: %w", err)
	}
	next, err := s.ruleRepo.NextEffectiveFrom(txCtx, awardID, stamp.EffectiveFrom)
	if err != nil {
		return 0, fmt.Errorf("failed to find next generation: %w", err)
	}
	stamp.EffectiveTo = next

	rules := BuildPayRules(classifications, penaltyRates, stamp)
	if err := s.ruleRepo.CreateBatch(txCtx, rules); err != nil {
		return 0, fmt.Errorf("failed to insert rules: %w", err)
	}

	details, _ := json.Marshal(map[string]interface{}{
		"effective_from":  formatDate(stamp.EffectiveFrom),
		"generation_id":   stamp.GenerationID.String(),
		"classifications": len(classifications),
		"penalty_rates":   len(penaltyRates),
		"rules":           len(rules),
	})
	audit := &model.AuditLog{
		Actor:      stamp.GeneratedBy,
		Action:     model.ActionGenerateRules,
		EntityID:   strconv.Itoa(awardID),
		EntityName: "award " + strconv.Itoa(awardID),
		Details:    string(details),
	}
	if err := s.auditRepo.Log(txCtx, audit); err != nil {
		return 0, fmt.Errorf("failed to write audit log: %w", err)
	}

	return len(rules), nil
}

// BuildPayRules emits the cross product {classifications} x ({no penalty} ∪ {penalty rates}).
func BuildPayRules(classifications []model.Classification, penaltyRates []model.PenaltyRate, stamp RuleStamp) []model.ComputedPayRule {
	rules := make([]model.ComputedPayRule, 0, len(classifications)*(1+len(penaltyRates)))
	base := model.ComputedPayRule{
		EffectiveFrom: stamp.EffectiveFrom,
		EffectiveTo:   stamp.EffectiveTo,
		GeneratedAt:   stamp.GeneratedAt,
		GeneratedBy:   stamp.GeneratedBy,
		GenerationID:  stamp.GenerationID,
		IsActive:      true,
	}

	for _, c := range classifications {
		rule := base
		rule.AwardID = c.AwardID
		rule.EmploymentTypeID = c.EmploymentTypeID
		rule.ClassificationID = c.ID
		rule.BaseHourlyRate = c.BaseHourlyRate
		rule.PenaltyMultiplier = decimal.NewFromInt(1)
		rules = append(rules, rule)

		for _, p := range penaltyRates {
			penaltyID := p.ID
			withPenalty := rule
			withPenalty.PenaltyRateID = &penaltyID
			withPenalty.PenaltyMultiplier = p.RateMultiplier
			rules = append(rules, withPenalty)
		}
	}

	return rules
}

func (s *ruleBuilderService) lockAward(ctx context.Context, awardID int) (ratelock.Release, error) {
	release, err := s.locker.Acquire(ctx, "award:"+strconv.Itoa(awardID))
	switch {
	case err == nil:
		return release, nil
	case errors.Is(err, ratelock.ErrNotObtained):
		return nil, ErrGenerationInProgress
	default:
		s.logger.Warn("could not reach lock store; generating without lock", zap.Int("award_id", awardID), zap.Error(err))
		return func() {}, nil
	}
}

func (s *ruleBuilderService) writeAuditLog(ctx context.Context, actor, action, entityID, entityName string, details interface{}) {
	detailsJSON, _ := json.Marshal(details)

	entry := &model.AuditLog{
		Actor:      actor,
		Action:     action,
		EntityID:   entityID,
		EntityName: entityName,
		Details:    string(detailsJSON),
	}
	if entry.Actor == "" {
		entry.Actor = model.GeneratedBySystem
	}

	// Best-effort: the batch already committed per award
	if err := s.auditRepo.Log(ctx, entry); err != nil {
		s.logger.Warn("failed to write audit log", zap.String("action", action), zap.Error(err))
	}
}

// clientMessage hides unexpected error detail from API callers.
func clientMessage(err error, fallback string) string {
	if IsInvalidInput(err) || errors.Is(err, ErrGenerationInProgress) {
		return err.Error()
	}
	return fallback
}
