package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Fixed pay assumptions shared by every award
const (
	StandardWeeklyHours = 38
	WeeksPerYear        = 52
)

// GeneratedBySystem marks rules produced by the rule builder without a user
const GeneratedBySystem = "SYSTEM"

// ComputedPayRule is a materialized (classification x penalty) combination.
// Hourly, weekly and annual rates are derived on read and never stored.
type ComputedPayRule struct {
	ID                int64                   `gorm:"primaryKey" json:"id"`
	AwardID           int                     `gorm:"not null;index:idx_rule_lookup" json:"award_id"`
	Award             *Award                  `gorm:"foreignKey:AwardID;constraint:OnDelete:RESTRICT" json:"-"`
	EmploymentTypeID  int                     `gorm:"not null;index:idx_rule_lookup" json:"employment_type_id"`
	EmploymentType    *EmploymentType         `gorm:"foreignKey:EmploymentTypeID;constraint:OnDelete:RESTRICT" json:"-"`
	ClassificationID  int                     `gorm:"not null;index:idx_rule_lookup" json:"classification_id"`
	Classification    *Classification         `gorm:"foreignKey:ClassificationID;constraint:OnDelete:RESTRICT" json:"-"`
	PenaltyRateID     *int                    `gorm:"index" json:"penalty_rate_id"` // nil = base rate, no penalty
	PenaltyRate       *PenaltyRate            `gorm:"foreignKey:PenaltyRateID;constraint:OnDelete:RESTRICT" json:"-"`
	BaseHourlyRate    decimal.Decimal         `gorm:"type:decimal(10,4);not null" json:"base_hourly_rate"`
	PenaltyMultiplier decimal.Decimal         `gorm:"type:decimal(5,2);not null;default:1.00" json:"penalty_multiplier"`
	EffectiveFrom     time.Time               `gorm:"type:date;not null;index:idx_rule_lookup" json:"effective_from"`
	EffectiveTo       *time.Time              `gorm:"type:date" json:"effective_to"`
	GeneratedAt       time.Time               `gorm:"not null" json:"generated_at"`
	GeneratedBy       string                  `gorm:"type:varchar(100);not null;default:'SYSTEM'" json:"generated_by"`
	GenerationID      uuid.UUID               `gorm:"type:uuid;index" json:"generation_id"`
	IsActive          bool                    `gorm:"default:true;not null" json:"is_active"`
	RuleAllowances    []ComputedRuleAllowance `gorm:"foreignKey:RuleID;constraint:OnDelete:CASCADE" json:"-"`
	RuleTags          []ComputedRuleTag       `gorm:"foreignKey:RuleID;constraint:OnDelete:CASCADE" json:"-"`
}

// CalculatedHourlyRate = base hourly rate x penalty multiplier
func (r ComputedPayRule) CalculatedHourlyRate() decimal.Decimal {
	return r.BaseHourlyRate.Mul(r.PenaltyMultiplier)
}

// CalculatedWeeklyRate = hourly x 38
func (r ComputedPayRule) CalculatedWeeklyRate() decimal.Decimal {
	return r.CalculatedHourlyRate().Mul(decimal.NewFromInt(StandardWeeklyHours))
}

// CalculatedAnnualRate = weekly x 52
func (r ComputedPayRule) CalculatedAnnualRate() decimal.Decimal {
	return r.CalculatedWeeklyRate().Mul(decimal.NewFromInt(WeeksPerYear))
}

// ComputedRuleAllowance links an allowance to a computed rule
type ComputedRuleAllowance struct {
	RuleID          int64           `gorm:"primaryKey" json:"rule_id"`
	AllowanceID     int             `gorm:"primaryKey" json:"allowance_id"`
	Allowance       *Allowance      `gorm:"foreignKey:AllowanceID;constraint:OnDelete:RESTRICT" json:"-"`
	AllowanceAmount decimal.Decimal `gorm:"type:decimal(10,4);not null" json:"allowance_amount"`
}

// ComputedRuleTag links a tag to a computed rule
type ComputedRuleTag struct {
	RuleID int64 `gorm:"primaryKey" json:"rule_id"`
	TagID  int   `gorm:"primaryKey" json:"tag_id"`
	Tag    *Tag  `gorm:"foreignKey:TagID;constraint:OnDelete:RESTRICT" json:"-"`
}
