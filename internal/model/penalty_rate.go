package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Penalty categories
const (
	PenaltyCategoryWeekend  = "WEEKEND"
	PenaltyCategoryOvertime = "OVERTIME"
	PenaltyCategoryShift    = "SHIFT"
	PenaltyCategoryHoliday  = "HOLIDAY"
)

// PenaltyRate is a multiplier applied to base pay for qualifying work conditions
type PenaltyRate struct {
	ID              int             `gorm:"primaryKey" json:"id"`
	AwardID         int             `gorm:"not null;index" json:"award_id"`
	Award           *Award          `gorm:"foreignKey:AwardID;constraint:OnDelete:CASCADE" json:"-"`
	Code            string          `gorm:"type:varchar(50);not null" json:"code"`
	Name            string          `gorm:"type:varchar(200);not null" json:"name"`
	Category        string          `gorm:"type:varchar(50);not null" json:"category"`
	RateMultiplier  decimal.Decimal `gorm:"type:decimal(5,2);not null" json:"rate_multiplier"` // e.g. 1.5, 2.0
	ApplicableDays  string          `gorm:"type:varchar(50)" json:"applicable_days"`           // SAT, SUN, MON-FRI
	ApplicableHours string          `gorm:"type:varchar(50)" json:"applicable_hours"`          // FIRST_4, AFTER_4, ALL
	ClauseReference string          `gorm:"type:varchar(50)" json:"clause_reference"`
	OperativeFrom   time.Time       `gorm:"type:date;not null" json:"operative_from"`
	OperativeTo     *time.Time      `gorm:"type:date" json:"operative_to"`
	IsActive        bool            `gorm:"default:true;not null" json:"is_active"`
}
