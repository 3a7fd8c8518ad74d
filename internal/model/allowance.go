package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Allowance types
const (
	AllowanceTypeExpense = "EXPENSE"
	AllowanceTypeWage    = "WAGE"
	AllowanceTypeFlat    = "FLAT"
)

// Allowance units
const (
	UnitPerHour     = "per_hour"
	UnitPerWeek     = "per_week"
	UnitPerOccasion = "per_occasion"
	UnitPerKm       = "per_km"
)

// Allowance is a payment added on top of base pay, denominated in a unit
type Allowance struct {
	ID              int              `gorm:"primaryKey" json:"id"`
	AwardID         int              `gorm:"not null;index" json:"award_id"`
	Award           *Award           `gorm:"foreignKey:AwardID;constraint:OnDelete:CASCADE" json:"-"`
	Code            string           `gorm:"type:varchar(50);not null" json:"code"`
	Name            string           `gorm:"type:varchar(200);not null" json:"name"`
	Type            string           `gorm:"type:varchar(20);not null" json:"type"` // EXPENSE, WAGE, FLAT
	Amount          decimal.Decimal  `gorm:"type:decimal(10,4);not null" json:"amount"`
	Unit            string           `gorm:"type:varchar(20);not null" json:"unit"`
	RatePercent     *decimal.Decimal `gorm:"type:decimal(5,2)" json:"rate_percent"` // wage based allowances only
	IsAllPurpose    bool             `gorm:"default:false;not null" json:"is_all_purpose"`
	ClauseReference string           `gorm:"type:varchar(50)" json:"clause_reference"` // e.g. 19.10(b)
	OperativeFrom   time.Time        `gorm:"type:date;not null" json:"operative_from"`
	OperativeTo     *time.Time       `gorm:"type:date" json:"operative_to"`
	IsActive        bool             `gorm:"default:true;not null" json:"is_active"`
}
