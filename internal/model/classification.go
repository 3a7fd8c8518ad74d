package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Classification is a pay level within an award for one employment type.
// At most one active row exists per (award, level, employment type, operative_from).
type Classification struct {
	ID               int              `gorm:"primaryKey" json:"id"`
	AwardID          int              `gorm:"not null;uniqueIndex:idx_classification_level" json:"award_id"`
	Award            *Award           `gorm:"foreignKey:AwardID;constraint:OnDelete:CASCADE" json:"-"`
	Level            int              `gorm:"not null;uniqueIndex:idx_classification_level" json:"level"`
	Name             string           `gorm:"type:varchar(200);not null" json:"name"`
	EmploymentTypeID int              `gorm:"not null;uniqueIndex:idx_classification_level" json:"employment_type_id"`
	EmploymentType   *EmploymentType  `gorm:"foreignKey:EmploymentTypeID;constraint:OnDelete:RESTRICT" json:"employment_type,omitempty"`
	BaseHourlyRate   decimal.Decimal  `gorm:"type:decimal(10,4);not null" json:"base_hourly_rate"`
	BaseWeeklyRate   decimal.Decimal  `gorm:"type:decimal(10,2);not null" json:"base_weekly_rate"`
	BaseAnnualRate   *decimal.Decimal `gorm:"type:decimal(12,2)" json:"base_annual_rate"`
	OperativeFrom    time.Time        `gorm:"type:date;not null;uniqueIndex:idx_classification_level" json:"operative_from"`
	OperativeTo      *time.Time       `gorm:"type:date" json:"operative_to"` // nullable = open ended
	VersionNumber    int              `gorm:"default:1;not null" json:"version_number"`
	IsActive         bool             `gorm:"default:true;not null" json:"is_active"`
}
