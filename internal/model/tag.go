package model

import "time"

// Tag categories
const (
	TagCategoryShift       = "SHIFT"
	TagCategoryRoster      = "ROSTER"
	TagCategoryEligibility = "ELIGIBILITY"
)

// Tag is an administrator defined label selecting subsets of penalty rates and allowances
type Tag struct {
	ID                int       `gorm:"primaryKey" json:"id"`
	Code              string    `gorm:"type:varchar(50);uniqueIndex;not null" json:"code"`
	Name              string    `gorm:"type:varchar(100);not null" json:"name"`
	Category          string    `gorm:"type:varchar(50);not null" json:"category"`
	Description       string    `gorm:"type:varchar(500)" json:"description"`
	AffectsPenalties  bool      `gorm:"default:false;not null" json:"affects_penalties"`
	AffectsAllowances bool      `gorm:"default:false;not null" json:"affects_allowances"`
	CreatedBy         int       `json:"created_by"`
	CreatedAt         time.Time `json:"created_at"`
	IsActive          bool      `gorm:"default:true;not null" json:"is_active"`
}

// TagPenaltyMapping links tags to penalty rates
type TagPenaltyMapping struct {
	TagID         int          `gorm:"primaryKey" json:"tag_id"`
	PenaltyRateID int          `gorm:"primaryKey" json:"penalty_rate_id"`
	Tag           *Tag         `gorm:"foreignKey:TagID;constraint:OnDelete:CASCADE" json:"-"`
	PenaltyRate   *PenaltyRate `gorm:"foreignKey:PenaltyRateID;constraint:OnDelete:CASCADE" json:"-"`
}

// TagAllowanceMapping links tags to allowances
type TagAllowanceMapping struct {
	TagID       int        `gorm:"primaryKey" json:"tag_id"`
	AllowanceID int        `gorm:"primaryKey" json:"allowance_id"`
	Tag         *Tag       `gorm:"foreignKey:TagID;constraint:OnDelete:CASCADE" json:"-"`
	Allowance   *Allowance `gorm:"foreignKey:AllowanceID;constraint:OnDelete:CASCADE" json:"-"`
}
