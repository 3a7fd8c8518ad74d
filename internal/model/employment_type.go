package model

import "github.com/shopspring/decimal"

// EmploymentType codes
const (
	EmploymentTypeFullTime   = "FT"
	EmploymentTypePartTime   = "PT"
	EmploymentTypeCasual     = "CAS"
	EmploymentTypeApprentice = "APP"
	EmploymentTypeJunior     = "JUN"
)

// EmploymentType describes how an employee is engaged (full-time, casual, ...)
type EmploymentType struct {
	ID                   int              `gorm:"primaryKey" json:"id"`
	Code                 string           `gorm:"type:varchar(10);uniqueIndex;not null" json:"code"`
	Name                 string           `gorm:"type:varchar(50);not null" json:"name"`
	RateTypeCode         string           `gorm:"type:varchar(5);not null" json:"rate_type_code"` // AD, JN, AA, AP
	CasualLoadingPercent *decimal.Decimal `gorm:"type:decimal(5,2)" json:"casual_loading_percent"`
	Description          string           `gorm:"type:text" json:"description"`
	IsActive             bool             `gorm:"default:true;not null" json:"is_active"`
}
