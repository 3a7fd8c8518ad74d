package model

import (
	"time"

	"gorm.io/datatypes"
)

// Tenant is an organisation using the service
type Tenant struct {
	ID                  int       `gorm:"primaryKey" json:"id"`
	Name                string    `gorm:"type:varchar(200);not null" json:"name"`
	ABN                 string    `gorm:"type:varchar(50)" json:"abn"`
	IndustryID          int       `gorm:"not null;index" json:"industry_id"`
	Industry            *Industry `gorm:"foreignKey:IndustryID;constraint:OnDelete:RESTRICT" json:"-"`
	PrimaryContactName  string    `gorm:"type:varchar(100)" json:"primary_contact_name"`
	PrimaryContactEmail string    `gorm:"type:varchar(100)" json:"primary_contact_email"`
	PhoneNumber         string    `gorm:"type:varchar(20)" json:"phone_number"`
	BillingAddress      string    `gorm:"type:varchar(500)" json:"billing_address"`
	IsActive            bool      `gorm:"default:true;not null" json:"is_active"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

// TenantAward assigns an award to a tenant for a date range
type TenantAward struct {
	ID            int            `gorm:"primaryKey" json:"id"`
	TenantID      int            `gorm:"not null;index" json:"tenant_id"`
	Tenant        *Tenant        `gorm:"foreignKey:TenantID;constraint:OnDelete:CASCADE" json:"-"`
	AwardID       int            `gorm:"not null;index" json:"award_id"`
	Award         *Award         `gorm:"foreignKey:AwardID;constraint:OnDelete:RESTRICT" json:"-"`
	EffectiveFrom time.Time      `gorm:"type:date;not null" json:"effective_from"`
	EffectiveTo   *time.Time     `gorm:"type:date" json:"effective_to"`
	Configuration datatypes.JSON `gorm:"type:jsonb" json:"configuration"` // enabled classifications, allowances, ...
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}
