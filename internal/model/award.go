package model

import "time"

// Industry groups awards (e.g. Retail, Hospitality)
type Industry struct {
	ID          int     `gorm:"primaryKey" json:"id"`
	Code        string  `gorm:"type:varchar(50);uniqueIndex;not null" json:"code"`
	Name        string  `gorm:"type:varchar(200);not null" json:"name"`
	Description string  `gorm:"type:varchar(500)" json:"description"`
	IsActive    bool    `gorm:"default:true;not null" json:"is_active"`
	Awards      []Award `gorm:"foreignKey:IndustryID;constraint:OnDelete:RESTRICT" json:"-"`
}

// Award is a named bundle of employment conditions for an industry (e.g. MA000004)
type Award struct {
	ID            int        `gorm:"primaryKey" json:"id"`
	Code          string     `gorm:"type:varchar(20);uniqueIndex;not null" json:"code"`
	Name          string     `gorm:"type:varchar(200);not null" json:"name"`
	IndustryID    int        `gorm:"not null;index" json:"industry_id"`
	Industry      *Industry  `gorm:"foreignKey:IndustryID" json:"industry,omitempty"`
	OperativeFrom time.Time  `gorm:"type:date;not null" json:"operative_from"`
	OperativeTo   *time.Time `gorm:"type:date" json:"operative_to"`
	VersionNumber int        `gorm:"default:1;not null" json:"version_number"`
	IsActive      bool       `gorm:"default:true;not null;index" json:"is_active"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}
