package repository

import (
	"time"

	"gorm.io/gorm"
)

// EffectiveAt restricts a query to reference rows whose operative window contains asOf:
// operative_from <= asOf AND (operative_to IS NULL OR operative_to > asOf)
func EffectiveAt(asOf time.Time) func(*gorm.DB) *gorm.DB {
	return effectiveWindow("operative_from", "operative_to", asOf)
}

// RuleEffectiveAt is EffectiveAt for computed rules, which carry effective_from/effective_to.
func RuleEffectiveAt(asOf time.Time) func(*gorm.DB) *gorm.DB {
	return effectiveWindow("effective_from", "effective_to", asOf)
}

// Active keeps rows flagged is_active.
func Active(db *gorm.DB) *gorm.DB {
	return db.Where("is_active = ?", true)
}

func effectiveWindow(fromCol, toCol string, asOf time.Time) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(fromCol+" <= ? AND ("+toCol+" IS NULL OR "+toCol+" > ?)", asOf, asOf)
	}
}
