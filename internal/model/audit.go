package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	ActionGenerateRules   = "GENERATE_PAY_RULES"
	ActionRegenerateRules = "REGENERATE_ALL_PAY_RULES"
)

// AuditLog tracks Who, What, and When for rule table rebuilds
type AuditLog struct {
	ID         uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Actor      string    `gorm:"type:varchar(100);index" json:"actor"` // user id from the token, or SYSTEM
	Action     string    `gorm:"type:varchar(50);not null;index" json:"action"`
	EntityID   string    `gorm:"type:varchar(50);index" json:"entity_id"`        // award id, or the effective date for batch runs
	EntityName string    `gorm:"type:varchar(255)" json:"entity_name,omitempty"` // Human readable name
	Details    string    `gorm:"type:jsonb" json:"details"`                      // Serialized JSON payload of the action
	CreatedAt  time.Time `gorm:"index" json:"created_at"`
}
