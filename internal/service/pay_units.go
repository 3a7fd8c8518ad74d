package service

import (
	"strings"

	"payrates/internal/model"

	"github.com/shopspring/decimal"
)

var (
	weeklyHours  = decimal.NewFromInt(model.StandardWeeklyHours)
	weeksPerYear = decimal.NewFromInt(model.WeeksPerYear)
)

// WeeklyEquivalent converts an allowance amount to a per-week figure.
// per_hour is scaled by the standard 38 hour week and per_week is returned as is.
// per_occasion, per_km and unknown units have no weekly equivalent (ok == false).
func WeeklyEquivalent(amount decimal.Decimal, unit string) (weekly decimal.Decimal, ok bool) {
	switch strings.ToLower(unit) {
	case model.UnitPerHour:
		return amount.Mul(weeklyHours), true
	case model.UnitPerWeek:
		return amount, true
	default:
		return decimal.Zero, false
	}
}

// PenaltyHourlyRate = base hourly rate x multiplier
func PenaltyHourlyRate(baseHourly, multiplier decimal.Decimal) decimal.Decimal {
	return baseHourly.Mul(multiplier)
}

// HourlyToWeekly = hourly x 38
func HourlyToWeekly(hourly decimal.Decimal) decimal.Decimal {
	return hourly.Mul(weeklyHours)
}

// WeeklyToAnnual = weekly x 52
func WeeklyToAnnual(weekly decimal.Decimal) decimal.Decimal {
	return weekly.Mul(weeksPerYear)
}
