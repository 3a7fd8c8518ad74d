package service

import (
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// Clock supplies the current time; injected so effective-date defaults are testable.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

// SystemClock reads the local wall clock.
func SystemClock() Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now()
}

// DateOnly keeps the calendar date of t (in t's location) as midnight UTC,
// the form every date column is compared against.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", s)
	}
	return t, nil
}

// resolveDate returns the requested date, or today's local date when none is given.
func resolveDate(clock Clock, requested *time.Time) time.Time {
	if requested != nil {
		return DateOnly(*requested)
	}
	return DateOnly(clock.Now())
}

func formatDate(t time.Time) string {
	return t.Format(dateLayout)
}
