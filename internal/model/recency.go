package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/Veraticus/billbook/internal/common"
)

// Recency is the time window of the date filter.
type Recency string

// Recency buckets.
const (
	RecencyDay   Recency = "day"
	RecencyMonth Recency = "month"
	RecencyYear  Recency = "year"
	RecencyUnset Recency = "unset"
)

// Recencies returns the buckets in the order the filter bar shows them.
func Recencies() []Recency {
	return []Recency{RecencyDay, RecencyMonth, RecencyYear, RecencyUnset}
}

// ParseRecency parses a bucket name. An empty string means unset.
func ParseRecency(s string) (Recency, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return RecencyUnset, nil
	}
	for _, r := range Recencies() {
		if string(r) == s {
			return r, nil
		}
	}
	return "", fmt.Errorf("%w: %q", common.ErrUnknownRecency, s)
}

// IsUnset reports whether the bucket applies no date constraint.
func (r Recency) IsUnset() bool {
	return r == RecencyUnset || r == ""
}

// Cutoff returns now minus one unit of the bucket. Month and year steps clamp
// to the last day of the target month instead of overflowing into the next.
// The second return value is false for unset.
func (r Recency) Cutoff(now time.Time) (time.Time, bool) {
	switch r {
	case RecencyDay:
		return now.AddDate(0, 0, -1), true
	case RecencyMonth:
		return SubtractMonths(now, 1), true
	case RecencyYear:
		return SubtractMonths(now, 12), true
	default:
		return time.Time{}, false
	}
}

// Includes reports whether date is strictly after the cutoff, or true when
// the bucket is unset.
func (r Recency) Includes(date, now time.Time) bool {
	cutoff, ok := r.Cutoff(now)
	if !ok {
		return true
	}
	return date.After(cutoff)
}

// SubtractMonths steps t back by months calendar months, clamping the day to
// the end of the target month.
func SubtractMonths(t time.Time, months int) time.Time {
	year, month, day := t.Date()
	firstOfTarget := time.Date(year, month-time.Month(months), 1, 0, 0, 0, 0, t.Location())
	lastDay := firstOfTarget.AddDate(0, 1, -1).Day()
	if day > lastDay {
		day = lastDay
	}
	return time.Date(firstOfTarget.Year(), firstOfTarget.Month(), day,
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}
