package model

import (
	"math"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// Preferences narrow the generated schedules. Nil bounds and empty times mean no constraint
type Preferences struct {
	OpenOnly            *bool    `json:"openOnly,omitempty" mapstructure:"openOnly"`
	MinUnits            *float64 `json:"minUnits,omitempty" mapstructure:"minUnits" validate:"omitempty,gte=0"`
	MaxUnits            *float64 `json:"maxUnits,omitempty" mapstructure:"maxUnits" validate:"omitempty,gte=0"`
	MinInstructorRating *float64 `json:"minInstructorRating,omitempty" mapstructure:"minInstructorRating" validate:"omitempty,gte=0"`
	MaxInstructorRating *float64 `json:"maxInstructorRating,omitempty" mapstructure:"maxInstructorRating" validate:"omitempty,gte=0"`
	WithTimeConflicts   *bool    `json:"withTimeConflicts,omitempty" mapstructure:"withTimeConflicts"`
	StartTime           string   `json:"startTime,omitempty" mapstructure:"startTime" validate:"omitempty,clock"`
	EndTime             string   `json:"endTime,omitempty" mapstructure:"endTime" validate:"omitempty,clock"`
}

// Returns a copy that shares no pointers with the caller's value
func (preferences Preferences) snapshot() Preferences {
	preferences.OpenOnly = clonePtr(preferences.OpenOnly)
	preferences.MinUnits = clonePtr(preferences.MinUnits)
	preferences.MaxUnits = clonePtr(preferences.MaxUnits)
	preferences.MinInstructorRating = clonePtr(preferences.MinInstructorRating)
	preferences.MaxInstructorRating = clonePtr(preferences.MaxInstructorRating)
	preferences.WithTimeConflicts = clonePtr(preferences.WithTimeConflicts)
	return preferences
}

func clonePtr[T any](value *T) *T {
	if value == nil {
		return nil
	}
	return lo.ToPtr(*value)
}

// OnlyOpen reports whether closed and waitlisted sections are dropped; an absent preference keeps them
func (preferences Preferences) OnlyOpen() bool {
	return preferences.OpenOnly != nil && *preferences.OpenOnly
}

// AllowsConflicts reports whether schedules with time conflicts are kept; an absent preference keeps them
func (preferences Preferences) AllowsConflicts() bool {
	return preferences.WithTimeConflicts == nil || *preferences.WithTimeConflicts
}

// Within checks whether a timed meeting lies inside the preferred day window. Untimed meetings are always within
func (preferences Preferences) Within(meeting Meeting) bool {
	start, end, ok := meeting.Interval()
	if !ok {
		return true
	}
	if windowStart, ok := clockMinutes(preferences.StartTime); ok && start < windowStart {
		return false
	}
	if windowEnd, ok := clockMinutes(preferences.EndTime); ok && end > windowEnd {
		return false
	}
	return true
}

// UnitsMatch checks whether the [low, high] credit range intersects the preferred bounds
func (preferences Preferences) UnitsMatch(low, high float64) bool {
	if preferences.MinUnits != nil && high < *preferences.MinUnits {
		return false
	}
	if preferences.MaxUnits != nil && low > *preferences.MaxUnits {
		return false
	}
	return true
}

func (preferences Preferences) RatingMatch(rating float64) bool {
	if preferences.MinInstructorRating != nil && rating < *preferences.MinInstructorRating {
		return false
	}
	if preferences.MaxInstructorRating != nil && rating > *preferences.MaxInstructorRating {
		return false
	}
	return true
}

// Reads "n" or "a-b" into a credit range; unreadable, non-finite or negative values count as zero
func parseUnits(units string) (low, high float64) {
	bounds := strings.SplitN(units, "-", 2)
	low, ok := parseCredit(bounds[0])
	if !ok {
		return 0, 0
	}
	if len(bounds) == 1 {
		return low, low
	}
	high, ok = parseCredit(bounds[1])
	if !ok || high < low {
		return low, low
	}
	return low, high
}

func parseCredit(value string) (float64, bool) {
	credit, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil || math.IsNaN(credit) || math.IsInf(credit, 0) || credit < 0 {
		return 0, false
	}
	return credit, true
}
