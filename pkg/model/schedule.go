package model

import (
	"fmt"
	"slices"
	"strings"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

var scheduleNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/limaJavier/coursescheduling/schedule"))

// Schedule is one candidate weekly timetable: one selection unit per course
type Schedule struct {
	Key            uuid.UUID `json:"key"`
	Id             string    `json:"id,omitempty"`
	Name           string    `json:"name,omitempty"`
	Sections       []Section `json:"sections"`
	AverageRating  float64   `json:"averageRating"`
	UnitsLow       float64   `json:"unitsLow"`
	UnitsHigh      float64   `json:"unitsHigh"`
	WithConflicts  bool      `json:"withConflicts"`
	ConflictGroups []Section `json:"conflictGroups,omitempty"`
}

// BuildReport describes what a Build call could not include
type BuildReport struct {
	Courses              int      `json:"courses"`
	Combinations         int      `json:"combinations"`
	Truncated            bool     `json:"truncated"`
	UnschedulableCourses []string `json:"unschedulableCourses,omitempty"`
}

// ClassNumbers returns the schedule's class numbers in ascending order
func (schedule Schedule) ClassNumbers() []uint64 {
	classNumbers := lo.Map(schedule.Sections, func(section Section, _ int) uint64 { return section.ClassNumber })
	slices.Sort(classNumbers)
	return classNumbers
}

// Name-based key over the sorted class numbers, so equal section sets always share a key
func scheduleKey(sections []Section) uuid.UUID {
	classNumbers := lo.Map(sections, func(section Section, _ int) uint64 { return section.ClassNumber })
	slices.Sort(classNumbers)
	name := strings.Join(lo.Map(classNumbers, func(classNumber uint64, _ int) string { return fmt.Sprint(classNumber) }), ",")
	return uuid.NewSHA1(scheduleNamespace, []byte(name))
}

// Sums each course's rating once and divides by the number of rated courses
func averageRating(combination []SelectionUnit) float64 {
	ratings := lo.Map(combination, func(unit SelectionUnit, _ int) float64 { return unitRating(unit) })
	rated := lo.CountBy(ratings, func(rating float64) bool { return rating > 0 })
	if rated == 0 {
		return 0
	}
	return lo.Sum(ratings) / float64(rated)
}

func unitRating(unit SelectionUnit) float64 {
	return lo.Max(lo.Map(unit.Sections, func(section Section, _ int) float64 { return section.Rating }))
}

// A unit contributes the largest bounds among its sections, since a linked lab usually carries no credit of its own
func unitUnits(unit SelectionUnit) (low, high float64) {
	for _, section := range unit.Sections {
		sectionLow, sectionHigh := parseUnits(section.Units)
		low, high = max(low, sectionLow), max(high, sectionHigh)
	}
	return low, high
}

func combinationUnits(combination []SelectionUnit) (low, high float64) {
	for _, unit := range combination {
		unitLow, unitHigh := unitUnits(unit)
		low += unitLow
		high += unitHigh
	}
	return low, high
}
