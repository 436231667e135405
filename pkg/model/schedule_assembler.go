package model

import (
	"cmp"
	"log"
	"slices"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

const DefaultMaxCombinations uint64 = 10000

type ScheduleAssembler interface {
	// Generates every schedule that takes one selection unit per course from sections, filtered by preferences and ordered by descending average rating.
	// Courses without any selection unit are left out of every schedule and listed in the report
	Build(
		sections []Section,
		preferences Preferences,
	) (schedules []Schedule, report BuildReport)
}

type scheduleAssemblerStandard struct {
	resolver        PairResolver
	detector        ConflictDetector
	grouper         ConflictGrouper
	maxCombinations uint64
	logger          *zap.Logger
}

// NewScheduleAssembler returns an assembler that stops after maxCombinations combinations (DefaultMaxCombinations when 0)
func NewScheduleAssembler(maxCombinations uint64, logger *zap.Logger) ScheduleAssembler {
	if maxCombinations == 0 {
		maxCombinations = DefaultMaxCombinations
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	detector := NewConflictDetector()
	return &scheduleAssemblerStandard{
		resolver:        NewPairResolver(),
		detector:        detector,
		grouper:         NewConflictGrouper(detector),
		maxCombinations: maxCombinations,
		logger:          logger,
	}
}

// Build assembles schedules with the default limit and no logging
func Build(sections []Section, preferences Preferences) ([]Schedule, BuildReport) {
	return NewScheduleAssembler(0, nil).Build(sections, preferences)
}

func (assembler *scheduleAssemblerStandard) Build(sections []Section, preferences Preferences) ([]Schedule, BuildReport) {
	preferences = preferences.snapshot()
	schedules := make([]Schedule, 0)
	report := BuildReport{}
	if len(sections) == 0 {
		return schedules, report
	}

	//** Partition by course, in order of first appearance
	sections = lo.UniqBy(sections, func(section Section) uint64 { return section.ClassNumber })
	courseIds := lo.Uniq(lo.Map(sections, func(section Section, _ int) string { return section.CourseId }))
	sectionsPerCourse := lo.GroupBy(sections, func(section Section) string { return section.CourseId })

	//** Resolve selection units per course
	domains := make([][]SelectionUnit, 0, len(courseIds))
	for _, courseId := range courseIds {
		units := assembler.resolver.ResolveSelections(sectionsPerCourse[courseId], preferences.OnlyOpen())
		if len(units) == 0 {
			assembler.logger.Warn("course has no selection units and is left out of every schedule",
				zap.String("course", courseId),
				zap.Bool("openOnly", preferences.OnlyOpen()),
			)
			report.UnschedulableCourses = append(report.UnschedulableCourses, courseId)
			continue
		}
		for _, unit := range units {
			if len(unit.Sections) == 0 || len(unit.Sections) > 2 {
				log.Panicf("selection unit of course \"%v\" must hold one or two sections: %v", courseId, unit.Key())
			}
		}
		assembler.logger.Debug("resolved selection units", zap.String("course", courseId), zap.Int("units", len(units)))
		domains = append(domains, units)
	}
	report.Courses = len(domains)

	//** Generate combinations
	generator := newCombinationGenerator(domains)
	combinations, truncated := generator.ConstrainedCombinations(assembler.constraints(preferences), assembler.maxCombinations)
	report.Combinations = len(combinations)
	report.Truncated = truncated
	if truncated {
		assembler.logger.Warn("combination limit reached, remaining schedules were not generated",
			zap.Uint64("limit", assembler.maxCombinations),
			zap.Int("courses", len(domains)),
		)
	}

	//** Assemble and filter schedules
	seen := make(map[uuid.UUID]bool)
	for _, combination := range combinations {
		schedule := assembler.assemble(combination)
		if seen[schedule.Key] {
			continue
		}
		seen[schedule.Key] = true

		if assembler.matches(schedule, preferences) {
			schedules = append(schedules, schedule)
		}
	}

	//** Rank
	slices.SortStableFunc(schedules, func(schedule1, schedule2 Schedule) int {
		return cmp.Compare(schedule2.AverageRating, schedule1.AverageRating)
	})

	return schedules, report
}

func (assembler *scheduleAssemblerStandard) assemble(combination []SelectionUnit) Schedule {
	sections := lo.FlatMap(combination, func(unit SelectionUnit, _ int) []Section {
		return lo.Map(unit.Sections, func(section Section, _ int) Section { return section.Copy() })
	})
	groups := assembler.grouper.GroupConflicts(sections)
	unitsLow, unitsHigh := combinationUnits(combination)

	schedule := Schedule{
		Key:           scheduleKey(sections),
		Sections:      sections,
		AverageRating: averageRating(combination),
		UnitsLow:      unitsLow,
		UnitsHigh:     unitsHigh,
		WithConflicts: HasConflicts(groups),
	}
	if schedule.WithConflicts {
		schedule.ConflictGroups = FlattenConflicts(groups)
	}
	return schedule
}

// Checks every preference on a complete schedule
func (assembler *scheduleAssemblerStandard) matches(schedule Schedule, preferences Preferences) bool {
	if schedule.WithConflicts && !preferences.AllowsConflicts() {
		return false
	}
	if !preferences.UnitsMatch(schedule.UnitsLow, schedule.UnitsHigh) {
		return false
	}
	if !preferences.RatingMatch(schedule.AverageRating) {
		return false
	}
	return lo.EveryBy(schedule.Sections, func(section Section) bool {
		return lo.EveryBy(section.Meetings, preferences.Within)
	})
}

// Monotone preferences, checked on partial combinations so doomed branches are never expanded
func (assembler *scheduleAssemblerStandard) constraints(preferences Preferences) []func(partial []SelectionUnit) bool {
	constraints := []func(partial []SelectionUnit) bool{
		// Time window
		func(partial []SelectionUnit) bool {
			return lo.EveryBy(partial[len(partial)-1].Sections, func(section Section) bool {
				return lo.EveryBy(section.Meetings, preferences.Within)
			})
		},
	}

	if preferences.MaxUnits != nil {
		constraints = append(constraints, func(partial []SelectionUnit) bool {
			low, _ := combinationUnits(partial)
			return low <= *preferences.MaxUnits
		})
	}

	if !preferences.AllowsConflicts() {
		constraints = append(constraints, func(partial []SelectionUnit) bool {
			previous := lo.FlatMap(partial[:len(partial)-1], func(unit SelectionUnit, _ int) []Section { return unit.Sections })
			added := partial[len(partial)-1].Sections

			for i, section := range added {
				// Within the unit itself
				for _, other := range added[i+1:] {
					if assembler.detector.Conflicts(section, other) {
						return false
					}
				}
				if lo.SomeBy(previous, func(other Section) bool { return assembler.detector.Conflicts(section, other) }) {
					return false
				}
			}
			return true
		})
	}

	return constraints
}
