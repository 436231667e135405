package model

import (
	"fmt"
	"slices"
	"strings"

	"github.com/samber/lo"
)

// SelectionUnit is one schedulable choice for a course: a standalone section or a reciprocally linked pair
type SelectionUnit struct {
	Sections []Section `json:"sections"`
}

// Key identifies the unit by the sorted class numbers of its members
func (unit SelectionUnit) Key() string {
	classNumbers := lo.Map(unit.Sections, func(section Section, _ int) uint64 { return section.ClassNumber })
	slices.Sort(classNumbers)
	return strings.Join(lo.Map(classNumbers, func(classNumber uint64, _ int) string { return fmt.Sprint(classNumber) }), "-")
}

type PairResolver interface {
	// Enumerates every valid selection unit of one course's sections. When openOnly is set, closed standalone sections are dropped and a pair with exactly one open half falls back to that half
	ResolveSelections(sections []Section, openOnly bool) []SelectionUnit
}

type pairResolverStandard struct{}

func NewPairResolver() PairResolver {
	return &pairResolverStandard{}
}

var defaultResolver = NewPairResolver()

// ResolveSelections resolves with the standard resolver
func ResolveSelections(sections []Section, openOnly bool) []SelectionUnit {
	return defaultResolver.ResolveSelections(sections, openOnly)
}

func (resolver *pairResolverStandard) ResolveSelections(sections []Section, openOnly bool) []SelectionUnit {
	units := make([]SelectionUnit, 0)
	emitted := make(map[string]bool)
	emit := func(members ...Section) {
		unit := SelectionUnit{
			Sections: lo.Map(members, func(section Section, _ int) Section { return section.Copy() }),
		}
		key := unit.Key()
		if emitted[key] {
			return
		}
		emitted[key] = true
		units = append(units, unit)
	}

	//** Paired units
	candidates := lo.Filter(sections, func(section Section, _ int) bool { return section.Paired() })
	for i := 0; i < len(candidates)-1; i++ {
		for j := i + 1; j < len(candidates); j++ {
			section1, section2 := candidates[i], candidates[j]
			if !reciprocal(section1, section2) {
				continue
			}

			switch {
			case !openOnly:
				emit(section1, section2)
			case section1.IsOpen() && section2.IsOpen():
				emit(section1, section2)
			case section1.IsOpen():
				emit(section1) // Open half alone
			case section2.IsOpen():
				emit(section2) // Open half alone
			default:
				emit(section1, section2) // Neither open, kept whole
			}
		}
	}

	//** Standalone units
	for i, section := range sections {
		if section.Paired() || referencedByOther(sections, i) {
			continue
		}
		if openOnly && !section.IsOpen() {
			continue
		}
		emit(section)
	}

	return units
}

// Checks whether each section's classPair references the other's class number
func reciprocal(section1, section2 Section) bool {
	return section1.ClassNumber != section2.ClassNumber &&
		section1.References(section2.ClassNumber) &&
		section2.References(section1.ClassNumber)
}

// Checks whether sections[index] is referenced by the classPair of any other section, which makes it the orphaned half of a pair
func referencedByOther(sections []Section, index int) bool {
	classNumber := sections[index].ClassNumber
	for i, section := range sections {
		if i != index && section.ClassNumber != classNumber && section.References(classNumber) {
			return true
		}
	}
	return false
}
