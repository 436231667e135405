package model

import "slices"

type combinationGenerator interface {
	// Builds every combination that picks exactly one unit per domain, in lexicographic order (the first domain varies slowest).
	// Constraints are evaluated on each partial combination as it grows; a constraint must be monotone, meaning that once a partial combination violates it, every extension of that partial combination violates it too.
	// Generation stops after limit combinations (0 means no limit); truncated is true if at least one further combination existed.
	//
	// Example:
	//
	//	generator := newCombinationGenerator(domains)
	//
	//	combinations, truncated := generator.ConstrainedCombinations([]func(partial []SelectionUnit) bool{
	//				func(partial []SelectionUnit) bool {
	//					// Only the last unit is new, the rest were already checked
	//					return partial[len(partial)-1].Sections[0].IsOpen()
	//				},
	//			}, 100)
	ConstrainedCombinations(constraints []func(partial []SelectionUnit) bool, limit uint64) (combinations [][]SelectionUnit, truncated bool)
}

func newCombinationGenerator(domains [][]SelectionUnit) combinationGenerator {
	return &combinationGeneratorImplementation{domains: domains}
}

type combinationGeneratorImplementation struct {
	domains [][]SelectionUnit
}

func (generator *combinationGeneratorImplementation) ConstrainedCombinations(constraints []func(partial []SelectionUnit) bool, limit uint64) ([][]SelectionUnit, bool) {
	combinations := make([][]SelectionUnit, 0)
	if len(generator.domains) == 0 {
		return combinations, false
	}

	// Worklist of partial combinations; children are pushed in reverse so the smallest index is popped first
	stack := [][]SelectionUnit{{}}
	for len(stack) > 0 {
		partial := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if len(partial) == len(generator.domains) {
			if limit > 0 && uint64(len(combinations)) == limit {
				return combinations, true
			}
			combinations = append(combinations, partial)
			continue
		}

		domain := generator.domains[len(partial)]
		for i := len(domain) - 1; i >= 0; i-- {
			extended := append(slices.Clip(partial), domain[i]) // Clip forces a fresh backing array per child
			if generator.satisfies(constraints, extended) {
				stack = append(stack, extended)
			}
		}
	}

	return combinations, false
}

func (generator *combinationGeneratorImplementation) satisfies(constraints []func(partial []SelectionUnit) bool, partial []SelectionUnit) bool {
	for _, constraint := range constraints {
		if !constraint(partial) {
			return false
		}
	}
	return true
}
