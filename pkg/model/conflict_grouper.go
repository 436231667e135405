package model

import (
	"slices"

	"github.com/samber/lo"
)

type ConflictGrouper interface {
	// Partitions items into connected components of the conflict graph. Every item belongs to exactly one group; a group of size 1 has no conflicts
	GroupConflicts(items []Section) [][]Section
}

type conflictGrouperStandard struct {
	detector ConflictDetector
}

func NewConflictGrouper(detector ConflictDetector) ConflictGrouper {
	return &conflictGrouperStandard{detector: detector}
}

var defaultGrouper = NewConflictGrouper(defaultDetector)

// GroupConflicts groups items with the standard detector
func GroupConflicts(items []Section) [][]Section {
	return defaultGrouper.GroupConflicts(items)
}

func (grouper *conflictGrouperStandard) GroupConflicts(items []Section) [][]Section {
	conflictGraph := buildConflictGraph(items, grouper.detector)

	visited := make([]bool, len(items))
	groups := make([][]Section, 0)
	for root := 0; root < len(items); root++ {
		if visited[root] {
			continue
		}

		//** Breadth-first traversal of root's component
		component := []int{root}
		visited[root] = true
		for head := 0; head < len(component); head++ {
			current := component[head]
			for neighbor, adjacent := range conflictGraph[current] {
				if adjacent && !visited[neighbor] {
					visited[neighbor] = true
					component = append(component, neighbor)
				}
			}
		}

		// Members keep input order inside the group
		slices.Sort(component)
		groups = append(groups, lo.Map(component, func(index int, _ int) Section {
			return items[index].Copy()
		}))
	}

	return groups
}

// HasConflicts reports whether any group holds more than one item
func HasConflicts(groups [][]Section) bool {
	return lo.SomeBy(groups, func(group []Section) bool { return len(group) > 1 })
}

// FlattenConflicts returns the members of every group with more than one item, in group order
func FlattenConflicts(groups [][]Section) []Section {
	return lo.Flatten(lo.Filter(groups, func(group []Section, _ int) bool { return len(group) > 1 }))
}

// Conflict matrix' coordinate (i, j) = true if and only if items i and j conflict (i.e. it represents an undirected graph where an edge indicates a time overlap). The diagonal is left false since an item never conflicts with itself
func buildConflictGraph(items []Section, detector ConflictDetector) [][]bool {
	conflictGraph := make([][]bool, len(items))
	for i := 0; i < len(items); i++ {
		conflictGraph[i] = make([]bool, len(items))
	}

	for i := 0; i < len(items)-1; i++ {
		for j := i + 1; j < len(items); j++ {
			if detector.Conflicts(items[i], items[j]) {
				conflictGraph[i][j] = true
				conflictGraph[j][i] = true
			}
		}
	}

	return conflictGraph
}
