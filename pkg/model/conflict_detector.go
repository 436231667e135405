package model

import (
	"slices"

	"github.com/samber/lo"
)

type ConflictDetector interface {
	// Checks whether section1 and section2 meet at overlapping times on at least one shared day. A section never conflicts with itself
	Conflicts(section1, section2 Section) bool

	// Checks whether two meetings overlap in time on a shared day. Meetings without a fixed time never overlap
	MeetingsOverlap(meeting1, meeting2 Meeting) bool
}

type conflictDetectorStandard struct{}

func NewConflictDetector() ConflictDetector {
	return &conflictDetectorStandard{}
}

var defaultDetector = NewConflictDetector()

// Conflicts checks section1 against section2 with the standard detector
func Conflicts(section1, section2 Section) bool {
	return defaultDetector.Conflicts(section1, section2)
}

func (detector *conflictDetectorStandard) Conflicts(section1, section2 Section) bool {
	if section1.ClassNumber == section2.ClassNumber {
		return false
	}

	// Any overlapping meeting pair is enough
	return lo.SomeBy(section1.Meetings, func(meeting1 Meeting) bool {
		return lo.SomeBy(section2.Meetings, func(meeting2 Meeting) bool {
			return detector.MeetingsOverlap(meeting1, meeting2)
		})
	})
}

func (detector *conflictDetectorStandard) MeetingsOverlap(meeting1, meeting2 Meeting) bool {
	start1, end1, ok1 := meeting1.Interval()
	start2, end2, ok2 := meeting2.Interval()
	if !ok1 || !ok2 {
		return false
	}

	if !lo.SomeBy(meeting1.Days, func(day Day) bool { return slices.Contains(meeting2.Days, day) }) {
		return false
	}

	// Half-open intervals: ending exactly when the other starts is not an overlap
	return start1 < end2 && start2 < end1
}
