package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConflicts(t *testing.T) {
	t.Run("Overlapping meetings on a shared day", func(t *testing.T) {
		//** Arrange
		section1 := newSection("X", 1, Open, nil, newMeeting("09:00", "10:00", Monday))
		section2 := newSection("Y", 2, Open, nil, newMeeting("09:30", "10:30", Monday, Wednesday))

		//** Act and assert
		assert.True(t, Conflicts(section1, section2))
		assert.True(t, Conflicts(section2, section1))
	})

	t.Run("Back to back meetings do not conflict", func(t *testing.T) {
		section1 := newSection("X", 1, Open, nil, newMeeting("09:00", "10:00", Monday))
		section2 := newSection("Y", 2, Open, nil, newMeeting("10:00", "11:00", Monday))

		assert.False(t, Conflicts(section1, section2))
		assert.False(t, Conflicts(section2, section1))
	})

	t.Run("Different days do not conflict", func(t *testing.T) {
		section1 := newSection("X", 1, Open, nil, newMeeting("09:00", "10:00", Monday, Wednesday))
		section2 := newSection("Y", 2, Open, nil, newMeeting("09:00", "10:00", Tuesday, Thursday))

		assert.False(t, Conflicts(section1, section2))
	})

	t.Run("Same class number never conflicts", func(t *testing.T) {
		section := newSection("X", 1, Open, nil, newMeeting("09:00", "10:00", Monday))
		copied := section.Copy()
		copied.Meetings = []Meeting{newMeeting("09:15", "09:45", Monday)}

		assert.False(t, Conflicts(section, section))
		assert.False(t, Conflicts(section, copied))
	})

	t.Run("Untimed or malformed meetings never conflict", func(t *testing.T) {
		timed := newSection("X", 1, Open, nil, newMeeting("09:00", "10:00", Monday))
		untimed := newSection("Y", 2, Open, nil, newMeeting("", "", Monday))
		malformed := newSection("Z", 3, Open, nil, newMeeting("25:00", "26:00", Monday))

		assert.False(t, Conflicts(timed, untimed))
		assert.False(t, Conflicts(untimed, timed))
		assert.False(t, Conflicts(timed, malformed))
	})

	t.Run("Any conflicting meeting pair is enough", func(t *testing.T) {
		lecture := newSection("X", 1, Open, nil,
			newMeeting("09:00", "10:00", Monday, Wednesday),
			newMeeting("13:00", "14:00", Friday),
		)
		other := newSection("Y", 2, Open, nil,
			newMeeting("08:00", "09:00", Monday),
			newMeeting("13:30", "14:30", Friday),
		)

		assert.True(t, Conflicts(lecture, other))
	})

	t.Run("Symmetry", func(t *testing.T) {
		sections := []Section{
			newSection("A", 1, Open, nil, newMeeting("08:00", "09:15", Monday, Wednesday)),
			newSection("B", 2, Open, nil, newMeeting("09:00", "10:00", Monday)),
			newSection("C", 3, Open, nil, newMeeting("09:15", "10:30", Wednesday)),
			newSection("D", 4, Open, nil, newMeeting("", "", Friday)),
			newSection("E", 5, Open, nil, newMeeting("10:00", "12:00", Monday, Wednesday, Friday)),
		}

		for _, section1 := range sections {
			for _, section2 := range sections {
				assert.Equal(t, Conflicts(section1, section2), Conflicts(section2, section1), "%d vs %d", section1.ClassNumber, section2.ClassNumber)
			}
		}
	})
}

func TestMeetingsOverlap(t *testing.T) {
	detector := NewConflictDetector()

	scenarios := []struct {
		meeting1, meeting2 Meeting
		overlap            bool
	}{
		{newMeeting("09:00", "10:00", Monday), newMeeting("09:59", "11:00", Monday), true},
		{newMeeting("09:00", "10:00", Monday), newMeeting("08:00", "09:00", Monday), false},
		{newMeeting("09:00", "12:00", Tuesday), newMeeting("10:00", "11:00", Tuesday), true},
		{newMeeting("9:00", "10:00", Tuesday), newMeeting("09:30", "11:00", Tuesday), true},
		{newMeeting("09:00", "10:00"), newMeeting("09:00", "10:00", Tuesday), false},
	}

	for _, scenario := range scenarios {
		assert.Equal(t, scenario.overlap, detector.MeetingsOverlap(scenario.meeting1, scenario.meeting2))
	}
}
