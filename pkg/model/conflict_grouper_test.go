package model

import (
	"testing"

	"github.com/onsi/gomega"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
)

func TestGroupConflicts(t *testing.T) {
	t.Run("Correct flow", func(t *testing.T) {
		//** Arrange
		// 1 overlaps 2, 2 overlaps 3, 1 and 3 only touch; 4 and 5 overlap on Tuesday; 6 is untimed
		items := []Section{
			newSection("A", 1, Open, nil, newMeeting("09:00", "10:00", Monday)),
			newSection("B", 2, Open, nil, newMeeting("09:30", "10:30", Monday)),
			newSection("C", 3, Open, nil, newMeeting("10:15", "11:00", Monday)),
			newSection("D", 4, Open, nil, newMeeting("09:00", "10:00", Tuesday)),
			newSection("E", 5, Open, nil, newMeeting("09:45", "10:15", Tuesday, Thursday)),
			newSection("F", 6, Open, nil, newMeeting("", "", Monday, Tuesday)),
		}

		//** Act
		groups := GroupConflicts(items)

		//** Assert
		assert.Equal(t, [][]uint64{{1, 2, 3}, {4, 5}, {6}}, lo.Map(groups, func(group []Section, _ int) []uint64 {
			return classNumbersOf(group)
		}))
		assert.True(t, HasConflicts(groups))
		assert.Equal(t, []uint64{1, 2, 3, 4, 5}, classNumbersOf(FlattenConflicts(groups)))
	})

	t.Run("No conflicts", func(t *testing.T) {
		items := []Section{
			newSection("A", 1, Open, nil, newMeeting("09:00", "10:00", Monday)),
			newSection("B", 2, Open, nil, newMeeting("10:00", "11:00", Monday)),
			newSection("C", 3, Open, nil, newMeeting("09:00", "10:00", Friday)),
		}

		groups := GroupConflicts(items)

		assert.Len(t, groups, 3)
		assert.False(t, HasConflicts(groups))
		assert.Empty(t, FlattenConflicts(groups))
	})

	t.Run("Empty input", func(t *testing.T) {
		groups := GroupConflicts(nil)

		assert.Empty(t, groups)
		assert.False(t, HasConflicts(groups))
	})

	t.Run("Groups partition the input", func(t *testing.T) {
		g := gomega.NewWithT(t)
		items := make([]Section, 0)
		for i := 0; i < 12; i++ {
			start := []string{"08:00", "08:30", "09:00", "13:00"}[i%4]
			end := []string{"09:00", "09:30", "10:00", "14:00"}[i%4]
			day := Days[i%len(Days)]
			items = append(items, newSection("A", uint64(i+1), Open, nil, newMeeting(start, end, day)))
		}

		groups := GroupConflicts(items)

		flattened := lo.Flatten(groups)
		g.Expect(classNumbersOf(flattened)).To(gomega.ConsistOf(lo.Map(items, func(item Section, _ int) any { return item.ClassNumber })...))
		g.Expect(lo.Uniq(classNumbersOf(flattened))).To(gomega.HaveLen(len(items)))
	})

	t.Run("Members are copies", func(t *testing.T) {
		items := []Section{newSection("A", 1, Open, nil, newMeeting("09:00", "10:00", Monday))}

		groups := GroupConflicts(items)
		groups[0][0].Meetings[0].Days[0] = Friday

		assert.Equal(t, Monday, items[0].Meetings[0].Days[0])
	})
}
