package main

import (
	"testing"

	"github.com/limaJavier/coursescheduling/internal/config"
	"github.com/limaJavier/coursescheduling/pkg/model"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
)

func TestApplyDefaults(t *testing.T) {
	t.Run("Configured defaults fill the gaps", func(t *testing.T) {
		cfg := config.Config{OpenOnly: true, WithTimeConflicts: false}

		preferences := applyDefaults(model.Preferences{}, cfg)

		assert.True(t, preferences.OnlyOpen())
		assert.NotNil(t, preferences.WithTimeConflicts)
		assert.False(t, preferences.AllowsConflicts())
	})

	t.Run("Input values win", func(t *testing.T) {
		cfg := config.Config{OpenOnly: false, WithTimeConflicts: false}
		input := model.Preferences{OpenOnly: lo.ToPtr(true), WithTimeConflicts: lo.ToPtr(true)}

		preferences := applyDefaults(input, cfg)

		assert.True(t, preferences.OnlyOpen())
		assert.True(t, preferences.AllowsConflicts())
	})
}

func TestApplyDefaultsExplicitFalse(t *testing.T) {
	cfg := config.Config{OpenOnly: true, WithTimeConflicts: true}
	input := model.Preferences{OpenOnly: lo.ToPtr(false), WithTimeConflicts: lo.ToPtr(false)}

	preferences := applyDefaults(input, cfg)

	assert.False(t, preferences.OnlyOpen())
	assert.False(t, preferences.AllowsConflicts())
}

func TestConfigPaths(t *testing.T) {
	assert.Equal(t, []string{"/etc/schedules"}, configPaths("/etc/schedules"))

	paths := configPaths("")
	assert.Contains(t, paths, ".")
	assert.Equal(t, ".", paths[len(paths)-1])
}

func TestExampleInput(t *testing.T) {
	//** Arrange
	input, err := model.InputFromJson("testdata/input.json")
	assert.Nil(t, err)
	preferences := applyDefaults(input.Preferences, config.Config{WithTimeConflicts: true})

	//** Act
	schedules, report := model.NewScheduleAssembler(0, nil).Build(input.Sections, preferences)

	//** Assert
	assert.Equal(t, []string{"CSC 101", "MTH 201", "HIS 110"}, input.Courses)
	assert.Equal(t, 3, report.Courses)
	assert.Len(t, schedules, 2)
	// Mo/We 09:00-10:15 runs into 10:00-11:15
	conflicting, ok := lo.Find(schedules, func(schedule model.Schedule) bool { return schedule.WithConflicts })
	assert.True(t, ok)
	assert.Equal(t, []uint64{1001, 2001}, lo.Map(conflicting.ConflictGroups, func(section model.Section, _ int) uint64 { return section.ClassNumber }))
}
