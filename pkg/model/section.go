package model

import (
	"slices"
	"time"

	"github.com/samber/lo"
)

type Day string

const (
	Monday    Day = "Mo"
	Tuesday   Day = "Tu"
	Wednesday Day = "We"
	Thursday  Day = "Th"
	Friday    Day = "Fr"
)

var Days = []Day{Monday, Tuesday, Wednesday, Thursday, Friday}

type EnrollmentStatus string

const (
	Open       EnrollmentStatus = "Open"
	Closed     EnrollmentStatus = "Closed"
	Waitlisted EnrollmentStatus = "Waitlisted"
)

const clockLayout = "15:04"

type Professor struct {
	Name string  `json:"name" mapstructure:"name" validate:"required"`
	Id   *string `json:"id,omitempty" mapstructure:"id"`
}

// Meeting is a recurring weekly block. StartTime and EndTime are "HH:MM" strings, both empty when the meeting has no fixed time
type Meeting struct {
	Days      []Day  `json:"days" mapstructure:"days" validate:"dive,oneof=Mo Tu We Th Fr"`
	StartTime string `json:"start_time,omitempty" mapstructure:"start_time" validate:"omitempty,clock"`
	EndTime   string `json:"end_time,omitempty" mapstructure:"end_time" validate:"omitempty,clock"`
	Location  string `json:"location,omitempty" mapstructure:"location"`
}

type Section struct {
	CourseId         string           `json:"courseId" mapstructure:"courseId" validate:"required"`
	ClassNumber      uint64           `json:"classNumber" mapstructure:"classNumber" validate:"required"`
	Component        string           `json:"component" mapstructure:"component"`
	Units            string           `json:"units" mapstructure:"units"`
	EnrollmentStatus EnrollmentStatus `json:"enrollmentStatus" mapstructure:"enrollmentStatus" validate:"required,oneof=Open Closed Waitlisted"`
	Professors       []Professor      `json:"professors" mapstructure:"professors" validate:"dive"`
	Meetings         []Meeting        `json:"meetings" mapstructure:"meetings" validate:"dive"`
	ClassPair        []uint64         `json:"classPair,omitempty" mapstructure:"classPair"`
	Rating           float64          `json:"rating" mapstructure:"rating" validate:"gte=0"`
}

// Timed reports whether the meeting has both a start and an end time that can be read as minutes since midnight
func (meeting Meeting) Timed() bool {
	_, _, ok := meeting.Interval()
	return ok
}

// Interval returns the meeting's [start, end) window in minutes since midnight
func (meeting Meeting) Interval() (start, end uint64, ok bool) {
	if meeting.StartTime == "" || meeting.EndTime == "" {
		return 0, 0, false
	}
	start, ok = clockMinutes(meeting.StartTime)
	if !ok {
		return 0, 0, false
	}
	end, ok = clockMinutes(meeting.EndTime)
	if !ok {
		return 0, 0, false
	}
	return start, end, true
}

func (section Section) IsOpen() bool {
	return section.EnrollmentStatus == Open
}

// Paired reports whether the section links to at least one other section
func (section Section) Paired() bool {
	return len(section.ClassPair) > 0
}

// References reports whether classNumber appears in the section's classPair
func (section Section) References(classNumber uint64) bool {
	return slices.Contains(section.ClassPair, classNumber)
}

// Copy returns a section that shares no slices with the receiver
func (section Section) Copy() Section {
	section.Professors = lo.Map(section.Professors, func(professor Professor, _ int) Professor {
		if professor.Id != nil {
			professor.Id = lo.ToPtr(*professor.Id)
		}
		return professor
	})
	section.Meetings = lo.Map(section.Meetings, func(meeting Meeting, _ int) Meeting {
		meeting.Days = slices.Clone(meeting.Days)
		return meeting
	})
	section.ClassPair = slices.Clone(section.ClassPair)
	return section
}

func clockMinutes(clock string) (uint64, bool) {
	parsed, err := time.Parse(clockLayout, clock)
	if err != nil {
		return 0, false
	}
	return uint64(parsed.Hour()*60 + parsed.Minute()), true
}
