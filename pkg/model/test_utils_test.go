package model

import "github.com/samber/lo"

func newSection(courseId string, classNumber uint64, status EnrollmentStatus, classPair []uint64, meetings ...Meeting) Section {
	return Section{
		CourseId:         courseId,
		ClassNumber:      classNumber,
		Component:        "LEC",
		Units:            "3",
		EnrollmentStatus: status,
		Professors:       []Professor{{Name: "Staff"}},
		Meetings:         meetings,
		ClassPair:        classPair,
	}
}

func newMeeting(start, end string, days ...Day) Meeting {
	return Meeting{Days: days, StartTime: start, EndTime: end}
}

func classNumbersOf(sections []Section) []uint64 {
	return lo.Map(sections, func(section Section, _ int) uint64 { return section.ClassNumber })
}

func unitKeys(units []SelectionUnit) []string {
	return lo.Map(units, func(unit SelectionUnit, _ int) string { return unit.Key() })
}

func withRating(section Section, rating float64) Section {
	section.Rating = rating
	return section
}

func withUnits(section Section, units string) Section {
	section.Units = units
	return section
}
