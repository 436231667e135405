package model

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/mitchellh/mapstructure"
	"github.com/samber/lo"
)

type RawModelInput struct {
	Sections    []Section   `mapstructure:"sections"`
	Preferences Preferences `mapstructure:"preferences"`
}

type ModelInput struct {
	Sections    []Section
	Preferences Preferences
	Courses     []string // Course ids in order of first appearance
}

var validate = newValidator()

func InputFromJson(file string) (ModelInput, error) {
	bytes, err := os.ReadFile(file)
	if err != nil {
		return ModelInput{}, fmt.Errorf("cannot read input file: %w", err)
	}

	var inputJson map[string]any
	if err := json.Unmarshal(bytes, &inputJson); err != nil {
		return ModelInput{}, fmt.Errorf("cannot parse input file: %w", err)
	}

	rawInput, err := DecodeRawInput(inputJson)
	if err != nil {
		return ModelInput{}, err
	}
	return ProcessRawInput(rawInput)
}

// DecodeRawInput maps a generic JSON document onto the input structures. A scalar classPair is read as a one-element list
func DecodeRawInput(inputJson map[string]any) (RawModelInput, error) {
	var rawInput RawModelInput
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       mapstructure.ComposeDecodeHookFunc(scalarToSliceHook, wholeNumberHook),
		WeaklyTypedInput: true,
		Result:           &rawInput,
	})
	if err != nil {
		return RawModelInput{}, err
	}
	if err := decoder.Decode(inputJson); err != nil {
		return RawModelInput{}, fmt.Errorf("cannot decode input: %w", err)
	}
	return rawInput, nil
}

func ProcessRawInput(rawInput RawModelInput) (ModelInput, error) {
	//** Validate sections
	classNumbers := make(map[uint64]bool)
	for i, section := range rawInput.Sections {
		if err := validate.Struct(section); err != nil {
			return ModelInput{}, fmt.Errorf("invalid section at position %d (class number %d): %w", i, section.ClassNumber, err)
		}
		if classNumbers[section.ClassNumber] {
			return ModelInput{}, fmt.Errorf("duplicate class number %d", section.ClassNumber)
		}
		classNumbers[section.ClassNumber] = true
	}

	//** Validate preferences
	if err := validate.Struct(rawInput.Preferences); err != nil {
		return ModelInput{}, fmt.Errorf("invalid preferences: %w", err)
	}

	return ModelInput{
		Sections:    rawInput.Sections,
		Preferences: rawInput.Preferences,
		Courses:     lo.Uniq(lo.Map(rawInput.Sections, func(section Section, _ int) string { return section.CourseId })),
	}, nil
}

func newValidator() *validator.Validate {
	validate := validator.New()
	validate.RegisterValidation("clock", func(field validator.FieldLevel) bool {
		_, ok := clockMinutes(field.Field().String())
		return ok
	})
	validate.RegisterStructValidation(meetingStructLevel, Meeting{})
	validate.RegisterStructValidation(preferencesStructLevel, Preferences{})
	return validate
}

// Start and end are both present or both absent, and a timed meeting ends after it starts
func meetingStructLevel(level validator.StructLevel) {
	meeting := level.Current().Interface().(Meeting)
	if (meeting.StartTime == "") != (meeting.EndTime == "") {
		level.ReportError(meeting.StartTime, "StartTime", "start_time", "both_or_neither", "")
		return
	}
	if start, end, ok := meeting.Interval(); ok && end <= start {
		level.ReportError(meeting.EndTime, "EndTime", "end_time", "after_start", "")
	}
}

func preferencesStructLevel(level validator.StructLevel) {
	preferences := level.Current().Interface().(Preferences)
	if preferences.MinUnits != nil && preferences.MaxUnits != nil && *preferences.MinUnits > *preferences.MaxUnits {
		level.ReportError(preferences.MaxUnits, "MaxUnits", "maxUnits", "gte_min", "")
	}
	if preferences.MinInstructorRating != nil && preferences.MaxInstructorRating != nil && *preferences.MinInstructorRating > *preferences.MaxInstructorRating {
		level.ReportError(preferences.MaxInstructorRating, "MaxInstructorRating", "maxInstructorRating", "gte_min", "")
	}
	start, startOk := clockMinutes(preferences.StartTime)
	end, endOk := clockMinutes(preferences.EndTime)
	if startOk && endOk && end <= start {
		level.ReportError(preferences.EndTime, "EndTime", "endTime", "after_start", "")
	}
}

// Lifts a single number into a slice so "classPair": 123 reads like "classPair": [123], and splits compact day strings such as "MoWeFr"
func scalarToSliceHook(from reflect.Type, to reflect.Type, data any) (any, error) {
	if to.Kind() != reflect.Slice {
		return data, nil
	}
	switch from.Kind() {
	case reflect.String:
		if to != reflect.TypeOf([]Day{}) {
			return data, nil
		}
		return splitDays(reflect.ValueOf(data).String()), nil
	case reflect.Float32, reflect.Float64, reflect.Int, reflect.Int64, reflect.Uint, reflect.Uint64:
		return []any{data}, nil
	}
	return data, nil
}

// Rejects negative or fractional numbers bound for unsigned fields such as classNumber and classPair
func wholeNumberHook(from reflect.Type, to reflect.Type, data any) (any, error) {
	if to.Kind() != reflect.Uint64 {
		return data, nil
	}
	switch from.Kind() {
	case reflect.Float32, reflect.Float64:
		number := reflect.ValueOf(data).Float()
		if number < 0 || number != math.Trunc(number) || math.IsInf(number, 0) {
			return nil, fmt.Errorf("%v is not a non-negative whole number", data)
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if reflect.ValueOf(data).Int() < 0 {
			return nil, fmt.Errorf("%v is not a non-negative whole number", data)
		}
	}
	return data, nil
}

func splitDays(compact string) []string {
	compact = strings.ReplaceAll(compact, " ", "")
	days := make([]string, 0, len(compact)/2)
	for i := 0; i+1 < len(compact); i += 2 {
		days = append(days, compact[i:i+2])
	}
	if len(compact)%2 == 1 {
		days = append(days, compact[len(compact)-1:]) // Left for validation to reject
	}
	return days
}
