package main

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/limaJavier/coursescheduling/pkg/model"

	"github.com/samber/lo"
)

const (
	executablePath = "../../bin/schedule"
	testDirectory  = "../../test/out/benchmark/"
	KB             = 1024
)

type ResultType int

const (
	found ResultType = iota
	empty
)

var resultTypes = map[ResultType]string{
	found: "found",
	empty: "empty",
}

type TestMetadata struct {
	Name              string
	Courses           int
	SectionsPerCourse int
	Paired            bool
	WithTimeConflicts bool
}

type BenchmarkResult struct {
	Test          TestMetadata
	Limit         uint64
	Duration      int64
	Memory        float32
	CpuPercentage int64
	Result        ResultType
}

func main() {
	tests := getTests()
	limits := getLimits()
	results := make([]BenchmarkResult, 0, len(tests)*len(limits))

	for _, test := range tests {
		for _, limit := range limits {
			fmt.Printf("Benchmarking test \"%v\" with limit \"%v\"\n", test.Name, limit)

			duration, maxMemory, cpuPercentage, result := measure(test.Name, limit)

			results = append(results, BenchmarkResult{
				Test:          test,
				Limit:         limit,
				Duration:      duration,
				Memory:        maxMemory,
				CpuPercentage: cpuPercentage,
				Result:        result,
			})
		}
	}

	toCsv(results)
}

// getTests writes one synthetic input file per shape and returns their metadata
func getTests() []TestMetadata {
	if err := os.MkdirAll(testDirectory, 0755); err != nil {
		log.Fatalf("cannot create test directory: %v", err)
	}

	shapes := []TestMetadata{
		{Courses: 4, SectionsPerCourse: 4, WithTimeConflicts: true},
		{Courses: 6, SectionsPerCourse: 6, WithTimeConflicts: true},
		{Courses: 6, SectionsPerCourse: 6, WithTimeConflicts: false},
		{Courses: 8, SectionsPerCourse: 8, Paired: true, WithTimeConflicts: true},
		{Courses: 8, SectionsPerCourse: 8, Paired: true, WithTimeConflicts: false},
		{Courses: 10, SectionsPerCourse: 6, WithTimeConflicts: false},
	}

	return lo.Map(shapes, func(test TestMetadata, _ int) TestMetadata {
		test.Name = filepath.Join(testDirectory, fmt.Sprintf("c%d_s%d_paired-%v_conflicts-%v.json",
			test.Courses, test.SectionsPerCourse, test.Paired, test.WithTimeConflicts))

		input := map[string]any{
			"sections": syntheticSections(test.Courses, test.SectionsPerCourse, test.Paired),
			"preferences": model.Preferences{
				WithTimeConflicts: lo.ToPtr(test.WithTimeConflicts),
			},
		}
		inputJson, err := json.Marshal(input)
		if err != nil {
			log.Fatalf("cannot marshal test input: %v", err)
		}
		if err := os.WriteFile(test.Name, inputJson, 0666); err != nil {
			log.Fatalf("cannot write test input: %v", err)
		}
		return test
	})
}

func getLimits() []uint64 {
	return []uint64{1000, 10000, 100000}
}

// syntheticSections builds a deterministic catalogue. With paired set, consecutive sections of a course reference each other as lecture and lab
func syntheticSections(courses, sectionsPerCourse int, paired bool) []model.Section {
	sections := make([]model.Section, 0, courses*sectionsPerCourse)
	for course := 0; course < courses; course++ {
		courseId := fmt.Sprintf("BEN %03d", course+100)
		for section := 0; section < sectionsPerCourse; section++ {
			classNumber := uint64((course+1)*1000 + section + 1)
			start := 8 + (course+section)%10

			current := model.Section{
				CourseId:         courseId,
				ClassNumber:      classNumber,
				Component:        "LEC",
				Units:            "3",
				EnrollmentStatus: model.Open,
				Professors:       []model.Professor{{Name: fmt.Sprintf("Professor %d", section%3)}},
				Meetings: []model.Meeting{{
					Days:      []model.Day{model.Days[(course+section)%len(model.Days)]},
					StartTime: fmt.Sprintf("%02d:00", start),
					EndTime:   fmt.Sprintf("%02d:50", start),
				}},
				Rating: float64((course+section)%5) + 0.5,
			}

			if paired {
				if section%2 == 0 {
					current.ClassPair = []uint64{classNumber + 1}
				} else {
					current.Component = "LAB"
					current.Units = "0"
					current.ClassPair = []uint64{classNumber - 1}
				}
			}
			sections = append(sections, current)
		}
	}
	return sections
}

func measure(testFile string, limit uint64) (duration int64, maxMemory float32, cpuPercentage int64, result ResultType) {
	cmd := exec.Command("/usr/bin/time", "-v", executablePath, "-file", testFile, "-out", os.DevNull, "-limit", fmt.Sprint(limit))

	var stdOut bytes.Buffer
	cmd.Stdout = &stdOut
	var stdErr bytes.Buffer
	cmd.Stderr = &stdErr

	cmd.Run()
	if cmd.ProcessState.ExitCode() != 10 && cmd.ProcessState.ExitCode() != 20 {
		log.Fatalf("an error occurred during the execution \"schedule\" at test \"%v\" using limit \"%v\": %v\n", testFile, limit, stdErr.String())
	} else if cmd.ProcessState.ExitCode() == 20 {
		result = empty
	} else {
		result = found
	}
	splits := strings.Split(stdErr.String(), "\n")
	getLine := func(substr string) string {
		line, ok := lo.Find(splits, func(line string) bool {
			return strings.Contains(strings.ToLower(line), substr)
		})
		if !ok {
			log.Fatalf("Substring \"%v\" could not be found", substr)
		}
		return line
	}

	duration = parseDurationLine(getLine("wall clock"))
	maxMemory = parseMemoryLine(getLine("maximum resident set size"))
	cpuPercentage = parseCpuPercentageLine(getLine("percent of cpu"))

	return duration, maxMemory, cpuPercentage, result
}

func toCsv(results []BenchmarkResult) {
	file, err := os.Create("benchmark_results.csv")
	if err != nil {
		log.Panicf("cannot create CSV file: %v", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	header := []string{"Test", "Courses", "SectionsPerCourse", "Paired", "WithTimeConflicts", "Limit", "Duration(ms)", "Memory(MB)", "CPU(%)", "Result"}
	if err := writer.Write(header); err != nil {
		log.Panicf("cannot write CSV header: %v", err)
	}

	for _, result := range results {
		record := []string{
			result.Test.Name,
			fmt.Sprintf("%d", result.Test.Courses),
			fmt.Sprintf("%d", result.Test.SectionsPerCourse),
			fmt.Sprintf("%v", result.Test.Paired),
			fmt.Sprintf("%v", result.Test.WithTimeConflicts),
			fmt.Sprintf("%d", result.Limit),
			fmt.Sprintf("%d", result.Duration),
			fmt.Sprintf("%.1f", result.Memory),
			fmt.Sprintf("%d", result.CpuPercentage),
			resultTypes[result.Result],
		}
		if err := writer.Write(record); err != nil {
			log.Panicf("cannot write CSV record: %v", err)
		}
	}
}

func parseDurationLine(line string) int64 {
	durationStr := strings.Split(line, "(h:mm:ss or m:ss):")[1][1:]
	return parseDuration(durationStr)
}

func parseDuration(durationStr string) int64 {
	parts := strings.Split(durationStr, ":")
	secondsStr := parts[len(parts)-1]
	secondsParts := strings.Split(secondsStr, ".")

	var duration int64
	if len(parts) == 3 { // h:mm:ss
		hours := lo.Must(strconv.Atoi(parts[0]))
		minutes := lo.Must(strconv.Atoi(parts[1]))
		seconds := lo.Must(strconv.Atoi(secondsParts[0]))
		hundredthOfSeconds := lo.Must(strconv.Atoi(secondsParts[1]))
		duration = int64(hours*3600+minutes*60+seconds)*1000 + int64(hundredthOfSeconds*10)
	} else if len(parts) == 2 { // m:ss
		minutes := lo.Must(strconv.Atoi(parts[0]))
		seconds := lo.Must(strconv.Atoi(secondsParts[0]))
		hundredthOfSeconds := lo.Must(strconv.Atoi(secondsParts[1]))
		duration = int64(minutes*60+seconds)*1000 + int64(hundredthOfSeconds*10)
	} else {
		log.Fatalf("unexpected duration format: %v", durationStr)
	}
	return duration
}

func parseMemoryLine(line string) float32 {
	memoryStr := strings.Split(line, ":")[1][1:]
	return float32(lo.Must(strconv.ParseFloat(memoryStr, 32))) / KB
}

func parseCpuPercentageLine(line string) int64 {
	percentageStr := strings.Split(line, ":")[1][1:]
	percentageStr = percentageStr[:len(percentageStr)-1]
	return int64(lo.Must(strconv.Atoi(percentageStr)))
}
