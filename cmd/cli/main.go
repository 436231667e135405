package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path"

	"github.com/limaJavier/coursescheduling/internal/config"
	"github.com/limaJavier/coursescheduling/internal/logger"
	"github.com/limaJavier/coursescheduling/pkg/model"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

type output struct {
	Schedules []model.Schedule `json:"schedules"`
	Report    model.BuildReport `json:"report"`
}

func main() {
	// Define arguments
	filePathPtr := flag.String("file", "", "Path to the input file")
	outFilePathPtr := flag.String("out", "", "Path to the file where the output will be written; if empty, it'll be written into the Standard Output")
	limitPtr := flag.Uint64("limit", 0, "Maximum number of combinations to generate; if 0, the configured MAX_COMBINATIONS is used")
	configPathPtr := flag.String("config", "", "Directory holding config.{json,yaml}; if empty, the executable's directory and the working directory are searched")
	flag.Parse()
	filePath := *filePathPtr
	outFile := *outFilePathPtr

	// Validate arguments
	if filePath == "" {
		log.Fatal("an input file must be specified")
	}

	// Load configuration
	cfg, err := config.Load(configPaths(*configPathPtr)...)
	if err != nil {
		log.Fatalf("cannot load configuration: %v", err)
	}
	zapLogger, err := logger.New(cfg.IsProduction(), cfg.LogLevel)
	if err != nil {
		log.Fatalf("cannot build logger: %v", err)
	}

	// Extract input
	input, err := model.InputFromJson(filePath)
	if err != nil {
		log.Fatalf("cannot parse input file: %v", err)
	}
	preferences := applyDefaults(input.Preferences, cfg)

	limit := lo.Ternary(*limitPtr > 0, *limitPtr, cfg.MaxCombinations)
	zapLogger.Info("building schedules",
		zap.String("file", filePath),
		zap.Int("sections", len(input.Sections)),
		zap.Int("courses", len(input.Courses)),
		zap.Uint64("limit", limit),
	)

	// Build schedules
	assembler := model.NewScheduleAssembler(limit, zapLogger)
	schedules, report := assembler.Build(input.Sections, preferences)

	zapLogger.Info("schedules built",
		zap.Int("schedules", len(schedules)),
		zap.Int("combinations", report.Combinations),
		zap.Bool("truncated", report.Truncated),
	)

	// Marshal output into json
	outputJson, err := json.Marshal(output{Schedules: schedules, Report: report})
	if err != nil {
		log.Fatalf("an error occurred while building output json: %v", err)
	}

	// Verify outfile is empty, if so then write the results to the Standard Output
	if outFile == "" {
		fmt.Println(string(outputJson))
	} else {
		err := os.WriteFile(outFile, outputJson, 0666)
		if err != nil {
			log.Fatalf("an error occurred while writing to the output file: %v", err)
		}
	}

	_ = zapLogger.Sync()
	if len(schedules) == 0 {
		os.Exit(20)
	}
	os.Exit(10)
}

// applyDefaults fills what the input file leaves open with the configured defaults
func applyDefaults(preferences model.Preferences, cfg config.Config) model.Preferences {
	if preferences.OpenOnly == nil {
		preferences.OpenOnly = lo.ToPtr(cfg.OpenOnly)
	}
	if preferences.WithTimeConflicts == nil {
		preferences.WithTimeConflicts = lo.ToPtr(cfg.WithTimeConflicts)
	}
	return preferences
}

func configPaths(explicit string) []string {
	if explicit != "" {
		return []string{explicit}
	}

	paths := []string{"."}
	execPath, err := os.Executable()
	if err == nil {
		paths = append([]string{path.Dir(execPath)}, paths...)
	}
	return paths
}
