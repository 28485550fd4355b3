package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/edaniels/golog"

	"github.com/nvr-ai/go-collision/benchmark"
)

func main() {
	var (
		outputDir     = flag.String("output", "./benchmark_results", "Output directory for results")
		quick         = flag.Bool("quick", false, "Run quick benchmark scenarios")
		comprehensive = flag.Bool("comprehensive", false, "Run comprehensive benchmark scenarios")
		profile       = flag.Bool("profile", false, "Enable the runtime profiler during the run")
		seed          = flag.Int64("seed", 0, "Corpus seed (0 = default)")
		timeout       = flag.Duration("timeout", 10*time.Minute, "Benchmark timeout duration")
	)
	flag.Parse()

	logger := golog.NewDevelopmentLogger("collision-benchmark")

	suite := benchmark.NewSuite(benchmark.NewSuiteArgs{
		OutputPath: *outputDir,
		Seed:       *seed,
		Logger:     logger,
		Profile:    *profile,
	})

	var scenarios []benchmark.Scenario
	switch {
	case *comprehensive:
		scenarios = benchmark.ComprehensiveScenarios()
	case *quick:
		scenarios = benchmark.QuickScenarios()
	default:
		// Quick by default.
		scenarios = benchmark.QuickScenarios()
	}
	for _, scenario := range scenarios {
		suite.AddScenario(scenario)
	}
	logger.Infow("scenarios loaded", "count", len(scenarios))

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	start := time.Now()
	if err := suite.RunAllScenarios(ctx); err != nil {
		logger.Fatalw("benchmark execution failed", "error", err)
	}
	logger.Infow("benchmark completed", "duration", time.Since(start))

	results := suite.GetResults()
	var bestFPS float64
	var bestScenario string
	for _, result := range results {
		if result.FramesPerSecond > bestFPS {
			bestFPS = result.FramesPerSecond
			bestScenario = result.Scenario.Name
		}
		logger.Infow("result",
			"scenario", result.Scenario.Name,
			"fps", fmt.Sprintf("%.2f", result.FramesPerSecond),
			"memory_mb", fmt.Sprintf("%.2f", float64(result.MemoryStats.AllocBytes)/(1024*1024)),
		)
	}
	logger.Infow("best scenario", "name", bestScenario, "fps", fmt.Sprintf("%.2f", bestFPS))
}

func init() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options]\n\n", filepath.Base(os.Args[0]))
		fmt.Fprintf(os.Stderr, "Benchmark tool for collision analysis performance testing.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s -quick\n", filepath.Base(os.Args[0]))
		fmt.Fprintf(os.Stderr, "  %s -comprehensive -profile -output ./results\n", filepath.Base(os.Args[0]))
	}
}
