package benchmark

import (
	"context"
	"runtime"
	"sync"
	"time"

	"github.com/edaniels/golog"
	"github.com/pkg/errors"

	"github.com/nvr-ai/go-collision/collision"
	"github.com/nvr-ai/go-collision/profiler"
)

// corpusFrames is how many distinct synthetic frames each scenario cycles
// through, enough to defeat any accidental cache friendliness.
const corpusFrames = 8

// Suite manages and executes benchmark scenarios against the collision
// engine.
type Suite struct {
	scenarios []Scenario
	outputDir string
	seed      int64
	logger    golog.Logger
	prof      *profiler.RuntimeProfiler

	mu             sync.RWMutex
	results        []PerformanceMetrics
	framesAnalyzed float64
}

// NewSuiteArgs represents the arguments for creating a benchmark suite.
type NewSuiteArgs struct {
	// OutputPath is where result JSON is written.
	OutputPath string
	// Seed drives the synthetic corpus; 0 means a fixed default.
	Seed int64
	// Logger receives progress output; nil means a named global logger.
	Logger golog.Logger
	// Profile enables the runtime profiler for the duration of the run.
	Profile bool
}

// NewSuite creates a new benchmark suite.
func NewSuite(args NewSuiteArgs) *Suite {
	if args.Seed == 0 {
		args.Seed = 42
	}
	if args.Logger == nil {
		args.Logger = golog.NewLogger("benchmark")
	}

	s := &Suite{
		outputDir: args.OutputPath,
		seed:      args.Seed,
		logger:    args.Logger,
		scenarios: make([]Scenario, 0),
		results:   make([]PerformanceMetrics, 0),
	}
	if args.Profile {
		s.prof = profiler.NewRuntimeProfiler(profiler.ProfilingOptions{
			ReportInterval: 5 * time.Second,
			Logger:         args.Logger,
		})
		s.prof.AddMetricsCollector(s)
	}
	return s
}

// AddScenario adds a scenario to the suite.
func (bs *Suite) AddScenario(scenario Scenario) {
	bs.mu.Lock()
	defer bs.mu.Unlock()
	bs.scenarios = append(bs.scenarios, scenario)
}

// CollectMetrics implements profiler.MetricsCollector.
func (bs *Suite) CollectMetrics() map[string]float64 {
	bs.mu.RLock()
	defer bs.mu.RUnlock()
	return map[string]float64{
		"frames_analyzed": bs.framesAnalyzed,
	}
}

// RunScenario executes a single benchmark scenario.
func (bs *Suite) RunScenario(ctx context.Context, scenario Scenario) (*PerformanceMetrics, error) {
	corpus := GenerateCorpus(scenario.Resolution, scenario.ObjectCount, corpusFrames, bs.seed)
	engine := collision.NewEngine(collision.Options{Workers: scenario.Workers})

	metrics := &PerformanceMetrics{
		Scenario:     scenario,
		Timestamp:    time.Now(),
		DangerCounts: make(map[string]int),
	}

	// Warmup runs.
	for i := 0; i < scenario.WarmupRuns; i++ {
		frame := corpus[i%len(corpus)]
		if _, err := engine.Analyze(frame.Map, frame.Objects); err != nil {
			return nil, errors.Wrap(err, "benchmark: warmup analyze")
		}
	}

	var startMem runtime.MemStats
	runtime.GC()
	runtime.ReadMemStats(&startMem)

	startTime := time.Now()
	totalObjects := 0
	failed := 0

	for i := 0; i < scenario.Iterations; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		frame := corpus[i%len(corpus)]
		var done func()
		if bs.prof != nil {
			done = bs.prof.StartOperation("analyze")
		}
		results, err := engine.Analyze(frame.Map, frame.Objects)
		if done != nil {
			done()
		}
		if err != nil {
			failed++
			continue
		}

		totalObjects += len(results)
		for _, obj := range results {
			metrics.DangerCounts[obj.Danger.String()]++
		}

		bs.mu.Lock()
		bs.framesAnalyzed++
		bs.mu.Unlock()
	}

	totalDuration := time.Since(startTime)

	var endMem runtime.MemStats
	runtime.GC()
	runtime.ReadMemStats(&endMem)

	metrics.TotalDuration = totalDuration
	metrics.FramesPerSecond = float64(scenario.Iterations) / totalDuration.Seconds()
	metrics.ObjectsPerSecond = float64(totalObjects) / totalDuration.Seconds()
	metrics.ObjectCount = totalObjects
	metrics.ErrorRate = float64(failed) / float64(scenario.Iterations)

	metrics.MemoryStats = MemoryMetrics{
		AllocBytes:      endMem.Alloc,
		TotalAllocBytes: endMem.TotalAlloc - startMem.TotalAlloc,
		SysBytes:        endMem.Sys,
		NumGC:           endMem.NumGC - startMem.NumGC,
		HeapAllocBytes:  endMem.HeapAlloc,
		HeapSysBytes:    endMem.HeapSys,
	}
	metrics.CPUStats = CPUMetrics{
		NumCPU: runtime.NumCPU(),
	}

	return metrics, nil
}

// RunAllScenarios executes every scenario in order and stores the results.
func (bs *Suite) RunAllScenarios(ctx context.Context) error {
	if bs.prof != nil {
		bs.prof.Start()
		defer bs.prof.Stop()
	}

	bs.mu.RLock()
	scenarios := make([]Scenario, len(bs.scenarios))
	copy(scenarios, bs.scenarios)
	bs.mu.RUnlock()

	for _, scenario := range scenarios {
		bs.logger.Infow("running scenario",
			"name", scenario.Name,
			"resolution", scenario.Resolution.Name,
			"objects", scenario.ObjectCount,
			"workers", scenario.Workers,
		)

		metrics, err := bs.RunScenario(ctx, scenario)
		if err != nil {
			return errors.Wrapf(err, "benchmark: scenario %s", scenario.Name)
		}

		bs.logger.Infow("scenario complete",
			"name", scenario.Name,
			"fps", metrics.FramesPerSecond,
			"objects_per_second", metrics.ObjectsPerSecond,
		)

		bs.mu.Lock()
		bs.results = append(bs.results, *metrics)
		bs.mu.Unlock()
	}

	if bs.outputDir != "" {
		path, err := SaveResults(bs.outputDir, bs.GetResults())
		if err != nil {
			return err
		}
		bs.logger.Infow("results saved", "path", path)
	}
	return nil
}

// GetResults returns a copy of the collected results.
func (bs *Suite) GetResults() []PerformanceMetrics {
	bs.mu.RLock()
	defer bs.mu.RUnlock()
	results := make([]PerformanceMetrics, len(bs.results))
	copy(results, bs.results)
	return results
}
