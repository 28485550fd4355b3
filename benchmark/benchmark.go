// Package benchmark - Functionality for running collision-engine
// benchmarks over synthetic depth scenes.
package benchmark

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// Resolution represents depth-map dimensions for benchmarking.
type Resolution struct {
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Name   string `json:"name"`
}

// Common depth-map resolutions. MiDaS-class estimators emit small square
// planes; the larger entries cover callers that upsample before analysis.
var CommonResolutions = []Resolution{
	{Width: 128, Height: 96, Name: "128x96"},
	{Width: 256, Height: 256, Name: "256x256"},
	{Width: 384, Height: 384, Name: "384x384"},
	{Width: 640, Height: 480, Name: "640x480"},
}

// Scenario defines a specific benchmark configuration.
type Scenario struct {
	Name        string     `json:"name"`
	Resolution  Resolution `json:"resolution"`
	ObjectCount int        `json:"object_count"`
	Workers     int        `json:"workers"`
	Iterations  int        `json:"iterations"`
	WarmupRuns  int        `json:"warmup_runs"`
}

// ScenarioBuilder helps build scenarios with a fluent API.
type ScenarioBuilder struct {
	scenario Scenario
}

// NewScenarioBuilder creates a new scenario builder.
func NewScenarioBuilder(name string) *ScenarioBuilder {
	return &ScenarioBuilder{
		scenario: Scenario{
			Name:        name,
			Resolution:  Resolution{Width: 256, Height: 256, Name: "256x256"},
			ObjectCount: 5,
			Workers:     1,
			Iterations:  100,
			WarmupRuns:  10,
		},
	}
}

// WithResolution sets the depth-map resolution.
func (sb *ScenarioBuilder) WithResolution(width, height int) *ScenarioBuilder {
	sb.scenario.Resolution = Resolution{
		Width:  width,
		Height: height,
		Name:   fmt.Sprintf("%dx%d", width, height),
	}
	return sb
}

// WithObjectCount sets how many labeled objects each frame carries.
func (sb *ScenarioBuilder) WithObjectCount(count int) *ScenarioBuilder {
	sb.scenario.ObjectCount = count
	return sb
}

// WithWorkers sets the engine's per-object worker count.
func (sb *ScenarioBuilder) WithWorkers(workers int) *ScenarioBuilder {
	sb.scenario.Workers = workers
	return sb
}

// WithIterations sets the number of measured iterations.
func (sb *ScenarioBuilder) WithIterations(iterations int) *ScenarioBuilder {
	sb.scenario.Iterations = iterations
	return sb
}

// WithWarmupRuns sets the number of unmeasured warmup iterations.
func (sb *ScenarioBuilder) WithWarmupRuns(runs int) *ScenarioBuilder {
	sb.scenario.WarmupRuns = runs
	return sb
}

// Build returns the configured scenario.
func (sb *ScenarioBuilder) Build() Scenario {
	return sb.scenario
}

// QuickScenarios returns a small scenario set for smoke runs.
func QuickScenarios() []Scenario {
	return []Scenario{
		NewScenarioBuilder("quick_256_5obj").Build(),
		NewScenarioBuilder("quick_640x480_10obj").
			WithResolution(640, 480).
			WithObjectCount(10).
			WithIterations(50).
			Build(),
	}
}

// ComprehensiveScenarios sweeps resolutions, object counts and worker
// counts.
func ComprehensiveScenarios() []Scenario {
	var scenarios []Scenario
	for _, res := range CommonResolutions {
		for _, objects := range []int{1, 5, 20} {
			for _, workers := range []int{1, 4} {
				name := fmt.Sprintf("%s_%dobj_%dw", res.Name, objects, workers)
				scenarios = append(scenarios, NewScenarioBuilder(name).
					WithResolution(res.Width, res.Height).
					WithObjectCount(objects).
					WithWorkers(workers).
					Build())
			}
		}
	}
	return scenarios
}

// SaveResults writes benchmark results as indented JSON under dir.
func SaveResults(dir string, results []PerformanceMetrics) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", errors.Wrap(err, "benchmark: create output dir")
	}
	path := filepath.Join(dir, "results.json")
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return "", errors.Wrap(err, "benchmark: marshal results")
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", errors.Wrap(err, "benchmark: write results")
	}
	return path, nil
}
