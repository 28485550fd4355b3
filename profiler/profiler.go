// Package profiler provides runtime profiling for per-frame analysis
// workloads: operation timings, custom metrics, and periodic resource
// reports.
package profiler

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/edaniels/golog"
)

// MetricsCollector defines the interface for collecting custom metrics.
// The benchmark suite implements it to feed per-frame analysis counters
// into the profiler's periodic samples.
type MetricsCollector interface {
	CollectMetrics() map[string]float64
}

// RuntimeProfiler tracks system resources, custom application metrics and
// operation timings, and emits periodic reports through its logger. It is
// thread-safe.
type RuntimeProfiler struct {
	reportInterval time.Duration
	sampleInterval time.Duration
	logger         golog.Logger

	ctx       context.Context
	cancel    context.CancelFunc
	wg        sync.WaitGroup
	mu        sync.RWMutex
	startTime time.Time
	running   bool

	memStats       runtime.MemStats
	runtimeSamples []runtimeSample
	maxSamples     int
	lastGCCount    uint32

	customMetrics map[string]*MetricTracker
	collectors    []MetricsCollector

	operationTimes map[string]*TimeTracker
}

// runtimeSample is one scheduler snapshot.
type runtimeSample struct {
	timestamp  time.Time
	goroutines int
}

// MetricTracker tracks statistics for a custom metric.
type MetricTracker struct {
	name     string
	values   []float64
	sum      float64
	min      float64
	max      float64
	count    int64
	lastTime time.Time
}

// TimeTracker tracks operation timing statistics.
type TimeTracker struct {
	name      string
	durations []time.Duration
	totalTime time.Duration
	minTime   time.Duration
	maxTime   time.Duration
	count     int64
}

// ProfilingOptions configures the runtime profiler.
type ProfilingOptions struct {
	// ReportInterval specifies how often to emit status reports (default: 2s)
	ReportInterval time.Duration
	// SampleInterval specifies how often to collect samples (default: 100ms)
	SampleInterval time.Duration
	// MaxSamples specifies maximum number of samples to keep (default: 600)
	MaxSamples int
	// Logger receives the periodic reports (default: a named global logger)
	Logger golog.Logger
}

// NewRuntimeProfiler creates a new runtime profiler with the specified
// options.
func NewRuntimeProfiler(opts ProfilingOptions) *RuntimeProfiler {
	if opts.ReportInterval == 0 {
		opts.ReportInterval = 2 * time.Second
	}
	if opts.SampleInterval == 0 {
		opts.SampleInterval = 100 * time.Millisecond
	}
	if opts.MaxSamples == 0 {
		opts.MaxSamples = 600 // 1 minute of samples at 100ms intervals
	}
	if opts.Logger == nil {
		opts.Logger = golog.NewLogger("profiler")
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &RuntimeProfiler{
		reportInterval: opts.ReportInterval,
		sampleInterval: opts.SampleInterval,
		logger:         opts.Logger,
		ctx:            ctx,
		cancel:         cancel,
		startTime:      time.Now(),
		maxSamples:     opts.MaxSamples,
		runtimeSamples: make([]runtimeSample, 0, opts.MaxSamples),
		customMetrics:  make(map[string]*MetricTracker),
		collectors:     make([]MetricsCollector, 0),
		operationTimes: make(map[string]*TimeTracker),
	}
}

// Start begins the sampling and reporting goroutines. It's safe to call
// more than once.
func (rp *RuntimeProfiler) Start() {
	rp.mu.Lock()
	defer rp.mu.Unlock()

	if rp.running {
		return
	}

	rp.running = true
	rp.startTime = time.Now()

	rp.wg.Add(1)
	go rp.sampleLoop()

	rp.wg.Add(1)
	go func() {
		defer rp.wg.Done()

		ticker := time.NewTicker(rp.reportInterval)
		defer ticker.Stop()

		for {
			select {
			case <-rp.ctx.Done():
				return
			case <-ticker.C:
				rp.emitStatusReport()
			}
		}
	}()
}

// Stop gracefully stops the profiler and waits for all goroutines to
// complete.
func (rp *RuntimeProfiler) Stop() {
	rp.mu.Lock()
	if !rp.running {
		rp.mu.Unlock()
		return
	}
	rp.running = false
	rp.mu.Unlock()

	rp.cancel()
	rp.wg.Wait()
}

// AddMetricsCollector registers a custom metrics collector to be polled
// every sample interval.
func (rp *RuntimeProfiler) AddMetricsCollector(collector MetricsCollector) {
	rp.mu.Lock()
	defer rp.mu.Unlock()
	rp.collectors = append(rp.collectors, collector)
}

// RecordMetric records a custom metric value.
func (rp *RuntimeProfiler) RecordMetric(name string, value float64) {
	rp.mu.Lock()
	defer rp.mu.Unlock()
	rp.recordMetricLocked(name, value)
}

func (rp *RuntimeProfiler) recordMetricLocked(name string, value float64) {
	tracker, exists := rp.customMetrics[name]
	if !exists {
		tracker = &MetricTracker{
			name:   name,
			values: make([]float64, 0, rp.maxSamples),
			min:    value,
			max:    value,
		}
		rp.customMetrics[name] = tracker
	}

	tracker.values = append(tracker.values, value)
	if len(tracker.values) > rp.maxSamples {
		// Drop the oldest sample to keep the window bounded.
		tracker.sum -= tracker.values[0]
		tracker.values = tracker.values[1:]
	}

	tracker.sum += value
	tracker.count++
	tracker.lastTime = time.Now()

	if value < tracker.min {
		tracker.min = value
	}
	if value > tracker.max {
		tracker.max = value
	}
}

// StartOperation begins timing an operation. The returned func records the
// elapsed time when called:
//
//	done := prof.StartOperation("analyze")
//	results, err := engine.Analyze(m, objects)
//	done()
func (rp *RuntimeProfiler) StartOperation(name string) func() {
	start := time.Now()
	return func() {
		rp.recordOperationTime(name, time.Since(start))
	}
}

// recordOperationTime records the completion time of an operation.
func (rp *RuntimeProfiler) recordOperationTime(name string, duration time.Duration) {
	rp.mu.Lock()
	defer rp.mu.Unlock()

	tracker, exists := rp.operationTimes[name]
	if !exists {
		tracker = &TimeTracker{
			name:    name,
			minTime: duration,
			maxTime: duration,
		}
		rp.operationTimes[name] = tracker
	}

	tracker.durations = append(tracker.durations, duration)
	if len(tracker.durations) > rp.maxSamples {
		tracker.totalTime -= tracker.durations[0]
		tracker.durations = tracker.durations[1:]
	}

	tracker.totalTime += duration
	tracker.count++

	if duration < tracker.minTime {
		tracker.minTime = duration
	}
	if duration > tracker.maxTime {
		tracker.maxTime = duration
	}
}

// sampleLoop continuously collects system metrics.
func (rp *RuntimeProfiler) sampleLoop() {
	defer rp.wg.Done()

	ticker := time.NewTicker(rp.sampleInterval)
	defer ticker.Stop()

	for {
		select {
		case <-rp.ctx.Done():
			return
		case <-ticker.C:
			rp.collectSample()
		}
	}
}

func (rp *RuntimeProfiler) collectSample() {
	rp.mu.Lock()
	defer rp.mu.Unlock()

	runtime.ReadMemStats(&rp.memStats)

	rp.runtimeSamples = append(rp.runtimeSamples, runtimeSample{
		timestamp:  time.Now(),
		goroutines: runtime.NumGoroutine(),
	})
	if len(rp.runtimeSamples) > rp.maxSamples {
		rp.runtimeSamples = rp.runtimeSamples[1:]
	}

	for _, collector := range rp.collectors {
		for name, value := range collector.CollectMetrics() {
			rp.recordMetricLocked(name, value)
		}
	}
}

// emitStatusReport logs a snapshot of resource usage, custom metrics and
// operation timings.
func (rp *RuntimeProfiler) emitStatusReport() {
	rp.mu.RLock()
	defer rp.mu.RUnlock()

	rp.logger.Infow("profiler status",
		"uptime", time.Since(rp.startTime).Truncate(time.Millisecond),
		"goroutines", runtime.NumGoroutine(),
		"heap_alloc", formatBytes(rp.memStats.HeapAlloc),
		"sys", formatBytes(rp.memStats.Sys),
		"gc_cycles", rp.memStats.NumGC,
	)

	if rp.memStats.NumGC > rp.lastGCCount {
		rp.logger.Debugw("gc activity",
			"new_cycles", rp.memStats.NumGC-rp.lastGCCount,
			"gc_cpu_fraction", rp.memStats.GCCPUFraction,
		)
		rp.lastGCCount = rp.memStats.NumGC
	}

	for name, tracker := range rp.customMetrics {
		if len(tracker.values) == 0 {
			continue
		}
		rp.logger.Infow("metric",
			"name", name,
			"avg", tracker.sum/float64(len(tracker.values)),
			"min", tracker.min,
			"max", tracker.max,
			"samples", len(tracker.values),
		)
	}

	for name, tracker := range rp.operationTimes {
		if len(tracker.durations) == 0 {
			continue
		}
		avgTime := tracker.totalTime / time.Duration(len(tracker.durations))
		rp.logger.Infow("operation",
			"name", name,
			"avg", avgTime.Truncate(time.Microsecond),
			"min", tracker.minTime.Truncate(time.Microsecond),
			"max", tracker.maxTime.Truncate(time.Microsecond),
			"count", len(tracker.durations),
		)
	}
}

// formatBytes formats byte counts in human-readable form.
func formatBytes(bytes uint64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), "KMGTPE"[exp])
}

// GetCurrentStats returns a snapshot of the current profiling statistics.
func (rp *RuntimeProfiler) GetCurrentStats() map[string]interface{} {
	rp.mu.Lock()
	defer rp.mu.Unlock()

	stats := make(map[string]interface{})

	stats["uptime"] = time.Since(rp.startTime)
	stats["goroutines"] = runtime.NumGoroutine()

	runtime.ReadMemStats(&rp.memStats)
	stats["memory"] = map[string]interface{}{
		"alloc":           rp.memStats.Alloc,
		"total_alloc":     rp.memStats.TotalAlloc,
		"sys":             rp.memStats.Sys,
		"heap_alloc":      rp.memStats.HeapAlloc,
		"heap_sys":        rp.memStats.HeapSys,
		"heap_objects":    rp.memStats.HeapObjects,
		"gc_cycles":       rp.memStats.NumGC,
		"gc_cpu_fraction": rp.memStats.GCCPUFraction,
	}

	customStats := make(map[string]interface{})
	for name, tracker := range rp.customMetrics {
		if len(tracker.values) == 0 {
			continue
		}
		customStats[name] = map[string]interface{}{
			"avg":     tracker.sum / float64(len(tracker.values)),
			"min":     tracker.min,
			"max":     tracker.max,
			"samples": len(tracker.values),
		}
	}
	stats["custom_metrics"] = customStats

	operationStats := make(map[string]interface{})
	for name, tracker := range rp.operationTimes {
		if len(tracker.durations) == 0 {
			continue
		}
		operationStats[name] = map[string]interface{}{
			"avg":   tracker.totalTime / time.Duration(len(tracker.durations)),
			"min":   tracker.minTime,
			"max":   tracker.maxTime,
			"count": len(tracker.durations),
		}
	}
	stats["operations"] = operationStats

	return stats
}
