package benchmark

import "time"

// PerformanceMetrics captures detailed performance data for one scenario.
type PerformanceMetrics struct {
	Scenario         Scenario       `json:"scenario"`
	Timestamp        time.Time      `json:"timestamp"`
	TotalDuration    time.Duration  `json:"total_duration"`
	FramesPerSecond  float64        `json:"frames_per_second"`
	ObjectsPerSecond float64        `json:"objects_per_second"`
	ObjectCount      int            `json:"object_count"`
	DangerCounts     map[string]int `json:"danger_counts"`
	MemoryStats      MemoryMetrics  `json:"memory_stats"`
	CPUStats         CPUMetrics     `json:"cpu_stats"`
	ErrorRate        float64        `json:"error_rate"`
}

// MemoryMetrics captures memory usage statistics.
type MemoryMetrics struct {
	AllocBytes      uint64 `json:"alloc_bytes"`
	TotalAllocBytes uint64 `json:"total_alloc_bytes"`
	SysBytes        uint64 `json:"sys_bytes"`
	NumGC           uint32 `json:"num_gc"`
	HeapAllocBytes  uint64 `json:"heap_alloc_bytes"`
	HeapSysBytes    uint64 `json:"heap_sys_bytes"`
}

// CPUMetrics captures CPU configuration for the run.
type CPUMetrics struct {
	NumCPU int `json:"num_cpu"`
}
