package worker

import "time"

// ============================================================================
// Pool Configuration
// ============================================================================

const (
	// DefaultJobTimeout bounds how long a single background job may run
	DefaultJobTimeout = 30 * time.Second
)

// ============================================================================
// Log Messages - Worker Pool
// ============================================================================

const (
	// LogMsgWorkerJobFailed is logged when a worker fails to process a job
	LogMsgWorkerJobFailed = "Worker job failed"

	// LogMsgWorkerJobPanicked is logged when a job panics inside a worker
	LogMsgWorkerJobPanicked = "Worker job panicked"

	// LogMsgWorkerQueueFull is logged when a job is rejected because the queue is saturated
	LogMsgWorkerQueueFull = "Worker queue full, job dropped"

	// LogMsgWorkerPoolStopped is logged when a job is submitted after Stop
	LogMsgWorkerPoolStopped = "Worker pool stopped, job dropped"
)

// ============================================================================
// Test Configuration
// ============================================================================

// Test pool configuration values used in pool_test.go
const (
	TestWorkerCount           = 2
	TestQueueSize             = 10
	TestExpectedJobCount      = 2
	TestWorkerProcessWaitTime = 100 // milliseconds
)
