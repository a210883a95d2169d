package worker

// ============================================================================
// Log Messages - Worker Pool
// ============================================================================

// LogMsgWorkerJobFailed is logged when a worker fails to process a job
const LogMsgWorkerJobFailed = "Worker job failed"

// ============================================================================
// Log Messages - Sweep Jobs
// ============================================================================

// Log messages for clock sweep operations
const (
	LogMsgSweepStarting     = "Clock sweep starting"
	LogMsgSweepCompleted    = "Clock sweep completed"
	LogMsgSweepPlayerFailed = "Clock sweep failed for player"
	LogMsgSweepListFailed   = "Failed to list players for sweep"
)
