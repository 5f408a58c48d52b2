package monitorstate

import "fleetstatus/src/modules/shared"

// Model is the latest recorded state of a monitor, mutated by the
// external scheduler and read-only here. There is at most one row per
// monitor.
type Model struct {
	MonitorID     int64
	Status        shared.MonitorStatus
	LastCheckedAt *int64
	LastLatencyMs *int64
}
