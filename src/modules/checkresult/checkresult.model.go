package checkresult

import "fleetstatus/src/modules/shared"

// Model is one observation by the external scheduler. A check's
// verdict applies to the half-open interval [CheckedAt, CheckedAt +
// interval_sec) of its monitor; outside that window the monitor is
// unknown until the next check.
type Model struct {
	MonitorID int64
	CheckedAt int64
	Status    shared.CheckStatus
	LatencyMs *int64
}
