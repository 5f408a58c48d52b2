package statusapi

import "fleetstatus/src/modules/shared"

type HeartbeatDTO struct {
	CheckedAt int64              `json:"checked_at"`
	Status    shared.CheckStatus `json:"status"`
	LatencyMs *int64             `json:"latency_ms"`
}

type MonitorStatusDTO struct {
	ID            int64                `json:"id"`
	Name          string               `json:"name"`
	Type          string               `json:"type"`
	Status        shared.MonitorStatus `json:"status"`
	IsStale       bool                 `json:"is_stale"`
	LastCheckedAt *int64               `json:"last_checked_at"`
	LastLatencyMs *int64               `json:"last_latency_ms"`
	Heartbeats    []HeartbeatDTO       `json:"heartbeats"`
}

type SummaryDTO struct {
	Up          int `json:"up"`
	Down        int `json:"down"`
	Maintenance int `json:"maintenance"`
	Paused      int `json:"paused"`
	Unknown     int `json:"unknown"`
}

type ResponseDTO struct {
	GeneratedAt   int64                `json:"generated_at"`
	OverallStatus shared.MonitorStatus `json:"overall_status"`
	Summary       SummaryDTO           `json:"summary"`
	Monitors      []MonitorStatusDTO   `json:"monitors"`
}
