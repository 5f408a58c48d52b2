package latency

import "fleetstatus/src/modules/shared"

type MonitorRefDTO struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type PointDTO struct {
	CheckedAt int64              `json:"checked_at"`
	Status    shared.CheckStatus `json:"status"`
	LatencyMs *int64             `json:"latency_ms"`
}

type ResponseDTO struct {
	Monitor      MonitorRefDTO `json:"monitor"`
	Range        string        `json:"range"`
	RangeStartAt int64         `json:"range_start_at"`
	RangeEndAt   int64         `json:"range_end_at"`
	AvgLatencyMs *int64        `json:"avg_latency_ms"`
	P95LatencyMs *int64        `json:"p95_latency_ms"`
	Points       []PointDTO    `json:"points"`
}
