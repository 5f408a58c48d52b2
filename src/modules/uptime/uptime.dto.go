package uptime

type MonitorRefDTO struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type ResponseDTO struct {
	Monitor      MonitorRefDTO `json:"monitor"`
	Range        string        `json:"range"`
	RangeStartAt int64         `json:"range_start_at"`
	RangeEndAt   int64         `json:"range_end_at"`
	TotalSec     int64         `json:"total_sec"`
	DowntimeSec  int64         `json:"downtime_sec"`
	UnknownSec   int64         `json:"unknown_sec"`
	UptimeSec    int64         `json:"uptime_sec"`
	UptimePct    float64       `json:"uptime_pct"`
}
