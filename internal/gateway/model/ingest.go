package model

import "time"

// IngestRun 一次采集任务的原始记录，来自共享 pool_ingest_stats 表
type IngestRun struct {
	RunAt           time.Time `gorm:"column:run_at"`
	LogCount        int64     `gorm:"column:log_count"`
	DurationSeconds float64   `gorm:"column:duration_seconds;type:decimal(12,3)"`
	TotalLogs       int64     `gorm:"column:total_logs"`
}

// IngestStats 采集统计响应，吞吐量由 shaper 推导
type IngestStats struct {
	Timestamp       time.Time `json:"timestamp"`
	LogCount        int64     `json:"log_count"`
	DurationSeconds float64   `json:"duration_seconds"`
	LogsPerSecond   float64   `json:"logs_per_second"`
	TotalLogs       int64     `json:"total_logs"`
}
