package dao

import (
	"context"
	"time"

	"poolflow-gateway/internal/gateway/config"
	"poolflow-gateway/internal/gateway/model"
	"poolflow-gateway/internal/gateway/monitor"

	"gorm.io/gorm"
)

// ingestDAO 实现IngestDAO接口
type ingestDAO struct {
	cfg *config.Config
	db  *gorm.DB
}

// NewIngestDAO 创建IngestDAO实例
func NewIngestDAO(cfg *config.Config, db *gorm.DB) IngestDAO {
	return &ingestDAO{
		cfg: cfg,
		db:  db,
	}
}

const latestIngestRunSQL = `
SELECT run_at,
       log_count,
       duration_seconds,
       total_logs
FROM   pool_ingest_stats
WHERE  pool_slug = ?
ORDER  BY run_at DESC
LIMIT  1`

// GetLatestRun 查询最近一次采集任务，没有记录不算错误
func (d *ingestDAO) GetLatestRun(ctx context.Context, poolSlug string) (*model.IngestRun, error) {
	start := time.Now()
	var runs []model.IngestRun
	err := d.db.WithContext(ctx).
		Raw(latestIngestRunSQL, poolSlug).
		Scan(&runs).Error
	monitor.DBQueryDuration.WithLabelValues("ingest_stats").Observe(time.Since(start).Seconds())

	if err != nil {
		monitor.DBQueryErrors.WithLabelValues("ingest_stats").Inc()
		return nil, err
	}
	if len(runs) == 0 {
		return nil, nil
	}
	return &runs[0], nil
}
