package service

import (
	"context"

	"poolflow-gateway/internal/gateway/config"
	"poolflow-gateway/internal/gateway/dao"
	"poolflow-gateway/internal/gateway/model"

	"go.uber.org/zap"
)

// IngestService 采集统计：取最近一次任务并推导吞吐量
type IngestService struct {
	cfg *config.Config
	tl  *zap.Logger
	dao dao.IngestDAO
}

func NewIngestService(cfg *config.Config, logger *zap.Logger, ingestDAO dao.IngestDAO) *IngestService {
	return &IngestService{
		cfg: cfg,
		tl:  logger,
		dao: ingestDAO,
	}
}

// LatestStats 查询最近一次采集统计，池没有任何记录时返回 (nil, nil)
func (s *IngestService) LatestStats(ctx context.Context, poolSlug string) (*model.IngestStats, error) {
	run, err := s.dao.GetLatestRun(ctx, poolSlug)
	if err != nil {
		return nil, err
	}
	if run == nil {
		return nil, nil
	}
	return shapeIngestStats(run), nil
}

// shapeIngestStats 推导 logs/second，时长为 0 时吞吐量记 0
func shapeIngestStats(run *model.IngestRun) *model.IngestStats {
	stats := &model.IngestStats{
		Timestamp:       run.RunAt,
		LogCount:        run.LogCount,
		DurationSeconds: run.DurationSeconds,
		TotalLogs:       run.TotalLogs,
	}
	if run.DurationSeconds > 0 {
		stats.LogsPerSecond = float64(run.LogCount) / run.DurationSeconds
	}
	return stats
}
