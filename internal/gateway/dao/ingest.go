package dao

import (
	"context"

	"poolflow-gateway/internal/gateway/model"
)

// IngestDAO 定义采集统计数据访问接口
type IngestDAO interface {
	// GetLatestRun 查询某个池最近一次采集任务记录，没有记录时返回 (nil, nil)
	GetLatestRun(ctx context.Context, poolSlug string) (*model.IngestRun, error)
}
