package dao

import (
	"context"

	"poolflow-gateway/internal/gateway/model"
)

// PoolFlowDAO 定义资金流聚合数据访问接口
type PoolFlowDAO interface {
	// GetPressureBins 查询尾随窗口内 4 小时 UTC 对齐的资金流桶，
	// 压力值在 SQL 内计算（成交量为 0 时压力为 0）
	GetPressureBins(ctx context.Context, poolSlug string, windowDays int) ([]model.FlowBin, error)

	// GetHeatmap 查询展示时区下 (星期, 小时) 的成交量汇总，稀疏网格
	GetHeatmap(ctx context.Context, poolSlug string, windowDays int) ([]model.HeatmapCell, error)
}
