package dao

import (
	"context"
	"time"

	"poolflow-gateway/internal/gateway/config"
	"poolflow-gateway/internal/gateway/model"
	"poolflow-gateway/internal/gateway/monitor"

	"gorm.io/gorm"
)

// poolFlowDAO 实现PoolFlowDAO接口
type poolFlowDAO struct {
	cfg *config.Config
	db  *gorm.DB
}

// NewPoolFlowDAO 创建PoolFlowDAO实例
func NewPoolFlowDAO(cfg *config.Config, db *gorm.DB) PoolFlowDAO {
	return &poolFlowDAO{
		cfg: cfg,
		db:  db,
	}
}

// 4 小时 = 14400 秒，按 epoch 向下取整保证 UTC 对齐
const pressureBinsSQL = `
SELECT
    to_timestamp(floor(extract(epoch FROM bucket_start) / 14400) * 14400) AS bin_ts,
    SUM(buys_usd)   AS buys_usd,
    SUM(sells_usd)  AS sells_usd,
    SUM(volume_usd) AS volume_usd,
    CASE
        WHEN SUM(volume_usd) = 0 THEN 0
        ELSE (SUM(buys_usd) - SUM(sells_usd)) / SUM(volume_usd)
    END AS pressure
FROM pool_flow_hourly
WHERE pool_slug = ?
  AND bucket_start >= NOW() - make_interval(days => ?)
GROUP BY bin_ts
ORDER BY bin_ts`

// bucket_start 是 timestamptz，单次 AT TIME ZONE 直接得到展示时区的本地时间
const heatmapSQL = `
SELECT
    EXTRACT(dow  FROM bucket_start AT TIME ZONE ?)::int AS dow,
    EXTRACT(hour FROM bucket_start AT TIME ZONE ?)::int AS hr,
    SUM(volume_usd)::float8 AS vol_usd
FROM pool_flow_hourly
WHERE pool_slug = ?
  AND bucket_start >= NOW() - make_interval(days => ?)
GROUP BY dow, hr`

// GetPressureBins 查询尾随窗口内 4 小时对齐的资金流桶
func (d *poolFlowDAO) GetPressureBins(ctx context.Context, poolSlug string, windowDays int) ([]model.FlowBin, error) {
	start := time.Now()
	var bins []model.FlowBin
	err := d.db.WithContext(ctx).
		Raw(pressureBinsSQL, poolSlug, windowDays).
		Scan(&bins).Error
	monitor.DBQueryDuration.WithLabelValues("pressure_bins").Observe(time.Since(start).Seconds())

	if err != nil {
		monitor.DBQueryErrors.WithLabelValues("pressure_bins").Inc()
		return nil, err
	}
	return bins, nil
}

// GetHeatmap 查询展示时区下的 (星期, 小时) 成交量网格
func (d *poolFlowDAO) GetHeatmap(ctx context.Context, poolSlug string, windowDays int) ([]model.HeatmapCell, error) {
	start := time.Now()
	var cells []model.HeatmapCell
	err := d.db.WithContext(ctx).
		Raw(heatmapSQL, model.DisplayTimezone, model.DisplayTimezone, poolSlug, windowDays).
		Scan(&cells).Error
	monitor.DBQueryDuration.WithLabelValues("heatmap").Observe(time.Since(start).Seconds())

	if err != nil {
		monitor.DBQueryErrors.WithLabelValues("heatmap").Inc()
		return nil, err
	}
	return cells, nil
}
