package service

import (
	"context"
	"sync"
	"time"

	"poolflow-gateway/internal/gateway/config"
	"poolflow-gateway/internal/gateway/dao"
	"poolflow-gateway/internal/gateway/model"

	"go.uber.org/zap"
)

// PoolFlowService 负责把原始资金流桶加工成前端要的序列形状：
// 压力做 3 点居中滑动平均（边界只对现有邻居取平均），
// 时间戳一次性转换到展示时区后输出 ISO-8601 字符串
type PoolFlowService struct {
	cfg *config.Config
	tl  *zap.Logger
	dao dao.PoolFlowDAO
}

func NewPoolFlowService(cfg *config.Config, logger *zap.Logger, flowDAO dao.PoolFlowDAO) *PoolFlowService {
	return &PoolFlowService{
		cfg: cfg,
		tl:  logger,
		dao: flowDAO,
	}
}

var (
	displayLocOnce sync.Once
	displayLoc     *time.Location
)

func displayLocation() *time.Location {
	displayLocOnce.Do(func() {
		loc, err := time.LoadLocation(model.DisplayTimezone)
		if err != nil {
			// main 里 embed 了 tzdata，正常不会走到这里
			loc = time.UTC
		}
		displayLoc = loc
	})
	return displayLoc
}

// PressureSeries 查询并加工压力序列，无数据时返回空数组而不是错误
func (s *PoolFlowService) PressureSeries(ctx context.Context, poolSlug string) (*model.PressureSeries, error) {
	bins, err := s.dao.GetPressureBins(ctx, poolSlug, s.cfg.Flow.WindowDays)
	if err != nil {
		return nil, err
	}
	return shapePressureSeries(bins), nil
}

// Heatmap 查询热力网格，稀疏：没有成交的格子不补零
func (s *PoolFlowService) Heatmap(ctx context.Context, poolSlug string) ([]model.HeatmapCell, error) {
	cells, err := s.dao.GetHeatmap(ctx, poolSlug, s.cfg.Flow.WindowDays)
	if err != nil {
		return nil, err
	}
	if cells == nil {
		cells = []model.HeatmapCell{}
	}
	return cells, nil
}

// shapePressureSeries 原始桶 -> 三条平行数组
func shapePressureSeries(bins []model.FlowBin) *model.PressureSeries {
	loc := displayLocation()

	n := len(bins)
	series := &model.PressureSeries{
		Ts:       make([]string, 0, n),
		Pressure: make([]float64, 0, n),
		Volume:   make([]float64, 0, n),
	}

	raw := make([]float64, n)
	for i, bin := range bins {
		raw[i] = toFloat(bin.Pressure)
	}
	smoothed := smoothPressure(raw)

	for i, bin := range bins {
		series.Ts = append(series.Ts, bin.BinTs.In(loc).Format(time.RFC3339))
		series.Pressure = append(series.Pressure, smoothed[i])
		series.Volume = append(series.Volume, toFloat(bin.Volume))
	}
	return series
}

// smoothPressure 3 点居中滑动平均，首尾只对可用的邻居取平均
func smoothPressure(values []float64) []float64 {
	n := len(values)
	out := make([]float64, n)
	for i := range values {
		lo, hi := i-1, i+1
		if lo < 0 {
			lo = 0
		}
		if hi > n-1 {
			hi = n - 1
		}
		sum := 0.0
		for j := lo; j <= hi; j++ {
			sum += values[j]
		}
		out[i] = sum / float64(hi-lo+1)
	}
	return out
}
