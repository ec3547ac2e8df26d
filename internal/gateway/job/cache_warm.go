package job

import (
	"context"

	"poolflow-gateway/internal/gateway/cache"
	"poolflow-gateway/internal/gateway/config"
	"poolflow-gateway/internal/gateway/monitor"
	"poolflow-gateway/internal/gateway/service"
	"poolflow-gateway/pkg/utils"

	"github.com/sourcegraph/conc/pool"
	"go.uber.org/zap"
)

// CacheWarm 预热配置列表里各池的 pressure/heatmap 结果，
// 让仪表盘的首个请求也能命中缓存。失败只记日志，不影响服务
type CacheWarm struct {
	cfg     *config.Config
	tl      *zap.Logger
	cache   *cache.ResultCache
	flowSvc *service.PoolFlowService
}

func NewCacheWarm(cfg *config.Config, logger *zap.Logger, resultCache *cache.ResultCache, flowSvc *service.PoolFlowService) *CacheWarm {
	return &CacheWarm{
		cfg:     cfg,
		tl:      logger,
		cache:   resultCache,
		flowSvc: flowSvc,
	}
}

func (j *CacheWarm) Run(ctx context.Context) error {
	worker := pool.New().WithMaxGoroutines(4)
	for _, slug := range j.cfg.Warm.Pools {
		if !utils.IsValidPoolSlug(slug) {
			j.tl.Warn("skip warm for invalid pool slug", zap.String("pool", slug))
			continue
		}

		poolSlug := slug
		worker.Go(func() {
			j.warmPool(ctx, poolSlug)
		})
	}
	worker.Wait()

	return nil
}

func (j *CacheWarm) warmPool(ctx context.Context, poolSlug string) {
	days := j.cfg.Flow.WindowDays

	series, err := j.flowSvc.PressureSeries(ctx, poolSlug)
	if err != nil {
		j.tl.Error("warm pressure failed", zap.String("pool", poolSlug), zap.Error(err))
		monitor.CacheWarmRuns.WithLabelValues(poolSlug, "error").Inc()
		return
	}
	j.cache.Set(utils.PressureKey(poolSlug, days), series)

	cells, err := j.flowSvc.Heatmap(ctx, poolSlug)
	if err != nil {
		j.tl.Error("warm heatmap failed", zap.String("pool", poolSlug), zap.Error(err))
		monitor.CacheWarmRuns.WithLabelValues(poolSlug, "error").Inc()
		return
	}
	j.cache.Set(utils.HeatmapKey(poolSlug, days), cells)

	monitor.CacheWarmRuns.WithLabelValues(poolSlug, "ok").Inc()
	j.tl.Debug("warmed pool", zap.String("pool", poolSlug))
}
