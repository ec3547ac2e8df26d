package gateway

import (
	"context"
	"errors"
	"net/http"
	"time"

	"poolflow-gateway/internal/gateway/cache"
	"poolflow-gateway/internal/gateway/config"
	"poolflow-gateway/internal/gateway/dao"
	"poolflow-gateway/internal/gateway/handler"
	"poolflow-gateway/internal/gateway/job"
	"poolflow-gateway/internal/gateway/monitor"
	"poolflow-gateway/internal/gateway/repository"
	"poolflow-gateway/internal/gateway/service"

	"go.uber.org/zap"
)

type Core struct {
	cfg       config.Config
	tl        *zap.Logger
	repo      repository.Repository
	cache     *cache.ResultCache
	server    *http.Server
	scheduler *job.Scheduler
	metrics   *monitor.MetricsServer
}

func New(cfg config.Config, logger *zap.Logger) (*Core, error) {
	// 初始化仓储
	repo, err := repository.New(cfg, logger)
	if err != nil {
		return nil, err
	}

	// 结果缓存，整个进程一份
	resultCache := cache.New(time.Duration(cfg.Cache.TTLSeconds) * time.Second)

	daos := dao.NewDAOManager(&cfg, repo.GetDB())
	ctler := handler.NewController(&cfg, logger, resultCache, daos)

	// 缓存预热作业
	scheduler := job.NewScheduler(logger)
	if cfg.Warm.Enable && len(cfg.Warm.Pools) > 0 {
		flowSvc := service.NewPoolFlowService(&cfg, logger, daos.PoolFlowDAO)
		warm := job.NewCacheWarm(&cfg, logger, resultCache, flowSvc)
		scheduler.RegisterJob("cache_warm", time.Duration(cfg.Warm.IntervalMinutes)*time.Minute, warm.Run)
	}

	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      handler.WithCORS(cfg.Server.CORSOrigins, ctler.NewRouter()),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	core := &Core{
		cfg:       cfg,
		tl:        logger,
		repo:      repo,
		cache:     resultCache,
		server:    server,
		scheduler: scheduler,
		metrics:   monitor.NewMetricsServer(cfg.Monitor),
	}
	return core, nil
}

func (c *Core) Start(ctx context.Context) {
	c.tl.Info("Starting gateway core...")

	// 启动监控服务
	if c.metrics != nil {
		c.metrics.Run()
	}

	// 启动调度器
	c.scheduler.Start(ctx)

	go func() {
		c.tl.Info("Listening", zap.String("addr", c.server.Addr))
		if err := c.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			c.tl.Error("HTTP server exited", zap.Error(err))
		}
	}()

	// 等待外部关闭信号
	<-ctx.Done()
	c.tl.Info("Shutting down gateway due to context cancellation...")
}

// Stop 优雅关闭 Core 的所有资源
func (c *Core) Stop(ctx context.Context) {
	c.tl.Info("Stopping gateway core...")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := c.server.Shutdown(shutdownCtx); err != nil {
		c.tl.Warn("HTTP server shutdown failed", zap.Error(err))
	}

	// 停止调度器
	if c.scheduler != nil {
		c.scheduler.Stop(ctx)
	}

	// 停止 Prometheus 监控服务
	if c.metrics != nil {
		_ = c.metrics.Stop(ctx)
	}

	if err := c.repo.Close(); err != nil {
		c.tl.Warn("closing postgres failed", zap.Error(err))
	}

	c.tl.Info("Gateway core stopped.")
}
