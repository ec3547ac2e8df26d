package main

import (
	"context"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"syscall"
	_ "time/tzdata"

	"poolflow-gateway/internal/gateway"
	"poolflow-gateway/internal/gateway/config"
	"poolflow-gateway/pkg/logger"

	"go.uber.org/zap"
)

func main() {
	// 初始化配置文件
	cfg := config.InitConfig()

	// 初始化 trace provider
	logger.InitTrace("poolflow", "gateway")
	// 启动主 span
	ctx, span := logger.StartSpan(context.Background(), "main", "main")
	defer span.End()

	// 创建 root logger 并注入 trace 上下文
	rootLogger := logger.NewLogger("gateway")
	logger.SetLogLevel(cfg.Log.Level)
	tl := logger.WithTrace(ctx, rootLogger)

	if cfg.Postgres.DSN == "" {
		tl.Fatal("DATABASE_URL env-var missing")
	}

	// 启动配置热加载监听
	go config.WatchConfig(&cfg)

	// 初始化gateway
	core, err := gateway.New(cfg, tl)
	if err != nil {
		tl.Fatal("failed to initialize gateway", zap.Error(err))
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// 启动 gateway
	go func() {
		tl.Info("Starting poolflow gateway...")
		core.Start(ctx)
	}()

	// 监听操作系统信号
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	tl.Info("Received shutdown signal, starting graceful shutdown...")

	// 关闭资源
	core.Stop(ctx)

	tl.Info("Shutting down all cores...")
}
