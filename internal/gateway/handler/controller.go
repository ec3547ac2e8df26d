package handler

import (
	"net/http"

	"poolflow-gateway/internal/gateway/cache"
	"poolflow-gateway/internal/gateway/config"
	"poolflow-gateway/internal/gateway/dao"
	"poolflow-gateway/internal/gateway/service"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// Controller 持有所有端点处理器需要的依赖，显式注入，便于测试
type Controller struct {
	cfg   *config.Config
	tl    *zap.Logger
	cache *cache.ResultCache

	flowSvc   *service.PoolFlowService
	walletSvc *service.WalletService
	ingestSvc *service.IngestService
}

// NewController 创建控制器实例
func NewController(cfg *config.Config, logger *zap.Logger, resultCache *cache.ResultCache, daos *dao.DAOManager) *Controller {
	return &Controller{
		cfg:       cfg,
		tl:        logger,
		cache:     resultCache,
		flowSvc:   service.NewPoolFlowService(cfg, logger, daos.PoolFlowDAO),
		walletSvc: service.NewWalletService(cfg, logger, daos.WalletDAO),
		ingestSvc: service.NewIngestService(cfg, logger, daos.IngestDAO),
	}
}

// NewRouter 注册全部只读端点
func (c *Controller) NewRouter() *mux.Router {
	r := mux.NewRouter()

	r.Use(WithObservability(c.tl))
	if c.cfg.Server.RateLimit.Enable {
		r.Use(WithRateLimit(c.cfg.Server.RateLimit))
	}

	r.HandleFunc("/health", c.HandleHealth).Methods(http.MethodGet)

	r.HandleFunc("/api/pool-flow/pressure", c.HandlePressure).Methods(http.MethodGet)
	r.HandleFunc("/api/pool-flow/heatmap", c.HandleHeatmap).Methods(http.MethodGet)

	r.HandleFunc("/api/wallet-metrics/{pool}", c.HandleWalletMetrics).Methods(http.MethodGet)
	r.HandleFunc("/api/top-wallets/{pool}", c.HandleTopWallets).Methods(http.MethodGet)
	r.HandleFunc("/api/ingest-stats/{pool}", c.HandleIngestStats).Methods(http.MethodGet)

	return r
}
