package handler

import (
	"errors"
	"net/http"

	"poolflow-gateway/internal/gateway/dao"
	"poolflow-gateway/internal/gateway/monitor"
	"poolflow-gateway/pkg/utils"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// HandleWalletMetrics 每池钱包指标端点
// Endpoint: GET /api/wallet-metrics/{pool}
func (c *Controller) HandleWalletMetrics(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["pool"]
	if slug == "" {
		writeError(w, http.StatusBadRequest, "pool param required")
		return
	}

	key := utils.WalletMetricsKey(slug)
	if cached, found := c.cache.Get(key); found {
		monitor.CacheHits.WithLabelValues("wallet_metrics").Inc()
		writeJSON(w, http.StatusOK, cached)
		return
	}
	monitor.CacheMisses.WithLabelValues("wallet_metrics").Inc()

	rows, err := c.walletSvc.Metrics(r.Context(), slug)
	if err != nil {
		if errors.Is(err, dao.ErrInvalidPoolSlug) {
			writeError(w, http.StatusBadRequest, "invalid pool")
			return
		}
		c.tl.Error("wallet metrics query failed", zap.String("pool", slug), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "query failed")
		return
	}

	c.cache.Set(key, rows)
	writeJSON(w, http.StatusOK, rows)
}

// HandleTopWallets 24h 成交额排行榜端点
// Endpoint: GET /api/top-wallets/{pool}
func (c *Controller) HandleTopWallets(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["pool"]
	if slug == "" {
		writeError(w, http.StatusBadRequest, "pool param required")
		return
	}

	key := utils.TopWalletsKey(slug)
	if cached, found := c.cache.Get(key); found {
		monitor.CacheHits.WithLabelValues("top_wallets").Inc()
		writeJSON(w, http.StatusOK, cached)
		return
	}
	monitor.CacheMisses.WithLabelValues("top_wallets").Inc()

	rows, err := c.walletSvc.TopWallets(r.Context(), slug)
	if err != nil {
		if errors.Is(err, dao.ErrInvalidPoolSlug) {
			writeError(w, http.StatusBadRequest, "invalid pool")
			return
		}
		c.tl.Error("top wallets query failed", zap.String("pool", slug), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "query failed")
		return
	}

	c.cache.Set(key, rows)
	writeJSON(w, http.StatusOK, rows)
}
