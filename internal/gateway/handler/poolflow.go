package handler

import (
	"net/http"

	"poolflow-gateway/internal/gateway/monitor"
	"poolflow-gateway/pkg/utils"

	"go.uber.org/zap"
)

// HandlePressure 压力序列端点
// Endpoint: GET /api/pool-flow/pressure?pool=<slug>
func (c *Controller) HandlePressure(w http.ResponseWriter, r *http.Request) {
	slug := r.URL.Query().Get("pool")
	if slug == "" {
		writeError(w, http.StatusBadRequest, "pool param required")
		return
	}

	key := utils.PressureKey(slug, c.cfg.Flow.WindowDays)
	if cached, found := c.cache.Get(key); found {
		monitor.CacheHits.WithLabelValues("pressure").Inc()
		writeJSON(w, http.StatusOK, cached)
		return
	}
	monitor.CacheMisses.WithLabelValues("pressure").Inc()

	series, err := c.flowSvc.PressureSeries(r.Context(), slug)
	if err != nil {
		c.tl.Error("pressure query failed", zap.String("pool", slug), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "query failed")
		return
	}

	c.cache.Set(key, series)
	writeJSON(w, http.StatusOK, series)
}

// HandleHeatmap 活跃度热力图端点
// Endpoint: GET /api/pool-flow/heatmap?pool=<slug>
func (c *Controller) HandleHeatmap(w http.ResponseWriter, r *http.Request) {
	slug := r.URL.Query().Get("pool")
	if slug == "" {
		writeError(w, http.StatusBadRequest, "pool param required")
		return
	}

	key := utils.HeatmapKey(slug, c.cfg.Flow.WindowDays)
	if cached, found := c.cache.Get(key); found {
		monitor.CacheHits.WithLabelValues("heatmap").Inc()
		writeJSON(w, http.StatusOK, cached)
		return
	}
	monitor.CacheMisses.WithLabelValues("heatmap").Inc()

	cells, err := c.flowSvc.Heatmap(r.Context(), slug)
	if err != nil {
		c.tl.Error("heatmap query failed", zap.String("pool", slug), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "query failed")
		return
	}

	c.cache.Set(key, cells)
	writeJSON(w, http.StatusOK, cells)
}
