package handler

import (
	"net/http"

	"poolflow-gateway/internal/gateway/monitor"
	"poolflow-gateway/pkg/utils"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// HandleIngestStats 采集统计端点，没有记录时返回空对象而不是 404
// Endpoint: GET /api/ingest-stats/{pool}
func (c *Controller) HandleIngestStats(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["pool"]
	if slug == "" {
		writeError(w, http.StatusBadRequest, "pool param required")
		return
	}

	key := utils.IngestStatsKey(slug)
	if cached, found := c.cache.Get(key); found {
		monitor.CacheHits.WithLabelValues("ingest_stats").Inc()
		writeJSON(w, http.StatusOK, cached)
		return
	}
	monitor.CacheMisses.WithLabelValues("ingest_stats").Inc()

	stats, err := c.ingestSvc.LatestStats(r.Context(), slug)
	if err != nil {
		c.tl.Error("ingest stats query failed", zap.String("pool", slug), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "query failed")
		return
	}
	if stats == nil {
		// 无数据不算错误，也不值得缓存
		writeJSON(w, http.StatusOK, struct{}{})
		return
	}

	c.cache.Set(key, stats)
	writeJSON(w, http.StatusOK, stats)
}
