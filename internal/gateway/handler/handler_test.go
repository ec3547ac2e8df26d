package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"poolflow-gateway/internal/gateway/cache"
	"poolflow-gateway/internal/gateway/config"
	"poolflow-gateway/internal/gateway/dao"
	"poolflow-gateway/internal/gateway/model"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// spyPoolFlowDAO 记录存储层被调用的次数
type spyPoolFlowDAO struct {
	pressureCalls int
	heatmapCalls  int
	bins          []model.FlowBin
	cells         []model.HeatmapCell
	err           error
}

func (s *spyPoolFlowDAO) GetPressureBins(ctx context.Context, poolSlug string, windowDays int) ([]model.FlowBin, error) {
	s.pressureCalls++
	return s.bins, s.err
}

func (s *spyPoolFlowDAO) GetHeatmap(ctx context.Context, poolSlug string, windowDays int) ([]model.HeatmapCell, error) {
	s.heatmapCalls++
	return s.cells, s.err
}

type spyWalletDAO struct {
	metricsCalls int
	topCalls     int
	metrics      []model.WalletMetric
	top          []model.TopWallet
	err          error
}

func (s *spyWalletDAO) GetMetrics(ctx context.Context, poolSlug string) ([]model.WalletMetric, error) {
	s.metricsCalls++
	return s.metrics, s.err
}

func (s *spyWalletDAO) GetTopWallets(ctx context.Context, poolSlug string) ([]model.TopWallet, error) {
	s.topCalls++
	return s.top, s.err
}

type spyIngestDAO struct {
	calls int
	run   *model.IngestRun
	err   error
}

func (s *spyIngestDAO) GetLatestRun(ctx context.Context, poolSlug string) (*model.IngestRun, error) {
	s.calls++
	return s.run, s.err
}

type testEnv struct {
	controller *Controller
	router     http.Handler
	flow       *spyPoolFlowDAO
	wallet     *spyWalletDAO
	ingest     *spyIngestDAO
}

func newTestEnv(t *testing.T, cacheTTL time.Duration) *testEnv {
	t.Helper()

	cfg := &config.Config{
		Server: config.ServerConfig{Port: "0"},
		Flow:   config.FlowConfig{WindowDays: 30},
		Wallet: config.WalletConfig{WindowDays: 180, MinTrades: 30, MinTurnoverUSD: 10000},
		Cache:  config.CacheConfig{TTLSeconds: 300},
	}

	flow := &spyPoolFlowDAO{}
	wallet := &spyWalletDAO{}
	ingest := &spyIngestDAO{}

	c := NewController(cfg, zap.NewNop(), cache.New(cacheTTL), &dao.DAOManager{
		PoolFlowDAO: flow,
		WalletDAO:   wallet,
		IngestDAO:   ingest,
	})

	return &testEnv{
		controller: c,
		router:     c.NewRouter(),
		flow:       flow,
		wallet:     wallet,
		ingest:     ingest,
	}
}

func (e *testEnv) get(path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func TestPressureMissingPoolParam(t *testing.T) {
	env := newTestEnv(t, time.Minute)

	rec := env.get("/api/pool-flow/pressure")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"pool param required"}`, rec.Body.String())
	assert.Zero(t, env.flow.pressureCalls, "store must not be invoked on invalid input")
}

func TestPressureCacheHitSkipsStore(t *testing.T) {
	env := newTestEnv(t, time.Minute)
	env.flow.bins = []model.FlowBin{
		{BinTs: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), Pressure: "0.3", Volume: "200"},
	}

	first := env.get("/api/pool-flow/pressure?pool=sol_usdc")
	second := env.get("/api/pool-flow/pressure?pool=sol_usdc")

	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, http.StatusOK, second.Code)
	assert.Equal(t, 1, env.flow.pressureCalls, "second request within ttl must be served from cache")
	assert.Equal(t, first.Body.String(), second.Body.String())
}

func TestPressureCacheExpiryReinvokesStoreOnce(t *testing.T) {
	env := newTestEnv(t, 40*time.Millisecond)

	env.get("/api/pool-flow/pressure?pool=sol_usdc")
	env.get("/api/pool-flow/pressure?pool=sol_usdc")
	require.Equal(t, 1, env.flow.pressureCalls)

	time.Sleep(60 * time.Millisecond)

	env.get("/api/pool-flow/pressure?pool=sol_usdc")
	assert.Equal(t, 2, env.flow.pressureCalls, "expired entry must trigger exactly one more store call")
}

func TestPressureDifferentPoolsDoNotShareCache(t *testing.T) {
	env := newTestEnv(t, time.Minute)

	env.get("/api/pool-flow/pressure?pool=pool_a")
	env.get("/api/pool-flow/pressure?pool=pool_b")

	assert.Equal(t, 2, env.flow.pressureCalls)
}

func TestPressureStoreErrorIsGeneric500(t *testing.T) {
	env := newTestEnv(t, time.Minute)
	env.flow.err = errors.New("pq: connection reset by peer")

	rec := env.get("/api/pool-flow/pressure?pool=sol_usdc")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"query failed"}`, rec.Body.String())
	assert.NotContains(t, rec.Body.String(), "pq:", "driver errors must not leak to callers")
}

func TestPressureErrorIsNotCached(t *testing.T) {
	env := newTestEnv(t, time.Minute)
	env.flow.err = errors.New("boom")

	env.get("/api/pool-flow/pressure?pool=sol_usdc")
	env.flow.err = nil
	rec := env.get("/api/pool-flow/pressure?pool=sol_usdc")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 2, env.flow.pressureCalls, "failed query must not populate the cache")
}

func TestPressureEmptyPoolReturnsEmptyArrays(t *testing.T) {
	env := newTestEnv(t, time.Minute)

	rec := env.get("/api/pool-flow/pressure?pool=ghost_pool")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"ts":[],"pressure":[],"volume":[]}`, rec.Body.String())
}

func TestHeatmapMissingPoolParam(t *testing.T) {
	env := newTestEnv(t, time.Minute)

	rec := env.get("/api/pool-flow/heatmap")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Zero(t, env.flow.heatmapCalls)
}

func TestHeatmapEmptyPoolReturnsEmptyArray(t *testing.T) {
	env := newTestEnv(t, time.Minute)

	rec := env.get("/api/pool-flow/heatmap?pool=ghost_pool")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestHeatmapResponseShape(t *testing.T) {
	env := newTestEnv(t, time.Minute)
	env.flow.cells = []model.HeatmapCell{
		{DayOfWeek: 1, HourOfDay: 9, VolumeUSD: 1234.5},
	}

	rec := env.get("/api/pool-flow/heatmap?pool=sol_usdc")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"dow":1,"hr":9,"vol_usd":1234.5}]`, rec.Body.String())
}

func TestWalletMetricsCacheHitSkipsStore(t *testing.T) {
	env := newTestEnv(t, time.Minute)
	env.wallet.metrics = []model.WalletMetric{
		{Wallet: "0xabc", Turnover: 50000, NetBias: 0.2, Trades: 42, AvgTradeUSD: 1190.5, ColorVal: 0.8, BubbleSize: 12},
	}

	env.get("/api/wallet-metrics/sol_usdc")
	env.get("/api/wallet-metrics/sol_usdc")

	assert.Equal(t, 1, env.wallet.metricsCalls)
}

func TestWalletMetricsInvalidSlugIs400(t *testing.T) {
	env := newTestEnv(t, time.Minute)
	env.wallet.err = fmt.Errorf("%w: %q", dao.ErrInvalidPoolSlug, "bad;slug")

	rec := env.get("/api/wallet-metrics/bad;slug")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTopWalletsResponseShape(t *testing.T) {
	env := newTestEnv(t, time.Minute)
	lastTrade := time.Date(2024, 2, 1, 10, 30, 0, 0, time.UTC)
	env.wallet.top = []model.TopWallet{
		{Wallet: "0xaaa", Turnover24h: 9000, LastTrade: lastTrade},
		{Wallet: "0xbbb", Turnover24h: 4500, LastTrade: lastTrade},
	}

	rec := env.get("/api/top-wallets/sol_usdc")
	require.Equal(t, http.StatusOK, rec.Code)

	var got []model.TopWallet
	require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "0xaaa", got[0].Wallet)
	assert.Greater(t, got[0].Turnover24h, got[1].Turnover24h)
}

func TestIngestStatsNoRunReturnsEmptyObject(t *testing.T) {
	env := newTestEnv(t, time.Minute)

	rec := env.get("/api/ingest-stats/never_ingested")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{}`, rec.Body.String())
}

func TestIngestStatsDerivedThroughputInBody(t *testing.T) {
	env := newTestEnv(t, time.Minute)
	env.ingest.run = &model.IngestRun{
		RunAt:           time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
		LogCount:        600,
		DurationSeconds: 30,
		TotalLogs:       100000,
	}

	rec := env.get("/api/ingest-stats/sol_usdc")
	require.Equal(t, http.StatusOK, rec.Code)

	var got model.IngestStats
	require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &got))
	assert.InDelta(t, 20.0, got.LogsPerSecond, 1e-9)
}

func TestHealth(t *testing.T) {
	env := newTestEnv(t, time.Minute)

	rec := env.get("/health")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestCORSAllowsConfiguredOriginOnly(t *testing.T) {
	env := newTestEnv(t, time.Minute)
	wrapped := WithCORS([]string{"https://dashboard.poolflow.dev"}, env.router)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "https://dashboard.poolflow.dev")
	rec := httptest.NewRecorder()
	wrapped.ServeHTTP(rec, req)
	assert.Equal(t, "https://dashboard.poolflow.dev", rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	rec = httptest.NewRecorder()
	wrapped.ServeHTTP(rec, req)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}
