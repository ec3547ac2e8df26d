package service

import (
	"context"
	"testing"
	"time"

	"poolflow-gateway/internal/gateway/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeIngestDAO struct {
	run *model.IngestRun
	err error
}

func (f *fakeIngestDAO) GetLatestRun(ctx context.Context, poolSlug string) (*model.IngestRun, error) {
	return f.run, f.err
}

func TestLatestStatsDerivesThroughput(t *testing.T) {
	runAt := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	svc := NewIngestService(testConfig(), zap.NewNop(), &fakeIngestDAO{
		run: &model.IngestRun{
			RunAt:           runAt,
			LogCount:        1200,
			DurationSeconds: 60,
			TotalLogs:       98765,
		},
	})

	stats, err := svc.LatestStats(context.Background(), "sol_usdc")
	require.NoError(t, err)
	require.NotNil(t, stats)
	assert.Equal(t, runAt, stats.Timestamp)
	assert.InDelta(t, 20.0, stats.LogsPerSecond, 1e-9)
	assert.EqualValues(t, 98765, stats.TotalLogs)
}

func TestLatestStatsZeroDurationYieldsZeroThroughput(t *testing.T) {
	svc := NewIngestService(testConfig(), zap.NewNop(), &fakeIngestDAO{
		run: &model.IngestRun{LogCount: 500, DurationSeconds: 0},
	})

	stats, err := svc.LatestStats(context.Background(), "sol_usdc")
	require.NoError(t, err)
	assert.Zero(t, stats.LogsPerSecond)
}

func TestLatestStatsNoRunIsNotAnError(t *testing.T) {
	svc := NewIngestService(testConfig(), zap.NewNop(), &fakeIngestDAO{})

	stats, err := svc.LatestStats(context.Background(), "never_ingested")
	require.NoError(t, err)
	assert.Nil(t, stats)
}
