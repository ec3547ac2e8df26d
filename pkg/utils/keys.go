package utils

import "fmt"

func PressureKey(poolSlug string, days int) string {
	return fmt.Sprintf("pool_flow:pressure:%s:%d", poolSlug, days)
}

func HeatmapKey(poolSlug string, days int) string {
	return fmt.Sprintf("pool_flow:heatmap:%s:%d", poolSlug, days)
}

func WalletMetricsKey(poolSlug string) string {
	return fmt.Sprintf("wallet_metrics:%s", poolSlug)
}

func TopWalletsKey(poolSlug string) string {
	return fmt.Sprintf("top_wallets:%s", poolSlug)
}

func IngestStatsKey(poolSlug string) string {
	return fmt.Sprintf("ingest_stats:%s", poolSlug)
}
