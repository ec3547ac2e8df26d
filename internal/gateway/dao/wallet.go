package dao

import (
	"context"

	"poolflow-gateway/internal/gateway/model"
)

// WalletDAO 定义每池钱包指标数据访问接口
type WalletDAO interface {
	// GetMetrics 查询尾随窗口内活跃且达到交易数/成交额门槛的钱包指标
	GetMetrics(ctx context.Context, poolSlug string) ([]model.WalletMetric, error)

	// GetTopWallets 查询 24h 成交额前 10 的钱包，严格降序，只含正成交额
	GetTopWallets(ctx context.Context, poolSlug string) ([]model.TopWallet, error)
}
