package dao

import (
	"context"
	"fmt"
	"time"

	"poolflow-gateway/internal/gateway/config"
	"poolflow-gateway/internal/gateway/model"
	"poolflow-gateway/internal/gateway/monitor"
	"poolflow-gateway/pkg/utils"

	"gorm.io/gorm"
)

const topWalletLimit = 10

// walletDAO 实现WalletDAO接口
type walletDAO struct {
	cfg *config.Config
	db  *gorm.DB
}

// NewWalletDAO 创建WalletDAO实例
func NewWalletDAO(cfg *config.Config, db *gorm.DB) WalletDAO {
	return &walletDAO{
		cfg: cfg,
		db:  db,
	}
}

// GetMetrics 查询尾随窗口内达到门槛的钱包指标
// 表名来自 slug，必须先过标识符白名单才能拼接
func (w *walletDAO) GetMetrics(ctx context.Context, poolSlug string) ([]model.WalletMetric, error) {
	table, err := utils.WalletMetricsTable(poolSlug)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPoolSlug, poolSlug)
	}

	sql := fmt.Sprintf(`
SELECT wallet,
       turnover,
       net_bias,
       trades,
       avg_trade_usd,
       color_val,
       bubble_size
FROM   %s
WHERE  updated_at >= NOW() - make_interval(days => ?)
  AND  trades   >= ?
  AND  turnover >= ?`, table)

	start := time.Now()
	var rows []model.WalletMetric
	err = w.db.WithContext(ctx).
		Raw(sql, w.cfg.Wallet.WindowDays, w.cfg.Wallet.MinTrades, w.cfg.Wallet.MinTurnoverUSD).
		Scan(&rows).Error
	monitor.DBQueryDuration.WithLabelValues("wallet_metrics").Observe(time.Since(start).Seconds())

	if err != nil {
		monitor.DBQueryErrors.WithLabelValues("wallet_metrics").Inc()
		return nil, err
	}
	return rows, nil
}

// GetTopWallets 查询 24h 成交额排行榜
func (w *walletDAO) GetTopWallets(ctx context.Context, poolSlug string) ([]model.TopWallet, error) {
	table, err := utils.WalletMetricsTable(poolSlug)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPoolSlug, poolSlug)
	}

	sql := fmt.Sprintf(`
SELECT wallet,
       turnover_24h,
       last_trade
FROM   %s
WHERE  turnover_24h > 0
ORDER  BY turnover_24h DESC
LIMIT  ?`, table)

	start := time.Now()
	var rows []model.TopWallet
	err = w.db.WithContext(ctx).
		Raw(sql, topWalletLimit).
		Scan(&rows).Error
	monitor.DBQueryDuration.WithLabelValues("top_wallets").Observe(time.Since(start).Seconds())

	if err != nil {
		monitor.DBQueryErrors.WithLabelValues("top_wallets").Inc()
		return nil, err
	}
	return rows, nil
}
