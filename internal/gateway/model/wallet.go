package model

import "time"

// WalletMetric 每池钱包指标行，来自 <slug>_wallet_metrics 表
type WalletMetric struct {
	Wallet      string  `gorm:"column:wallet" json:"wallet"`
	Turnover    float64 `gorm:"column:turnover;type:decimal(20,8)" json:"turnover"`
	NetBias     float64 `gorm:"column:net_bias;type:decimal(10,4)" json:"net_bias"`
	Trades      int     `gorm:"column:trades" json:"trades"`
	AvgTradeUSD float64 `gorm:"column:avg_trade_usd;type:decimal(20,8)" json:"avg_trade_usd"`
	ColorVal    float64 `gorm:"column:color_val;type:decimal(10,4)" json:"color_val"`
	BubbleSize  float64 `gorm:"column:bubble_size;type:decimal(10,4)" json:"bubble_size"`
}

// TopWallet 24 小时成交额排行榜行
type TopWallet struct {
	Wallet      string    `gorm:"column:wallet" json:"wallet"`
	Turnover24h float64   `gorm:"column:turnover_24h;type:decimal(20,8)" json:"turnover_24h"`
	LastTrade   time.Time `gorm:"column:last_trade" json:"last_trade"`
}
