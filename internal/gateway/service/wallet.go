package service

import (
	"context"

	"poolflow-gateway/internal/gateway/config"
	"poolflow-gateway/internal/gateway/dao"
	"poolflow-gateway/internal/gateway/model"

	"go.uber.org/zap"
)

// WalletService 钱包指标基本是透传，行形状已经在 DAO 层对齐
type WalletService struct {
	cfg *config.Config
	tl  *zap.Logger
	dao dao.WalletDAO
}

func NewWalletService(cfg *config.Config, logger *zap.Logger, walletDAO dao.WalletDAO) *WalletService {
	return &WalletService{
		cfg: cfg,
		tl:  logger,
		dao: walletDAO,
	}
}

// Metrics 查询达到门槛的钱包指标
func (s *WalletService) Metrics(ctx context.Context, poolSlug string) ([]model.WalletMetric, error) {
	rows, err := s.dao.GetMetrics(ctx, poolSlug)
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []model.WalletMetric{}
	}
	return rows, nil
}

// TopWallets 查询 24h 成交额排行榜
func (s *WalletService) TopWallets(ctx context.Context, poolSlug string) ([]model.TopWallet, error) {
	rows, err := s.dao.GetTopWallets(ctx, poolSlug)
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []model.TopWallet{}
	}
	return rows, nil
}
