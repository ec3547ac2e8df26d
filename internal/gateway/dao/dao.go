package dao

import (
	"errors"

	"poolflow-gateway/internal/gateway/config"

	"gorm.io/gorm"
)

// ErrInvalidPoolSlug slug 不符合安全标识符规则，不能拼进表名
var ErrInvalidPoolSlug = errors.New("invalid pool slug")

// DAOManager 管理所有DAO实例
type DAOManager struct {
	PoolFlowDAO PoolFlowDAO
	WalletDAO   WalletDAO
	IngestDAO   IngestDAO
}

// NewDAOManager 创建DAO管理器实例
func NewDAOManager(cfg *config.Config, db *gorm.DB) *DAOManager {
	return &DAOManager{
		PoolFlowDAO: NewPoolFlowDAO(cfg, db),
		WalletDAO:   NewWalletDAO(cfg, db),
		IngestDAO:   NewIngestDAO(cfg, db),
	}
}
