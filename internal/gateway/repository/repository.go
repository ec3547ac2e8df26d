package repository

import (
	"context"

	"poolflow-gateway/internal/gateway/config"
	"poolflow-gateway/pkg/database"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// New 显式构造仓储实例，不走进程级单例，便于用假实现做测试
func New(cfg config.Config, logger *zap.Logger) (Repository, error) {
	r := &repositoryImpl{
		cfg:    cfg,
		logger: logger,
	}
	if err := r.init(); err != nil {
		return nil, err
	}
	return r, nil
}

type repositoryImpl struct {
	cfg    config.Config
	logger *zap.Logger
	db     *gorm.DB
}

func (r *repositoryImpl) init() error {
	var err error
	r.db, err = database.InitPG(r.cfg.Postgres.DSN)
	if err != nil {
		return err
	}
	r.logger.Info("connected to postgres")
	return nil
}

func (r *repositoryImpl) GetDB() *gorm.DB {
	return r.db
}

func (r *repositoryImpl) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (r *repositoryImpl) Close() error {
	if r.db != nil {
		sqlDB, _ := r.db.DB()
		return sqlDB.Close()
	}
	return nil
}
