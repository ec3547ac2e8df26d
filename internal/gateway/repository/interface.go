package repository

import (
	"context"

	"gorm.io/gorm"
)

type DBClient = *gorm.DB

type Repository interface {
	//DB
	GetDB() DBClient
	Ping(ctx context.Context) error
	Close() error
}
