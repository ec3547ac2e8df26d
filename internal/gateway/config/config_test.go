package config

import (
	"testing"
)

func TestInitConfigDefaults(t *testing.T) {
	cfg := InitConfig()
	t.Logf("cfg server: %+v", cfg.Server)
	t.Logf("cfg cache: %+v", cfg.Cache)
	t.Logf("cfg wallet: %+v", cfg.Wallet)

	if cfg.Server.Port != "4000" {
		t.Errorf("default port = %s, want 4000", cfg.Server.Port)
	}
	if cfg.Cache.TTLSeconds != 300 {
		t.Errorf("default cache ttl = %d, want 300", cfg.Cache.TTLSeconds)
	}
	if cfg.Flow.WindowDays != 30 {
		t.Errorf("default flow window = %d, want 30", cfg.Flow.WindowDays)
	}
	if cfg.Wallet.WindowDays != 180 || cfg.Wallet.MinTrades != 30 {
		t.Errorf("unexpected wallet defaults: %+v", cfg.Wallet)
	}
}

func TestInitConfigEnvOverride(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://u:p@localhost:5432/flow")
	t.Setenv("PORT", "8088")

	cfg := InitConfig()
	if cfg.Postgres.DSN != "postgres://u:p@localhost:5432/flow" {
		t.Errorf("dsn not taken from DATABASE_URL: %q", cfg.Postgres.DSN)
	}
	if cfg.Server.Addr() != ":8088" {
		t.Errorf("addr = %s, want :8088", cfg.Server.Addr())
	}
}
