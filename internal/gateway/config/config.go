package config

import (
	"errors"
	"fmt"

	"poolflow-gateway/pkg/logger"

	"github.com/fsnotify/fsnotify"
	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
)

// Config 定义整个配置的结构
type Config struct {
	Log      LogConfig      `mapstructure:"log"`
	Server   ServerConfig   `mapstructure:"server"`
	Postgres PostgresConfig `mapstructure:"postgres"`
	Cache    CacheConfig    `mapstructure:"cache"`
	Flow     FlowConfig     `mapstructure:"flow"`
	Wallet   WalletConfig   `mapstructure:"wallet"`
	Warm     WarmConfig     `mapstructure:"warm"`
	Monitor  MonitorConfig  `mapstructure:"monitor"`
}

// LogConfig Log 日志配置
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// ServerConfig HTTP 服务配置
type ServerConfig struct {
	Port        string          `mapstructure:"port"`
	CORSOrigins []string        `mapstructure:"cors_origins"`
	RateLimit   RateLimitConfig `mapstructure:"rate_limit"`
}

// RateLimitConfig 针对单个来源 IP 的限流配置
type RateLimitConfig struct {
	Enable bool    `mapstructure:"enable"`
	RPS    float64 `mapstructure:"rps"`
	Burst  int     `mapstructure:"burst"`
}

// PostgresConfig PostgreSQL 配置
type PostgresConfig struct {
	DSN string `mapstructure:"dsn"`
}

// CacheConfig 查询结果缓存配置
type CacheConfig struct {
	TTLSeconds int `mapstructure:"ttl_seconds"`
}

// FlowConfig 资金流（pressure/heatmap）查询窗口配置
type FlowConfig struct {
	WindowDays int `mapstructure:"window_days"`
}

// WalletConfig 钱包指标筛选阈值配置
// 上游两个版本的常量不一致，这里统一成显式配置（见 DESIGN.md）
type WalletConfig struct {
	WindowDays     int     `mapstructure:"window_days"`
	MinTrades      int     `mapstructure:"min_trades"`
	MinTurnoverUSD float64 `mapstructure:"min_turnover_usd"`
}

// WarmConfig 缓存预热配置
type WarmConfig struct {
	Enable          bool     `mapstructure:"enable"`
	Pools           []string `mapstructure:"pools"`
	IntervalMinutes int      `mapstructure:"interval_minutes"`
}

type MonitorConfig struct {
	Enable         bool   `mapstructure:"enable"`
	PrometheusAddr string `mapstructure:"prometheus_addr"`
}

func setDefaults() {
	viper.SetDefault("log.level", "info")
	viper.SetDefault("server.port", "4000")
	viper.SetDefault("server.cors_origins", []string{})
	viper.SetDefault("server.rate_limit.enable", false)
	viper.SetDefault("server.rate_limit.rps", 20)
	viper.SetDefault("server.rate_limit.burst", 40)
	viper.SetDefault("postgres.dsn", "")
	viper.SetDefault("cache.ttl_seconds", 300)
	viper.SetDefault("flow.window_days", 30)
	viper.SetDefault("wallet.window_days", 180)
	viper.SetDefault("wallet.min_trades", 30)
	viper.SetDefault("wallet.min_turnover_usd", 10000)
	viper.SetDefault("warm.enable", false)
	viper.SetDefault("warm.pools", []string{})
	viper.SetDefault("warm.interval_minutes", 10)
	viper.SetDefault("monitor.enable", false)
	viper.SetDefault("monitor.prometheus_addr", ":9090")
}

func InitConfig() Config {
	var config Config

	viper.SetConfigName("config.gateway")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config/")

	setDefaults()

	// 部署环境只给环境变量，不一定有配置文件
	_ = viper.BindEnv("postgres.dsn", "DATABASE_URL")
	_ = viper.BindEnv("server.port", "PORT")

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			panic(fmt.Errorf("fatal error config file: %s", err))
		}
	}

	if err := mapstructure.Decode(viper.AllSettings(), &config); err != nil {
		panic(fmt.Errorf("fatal error config file: %s", err))
	}

	return config
}

func WatchConfig(config *Config) {
	viper.WatchConfig()
	viper.OnConfigChange(func(e fsnotify.Event) {
		newConfig := InitConfig()
		*config = newConfig
		logger.SetLogLevel(config.Log.Level)
	})
}

// Addr 返回 HTTP 监听地址
func (c ServerConfig) Addr() string {
	return ":" + c.Port
}
