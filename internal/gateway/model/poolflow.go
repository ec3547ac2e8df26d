package model

import "time"

// DisplayTimezone 所有面向前端的时间都转换到这个时区，且只转换一次
const DisplayTimezone = "America/New_York"

// FlowBin 4 小时 UTC 对齐的资金流聚合桶（query builder 原始输出）
// 数值列按字符串扫描，驱动对高精度 numeric 的返回格式不稳定，
// 统一交给 shaper 做 decimal -> float64 转换
type FlowBin struct {
	BinTs    time.Time `gorm:"column:bin_ts"`
	BuysUSD  string    `gorm:"column:buys_usd"`
	SellsUSD string    `gorm:"column:sells_usd"`
	Volume   string    `gorm:"column:volume_usd"`
	Pressure string    `gorm:"column:pressure"`
}

// PressureSeries 压力序列响应：三条平行数组
type PressureSeries struct {
	Ts       []string  `json:"ts"`
	Pressure []float64 `json:"pressure"`
	Volume   []float64 `json:"volume"`
}

// HeatmapCell 星期 × 小时的成交量热力格（展示时区）
type HeatmapCell struct {
	DayOfWeek int     `gorm:"column:dow" json:"dow"`
	HourOfDay int     `gorm:"column:hr" json:"hr"`
	VolumeUSD float64 `gorm:"column:vol_usd" json:"vol_usd"`
}
