package service

import "github.com/shopspring/decimal"

// toFloat 把存储层返回的字符串编码 numeric 转成 float64。
// 超出 double 精度的部分按合同允许丢失；无法解析按 0 处理。
func toFloat(s string) float64 {
	if s == "" {
		return 0
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0
	}
	f, _ := d.Float64()
	return f
}
