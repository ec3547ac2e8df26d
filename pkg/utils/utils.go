package utils

import (
	"fmt"
	"regexp"
)

// slug 会拼进每池的表名，只允许小写字母、数字和下划线，
// 且不能超过 PostgreSQL 标识符长度上限
var slugPattern = regexp.MustCompile(`^[a-z0-9_]{1,48}$`)

// IsValidPoolSlug 校验池标识是否可以安全地用作表名片段
func IsValidPoolSlug(slug string) bool {
	return slugPattern.MatchString(slug)
}

// WalletMetricsTable 由池标识推导每池钱包指标表名
func WalletMetricsTable(poolSlug string) (string, error) {
	if !IsValidPoolSlug(poolSlug) {
		return "", fmt.Errorf("invalid pool slug %q", poolSlug)
	}
	return poolSlug + "_wallet_metrics", nil
}
