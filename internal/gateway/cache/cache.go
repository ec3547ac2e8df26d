package cache

import (
	"time"

	"github.com/patrickmn/go-cache"
)

const (
	// DefaultTTL 查询结果的默认新鲜度窗口
	DefaultTTL = 300 * time.Second

	cleanupInterval = time.Minute
)

// ResultCache 按逻辑查询身份缓存已成形的响应负载。
// 过期的键和从未写入的键不可区分，读到的都是 miss。
// 失败的上游查询永远不会进缓存。
type ResultCache struct {
	store *cache.Cache
}

// New 创建结果缓存，ttl <= 0 时使用 DefaultTTL
func New(ttl time.Duration) *ResultCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &ResultCache{
		store: cache.New(ttl, cleanupInterval),
	}
}

// Get 读取缓存，miss（含已过期）返回 (nil, false)
func (c *ResultCache) Get(key string) (interface{}, bool) {
	return c.store.Get(key)
}

// Set 按默认 TTL 写入
func (c *ResultCache) Set(key string, value interface{}) {
	c.store.Set(key, value, cache.DefaultExpiration)
}

// SetWithTTL 按指定 TTL 写入
func (c *ResultCache) SetWithTTL(key string, value interface{}, ttl time.Duration) {
	c.store.Set(key, value, ttl)
}

// Flush 清空全部条目，只在测试和热重载时用
func (c *ResultCache) Flush() {
	c.store.Flush()
}
