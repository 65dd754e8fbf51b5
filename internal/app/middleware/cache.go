package middleware

import (
	"bytes"
	"crypto/md5"
	"encoding/hex"
	"net/http"
	"sort"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// 缓存条目
type cacheEntry struct {
	Content    []byte
	Expiration time.Time
}

// 内存缓存
type memoryCache struct {
	sync.RWMutex
	items map[string]cacheEntry
}

// 全局缓存实例
var cache = &memoryCache{
	items: make(map[string]cacheEntry),
}

// responseWriter 捕获响应内容用于写入缓存
type responseWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *responseWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

// cacheKey 由请求路径和排序后的查询参数生成缓存键
func cacheKey(c *gin.Context) string {
	path := c.Request.URL.Path

	queryParams := c.Request.URL.Query()
	var queryKeys []string
	for key := range queryParams {
		queryKeys = append(queryKeys, key)
	}
	sort.Strings(queryKeys)

	var queryString string
	for _, key := range queryKeys {
		values := queryParams[key]
		sort.Strings(values)
		for _, value := range values {
			queryString += key + "=" + value + "&"
		}
	}

	hasher := md5.New()
	hasher.Write([]byte(path + "?" + queryString))
	return hex.EncodeToString(hasher.Sum(nil))
}

// Cache 创建GET响应缓存中间件
// 只缓存状态码为200的GET响应
func Cache(expiration time.Duration) gin.HandlerFunc {
	if expiration <= 0 {
		expiration = 5 * time.Minute
	}

	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet {
			c.Next()
			return
		}

		key := cacheKey(c)

		// 尝试从缓存获取响应
		cache.RLock()
		entry, found := cache.items[key]
		cache.RUnlock()

		if found && entry.Expiration.After(time.Now()) {
			// 缓存命中，直接返回缓存的响应
			c.Data(http.StatusOK, "application/json; charset=utf-8", entry.Content)
			c.Abort()
			return
		}

		// 缓存未命中，捕获响应
		writer := &responseWriter{
			ResponseWriter: c.Writer,
			body:           &bytes.Buffer{},
		}
		c.Writer = writer

		c.Next()

		// 如果状态码为200，缓存响应
		if c.Writer.Status() == http.StatusOK {
			cache.Lock()
			cache.items[key] = cacheEntry{
				Content:    writer.body.Bytes(),
				Expiration: time.Now().Add(expiration),
			}
			cache.Unlock()
		}
	}
}

// PurgeCache 清除所有缓存
func PurgeCache() {
	cache.Lock()
	cache.items = make(map[string]cacheEntry)
	cache.Unlock()
}
