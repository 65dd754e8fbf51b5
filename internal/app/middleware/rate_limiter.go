package middleware

import (
	"sync"
	"time"

	"oksms-http-service/internal/error/code"
	"oksms-http-service/internal/error/response"

	"github.com/gin-gonic/gin"
)

// 简单的令牌桶限流器
type TokenBucket struct {
	rate       float64    // 每秒填充的令牌数
	capacity   int        // 桶的容量
	tokens     float64    // 当前令牌数
	lastRefill time.Time  // 上次填充时间
	mu         sync.Mutex // 互斥锁
}

// 创建新的令牌桶限流器
func NewTokenBucket(rate float64, capacity int) *TokenBucket {
	return &TokenBucket{
		rate:       rate,
		capacity:   capacity,
		tokens:     float64(capacity),
		lastRefill: time.Now(),
	}
}

// 尝试获取令牌
func (tb *TokenBucket) Allow() bool {
	tb.mu.Lock()
	defer tb.mu.Unlock()

	now := time.Now()
	elapsed := now.Sub(tb.lastRefill).Seconds()
	tb.lastRefill = now

	// 填充令牌
	tb.tokens += elapsed * tb.rate
	if tb.tokens > float64(tb.capacity) {
		tb.tokens = float64(tb.capacity)
	}

	// 尝试获取令牌
	if tb.tokens >= 1 {
		tb.tokens--
		return true
	}

	return false
}

// 按键维护的限流器集合
var (
	limiters   = make(map[string]*TokenBucket)
	limitersMu sync.RWMutex
)

// getLimiter 获取指定键的限流器，不存在则创建
func getLimiter(key string, rate float64, burst int) *TokenBucket {
	limitersMu.RLock()
	limiter, exists := limiters[key]
	limitersMu.RUnlock()

	if !exists {
		limitersMu.Lock()
		if limiter, exists = limiters[key]; !exists {
			limiter = NewTokenBucket(rate, burst)
			limiters[key] = limiter
		}
		limitersMu.Unlock()
	}

	return limiter
}

// IPRateLimiter 按IP限流
func IPRateLimiter(rate float64, burst int) gin.HandlerFunc {
	return func(c *gin.Context) {
		limiter := getLimiter(c.ClientIP(), rate, burst)
		if !limiter.Allow() {
			response.FailWithMessage(c, code.ErrTooManyRequests, "请求频率过高，请稍后再试", nil)
			c.Abort()
			return
		}
		c.Next()
	}
}

// CombinedRateLimiter 按IP和路径组合限流
func CombinedRateLimiter(rate float64, burst int) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.ClientIP() + ":" + c.Request.URL.Path
		limiter := getLimiter(key, rate, burst)
		if !limiter.Allow() {
			response.FailWithMessage(c, code.ErrTooManyRequests, "请求频率过高，请稍后再试", nil)
			c.Abort()
			return
		}
		c.Next()
	}
}

// 定期清理限流器，防止键无限增长
func init() {
	go func() {
		ticker := time.NewTicker(1 * time.Hour)
		defer ticker.Stop()

		for range ticker.C {
			limitersMu.Lock()
			limiters = make(map[string]*TokenBucket)
			limitersMu.Unlock()
		}
	}()
}
