package middleware

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTokenBucketBurst(t *testing.T) {
	tb := NewTokenBucket(1, 3)

	// 突发容量内的请求全部放行
	for i := 0; i < 3; i++ {
		assert.True(t, tb.Allow())
	}
	// 桶空后拒绝
	assert.False(t, tb.Allow())
}

func TestTokenBucketRefill(t *testing.T) {
	tb := NewTokenBucket(100, 1)

	assert.True(t, tb.Allow())
	assert.False(t, tb.Allow())

	// 等待令牌回填
	time.Sleep(50 * time.Millisecond)
	assert.True(t, tb.Allow())
}
