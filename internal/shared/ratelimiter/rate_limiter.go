// Package ratelimiter は上流APIへの呼び出し頻度を制御するシンプルな
// カウンターベースのリミッターを提供します。
package ratelimiter

import (
	"log/slog"
	"sync"
	"time"
)

// RateLimiterInterface は、API呼び出しなどの操作の頻度を制限するインターフェースです。
type RateLimiterInterface interface {
	WaitIfNeeded()
}

// RateLimiter は固定ウィンドウ方式で操作回数を制限します。
// ウィンドウ内の上限に達した呼び出しは、次のウィンドウ開始までブロックします。
type RateLimiter struct {
	mu          sync.Mutex
	limit       int           // 1ウィンドウあたりの呼び出し上限
	window      time.Duration // カウントをリセットする間隔
	count       int
	windowStart time.Time
}

// NewRateLimiter は limit 回/window のリミッターを生成します。
func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		limit:       limit,
		window:      window,
		windowStart: time.Now(),
	}
}

// WaitIfNeeded は上限に達している場合、現在のウィンドウが終わるまで待機します。
func (rl *RateLimiter) WaitIfNeeded() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	if now.Sub(rl.windowStart) >= rl.window {
		rl.count = 0
		rl.windowStart = now
	}

	rl.count++
	if rl.count <= rl.limit {
		return
	}

	sleep := rl.window - now.Sub(rl.windowStart)
	if sleep > 0 {
		slog.Warn("rate limit reached, waiting for next window", "limit", rl.limit, "sleep", sleep)
		time.Sleep(sleep)
	}
	rl.count = 1
	rl.windowStart = time.Now()
}
