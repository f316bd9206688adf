package ratelimit

import (
	"context"
	"sync"
	"time"
)

// maxTrackedKeys は同時に追跡するキー数の上限です。
// 上限に達したら期限切れのウィンドウを掃除し、それでも空きがなければ新しいキーは拒否します。
const maxTrackedKeys = 10000

type window struct {
	count     int
	lastReset time.Time
}

// MemoryLimiter はRedisが使えない場合のプロセス内固定ウィンドウ実装です。
type MemoryLimiter struct {
	mu       sync.Mutex
	limit    int
	interval time.Duration
	windows  map[string]*window
	maxKeys  int
	now      func() time.Time
}

// NewMemoryLimiter はMemoryLimiterの新しいインスタンスを生成します。
func NewMemoryLimiter(limit int, interval time.Duration) *MemoryLimiter {
	if interval <= 0 {
		interval = time.Minute
	}
	return &MemoryLimiter{
		limit:    limit,
		interval: interval,
		windows:  make(map[string]*window),
		maxKeys:  maxTrackedKeys,
		now:      time.Now,
	}
}

// Allow はキーのウィンドウ内のカウントを増やし、上限以内かを返します。待機はしません。
func (m *MemoryLimiter) Allow(_ context.Context, key string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	w, ok := m.windows[key]
	if !ok {
		if len(m.windows) >= m.maxKeys {
			m.sweep(now)
		}
		if len(m.windows) >= m.maxKeys {
			return false, nil
		}
		w = &window{lastReset: now}
		m.windows[key] = w
	}

	// interval を過ぎたらカウントリセット
	if now.Sub(w.lastReset) >= m.interval {
		w.count = 0
		w.lastReset = now
	}

	w.count++
	return w.count <= m.limit, nil
}

func (m *MemoryLimiter) sweep(now time.Time) {
	for k, w := range m.windows {
		if now.Sub(w.lastReset) >= m.interval {
			delete(m.windows, k)
		}
	}
}
