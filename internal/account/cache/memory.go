package cache

import (
	"context"
	"sync"
	"time"
)

type MemoryRevocations struct {
	mu      sync.Mutex
	entries map[string]time.Time
	now     func() time.Time
}

func NewMemoryRevocations() *MemoryRevocations {
	return &MemoryRevocations{entries: make(map[string]time.Time), now: time.Now}
}

func (m *MemoryRevocations) Revoke(_ context.Context, tokenID string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	for id, exp := range m.entries {
		if !now.Before(exp) {
			delete(m.entries, id)
		}
	}
	m.entries[tokenID] = now.Add(ttl)
	return nil
}

func (m *MemoryRevocations) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	exp, ok := m.entries[tokenID]
	return ok && m.now().Before(exp), nil
}

type window struct {
	count int
	ends  time.Time
}

type MemoryThrottle struct {
	mu        sync.Mutex
	cfg       ThrottleConfig
	windows   map[string]*window
	nextSweep time.Time
	now       func() time.Time
}

func NewMemoryThrottle(cfg ThrottleConfig) *MemoryThrottle {
	return &MemoryThrottle{cfg: cfg, windows: make(map[string]*window), now: time.Now}
}

func (m *MemoryThrottle) Hit(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	m.sweep(now)

	w, ok := m.windows[key]
	if !ok || !now.Before(w.ends) {
		w = &window{ends: now.Add(m.cfg.Window)}
		m.windows[key] = w
	}
	w.count++

	if w.count > m.cfg.MaxAttempts {
		return ErrThrottled
	}
	return nil
}

// sweep drops closed windows, at most once per window length so a hit stays
// cheap on average.
func (m *MemoryThrottle) sweep(now time.Time) {
	if now.Before(m.nextSweep) {
		return
	}
	for key, w := range m.windows {
		if !now.Before(w.ends) {
			delete(m.windows, key)
		}
	}
	m.nextSweep = now.Add(m.cfg.Window)
}
