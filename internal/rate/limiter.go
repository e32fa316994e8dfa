package rate

import (
	"sync"
	"time"
)

// Config defines the token bucket for a single client.
type Config struct {
	RequestsPerSecond int
	Burst             int
}

// Limiter implements a token bucket rate limiter.
type Limiter struct {
	mu     sync.Mutex
	tokens float64
	last   time.Time
	rate   float64
	burst  float64
}

// New creates a new limiter with a full bucket.
func New(cfg Config) *Limiter {
	return newAt(cfg, time.Now())
}

func newAt(cfg Config, now time.Time) *Limiter {
	return &Limiter{
		tokens: float64(cfg.Burst),
		last:   now,
		rate:   float64(cfg.RequestsPerSecond),
		burst:  float64(cfg.Burst),
	}
}

// Allow takes one token if available.
func (l *Limiter) Allow() bool {
	return l.allowAt(time.Now())
}

func (l *Limiter) allowAt(now time.Time) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if elapsed := now.Sub(l.last).Seconds(); elapsed > 0 {
		l.tokens += elapsed * l.rate
		if l.tokens > l.burst {
			l.tokens = l.burst
		}
	}
	l.last = now

	if l.tokens >= 1 {
		l.tokens--
		return true
	}
	return false
}

// idleSince reports whether the limiter has not been touched since cutoff.
func (l *Limiter) idleSince(cutoff time.Time) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.last.Before(cutoff)
}

// Manager holds per-client limiters, keyed by remote address.
type Manager struct {
	mu       sync.RWMutex
	limiters map[string]*Limiter
	defaults Config
}

func NewManager(defaults Config) *Manager {
	return &Manager{
		limiters: make(map[string]*Limiter),
		defaults: defaults,
	}
}

func (m *Manager) GetLimiter(clientKey string) *Limiter {
	m.mu.RLock()
	if lim, ok := m.limiters[clientKey]; ok {
		m.mu.RUnlock()
		return lim
	}
	m.mu.RUnlock()

	m.mu.Lock()
	defer m.mu.Unlock()
	if lim, ok := m.limiters[clientKey]; ok {
		return lim
	}
	lim := New(m.defaults)
	m.limiters[clientKey] = lim
	return lim
}

// Allow takes a token from the limiter for key.
func (m *Manager) Allow(key string) bool {
	return m.GetLimiter(key).Allow()
}

// Len returns the number of tracked clients.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.limiters)
}

// Sweep drops limiters idle for longer than idle and returns how many were removed.
func (m *Manager) Sweep(idle time.Duration) int {
	cutoff := time.Now().Add(-idle)

	m.mu.Lock()
	defer m.mu.Unlock()
	removed := 0
	for key, lim := range m.limiters {
		if lim.idleSince(cutoff) {
			delete(m.limiters, key)
			removed++
		}
	}
	return removed
}
