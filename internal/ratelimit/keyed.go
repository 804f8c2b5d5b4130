package ratelimit

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// idleTTL is how long an unused key is kept before cleanup drops it.
const idleTTL = 10 * time.Minute

// Cooldown allows one event per key per period (for example one lookup per
// Discord user every two seconds). A zero period allows everything.
type Cooldown struct {
	period  time.Duration
	entries sync.Map // map[string]*cooldownEntry
	now     func() time.Time
	stop    chan struct{}
	once    sync.Once
}

type cooldownEntry struct {
	mu       sync.Mutex
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewCooldown creates a Cooldown with background cleanup of idle keys
// every cleanupInterval. Call Stop on shutdown.
func NewCooldown(period, cleanupInterval time.Duration) *Cooldown {
	c := &Cooldown{
		period: period,
		now:    time.Now,
		stop:   make(chan struct{}),
	}
	if cleanupInterval > 0 {
		go c.cleanup(cleanupInterval)
	}
	return c
}

// Stop terminates the background cleanup goroutine. Safe to call twice.
func (c *Cooldown) Stop() {
	c.once.Do(func() { close(c.stop) })
}

// Allow reports whether key may act now and, if so, consumes its slot.
func (c *Cooldown) Allow(key string) bool {
	if c.period <= 0 {
		return true
	}

	now := c.now()
	val, _ := c.entries.LoadOrStore(key, &cooldownEntry{
		limiter:  rate.NewLimiter(rate.Every(c.period), 1),
		lastSeen: now,
	})
	e := val.(*cooldownEntry)

	e.mu.Lock()
	defer e.mu.Unlock()
	e.lastSeen = now
	return e.limiter.AllowN(now, 1)
}

// RetryAfter returns how long key has to wait before Allow succeeds again.
func (c *Cooldown) RetryAfter(key string) time.Duration {
	val, ok := c.entries.Load(key)
	if !ok || c.period <= 0 {
		return 0
	}
	e := val.(*cooldownEntry)

	e.mu.Lock()
	defer e.mu.Unlock()
	now := c.now()
	tokens := e.limiter.TokensAt(now)
	if tokens >= 1 {
		return 0
	}
	return time.Duration((1 - tokens) * float64(c.period))
}

func (c *Cooldown) cleanup(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-c.stop:
			return
		case <-ticker.C:
			c.sweep(c.now())
		}
	}
}

// sweep drops keys that have been idle longer than idleTTL.
func (c *Cooldown) sweep(now time.Time) {
	c.entries.Range(func(key, value any) bool {
		e := value.(*cooldownEntry)
		e.mu.Lock()
		idle := now.Sub(e.lastSeen)
		e.mu.Unlock()
		if idle > idleTTL {
			c.entries.Delete(key)
		}
		return true
	})
}
