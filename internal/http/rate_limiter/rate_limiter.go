package rate_limiter

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const idleTimeout = 5 * time.Minute

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// Visitors hands out one token bucket per client key.
type Visitors struct {
	mu       sync.Mutex
	rps      rate.Limit
	burst    int
	visitors map[string]*clientLimiter
}

func NewVisitors(rps float64, burst int) *Visitors {
	return &Visitors{
		rps:      rate.Limit(rps),
		burst:    burst,
		visitors: make(map[string]*clientLimiter),
	}
}

func (v *Visitors) GetVisitor(key string) *rate.Limiter {
	v.mu.Lock()
	defer v.mu.Unlock()

	c, exists := v.visitors[key]
	if !exists {
		limiter := rate.NewLimiter(v.rps, v.burst)
		v.visitors[key] = &clientLimiter{limiter, time.Now()}
		return limiter
	}

	c.lastSeen = time.Now()
	return c.limiter
}

func (v *Visitors) Len() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return len(v.visitors)
}

// Cleanup forgets visitors idle for longer than maxIdle.
func (v *Visitors) Cleanup(maxIdle time.Duration) {
	v.mu.Lock()
	defer v.mu.Unlock()
	for key, c := range v.visitors {
		if time.Since(c.lastSeen) > maxIdle {
			delete(v.visitors, key)
		}
	}
}

func (v *Visitors) StartVisitorCleanupLoop(ctx context.Context) {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			v.Cleanup(idleTimeout)
		}
	}
}

func (v *Visitors) CleanupAllVisitors() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.visitors = make(map[string]*clientLimiter)
}
