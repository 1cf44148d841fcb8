package ratelimit

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// LocalLimiter keeps a token-bucket limiter per key in process memory. It is
// advisory only: counters reset on restart and are not shared between
// instances, which is acceptable as a soft abuse deterrent.
type LocalLimiter struct {
	mu       sync.Mutex
	limiters map[string]*localEntry
	limit    rate.Limit
	burst    int
	maxIdle  time.Duration
	QuitChan chan struct{}
}

type localEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// Builds an in-process limiter allowing `limit` requests per `window`
func NewLocalLimiter(limit int, window time.Duration) *LocalLimiter {
	l := &LocalLimiter{
		limiters: make(map[string]*localEntry),
		limit:    rate.Every(window / time.Duration(limit)),
		burst:    limit,
		maxIdle:  10 * time.Minute,
		QuitChan: make(chan struct{}),
	}
	go l.cleanup()
	return l
}

// Stop terminates the idle-entry cleanup loop
func (l *LocalLimiter) Stop() {
	close(l.QuitChan)
}

func (l *LocalLimiter) Allow(ctx context.Context, key string) (bool, error) {
	l.mu.Lock()
	entry, ok := l.limiters[key]
	if !ok {
		entry = &localEntry{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.limiters[key] = entry
	}
	entry.lastSeen = time.Now()
	l.mu.Unlock()

	return entry.limiter.Allow(), nil
}

// cleanup drops limiters that have been idle for a while
func (l *LocalLimiter) cleanup() {
	ticker := time.NewTicker(l.maxIdle)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			l.mu.Lock()
			cutoff := time.Now().Add(-l.maxIdle)
			for key, entry := range l.limiters {
				if entry.lastSeen.Before(cutoff) {
					delete(l.limiters, key)
				}
			}
			l.mu.Unlock()
		case <-l.QuitChan:
			return
		}
	}
}
