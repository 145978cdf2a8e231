// Package ratelimit provides per-client request limiting backed by token
// buckets, one bucket per (client, limit) pair. Counters live in process
// memory only.
package ratelimit

import (
	"fmt"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const cleanupInterval = 5 * time.Minute

// Limit is an allowance of requests per window, e.g. 10 per minute.
type Limit struct {
	Count int
	Per   time.Duration
}

func PerMinute(n int) Limit { return Limit{Count: n, Per: time.Minute} }
func PerHour(n int) Limit   { return Limit{Count: n, Per: time.Hour} }
func PerDay(n int) Limit    { return Limit{Count: n, Per: 24 * time.Hour} }

func (l Limit) String() string {
	return fmt.Sprintf("%d per %s", l.Count, l.Per)
}

type bucketEntry struct {
	limiter  *rate.Limiter
	window   time.Duration
	lastSeen time.Time
}

// Limiter enforces one or more limits per client key. A request is admitted
// only when every limit has a token available; admission then consumes one
// token from each.
type Limiter struct {
	mu        sync.Mutex
	limits    []Limit
	buckets   map[string]*bucketEntry
	cleanupAt time.Time
}

func NewLimiter(limits ...Limit) *Limiter {
	return &Limiter{
		limits:    limits,
		buckets:   make(map[string]*bucketEntry),
		cleanupAt: time.Now().Add(cleanupInterval),
	}
}

// Allow reports whether the client may proceed, consuming one token from
// each configured limit when it may.
func (l *Limiter) Allow(client string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	if now.After(l.cleanupAt) {
		l.cleanup(now)
		l.cleanupAt = now.Add(cleanupInterval)
	}

	entries := make([]*rate.Limiter, len(l.limits))
	for i, limit := range l.limits {
		key := client + "|" + limit.String()
		entry, ok := l.buckets[key]
		if !ok {
			entry = &bucketEntry{
				limiter: rate.NewLimiter(rate.Every(limit.Per/time.Duration(limit.Count)), limit.Count),
				window:  limit.Per,
			}
			l.buckets[key] = entry
		}
		entry.lastSeen = now
		entries[i] = entry.limiter
	}

	// All limits must admit before any token is spent, so a denial by one
	// limit does not drain the others.
	for _, lim := range entries {
		if lim.Tokens() < 1 {
			return false
		}
	}
	for _, lim := range entries {
		lim.Allow()
	}
	return true
}

// ActiveBuckets returns the number of tracked (client, limit) buckets.
func (l *Limiter) ActiveBuckets() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.buckets)
}

// cleanup drops buckets idle for at least their own window; by then the
// bucket has refilled completely and eviction loses nothing. Must be called
// with mu held.
func (l *Limiter) cleanup(now time.Time) {
	for key, entry := range l.buckets {
		if now.Sub(entry.lastSeen) >= entry.window {
			delete(l.buckets, key)
		}
	}
}
