package http

import (
	"sync"
	"time"
)

const (
	bucketCleanupThreshold = 1 * time.Hour
	cleanupInterval        = 30 * time.Minute
)

// clientBucket only keeps the theoretical arrival time of the client's next
// request; the bucket level is implied by how far tat runs ahead of now.
type clientBucket struct {
	tat time.Time
}

// RateLimiter lets each client burst up to capacity requests and then refills
// one request every refillDur/capacity (GCRA). A client that stays idle for
// refillDur gets its full burst back.
type RateLimiter struct {
	mu          sync.Mutex
	interval    time.Duration
	burst       time.Duration
	clients     map[string]*clientBucket
	now         func() time.Time
	stopCleanup chan struct{}
	stopOnce    sync.Once
}

func NewRateLimiter(capacity int, refillDur time.Duration) *RateLimiter {
	if capacity < 1 {
		capacity = 1
	}
	rl := &RateLimiter{
		interval:    refillDur / time.Duration(capacity),
		burst:       refillDur,
		clients:     make(map[string]*clientBucket),
		now:         time.Now,
		stopCleanup: make(chan struct{}),
	}
	go rl.cleanupLoop()
	return rl
}

func (r *RateLimiter) cleanupLoop() {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			r.cleanup()
		case <-r.stopCleanup:
			return
		}
	}
}

// cleanup forgets clients whose bucket has been full for longer than the
// threshold; a forgotten client starts again with a full bucket.
func (r *RateLimiter) cleanup() {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	for client, bucket := range r.clients {
		if now.Sub(bucket.tat) > bucketCleanupThreshold {
			delete(r.clients, client)
		}
	}
}

// Stop ends the cleanup goroutine. It is safe to call more than once.
func (r *RateLimiter) Stop() {
	r.stopOnce.Do(func() { close(r.stopCleanup) })
}

// Allow reports whether client may make a request now. When it may not, the
// returned duration is how long until the next request would be accepted.
func (r *RateLimiter) Allow(client string) (bool, time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	bucket, exists := r.clients[client]
	if !exists {
		bucket = &clientBucket{tat: now}
		r.clients[client] = bucket
	}

	tat := bucket.tat
	if tat.Before(now) {
		tat = now
	}
	next := tat.Add(r.interval)

	// Cola llena: el siguiente hueco aún no ha llegado
	if wait := next.Sub(now) - r.burst; wait > 0 {
		return false, wait
	}

	bucket.tat = next
	return true, 0
}
