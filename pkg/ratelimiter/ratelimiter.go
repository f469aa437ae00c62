package ratelimiter

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Limiter gives every key a token bucket of Max attempts that refills over Window.
// Keys whose bucket is full again are swept in the background until Stop is called.
type Limiter struct {
	limit rate.Limit
	burst int

	mu      sync.Mutex
	buckets map[string]*rate.Limiter
	now     func() time.Time

	done     chan struct{}
	stopOnce sync.Once
}

// New creates a limiter and starts its sweeper
func New(max int, window time.Duration) *Limiter {
	l := &Limiter{
		limit:   rate.Every(window / time.Duration(max)),
		burst:   max,
		buckets: make(map[string]*rate.Limiter),
		now:     time.Now,
		done:    make(chan struct{}),
	}
	go l.sweepLoop(window)
	return l
}

// Allow spends one attempt of key and reports whether one was left.
// Denied attempts cost nothing.
func (l *Limiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.bucket(key).AllowN(l.now(), 1)
}

// Reset refills key, typically after a successful sign-in
func (l *Limiter) Reset(key string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.buckets, key)
}

// RetryAfter returns how long until key has an attempt again, zero when it has one now
func (l *Limiter) RetryAfter(key string) time.Duration {
	l.mu.Lock()
	defer l.mu.Unlock()

	b, ok := l.buckets[key]
	if !ok {
		return 0
	}
	tokens := b.TokensAt(l.now())
	if tokens >= 1 {
		return 0
	}
	return time.Duration((1 - tokens) / float64(l.limit) * float64(time.Second))
}

// bucket returns the bucket of key, creating a full one; callers hold mu
func (l *Limiter) bucket(key string) *rate.Limiter {
	b, ok := l.buckets[key]
	if !ok {
		b = rate.NewLimiter(l.limit, l.burst)
		l.buckets[key] = b
	}
	return b
}

func (l *Limiter) sweepLoop(every time.Duration) {
	if every < time.Second {
		every = time.Second
	}
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			l.sweep()
		case <-l.done:
			return
		}
	}
}

func (l *Limiter) sweep() {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	for key, b := range l.buckets {
		if b.TokensAt(now) >= float64(l.burst) {
			delete(l.buckets, key)
		}
	}
}

// Stop ends the sweeper. It is safe to call more than once.
func (l *Limiter) Stop() {
	l.stopOnce.Do(func() { close(l.done) })
}
