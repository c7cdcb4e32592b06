package limiter

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// entry pairs a client's limiter with its last activity time so idle clients
// can be evicted.
type entry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// Store is a thread-safe per-client rate limiter registry. Each client key
// (typically a remote IP) gets its own token bucket.
type Store struct {
	mu      sync.Mutex
	clients map[string]*entry
	limit   rate.Limit
	burst   int
}

// NewStore creates a limiter store allowing perSecond requests with the given
// burst per client key. A background goroutine evicts clients idle for more
// than ten minutes.
func NewStore(perSecond float64, burst int) *Store {
	s := &Store{
		clients: make(map[string]*entry),
		limit:   rate.Limit(perSecond),
		burst:   burst,
	}

	go s.cleanupIdle()

	return s
}

// Allow reports whether the client identified by key may proceed now.
func (s *Store) Allow(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, exists := s.clients[key]
	if !exists {
		e = &entry{limiter: rate.NewLimiter(s.limit, s.burst)}
		s.clients[key] = e
	}
	e.lastSeen = time.Now()

	return e.limiter.Allow()
}

// Size returns the number of tracked clients (for debugging/monitoring).
func (s *Store) Size() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.clients)
}

// cleanupIdle removes clients that have been inactive, so the map does not
// grow without bound.
func (s *Store) cleanupIdle() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		s.mu.Lock()
		cutoff := time.Now().Add(-10 * time.Minute)
		for key, e := range s.clients {
			if e.lastSeen.Before(cutoff) {
				delete(s.clients, key)
			}
		}
		s.mu.Unlock()
	}
}
