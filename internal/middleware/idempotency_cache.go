package middleware

import (
	"sync"
	"time"
)

// storedResponse is a completed write kept for replay.
type storedResponse struct {
	fingerprint uint64
	status      int
	headers     map[string]string
	body        []byte
	storedAt    time.Time
}

// idempotencyStore tracks keys in flight and completed responses. An
// in-flight entry has a nil response.
type idempotencyStore struct {
	mu      sync.Mutex
	entries map[uint64]*storedResponse
	started map[uint64]time.Time
	ttl     time.Duration
	now     func() time.Time
	stopCh  chan struct{}
	once    sync.Once
}

func newIdempotencyStore(ttl time.Duration) *idempotencyStore {
	s := &idempotencyStore{
		entries: make(map[uint64]*storedResponse),
		started: make(map[uint64]time.Time),
		ttl:     ttl,
		now:     time.Now,
		stopCh:  make(chan struct{}),
	}
	go s.sweepLoop()
	return s
}

// claim returns the stored response for scope, if any. Otherwise it marks
// scope in flight and reports whether this caller got the claim.
func (s *idempotencyStore) claim(scope uint64) (*storedResponse, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if resp, ok := s.entries[scope]; ok {
		if now.Sub(resp.storedAt) <= s.ttl {
			return resp, false
		}
		delete(s.entries, scope)
	}
	if startedAt, ok := s.started[scope]; ok && now.Sub(startedAt) <= s.ttl {
		return nil, false
	}
	s.started[scope] = now
	return nil, true
}

func (s *idempotencyStore) complete(scope uint64, resp *storedResponse) {
	s.mu.Lock()
	defer s.mu.Unlock()

	resp.storedAt = s.now()
	s.entries[scope] = resp
	delete(s.started, scope)
}

func (s *idempotencyStore) release(scope uint64) {
	s.mu.Lock()
	delete(s.started, scope)
	s.mu.Unlock()
}

func (s *idempotencyStore) sweepLoop() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.sweep()
		case <-s.stopCh:
			return
		}
	}
}

// sweep drops expired responses and abandoned claims.
func (s *idempotencyStore) sweep() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for scope, resp := range s.entries {
		if now.Sub(resp.storedAt) > s.ttl {
			delete(s.entries, scope)
		}
	}
	for scope, startedAt := range s.started {
		if now.Sub(startedAt) > s.ttl {
			delete(s.started, scope)
		}
	}
}

func (s *idempotencyStore) size() (completed, inFlight int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries), len(s.started)
}

// Stop ends the sweeper.
func (s *idempotencyStore) Stop() {
	s.once.Do(func() { close(s.stopCh) })
}
