package cart

import (
	"fmt"
	"sync"
	"time"
)

// ScopedKey namespaces a session's cart to one store, so the same
// shopper browsing two storefronts carries two independent carts and
// an item added under one store can never leak into another store's
// checkout.
func ScopedKey(sessionID string, storeID uint) string {
	return fmt.Sprintf("%s:%d", sessionID, storeID)
}

type entry struct {
	state   State
	expires time.Time
}

// Sessions holds one cart per storefront session and store. It is
// constructed in main and handed to the handlers explicitly; all
// mutations go through Dispatch, so every transition is atomic with
// respect to concurrent requests on the same session.
//
// Each cart expires ttl after its last dispatch, matching the session
// token lifetime, so abandoned carts do not accumulate forever.
type Sessions struct {
	mu      sync.Mutex
	ttl     time.Duration
	states  map[string]entry
	nowFunc func() time.Time
}

func NewSessions(ttl time.Duration) *Sessions {
	return &Sessions{
		ttl:     ttl,
		states:  make(map[string]entry),
		nowFunc: time.Now,
	}
}

// Dispatch applies an action to the session's cart and returns the
// resulting state. A session that has never been seen, or whose cart
// has expired, starts empty. Every dispatch renews the expiry.
func (s *Sessions) Dispatch(key string, a Action) State {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.nowFunc()
	st := Empty()
	if e, ok := s.states[key]; ok && now.Before(e.expires) {
		st = e.state
	}
	next := Reduce(st, a)
	s.states[key] = entry{state: next, expires: now.Add(s.ttl)}
	return next
}

// Snapshot returns the current cart for a session, empty if none or
// expired. Reduce copies on write, so the snapshot is safe to read
// after later dispatches.
func (s *Sessions) Snapshot(key string) State {
	s.mu.Lock()
	defer s.mu.Unlock()
	if e, ok := s.states[key]; ok && s.nowFunc().Before(e.expires) {
		return e.state
	}
	return Empty()
}

// Drop discards a session's cart entirely.
func (s *Sessions) Drop(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.states, key)
}

// Sweep removes every expired cart and reports how many were dropped.
// Expiry is also checked lazily on access; the sweep exists so carts
// that are simply abandoned get reclaimed too.
func (s *Sessions) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.nowFunc()
	dropped := 0
	for key, e := range s.states {
		if !now.Before(e.expires) {
			delete(s.states, key)
			dropped++
		}
	}
	return dropped
}
