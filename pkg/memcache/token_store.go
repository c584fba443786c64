// Package mem holds short-lived, process-local token state.
package mem

import (
	"sync"
	"time"
)

type TokenStore interface {
	Set(token string, value string, ttl time.Duration)

	// Consume returns the value for token if not expired,
	// and removes the token (single-use). Returns "" if missing/expired.
	Consume(token string) string

	Peek(token string) (string, bool)
}

type entry struct {
	value     string
	expiresAt time.Time
}

type Tokens struct {
	mu   sync.RWMutex
	data map[string]entry
	now  func() time.Time
}

func NewTokens() *Tokens {
	return &Tokens{
		data: make(map[string]entry),
		now:  time.Now,
	}
}

func (s *Tokens) Set(token string, value string, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sweepLocked()
	s.data[token] = entry{
		value:     value,
		expiresAt: s.now().Add(ttl),
	}
}

func (s *Tokens) Consume(token string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.data[token]
	if !ok {
		return ""
	}
	delete(s.data, token)
	if s.now().After(e.expiresAt) {
		return ""
	}
	return e.value
}

func (s *Tokens) Peek(token string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.data[token]
	if !ok || s.now().After(e.expiresAt) {
		return "", false
	}
	return e.value, true
}

// sweepLocked drops expired entries; callers hold mu.
func (s *Tokens) sweepLocked() {
	now := s.now()
	for k, e := range s.data {
		if now.After(e.expiresAt) {
			delete(s.data, k)
		}
	}
}
