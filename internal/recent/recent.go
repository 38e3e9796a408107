// Package recent keeps each shopper's most recent search queries.
package recent

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"
)

const (
	keyPrefix = "recentSearches_v1:"

	// DefaultMax is the number of queries kept per shopper.
	DefaultMax = 10
)

// Storage is the key/value backend. Get returns nil, nil for a missing key.
type Storage interface {
	Get(key string) ([]byte, error)
	Set(key string, val []byte, exp time.Duration) error
	Delete(key string) error
}

// Store reads and writes recent search lists.
type Store struct {
	storage Storage
	max     int
	ttl     time.Duration

	mu    sync.Mutex
	locks map[string]*ownerLock
}

// ownerLock serializes updates to one shopper's list. refs counts the
// callers holding or waiting on it.
type ownerLock struct {
	sync.Mutex
	refs int
}

// NewStore creates a store keeping at most max queries per shopper, each list
// expiring ttl after its last update (0 keeps lists forever).
func NewStore(storage Storage, max int, ttl time.Duration) *Store {
	if max <= 0 {
		max = DefaultMax
	}
	return &Store{storage: storage, max: max, ttl: ttl, locks: make(map[string]*ownerLock)}
}

// lock blocks until the caller owns the shopper's list and returns the
// matching unlock.
func (s *Store) lock(owner string) func() {
	s.mu.Lock()
	l, ok := s.locks[owner]
	if !ok {
		l = &ownerLock{}
		s.locks[owner] = l
	}
	l.refs++
	s.mu.Unlock()

	l.Lock()
	return func() {
		l.Unlock()
		s.mu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(s.locks, owner)
		}
		s.mu.Unlock()
	}
}

// List returns the shopper's recent queries, newest first. Unreadable data
// is logged and treated as an empty list.
func (s *Store) List(owner string) ([]string, error) {
	data, err := s.storage.Get(key(owner))
	if err != nil {
		return nil, fmt.Errorf("failed to read recent searches: %w", err)
	}
	if len(data) == 0 {
		return []string{}, nil
	}

	var queries []string
	if err := json.Unmarshal(data, &queries); err != nil {
		slog.Warn("discarding unreadable recent searches", "owner", owner, "error", err)
		return []string{}, nil
	}
	if queries == nil {
		queries = []string{}
	}
	return queries, nil
}

// Add moves query to the front of the shopper's list, dropping any
// case-insensitive duplicate and the oldest entries beyond the limit. Blank
// queries are ignored.
func (s *Store) Add(owner, query string) ([]string, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return s.List(owner)
	}

	unlock := s.lock(owner)
	defer unlock()

	existing, err := s.List(owner)
	if err != nil {
		return nil, err
	}

	updated := make([]string, 0, len(existing)+1)
	updated = append(updated, query)
	updated = append(updated, without(existing, query)...)
	if len(updated) > s.max {
		updated = updated[:s.max]
	}

	if err := s.save(owner, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

// Remove deletes every case-insensitive match of query from the list.
func (s *Store) Remove(owner, query string) ([]string, error) {
	unlock := s.lock(owner)
	defer unlock()

	existing, err := s.List(owner)
	if err != nil {
		return nil, err
	}
	filtered := without(existing, query)
	if err := s.save(owner, filtered); err != nil {
		return nil, err
	}
	return filtered, nil
}

// Clear forgets all of the shopper's recent queries.
func (s *Store) Clear(owner string) error {
	unlock := s.lock(owner)
	defer unlock()

	if err := s.storage.Delete(key(owner)); err != nil {
		return fmt.Errorf("failed to clear recent searches: %w", err)
	}
	return nil
}

func (s *Store) save(owner string, queries []string) error {
	data, err := json.Marshal(queries)
	if err != nil {
		return err
	}
	if err := s.storage.Set(key(owner), data, s.ttl); err != nil {
		return fmt.Errorf("failed to save recent searches: %w", err)
	}
	return nil
}

func without(queries []string, query string) []string {
	out := make([]string, 0, len(queries))
	for _, q := range queries {
		if strings.EqualFold(q, query) {
			continue
		}
		out = append(out, q)
	}
	return out
}

func key(owner string) string {
	return keyPrefix + owner
}
