package routing

import "sync"

// Store owns the current rule set. Its methods are the only mutation path;
// all access is serialized through an RWMutex so concurrent requests see
// either the old rules or the new ones, never a mix.
type Store struct {
	mu    sync.RWMutex
	rules Rules
}

// NewStore creates a store seeded with the built-in default rules. This is
// the only place defaults are applied to the store; a later Replace with an
// empty rule set stays empty.
func NewStore() *Store {
	return &Store{rules: DefaultRules()}
}

// Current returns a copy of the active rule set. A routing decision should
// use a single snapshot for the whole request.
func (s *Store) Current() Rules {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.rules.clone()
}

// Replace swaps the rule set wholesale. No merging with the previous rules
// or the defaults takes place.
func (s *Store) Replace(rules Rules) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rules = rules.clone()
}
