package telegram

import "sync"

// Intent is the single pending action awaiting an asset selection.
type Intent string

const (
	IntentNone  Intent = ""
	IntentPrice Intent = "get_price"
	IntentChart Intent = "get_chart"
)

// IntentStore keeps at most one pending intent per user. The only
// transitions are none -> get_price|get_chart (Set) and back to none
// (Take); an intent is consumed by exactly one selection.
type IntentStore struct {
	mu sync.Mutex
	m  map[int64]Intent
}

func NewIntentStore() *IntentStore {
	return &IntentStore{m: map[int64]Intent{}}
}

func (s *IntentStore) Set(userID int64, intent Intent) {
	s.mu.Lock()
	s.m[userID] = intent
	s.mu.Unlock()
}

// Take returns the pending intent for the user and clears it.
func (s *IntentStore) Take(userID int64) Intent {
	s.mu.Lock()
	defer s.mu.Unlock()
	intent := s.m[userID]
	delete(s.m, userID)
	return intent
}
