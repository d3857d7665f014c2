package storage

import (
	"strconv"
	"sync"
	"time"

	"ping-router/internal/models"
)

// MemoryStore is the in-memory MessageStore implementation. A mutex
// serializes all access; appends from concurrent requests get distinct,
// increasing IDs.
type MemoryStore struct {
	mu       sync.Mutex
	messages []models.Message
	now      func() time.Time
}

// NewMemoryStore creates an empty in-memory message log.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		messages: make([]models.Message, 0),
		now:      time.Now,
	}
}

// Append stores a message. The ID is the 1-based position in the log and
// CreatedAt is the current UTC time; both overwrite whatever the caller
// set.
func (s *MemoryStore) Append(msg models.Message) models.Message {
	s.mu.Lock()
	defer s.mu.Unlock()

	msg.ID = strconv.Itoa(len(s.messages) + 1)
	msg.CreatedAt = models.FormatTimestamp(s.now())
	s.messages = append(s.messages, msg)

	return msg
}

// List returns stored messages newest first.
func (s *MemoryStore) List() []models.Message {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Message, len(s.messages))
	for i, msg := range s.messages {
		out[len(s.messages)-1-i] = msg
	}
	return out
}

// Count returns the number of stored messages.
func (s *MemoryStore) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.messages)
}

// Clear removes all messages, resetting the ID sequence.
func (s *MemoryStore) Clear() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := len(s.messages)
	s.messages = s.messages[:0]
	return removed
}
