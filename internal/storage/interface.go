// Package storage provides the message log: an append-only record of
// processed messages. There is no durability guarantee; the log lives and
// dies with the process.
package storage

import "ping-router/internal/models"

// MessageStore is the append-only message log.
//
// IDs are sequential decimal strings starting at "1", unique and strictly
// increasing in creation order. Clear resets the sequence, so the next
// append after a clear receives "1" again.
type MessageStore interface {
	// Append stores a message, assigning its ID and creation timestamp,
	// and returns the stored record.
	Append(msg models.Message) models.Message

	// List returns all stored messages, most recently appended first.
	List() []models.Message

	// Count returns the number of stored messages.
	Count() int

	// Clear removes all stored messages and returns how many were removed.
	Clear() int
}
