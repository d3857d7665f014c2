// Package models defines the wire-level data model shared by the directory,
// routing, delivery and storage components.
package models

import (
	"time"

	"ping-router/internal/common/errors"
)

// Message priorities accepted on inbound messages.
const (
	PriorityNormal = "normal"
	PriorityUrgent = "urgent"
)

// Delivery channels the router nominally decides between. Rule data may
// name other channels; those flow through and end up undelivered.
const (
	ChannelEmail = "email"
	ChannelSMS   = "sms"
	ChannelInbox = "inbox"
)

// User is a directory entry for a message recipient. Seeded at process
// start and never mutated.
type User struct {
	Handle string  `json:"handle"`
	Name   string  `json:"name"`
	Bio    string  `json:"bio"`
	Email  *string `json:"email,omitempty"`
	Phone  *string `json:"phone,omitempty"`
}

// MessageIn is an inbound ping message as submitted by the caller.
type MessageIn struct {
	Handle   string `json:"handle"`
	Subject  string `json:"subject"`
	Message  string `json:"message"`
	Contact  string `json:"contact"`
	Priority string `json:"priority"`
}

// Normalize applies server-side defaults and checks the enum fields.
// Priority defaults to "normal" when empty; any value outside
// {normal, urgent} is rejected.
func (m *MessageIn) Normalize() error {
	if m.Priority == "" {
		m.Priority = PriorityNormal
	}
	switch m.Priority {
	case PriorityNormal, PriorityUrgent:
		return nil
	default:
		return errors.ValidationError("priority must be 'normal' or 'urgent'").
			WithContext("priority", m.Priority)
	}
}

// DeliveryResult records the outcome of one simulated delivery attempt.
type DeliveryResult struct {
	Channel   string  `json:"channel"`
	Delivered bool    `json:"delivered"`
	Debug     string  `json:"debug"`
	AutoReply *string `json:"auto_reply,omitempty"`
}

// Message is a processed message as stored in the message log.
// Created once at append time and immutable thereafter.
type Message struct {
	ID             string           `json:"id"`
	CreatedAt      string           `json:"created_at"`
	Handle         string           `json:"handle"`
	Subject        string           `json:"subject"`
	Message        string           `json:"message"`
	Contact        string           `json:"contact"`
	Priority       string           `json:"priority"`
	DecidedChannel string           `json:"decided_channel"`
	Deliveries     []DeliveryResult `json:"deliveries"`
}

// FormatTimestamp renders a time as ISO-8601 UTC with a literal trailing "Z",
// the format used for Message.CreatedAt.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05.000000") + "Z"
}
