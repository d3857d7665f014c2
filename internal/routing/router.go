// Package routing implements the channel decision procedure for inbound
// ping messages.
//
// The router is a pure function of the message, the current rule set, and
// the current time. Rules are evaluated in a fixed order and the first
// match wins:
//
//  1. Priority rule: the message priority has a channel mapping.
//  2. Subject-keyword rule: a configured keyword occurs in the subject.
//  3. Working-hours rule: the time is outside the configured window.
//  4. Fallback channel.
//
// This ordering is the central contract of the system; the priority rule
// short-circuits everything else, and the keyword rule is checked before
// working hours.
package routing

import (
	"strings"
	"time"

	"ping-router/internal/models"
)

// Decision is the outcome of routing one message: the chosen channel and an
// optional auto-reply text (only ever set by the working-hours rule).
type Decision struct {
	Channel   string
	AutoReply *string
}

// Decide routes a message against a rule set. It is deterministic given
// now and has no side effects. The returned channel is usually one of
// email, sms or inbox, but rule data may name any channel; callers must
// pass unknown channels through to delivery rather than failing.
func Decide(msg models.MessageIn, rules Rules, now time.Time) Decision {
	// Priority rule
	if channel, ok := rules.Priority[msg.Priority]; ok {
		return Decision{Channel: channel}
	}

	// Subject-keyword rule
	if kr := rules.SubjectKeywords; kr != nil && len(kr.Keywords) > 0 {
		subject := strings.ToLower(msg.Subject)
		for _, keyword := range kr.Keywords {
			if strings.Contains(subject, strings.ToLower(keyword)) {
				channel := kr.Channel
				if channel == "" {
					channel = DefaultKeywordChannel
				}
				return Decision{Channel: channel}
			}
		}
	}

	// Working-hours rule
	if !IsWorkingHours(now, rules.WorkingHours) {
		channel := DefaultAwayChannel
		var autoReply *string
		if away := rules.OutsideWorkingHours; away != nil {
			if away.Channel != "" {
				channel = away.Channel
			}
			autoReply = away.AutoReply
		}
		return Decision{Channel: channel, AutoReply: autoReply}
	}

	// Fallback
	if rules.Fallback != "" {
		return Decision{Channel: rules.Fallback}
	}
	return Decision{Channel: DefaultFallback}
}

// IsWorkingHours reports whether t falls inside the configured working
// hours window. The check is evaluated in UTC with a half-open hour range
// (start <= hour < end). A nil window uses the defaults: 9-17, weekdays
// only.
func IsWorkingHours(t time.Time, wh *WorkingHours) bool {
	start := DefaultStartHour
	end := DefaultEndHour
	weekdaysOnly := true

	if wh != nil {
		if wh.Start != nil {
			start = *wh.Start
		}
		if wh.End != nil {
			end = *wh.End
		}
		if wh.WeekdaysOnly != nil {
			weekdaysOnly = *wh.WeekdaysOnly
		}
	}

	utc := t.UTC()
	if weekdaysOnly {
		switch utc.Weekday() {
		case time.Saturday, time.Sunday:
			return false
		}
	}

	hour := utc.Hour()
	return start <= hour && hour < end
}
