package routing

import (
	"bytes"
	"encoding/json"
	"strings"

	"ping-router/internal/common/errors"
	"ping-router/internal/models"
)

// Default values applied whenever the corresponding rule key is absent.
// An empty rules object is legal and degrades every lookup to these.
const (
	DefaultStartHour      = 9
	DefaultEndHour        = 17
	DefaultAwayChannel    = models.ChannelEmail
	DefaultKeywordChannel = models.ChannelEmail
	DefaultFallback       = models.ChannelInbox

	defaultAwayReply = "Thanks for your message. I'm currently away and will reply during working hours."
)

// Rules is the routing rule set. Every field is optional; missing fields
// fall back to the package defaults at evaluation time. The whole object is
// replaced wholesale on update, never merged.
type Rules struct {
	// Priority maps a message priority value to a channel. A match here
	// short-circuits every other rule.
	Priority map[string]string `json:"priority,omitempty"`

	// SubjectKeywords routes messages whose subject contains one of the
	// configured keywords (case-insensitive substring match).
	SubjectKeywords *KeywordRule `json:"subject_keywords,omitempty"`

	// OutsideWorkingHours routes messages that arrive outside the working
	// hours window, optionally attaching an auto-reply.
	OutsideWorkingHours *AwayRule `json:"outside_working_hours,omitempty"`

	// Fallback is the channel used when no other rule matches.
	Fallback string `json:"fallback,omitempty"`

	// WorkingHours configures the time window used by the
	// outside-working-hours rule.
	WorkingHours *WorkingHours `json:"working_hours,omitempty"`
}

// KeywordRule routes on subject keywords. An empty keyword list never
// matches.
type KeywordRule struct {
	Keywords []string `json:"keywords,omitempty"`
	Channel  string   `json:"channel,omitempty"`
}

// AwayRule is the outside-working-hours routing target.
type AwayRule struct {
	Channel   string  `json:"channel,omitempty"`
	AutoReply *string `json:"auto_reply,omitempty"`
}

// WorkingHours is a configurable time window. Hours are UTC and the range
// is half-open: start <= hour < end. Saturday and Sunday fail the check
// when WeekdaysOnly is set (the default).
type WorkingHours struct {
	Start        *int  `json:"start,omitempty"`
	End          *int  `json:"end,omitempty"`
	WeekdaysOnly *bool `json:"weekdays_only,omitempty"`
}

// DefaultRules returns the built-in rule set the store is seeded with at
// process start. Updates never fall back to these; an explicit empty update
// stays empty.
func DefaultRules() Rules {
	reply := defaultAwayReply
	weekdaysOnly := true
	start, end := DefaultStartHour, DefaultEndHour

	return Rules{
		Priority: map[string]string{
			models.PriorityUrgent: models.ChannelSMS,
		},
		SubjectKeywords: &KeywordRule{
			Keywords: []string{"quote", "collab"},
			Channel:  models.ChannelEmail,
		},
		OutsideWorkingHours: &AwayRule{
			Channel:   models.ChannelEmail,
			AutoReply: &reply,
		},
		Fallback: models.ChannelInbox,
		WorkingHours: &WorkingHours{
			Start:        &start,
			End:          &end,
			WeekdaysOnly: &weekdaysOnly,
		},
	}
}

// ParseRules decodes a rules update payload. Decoding is strict: the
// top-level value must be a JSON object, and unknown keys or mistyped field
// values are rejected rather than silently ignored.
func ParseRules(data []byte) (Rules, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return Rules{}, errors.ValidationError("rules must be a JSON object")
	}

	decoder := json.NewDecoder(bytes.NewReader(trimmed))
	decoder.DisallowUnknownFields()

	var rules Rules
	if err := decoder.Decode(&rules); err != nil {
		msg := err.Error()
		if strings.HasPrefix(msg, "json: unknown field") {
			return Rules{}, errors.ValidationError("unknown rule key " + strings.TrimPrefix(msg, "json: unknown field "))
		}
		return Rules{}, errors.ValidationError("invalid rules payload: " + msg)
	}

	// Reject trailing content after the object.
	if decoder.More() {
		return Rules{}, errors.ValidationError("rules must be a single JSON object")
	}

	return rules, nil
}

// clone returns a deep copy so stored rules are never aliased by callers.
func (r Rules) clone() Rules {
	out := r

	if r.Priority != nil {
		out.Priority = make(map[string]string, len(r.Priority))
		for k, v := range r.Priority {
			out.Priority[k] = v
		}
	}

	if r.SubjectKeywords != nil {
		kw := *r.SubjectKeywords
		kw.Keywords = append([]string(nil), r.SubjectKeywords.Keywords...)
		out.SubjectKeywords = &kw
	}

	if r.OutsideWorkingHours != nil {
		away := *r.OutsideWorkingHours
		if r.OutsideWorkingHours.AutoReply != nil {
			reply := *r.OutsideWorkingHours.AutoReply
			away.AutoReply = &reply
		}
		out.OutsideWorkingHours = &away
	}

	if r.WorkingHours != nil {
		wh := *r.WorkingHours
		if r.WorkingHours.Start != nil {
			v := *r.WorkingHours.Start
			wh.Start = &v
		}
		if r.WorkingHours.End != nil {
			v := *r.WorkingHours.End
			wh.End = &v
		}
		if r.WorkingHours.WeekdaysOnly != nil {
			v := *r.WorkingHours.WeekdaysOnly
			wh.WeekdaysOnly = &v
		}
		out.WorkingHours = &wh
	}

	return out
}
