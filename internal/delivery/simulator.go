// Package delivery simulates message delivery. No real I/O happens; every
// attempt produces an outcome record plus a debug trace on the log sink.
package delivery

import (
	"fmt"

	"ping-router/internal/common/logging"
	"ping-router/internal/directory"
	"ping-router/internal/models"
)

// smsPreviewLimit is how much of the message body an SMS trace carries.
const smsPreviewLimit = 60

// Simulator produces delivery outcome records for a decided channel.
// Recipient contact details are resolved through the user directory.
type Simulator struct {
	directory *directory.Directory
	logger    logging.Logger
}

// NewSimulator creates a delivery simulator backed by the given directory.
func NewSimulator(dir *directory.Directory, logger logging.Logger) *Simulator {
	return &Simulator{
		directory: dir,
		logger:    logger,
	}
}

// Simulate performs one simulated delivery and returns the outcome records.
// The sequence currently always has length 1; it stays a sequence so a
// future fan-out does not change the stored message shape.
//
// Channels outside {email, sms, inbox} are not failed hard: they produce an
// undelivered record, since rule data may legally name any channel.
func (s *Simulator) Simulate(channel string, msg models.MessageIn, autoReply *string) []models.DeliveryResult {
	var debug string
	delivered := true

	switch channel {
	case models.ChannelEmail:
		debug = fmt.Sprintf("[EMAIL] To: %s | From: %s | Subj: %s",
			s.directory.Email(msg.Handle), msg.Contact, msg.Subject)
	case models.ChannelSMS:
		debug = fmt.Sprintf("[SMS] To: %s | From: %s | Msg: %s...",
			s.directory.Phone(msg.Handle), msg.Contact, truncate(msg.Message, smsPreviewLimit))
	case models.ChannelInbox:
		debug = fmt.Sprintf("[INBOX] Stored for %s | From: %s | Subj: %s",
			msg.Handle, msg.Contact, msg.Subject)
	default:
		debug = fmt.Sprintf("[UNKNOWN] Channel %s not implemented", channel)
		delivered = false
	}

	s.logger.Info("delivery simulated",
		logging.String("channel", channel),
		logging.String("handle", msg.Handle),
		logging.Bool("delivered", delivered),
		logging.String("debug", debug),
	)

	return []models.DeliveryResult{
		{
			Channel:   channel,
			Delivered: delivered,
			Debug:     debug,
			AutoReply: autoReply,
		},
	}
}

// truncate shortens s to at most limit runes.
func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
