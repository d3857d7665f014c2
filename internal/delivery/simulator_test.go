package delivery

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ping-router/internal/common/logging"
	"ping-router/internal/directory"
	"ping-router/internal/models"
)

func newTestSimulator(t *testing.T) *Simulator {
	t.Helper()
	logger, err := logging.NewZapLogger(logging.LogConfig{
		Level:  logging.ErrorLevel,
		Output: io.Discard,
	})
	require.NoError(t, err)
	return NewSimulator(directory.NewSeeded(), logger)
}

func TestSimulate_Email(t *testing.T) {
	sim := newTestSimulator(t)
	msg := models.MessageIn{
		Handle:  "davit",
		Subject: "Project quote",
		Message: "Can you send me a quote?",
		Contact: "sender@example.com",
	}

	results := sim.Simulate(models.ChannelEmail, msg, nil)
	require.Len(t, results, 1)

	result := results[0]
	assert.Equal(t, models.ChannelEmail, result.Channel)
	assert.True(t, result.Delivered)
	assert.Nil(t, result.AutoReply)
	assert.Contains(t, result.Debug, "[EMAIL]")
	assert.Contains(t, result.Debug, "davit@example.com")
	assert.Contains(t, result.Debug, "sender@example.com")
	assert.Contains(t, result.Debug, "Project quote")
}

func TestSimulate_SMSTruncatesBody(t *testing.T) {
	sim := newTestSimulator(t)
	longBody := strings.Repeat("a", 100)
	msg := models.MessageIn{
		Handle:  "alex",
		Subject: "urgent",
		Message: longBody,
		Contact: "+15550001111",
	}

	results := sim.Simulate(models.ChannelSMS, msg, nil)
	require.Len(t, results, 1)

	result := results[0]
	assert.Equal(t, models.ChannelSMS, result.Channel)
	assert.True(t, result.Delivered)
	assert.Contains(t, result.Debug, "[SMS]")
	assert.Contains(t, result.Debug, "+1987654321")
	assert.Contains(t, result.Debug, strings.Repeat("a", 60)+"...")
	assert.NotContains(t, result.Debug, strings.Repeat("a", 61))
}

func TestSimulate_SMSShortBodyKeepsEllipsisMarker(t *testing.T) {
	sim := newTestSimulator(t)
	msg := models.MessageIn{Handle: "alex", Message: "short", Contact: "c"}

	results := sim.Simulate(models.ChannelSMS, msg, nil)
	require.Len(t, results, 1)
	assert.Contains(t, results[0].Debug, "Msg: short...")
}

func TestSimulate_Inbox(t *testing.T) {
	sim := newTestSimulator(t)
	msg := models.MessageIn{
		Handle:  "kai",
		Subject: "hello",
		Contact: "friend@example.com",
	}

	results := sim.Simulate(models.ChannelInbox, msg, nil)
	require.Len(t, results, 1)

	result := results[0]
	assert.True(t, result.Delivered)
	assert.Contains(t, result.Debug, "[INBOX]")
	assert.Contains(t, result.Debug, "Stored for kai")
	assert.Contains(t, result.Debug, "friend@example.com")
}

func TestSimulate_UnknownChannelIsUndelivered(t *testing.T) {
	sim := newTestSimulator(t)
	msg := models.MessageIn{Handle: "kai", Subject: "hi", Contact: "c"}

	results := sim.Simulate("pigeon", msg, nil)
	require.Len(t, results, 1)

	result := results[0]
	assert.Equal(t, "pigeon", result.Channel)
	assert.False(t, result.Delivered)
	assert.Contains(t, result.Debug, "Channel pigeon not implemented")
}

func TestSimulate_AutoReplyPassesThrough(t *testing.T) {
	sim := newTestSimulator(t)
	reply := "I'm away"
	msg := models.MessageIn{Handle: "davit", Subject: "hi", Contact: "c"}

	results := sim.Simulate(models.ChannelEmail, msg, &reply)
	require.Len(t, results, 1)
	require.NotNil(t, results[0].AutoReply)
	assert.Equal(t, reply, *results[0].AutoReply)
}

func TestSimulate_UnknownHandleUsesDefensiveFallback(t *testing.T) {
	sim := newTestSimulator(t)
	msg := models.MessageIn{Handle: "ghost", Subject: "hi", Contact: "c"}

	results := sim.Simulate(models.ChannelEmail, msg, nil)
	require.Len(t, results, 1)
	assert.Contains(t, results[0].Debug, "To: unknown")
}
