package models

import "time"

type Sender string

const (
	SenderUser   Sender = "user"
	SenderDriver Sender = "driver"
)

type ChatMessage struct {
	ID        int       `json:"id"`
	Sender    Sender    `json:"sender"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
	Read      bool      `json:"read"`
}

// ScriptedMessage is a canned transcript line; Ago is how long before the
// ride request it appears to have been sent.
type ScriptedMessage struct {
	Sender Sender
	Text   string
	Ago    time.Duration
}

const DriverReply = "Got it! See you soon."

func DefaultSeedTranscript() []ScriptedMessage {
	return []ScriptedMessage{
		{Sender: SenderDriver, Text: "Hi! I'm Sarah, your driver. I'm on my way to pick you up at the campus.", Ago: 5 * time.Minute},
		{Sender: SenderUser, Text: "Great! I'll be waiting at the main entrance.", Ago: 4 * time.Minute},
		{Sender: SenderDriver, Text: "Perfect! I'm in a white Toyota Camry, plate MHL-123-GP. ETA 3 minutes.", Ago: 3 * time.Minute},
	}
}

func DefaultQuickReplies() []string {
	return []string{
		"I'm here",
		"Running 2 mins late",
		"Can't find you",
		"Thanks!",
		"Almost there",
	}
}
