package services

import (
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/firstsource-health/firstsource-core/internal/domain/entities"
)

// timeNow returns the current time (can be mocked in tests).
var timeNow = time.Now

// Conversation is the session-local transcript of one chat with the assistant.
// It is not safe for concurrent use; each session owns its own.
type Conversation struct {
	responder *Responder
	turns     []entities.ChatTurn
}

// NewConversation starts a conversation seeded with the assistant greeting.
func NewConversation(responder *Responder) *Conversation {
	return &Conversation{
		responder: responder,
		turns:     []entities.ChatTurn{newTurn(AssistantGreeting, false)},
	}
}

// Send records the user's message and the assistant's reply. Blank messages
// are ignored and reported with ok=false.
func (c *Conversation) Send(text string) (user, reply entities.ChatTurn, topic Topic, ok bool) {
	if strings.TrimSpace(text) == "" {
		return entities.ChatTurn{}, entities.ChatTurn{}, "", false
	}

	user = newTurn(text, true)
	r := c.responder.Respond(text)
	reply = newTurn(r.Text, false)
	c.turns = append(c.turns, user, reply)
	return user, reply, r.Topic, true
}

// Turns returns the transcript in order.
func (c *Conversation) Turns() []entities.ChatTurn {
	return slices.Clone(c.turns)
}

func newTurn(text string, isUser bool) entities.ChatTurn {
	return entities.ChatTurn{
		ID:        uuid.New().String(),
		Text:      text,
		IsUser:    isUser,
		Timestamp: timeNow(),
	}
}
