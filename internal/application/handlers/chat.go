package handlers

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/firstsource-health/firstsource-core/internal/domain/entities"
	"github.com/firstsource-health/firstsource-core/internal/domain/services"
)

// ChatHandler answers single assistant messages. It keeps no conversation state.
type ChatHandler struct {
	responder *services.Responder
}

// NewChatHandler creates a new ChatHandler.
func NewChatHandler(responder *services.Responder) *ChatHandler {
	return &ChatHandler{
		responder: responder,
	}
}

// ChatResult contains the assistant's reply to one message.
type ChatResult struct {
	Topic services.Topic    `json:"topic"`
	Reply entities.ChatTurn `json:"reply"`
}

// HandleMessage returns the assistant's reply to text. Blank text is rejected.
func (h *ChatHandler) HandleMessage(text string) (*ChatResult, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: message is required", entities.ErrValidation)
	}

	reply := h.responder.Respond(text)
	return &ChatResult{
		Topic: reply.Topic,
		Reply: entities.ChatTurn{
			ID:        uuid.New().String(),
			Text:      reply.Text,
			IsUser:    false,
			Timestamp: timeNow(),
		},
	}, nil
}

// NewConversation starts a session-local conversation with the assistant.
func (h *ChatHandler) NewConversation() *services.Conversation {
	return services.NewConversation(h.responder)
}
