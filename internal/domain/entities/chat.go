package entities

import "time"

// ChatTurn is one message in an assistant conversation. Turns are never persisted.
type ChatTurn struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	IsUser    bool      `json:"isUser"`
	Timestamp time.Time `json:"timestamp"`
}
