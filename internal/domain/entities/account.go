package entities

import (
	"strings"
	"time"
)

// Account is a registered site user.
type Account struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	CreatedAt time.Time `json:"created_at"`
}

// NormalizeEmail returns the canonical lookup form of an email address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
