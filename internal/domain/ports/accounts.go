package ports

import (
	"context"

	"github.com/firstsource-health/firstsource-core/internal/domain/entities"
)

// AccountStore persists accounts and their password hashes.
type AccountStore interface {
	// CreateAccount returns entities.ErrAccountExists if the email is taken.
	CreateAccount(ctx context.Context, account *entities.Account, passwordHash []byte) error

	// FindAccountByEmail returns entities.ErrNotFound if no account has the email.
	FindAccountByEmail(ctx context.Context, email string) (*entities.Account, []byte, error)
}
