package mocks

import (
	"context"
	"sync"

	"github.com/firstsource-health/firstsource-core/internal/domain/entities"
)

type storedAccount struct {
	account entities.Account
	hash    []byte
}

// AccountStore is a mock implementation of ports.AccountStore keyed by email.
type AccountStore struct {
	mu       sync.Mutex
	accounts map[string]storedAccount
	Err      error
}

// NewAccountStore creates an empty mock AccountStore.
func NewAccountStore() *AccountStore {
	return &AccountStore{accounts: make(map[string]storedAccount)}
}

// CreateAccount stores the account unless the email is taken.
func (m *AccountStore) CreateAccount(_ context.Context, account *entities.Account, passwordHash []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Err != nil {
		return m.Err
	}
	if _, ok := m.accounts[account.Email]; ok {
		return entities.ErrAccountExists
	}
	m.accounts[account.Email] = storedAccount{account: *account, hash: passwordHash}
	return nil
}

// FindAccountByEmail returns the stored account and hash.
func (m *AccountStore) FindAccountByEmail(_ context.Context, email string) (*entities.Account, []byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Err != nil {
		return nil, nil, m.Err
	}
	stored, ok := m.accounts[email]
	if !ok {
		return nil, nil, entities.ErrNotFound
	}
	account := stored.account
	return &account, stored.hash, nil
}
