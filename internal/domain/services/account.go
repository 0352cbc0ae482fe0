package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/firstsource-health/firstsource-core/internal/domain/entities"
	"github.com/firstsource-health/firstsource-core/internal/domain/ports"
)

// MinPasswordLength is the shortest password accepted at signup.
const MinPasswordLength = 6

// AccountService handles signup and login. It issues no sessions or tokens.
type AccountService struct {
	store ports.AccountStore
	cost  int
}

// NewAccountService creates a new AccountService using bcrypt's default cost.
func NewAccountService(store ports.AccountStore) *AccountService {
	return &AccountService{
		store: store,
		cost:  bcrypt.DefaultCost,
	}
}

// Signup registers a new account.
func (s *AccountService) Signup(ctx context.Context, email, password, fullName string) (*entities.Account, error) {
	email = entities.NormalizeEmail(email)
	if err := validateCredentials(email, password); err != nil {
		return nil, err
	}
	if len(password) < MinPasswordLength {
		return nil, fmt.Errorf("%w: password must be at least %d characters", entities.ErrValidation, MinPasswordLength)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", entities.ErrValidation, err)
	}

	account := &entities.Account{
		ID:        uuid.New().String(),
		Email:     email,
		FullName:  strings.TrimSpace(fullName),
		CreatedAt: timeNow(),
	}
	if err := s.store.CreateAccount(ctx, account, hash); err != nil {
		if errors.Is(err, entities.ErrAccountExists) {
			return nil, err
		}
		return nil, storageError("creating account", err)
	}
	return account, nil
}

// Login checks the credentials and returns the matching account.
func (s *AccountService) Login(ctx context.Context, email, password string) (*entities.Account, error) {
	email = entities.NormalizeEmail(email)
	if err := validateCredentials(email, password); err != nil {
		return nil, err
	}

	account, hash, err := s.store.FindAccountByEmail(ctx, email)
	if errors.Is(err, entities.ErrNotFound) {
		return nil, entities.ErrInvalidCredentials
	}
	if err != nil {
		return nil, storageError("finding account", err)
	}
	if err := bcrypt.CompareHashAndPassword(hash, []byte(password)); err != nil {
		return nil, entities.ErrInvalidCredentials
	}
	return account, nil
}

func validateCredentials(email, password string) error {
	if email == "" || password == "" {
		return fmt.Errorf("%w: email and password are required", entities.ErrValidation)
	}
	if !strings.Contains(email, "@") {
		return fmt.Errorf("%w: invalid email address", entities.ErrValidation)
	}
	return nil
}
