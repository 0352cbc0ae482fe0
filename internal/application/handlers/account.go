package handlers

import (
	"context"

	"github.com/firstsource-health/firstsource-core/internal/domain/entities"
	"github.com/firstsource-health/firstsource-core/internal/domain/services"
)

// AccountHandler handles signup and login.
type AccountHandler struct {
	accountService *services.AccountService
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(accountService *services.AccountService) *AccountHandler {
	return &AccountHandler{
		accountService: accountService,
	}
}

// AccountResult contains the outcome of a signup or login.
type AccountResult struct {
	Message string            `json:"message"`
	Account *entities.Account `json:"account,omitempty"`
}

// HandleSignup registers a new account.
func (h *AccountHandler) HandleSignup(ctx context.Context, email, password, fullName string) (*AccountResult, error) {
	if _, err := h.accountService.Signup(ctx, email, password, fullName); err != nil {
		return nil, err
	}
	return &AccountResult{Message: "Account created successfully"}, nil
}

// HandleLogin checks credentials.
func (h *AccountHandler) HandleLogin(ctx context.Context, email, password string) (*AccountResult, error) {
	account, err := h.accountService.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}
	return &AccountResult{Message: "Logged in successfully", Account: account}, nil
}
