package httpapi

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/firstsource-health/firstsource-core/internal/domain/entities"
)

// Client-facing messages. Causes are logged, never returned.
const (
	msgFetchArticles      = "Failed to fetch articles"
	msgUpdateViews        = "Failed to update views"
	msgFetchMyths         = "Failed to fetch myths"
	msgArticleNotFound    = "Article not found"
	msgAccountExists      = "Account already exists"
	msgInvalidCredentials = "Invalid email or password"
	msgSignupFailed       = "Failed to create account"
	msgLoginFailed        = "Failed to log in"
	msgInvalidBody        = "Invalid request body"
)

func (s *Server) listArticles(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	result, err := s.handlers.Articles.HandleList(r.Context(), q.Get("category"), q.Get("sort"))
	if err != nil {
		s.logger.Error("listing articles failed",
			zap.String("category", q.Get("category")),
			zap.String("sort", q.Get("sort")),
			zap.Error(err))
		writeError(w, http.StatusInternalServerError, msgFetchArticles)
		return
	}
	writeJSON(w, http.StatusOK, result.Articles)
}

func (s *Server) registerView(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	article, err := s.handlers.Articles.HandleRegisterView(r.Context(), id)
	switch {
	case errors.Is(err, entities.ErrNotFound):
		writeError(w, http.StatusNotFound, msgArticleNotFound)
	case err != nil:
		s.logger.Error("registering view failed", zap.String("article_id", id), zap.Error(err))
		writeError(w, http.StatusInternalServerError, msgUpdateViews)
	default:
		writeJSON(w, http.StatusOK, article)
	}
}

func (s *Server) listMyths(w http.ResponseWriter, r *http.Request) {
	myths, err := s.handlers.Myths.HandleList(r.Context())
	if err != nil {
		s.logger.Error("listing myths failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, msgFetchMyths)
		return
	}
	writeJSON(w, http.StatusOK, myths)
}

type signupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
}

func (s *Server) signup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, msgInvalidBody)
		return
	}

	result, err := s.handlers.Accounts.HandleSignup(r.Context(), req.Email, req.Password, req.FullName)
	if err != nil {
		s.accountError(w, err, msgSignupFailed)
		return
	}
	writeJSON(w, http.StatusCreated, result)
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, msgInvalidBody)
		return
	}

	result, err := s.handlers.Accounts.HandleLogin(r.Context(), req.Email, req.Password)
	if err != nil {
		s.accountError(w, err, msgLoginFailed)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) accountError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, entities.ErrValidation):
		writeError(w, http.StatusBadRequest, validationMessage(err))
	case errors.Is(err, entities.ErrAccountExists):
		writeError(w, http.StatusConflict, msgAccountExists)
	case errors.Is(err, entities.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, msgInvalidCredentials)
	default:
		s.logger.Error("account request failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, fallback)
	}
}

type chatRequest struct {
	Message string `json:"message"`
}

func (s *Server) chat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, msgInvalidBody)
		return
	}

	result, err := s.handlers.Chat.HandleMessage(req.Message)
	if err != nil {
		writeError(w, http.StatusBadRequest, validationMessage(err))
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
