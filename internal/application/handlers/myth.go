package handlers

import (
	"context"

	"github.com/firstsource-health/firstsource-core/internal/domain/entities"
	"github.com/firstsource-health/firstsource-core/internal/domain/services"
)

// MythHandler serves the myth/fact list.
type MythHandler struct {
	mythService *services.MythService
}

// NewMythHandler creates a new MythHandler.
func NewMythHandler(mythService *services.MythService) *MythHandler {
	return &MythHandler{
		mythService: mythService,
	}
}

// HandleList returns all myths ordered by id.
func (h *MythHandler) HandleList(ctx context.Context) ([]entities.Myth, error) {
	return h.mythService.List(ctx)
}
