package services

import (
	"context"
	"time"

	"github.com/firstsource-health/firstsource-core/internal/domain/entities"
	"github.com/firstsource-health/firstsource-core/internal/domain/ports"
)

// MythService serves the myth/fact reference list.
type MythService struct {
	repo    ports.MythRepository
	timeout time.Duration
}

// NewMythService creates a new MythService.
func NewMythService(repo ports.MythRepository, timeout time.Duration) *MythService {
	if timeout <= 0 {
		timeout = DefaultStorageTimeout
	}
	return &MythService{
		repo:    repo,
		timeout: timeout,
	}
}

// List returns all myths ordered by id.
func (s *MythService) List(ctx context.Context) ([]entities.Myth, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	myths, err := s.repo.ListMyths(ctx)
	if err != nil {
		return nil, storageError("listing myths", err)
	}
	if myths == nil {
		myths = []entities.Myth{}
	}
	return myths, nil
}
