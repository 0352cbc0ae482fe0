package mocks

import (
	"context"
	"sort"

	"github.com/firstsource-health/firstsource-core/internal/domain/entities"
)

// MythRepository is a mock implementation of ports.MythRepository.
type MythRepository struct {
	Myths []entities.Myth
	Err   error
}

// ListMyths returns the stored myths ordered by id.
func (m *MythRepository) ListMyths(_ context.Context) ([]entities.Myth, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	result := make([]entities.Myth, len(m.Myths))
	copy(result, m.Myths)
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result, nil
}

// SaveMyths appends myths, assigning ids to those without one.
func (m *MythRepository) SaveMyths(_ context.Context, myths []entities.Myth) error {
	if m.Err != nil {
		return m.Err
	}
	var maxID int64
	for _, existing := range m.Myths {
		maxID = max(maxID, existing.ID)
	}
	for _, myth := range myths {
		if myth.ID == 0 {
			maxID++
			myth.ID = maxID
		}
		m.Myths = append(m.Myths, myth)
	}
	return nil
}
