package ports

import (
	"context"

	"github.com/firstsource-health/firstsource-core/internal/domain/entities"
)

// MythRepository stores the myth/fact reference list.
type MythRepository interface {
	// ListMyths returns every myth ordered by id ascending.
	ListMyths(ctx context.Context) ([]entities.Myth, error)

	// SaveMyths inserts myths. Myths with a zero id get the next free id.
	SaveMyths(ctx context.Context, myths []entities.Myth) error
}
