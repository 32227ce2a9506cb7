package ports

import (
	"context"

	"github.com/voluntariados/volunteer-api/internal/core/domain"
)

// VoluntariadoRepository defines persistence operations for voluntariados.
type VoluntariadoRepository interface {
	// List returns all voluntariados in insertion order.
	List(ctx context.Context) ([]domain.Voluntariado, error)
	Append(ctx context.Context, v domain.Voluntariado) error
	// RemoveByID removes the voluntariado with the given id.
	// Returns nil when nothing matched.
	RemoveByID(ctx context.Context, id int) (*domain.Voluntariado, error)
	// Replace swaps the stored record with the same id for v.
	Replace(ctx context.Context, v domain.Voluntariado) error
	NextID(ctx context.Context) (int, error)
}
