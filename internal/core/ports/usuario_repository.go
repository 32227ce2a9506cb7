package ports

import (
	"context"

	"github.com/voluntariados/volunteer-api/internal/core/domain"
)

// UsuarioRepository defines persistence operations for usuarios. The store
// holds state and assigns ids; all business rules live above it.
type UsuarioRepository interface {
	// List returns all usuarios in insertion order.
	List(ctx context.Context) ([]domain.Usuario, error)
	Append(ctx context.Context, u domain.Usuario) error
	// RemoveByEmail removes the first usuario whose email matches exactly.
	// Returns nil when nothing matched; classification is the service's job.
	RemoveByEmail(ctx context.Context, email string) (*domain.Usuario, error)
	// NextID returns the next unused id, strictly greater than any issued
	// before, even after deletions.
	NextID(ctx context.Context) (int, error)
}
