package ports

import (
	"context"

	"github.com/voluntariados/volunteer-api/internal/core/domain"
)

// CreateUsuarioInput carries the data needed to create an account.
// Rol is optional and defaults to "usuario".
type CreateUsuarioInput struct {
	Nombre   string
	Email    string
	Password string
	Rol      string
}

// UsuarioService defines the account operations shared by both API surfaces.
// Every failure is a *domain.Error with a classified kind.
type UsuarioService interface {
	List(ctx context.Context) ([]domain.Usuario, error)
	Create(ctx context.Context, input CreateUsuarioInput) (*domain.Usuario, error)
	Delete(ctx context.Context, email string) (*domain.Usuario, error)
	// Login matches the email case-insensitively and the password exactly.
	Login(ctx context.Context, email, password string) (*domain.Usuario, error)
	// FindByEmail looks up an account by exact email match.
	FindByEmail(ctx context.Context, email string) (*domain.Usuario, error)
}
