package ports

import (
	"context"

	"github.com/voluntariados/volunteer-api/internal/core/domain"
)

// CreateVoluntariadoInput carries the data needed to create a posting.
// All five fields are required.
type CreateVoluntariadoInput struct {
	Titulo      string
	Email       string
	Fecha       string
	Descripcion string
	Tipo        string
}

// VoluntariadoService defines the posting operations shared by both API surfaces.
type VoluntariadoService interface {
	List(ctx context.Context) ([]domain.Voluntariado, error)
	Create(ctx context.Context, input CreateVoluntariadoInput) (*domain.Voluntariado, error)
	Delete(ctx context.Context, id int) (*domain.Voluntariado, error)
	// ListByTipo returns the postings whose tipo matches exactly.
	// An empty result is not an error; a blank tipo is.
	ListByTipo(ctx context.Context, tipo string) ([]domain.Voluntariado, error)
	// Update merges only the non-blank fields of the patch over the record.
	Update(ctx context.Context, id int, patch domain.VoluntariadoPatch) (*domain.Voluntariado, error)
	FindByID(ctx context.Context, id int) (*domain.Voluntariado, error)
}
