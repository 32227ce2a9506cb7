package memory

import (
	"context"

	"github.com/voluntariados/volunteer-api/internal/core/domain"
)

// VoluntariadoRepository implements ports.VoluntariadoRepository over a shared Store.
type VoluntariadoRepository struct {
	store *Store
}

func NewVoluntariadoRepository(store *Store) *VoluntariadoRepository {
	return &VoluntariadoRepository{store: store}
}

// List returns a copy of the collection in insertion order.
func (r *VoluntariadoRepository) List(_ context.Context) ([]domain.Voluntariado, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	voluntariados := make([]domain.Voluntariado, len(r.store.voluntariados))
	copy(voluntariados, r.store.voluntariados)
	return voluntariados, nil
}

func (r *VoluntariadoRepository) Append(_ context.Context, v domain.Voluntariado) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.voluntariados = append(r.store.voluntariados, v)
	return nil
}

// RemoveByID removes the voluntariado with the given id and returns it, or
// nil when nothing matched.
func (r *VoluntariadoRepository) RemoveByID(_ context.Context, id int) (*domain.Voluntariado, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for i, v := range r.store.voluntariados {
		if v.ID == id {
			r.store.voluntariados = append(r.store.voluntariados[:i], r.store.voluntariados[i+1:]...)
			return &v, nil
		}
	}
	return nil, nil
}

// Replace swaps the stored record with the same id for v. Replacing an id
// that is no longer present is a no-op.
func (r *VoluntariadoRepository) Replace(_ context.Context, v domain.Voluntariado) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for i := range r.store.voluntariados {
		if r.store.voluntariados[i].ID == v.ID {
			r.store.voluntariados[i] = v
			return nil
		}
	}
	return nil
}

func (r *VoluntariadoRepository) NextID(_ context.Context) (int, error) {
	return r.store.NextVoluntariadoID(), nil
}
