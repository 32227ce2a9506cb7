package memory

import (
	"context"

	"github.com/voluntariados/volunteer-api/internal/core/domain"
)

// UsuarioRepository implements ports.UsuarioRepository over a shared Store.
type UsuarioRepository struct {
	store *Store
}

func NewUsuarioRepository(store *Store) *UsuarioRepository {
	return &UsuarioRepository{store: store}
}

// List returns a copy of the collection in insertion order.
func (r *UsuarioRepository) List(_ context.Context) ([]domain.Usuario, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	usuarios := make([]domain.Usuario, len(r.store.usuarios))
	copy(usuarios, r.store.usuarios)
	return usuarios, nil
}

func (r *UsuarioRepository) Append(_ context.Context, u domain.Usuario) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.usuarios = append(r.store.usuarios, u)
	return nil
}

// RemoveByEmail removes the first usuario whose email matches exactly and
// returns it, or nil when nothing matched.
func (r *UsuarioRepository) RemoveByEmail(_ context.Context, email string) (*domain.Usuario, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for i, u := range r.store.usuarios {
		if u.Email == email {
			r.store.usuarios = append(r.store.usuarios[:i], r.store.usuarios[i+1:]...)
			return &u, nil
		}
	}
	return nil, nil
}

func (r *UsuarioRepository) NextID(_ context.Context) (int, error) {
	return r.store.NextUsuarioID(), nil
}
