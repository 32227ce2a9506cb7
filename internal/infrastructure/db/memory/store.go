// Package memory implements the repositories over a process-lifetime
// in-memory store. There is no persistence: the store is built empty at
// startup and dies with the process.
package memory

import (
	"sync"

	"github.com/voluntariados/volunteer-api/internal/core/domain"
)

// Store holds both collections and both id counters behind a single mutex.
// Counters start at 1 and only ever grow, so ids are never reused after a
// delete. Construct one per process (or per test) and share it between the
// repositories.
type Store struct {
	mu sync.Mutex

	usuarios      []domain.Usuario
	voluntariados []domain.Voluntariado

	usuarioSeq      int
	voluntariadoSeq int
}

func NewStore() *Store {
	return &Store{}
}

// NextUsuarioID returns the next unused usuario id and advances the counter.
func (s *Store) NextUsuarioID() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.usuarioSeq++
	return s.usuarioSeq
}

// NextVoluntariadoID returns the next unused voluntariado id and advances the counter.
func (s *Store) NextVoluntariadoID() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.voluntariadoSeq++
	return s.voluntariadoSeq
}

// Counts returns the current size of both collections, for the readiness probe.
func (s *Store) Counts() (usuarios, voluntariados int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.usuarios), len(s.voluntariados)
}
