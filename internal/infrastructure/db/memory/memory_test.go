package memory

import (
	"context"
	"testing"

	"github.com/voluntariados/volunteer-api/internal/core/domain"
)

func TestStore_IDsMonotonicAfterDelete(t *testing.T) {
	store := NewStore()
	repo := NewUsuarioRepository(store)
	ctx := context.Background()

	id1, _ := repo.NextID(ctx)
	if id1 != 1 {
		t.Fatalf("first id should be 1, got %d", id1)
	}
	_ = repo.Append(ctx, domain.Usuario{ID: id1, Email: "a@x.com"})

	if _, err := repo.RemoveByEmail(ctx, "a@x.com"); err != nil {
		t.Fatalf("remove failed: %v", err)
	}

	// Deleting never frees an id for reuse.
	id2, _ := repo.NextID(ctx)
	if id2 != 2 {
		t.Fatalf("id after delete should be 2, got %d", id2)
	}
}

func TestUsuarioRepository_ListInsertionOrderAndCopy(t *testing.T) {
	store := NewStore()
	repo := NewUsuarioRepository(store)
	ctx := context.Background()

	_ = repo.Append(ctx, domain.Usuario{ID: 1, Email: "a@x.com"})
	_ = repo.Append(ctx, domain.Usuario{ID: 2, Email: "b@x.com"})

	usuarios, _ := repo.List(ctx)
	if len(usuarios) != 2 || usuarios[0].ID != 1 || usuarios[1].ID != 2 {
		t.Fatalf("unexpected order: %+v", usuarios)
	}

	// Mutating the returned slice must not touch the store.
	usuarios[0].Email = "mutated"
	again, _ := repo.List(ctx)
	if again[0].Email != "a@x.com" {
		t.Fatal("List must return a copy")
	}
}

func TestUsuarioRepository_RemoveByEmail(t *testing.T) {
	store := NewStore()
	repo := NewUsuarioRepository(store)
	ctx := context.Background()

	_ = repo.Append(ctx, domain.Usuario{ID: 1, Email: "a@x.com"})

	removed, err := repo.RemoveByEmail(ctx, "ghost@x.com")
	if err != nil || removed != nil {
		t.Fatalf("expected nil for unknown email, got %+v err=%v", removed, err)
	}

	removed, err = repo.RemoveByEmail(ctx, "a@x.com")
	if err != nil || removed == nil || removed.ID != 1 {
		t.Fatalf("expected removed usuario 1, got %+v err=%v", removed, err)
	}

	usuarios, _ := repo.List(ctx)
	if len(usuarios) != 0 {
		t.Fatalf("collection should be empty, got %+v", usuarios)
	}
}

func TestVoluntariadoRepository_RemoveAndReplace(t *testing.T) {
	store := NewStore()
	repo := NewVoluntariadoRepository(store)
	ctx := context.Background()

	_ = repo.Append(ctx, domain.Voluntariado{ID: 1, Titulo: "Help", Tipo: domain.TipoOferta})
	_ = repo.Append(ctx, domain.Voluntariado{ID: 2, Titulo: "Other", Tipo: domain.TipoPeticion})

	if err := repo.Replace(ctx, domain.Voluntariado{ID: 1, Titulo: "Changed", Tipo: domain.TipoOferta}); err != nil {
		t.Fatalf("replace failed: %v", err)
	}
	voluntariados, _ := repo.List(ctx)
	if voluntariados[0].Titulo != "Changed" {
		t.Fatalf("replace did not apply: %+v", voluntariados[0])
	}

	removed, _ := repo.RemoveByID(ctx, 2)
	if removed == nil || removed.Titulo != "Other" {
		t.Fatalf("unexpected removed record: %+v", removed)
	}
	if removed, _ := repo.RemoveByID(ctx, 99); removed != nil {
		t.Fatalf("unknown id should remove nothing, got %+v", removed)
	}
}

func TestStore_Counts(t *testing.T) {
	store := NewStore()
	ctx := context.Background()
	_ = NewUsuarioRepository(store).Append(ctx, domain.Usuario{ID: 1})
	_ = NewVoluntariadoRepository(store).Append(ctx, domain.Voluntariado{ID: 1})
	_ = NewVoluntariadoRepository(store).Append(ctx, domain.Voluntariado{ID: 2})

	usuarios, voluntariados := store.Counts()
	if usuarios != 1 || voluntariados != 2 {
		t.Fatalf("unexpected counts: %d %d", usuarios, voluntariados)
	}
}
