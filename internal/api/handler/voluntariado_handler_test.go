package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/voluntariados/volunteer-api/internal/core/domain"
	"github.com/voluntariados/volunteer-api/internal/core/ports"
)

type stubVoluntariadoService struct {
	listFn       func(ctx context.Context) ([]domain.Voluntariado, error)
	createFn     func(ctx context.Context, input ports.CreateVoluntariadoInput) (*domain.Voluntariado, error)
	deleteFn     func(ctx context.Context, id int) (*domain.Voluntariado, error)
	listByTipoFn func(ctx context.Context, tipo string) ([]domain.Voluntariado, error)
	updateFn     func(ctx context.Context, id int, patch domain.VoluntariadoPatch) (*domain.Voluntariado, error)
	findFn       func(ctx context.Context, id int) (*domain.Voluntariado, error)
}

func (s *stubVoluntariadoService) List(ctx context.Context) ([]domain.Voluntariado, error) {
	return s.listFn(ctx)
}

func (s *stubVoluntariadoService) Create(ctx context.Context, input ports.CreateVoluntariadoInput) (*domain.Voluntariado, error) {
	return s.createFn(ctx, input)
}

func (s *stubVoluntariadoService) Delete(ctx context.Context, id int) (*domain.Voluntariado, error) {
	return s.deleteFn(ctx, id)
}

func (s *stubVoluntariadoService) ListByTipo(ctx context.Context, tipo string) ([]domain.Voluntariado, error) {
	return s.listByTipoFn(ctx, tipo)
}

func (s *stubVoluntariadoService) Update(ctx context.Context, id int, patch domain.VoluntariadoPatch) (*domain.Voluntariado, error) {
	return s.updateFn(ctx, id, patch)
}

func (s *stubVoluntariadoService) FindByID(ctx context.Context, id int) (*domain.Voluntariado, error) {
	return s.findFn(ctx, id)
}

func TestVoluntariadoHandler_ListByTipo(t *testing.T) {
	stub := &stubVoluntariadoService{
		listByTipoFn: func(ctx context.Context, tipo string) ([]domain.Voluntariado, error) {
			if tipo != domain.TipoOferta {
				t.Fatalf("unexpected tipo: %s", tipo)
			}
			return []domain.Voluntariado{{ID: 1, Titulo: "Help", Tipo: tipo}}, nil
		},
	}
	h := NewVoluntariadoHandler(stub)

	c, rec := newTestContext(t, http.MethodGet, "/api/voluntariados/tipo?tipo=Oferta", "")
	if err := h.ListByTipo(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp["tipo"] != "Oferta" || resp["total"] != float64(1) {
		t.Fatalf("unexpected envelope: %+v", resp)
	}
}

func TestVoluntariadoHandler_Create_Success(t *testing.T) {
	stub := &stubVoluntariadoService{
		createFn: func(ctx context.Context, input ports.CreateVoluntariadoInput) (*domain.Voluntariado, error) {
			return &domain.Voluntariado{
				ID: 1, Titulo: input.Titulo, Email: input.Email,
				Fecha: input.Fecha, Descripcion: input.Descripcion, Tipo: input.Tipo,
			}, nil
		},
	}
	h := NewVoluntariadoHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/api/voluntariados",
		`{"titulo":"Help","email":"ana@x.com","fecha":"2024-01-01","descripcion":"Clean park","tipo":"Oferta"}`)
	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp["mensaje"] != "Voluntariado creado correctamente" {
		t.Fatalf("unexpected mensaje: %v", resp["mensaje"])
	}
	voluntariado, ok := resp["voluntariado"].(map[string]any)
	if !ok || voluntariado["tipo"] != "Oferta" {
		t.Fatalf("unexpected voluntariado payload: %+v", resp)
	}
}

func TestVoluntariadoHandler_Create_InvalidTipoPropagates(t *testing.T) {
	stub := &stubVoluntariadoService{
		createFn: func(ctx context.Context, input ports.CreateVoluntariadoInput) (*domain.Voluntariado, error) {
			return nil, domain.InvalidTipo()
		},
	}
	h := NewVoluntariadoHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/api/voluntariados", `{"tipo":"Donación"}`)
	err := h.Create(c)

	var de *domain.Error
	if err == nil || !errors.As(err, &de) || de.Kind != domain.KindInvalidTipo {
		t.Fatalf("expected InvalidTipo to propagate, got %v", err)
	}
}

func TestVoluntariadoHandler_Delete_NonNumericID(t *testing.T) {
	stub := &stubVoluntariadoService{
		deleteFn: func(ctx context.Context, id int) (*domain.Voluntariado, error) {
			t.Fatal("service must not be called")
			return nil, nil
		},
	}
	h := NewVoluntariadoHandler(stub)

	c, _ := newTestContext(t, http.MethodDelete, "/api/voluntariados/abc", "")
	c.SetParamNames("id")
	c.SetParamValues("abc")

	err := h.Delete(c)
	var de *domain.Error
	if err == nil || !errors.As(err, &de) || de.Kind != domain.KindNotFound {
		t.Fatalf("expected NotFound for non-numeric id, got %v", err)
	}
}

func TestVoluntariadoHandler_Delete_Success(t *testing.T) {
	stub := &stubVoluntariadoService{
		deleteFn: func(ctx context.Context, id int) (*domain.Voluntariado, error) {
			if id != 7 {
				t.Fatalf("unexpected id: %d", id)
			}
			return &domain.Voluntariado{ID: id, Titulo: "Help"}, nil
		},
	}
	h := NewVoluntariadoHandler(stub)

	c, rec := newTestContext(t, http.MethodDelete, "/api/voluntariados/7", "")
	c.SetParamNames("id")
	c.SetParamValues("7")

	if err := h.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp["mensaje"] != "Voluntariado eliminado correctamente" {
		t.Fatalf("unexpected mensaje: %v", resp["mensaje"])
	}
}
