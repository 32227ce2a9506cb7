package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/voluntariados/volunteer-api/internal/api/metrics"
	"github.com/voluntariados/volunteer-api/internal/core/domain"
	"github.com/voluntariados/volunteer-api/internal/core/ports"
	"github.com/voluntariados/volunteer-api/internal/core/rules"
)

var voluntariadoRequired = []string{"titulo", "email", "fecha", "descripcion", "tipo"}

// VoluntariadoService implements posting operations over a VoluntariadoRepository.
type VoluntariadoService struct {
	repo   ports.VoluntariadoRepository
	logger zerolog.Logger
}

func NewVoluntariadoService(repo ports.VoluntariadoRepository, logger zerolog.Logger) *VoluntariadoService {
	return &VoluntariadoService{repo: repo, logger: logger}
}

func (s *VoluntariadoService) List(ctx context.Context) ([]domain.Voluntariado, error) {
	voluntariados, err := s.repo.List(ctx)
	if err != nil {
		return nil, domain.Fault(err)
	}
	return voluntariados, nil
}

// Create registers a new posting. All five fields must be non-blank and tipo
// must be one of the two valid values.
func (s *VoluntariadoService) Create(ctx context.Context, input ports.CreateVoluntariadoInput) (*domain.Voluntariado, error) {
	faltan := rules.Missing(map[string]string{
		"titulo":      input.Titulo,
		"email":       input.Email,
		"fecha":       input.Fecha,
		"descripcion": input.Descripcion,
		"tipo":        input.Tipo,
	}, voluntariadoRequired)
	if len(faltan) > 0 {
		return nil, domain.MissingFields(domain.MsgFaltanDatosVoluntariado, faltan...)
	}
	if !rules.IsValidTipo(input.Tipo) {
		return nil, domain.InvalidTipo()
	}

	id, err := s.repo.NextID(ctx)
	if err != nil {
		return nil, domain.Fault(err)
	}

	voluntariado := domain.Voluntariado{
		ID:          id,
		Titulo:      input.Titulo,
		Email:       input.Email,
		Fecha:       input.Fecha,
		Descripcion: input.Descripcion,
		Tipo:        input.Tipo,
	}
	if err := s.repo.Append(ctx, voluntariado); err != nil {
		s.logger.Error().Err(err).Msg("failed to append voluntariado")
		return nil, domain.Fault(err)
	}

	metrics.VoluntariadosCreatedTotal.WithLabelValues(voluntariado.Tipo).Inc()
	s.logger.Info().Int("id", voluntariado.ID).Str("tipo", voluntariado.Tipo).Msg("voluntariado created")
	return &voluntariado, nil
}

// Delete removes the posting with the given id and returns it.
func (s *VoluntariadoService) Delete(ctx context.Context, id int) (*domain.Voluntariado, error) {
	eliminado, err := s.repo.RemoveByID(ctx, id)
	if err != nil {
		return nil, domain.Fault(err)
	}
	if eliminado == nil {
		return nil, domain.NotFound(domain.MsgVoluntariadoNoEncontrado)
	}

	metrics.VoluntariadosDeletedTotal.Inc()
	s.logger.Info().Int("id", id).Msg("voluntariado deleted")
	return eliminado, nil
}

// ListByTipo returns the postings whose tipo matches exactly. An empty result
// is not an error; a blank tipo is.
func (s *VoluntariadoService) ListByTipo(ctx context.Context, tipo string) ([]domain.Voluntariado, error) {
	if len(rules.Missing(map[string]string{"tipo": tipo}, []string{"tipo"})) > 0 {
		return nil, domain.MissingFields(domain.MsgFaltaTipo, "tipo")
	}

	voluntariados, err := s.repo.List(ctx)
	if err != nil {
		return nil, domain.Fault(err)
	}
	filtrados := make([]domain.Voluntariado, 0)
	for _, v := range voluntariados {
		if v.Tipo == tipo {
			filtrados = append(filtrados, v)
		}
	}
	return filtrados, nil
}

// Update merges only the non-blank fields of the patch over the stored record
// and returns the merged result. A supplied tipo must be valid.
func (s *VoluntariadoService) Update(ctx context.Context, id int, patch domain.VoluntariadoPatch) (*domain.Voluntariado, error) {
	actual, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if patch.Tipo != "" && !rules.IsValidTipo(patch.Tipo) {
		return nil, domain.InvalidTipo()
	}

	actualizado := rules.MergeVoluntariado(*actual, patch)
	if err := s.repo.Replace(ctx, actualizado); err != nil {
		return nil, domain.Fault(err)
	}

	s.logger.Info().Int("id", id).Msg("voluntariado updated")
	return &actualizado, nil
}

// FindByID looks up a posting by id.
func (s *VoluntariadoService) FindByID(ctx context.Context, id int) (*domain.Voluntariado, error) {
	voluntariados, err := s.repo.List(ctx)
	if err != nil {
		return nil, domain.Fault(err)
	}
	for _, v := range voluntariados {
		if v.ID == id {
			return &v, nil
		}
	}
	return nil, domain.NotFound(domain.MsgVoluntariadoNoEncontrado)
}
