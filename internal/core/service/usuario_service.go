package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/voluntariados/volunteer-api/internal/api/metrics"
	"github.com/voluntariados/volunteer-api/internal/core/domain"
	"github.com/voluntariados/volunteer-api/internal/core/ports"
	"github.com/voluntariados/volunteer-api/internal/core/rules"
)

var usuarioRequired = []string{"nombre", "email", "password"}

// UsuarioService implements account operations over a UsuarioRepository.
// Both API surfaces call this same implementation, so validation outcomes
// are identical on either one.
type UsuarioService struct {
	repo   ports.UsuarioRepository
	logger zerolog.Logger
}

func NewUsuarioService(repo ports.UsuarioRepository, logger zerolog.Logger) *UsuarioService {
	return &UsuarioService{repo: repo, logger: logger}
}

func (s *UsuarioService) List(ctx context.Context) ([]domain.Usuario, error) {
	usuarios, err := s.repo.List(ctx)
	if err != nil {
		return nil, domain.Fault(err)
	}
	return usuarios, nil
}

// Create registers a new account. Nombre, email and password must all be
// non-blank and the email must not be in use. Rol defaults to "usuario".
func (s *UsuarioService) Create(ctx context.Context, input ports.CreateUsuarioInput) (*domain.Usuario, error) {
	faltan := rules.Missing(map[string]string{
		"nombre":   input.Nombre,
		"email":    input.Email,
		"password": input.Password,
	}, usuarioRequired)
	if len(faltan) > 0 {
		return nil, domain.MissingFields(domain.MsgFaltanDatosUsuario, faltan...)
	}

	usuarios, err := s.repo.List(ctx)
	if err != nil {
		return nil, domain.Fault(err)
	}
	if rules.EmailInUse(usuarios, input.Email) {
		return nil, domain.DuplicateEmail()
	}

	id, err := s.repo.NextID(ctx)
	if err != nil {
		return nil, domain.Fault(err)
	}

	rol := input.Rol
	if rol == "" {
		rol = domain.RolUsuario
	}
	usuario := domain.Usuario{
		ID:       id,
		Nombre:   input.Nombre,
		Email:    input.Email,
		Password: input.Password,
		Rol:      rol,
	}
	if err := s.repo.Append(ctx, usuario); err != nil {
		s.logger.Error().Err(err).Msg("failed to append usuario")
		return nil, domain.Fault(err)
	}

	metrics.UsuariosCreatedTotal.Inc()
	s.logger.Info().Int("id", usuario.ID).Str("email", usuario.Email).Msg("usuario created")
	return &usuario, nil
}

// Delete removes the account whose email matches exactly and returns it.
func (s *UsuarioService) Delete(ctx context.Context, email string) (*domain.Usuario, error) {
	eliminado, err := s.repo.RemoveByEmail(ctx, email)
	if err != nil {
		return nil, domain.Fault(err)
	}
	if eliminado == nil {
		return nil, domain.NotFound(domain.MsgUsuarioNoEncontrado)
	}

	metrics.UsuariosDeletedTotal.Inc()
	s.logger.Info().Str("email", email).Msg("usuario deleted")
	return eliminado, nil
}

// Login authenticates an account. The email is matched case-insensitively,
// the password by exact comparison.
func (s *UsuarioService) Login(ctx context.Context, email, password string) (*domain.Usuario, error) {
	usuarios, err := s.repo.List(ctx)
	if err != nil {
		return nil, domain.Fault(err)
	}

	usuario, ok := rules.FindForLogin(usuarios, email)
	if !ok {
		metrics.LoginsTotal.WithLabelValues("not_found").Inc()
		return nil, domain.NotFound(domain.MsgUsuarioNoEncontrado)
	}
	if !rules.CredentialsMatch(usuario, password) {
		metrics.LoginsTotal.WithLabelValues("wrong_password").Inc()
		return nil, domain.Unauthorized()
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	s.logger.Info().Str("email", usuario.Email).Msg("login ok")
	return &usuario, nil
}

// FindByEmail looks up an account by exact email match.
func (s *UsuarioService) FindByEmail(ctx context.Context, email string) (*domain.Usuario, error) {
	usuarios, err := s.repo.List(ctx)
	if err != nil {
		return nil, domain.Fault(err)
	}
	for _, u := range usuarios {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, domain.NotFound(domain.MsgUsuarioNoEncontrado)
}
