// Package rules holds the pure business rules shared by both API surfaces.
// The REST and GraphQL adapters call the same services, which call these same
// functions, so the two surfaces agree on every outcome by construction.
package rules

import (
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/voluntariados/volunteer-api/internal/core/domain"
)

var validate = validator.New()

// Missing returns, in the given order, the names of the fields whose value is
// blank. Values are checked as-is: whitespace counts as present.
func Missing(campos map[string]string, orden []string) []string {
	var faltan []string
	for _, nombre := range orden {
		if err := validate.Var(campos[nombre], "required"); err != nil {
			faltan = append(faltan, nombre)
		}
	}
	return faltan
}

// IsValidTipo reports whether tipo is exactly "Oferta" or "Petición".
// The comparison is case-sensitive.
func IsValidTipo(tipo string) bool {
	return tipo == domain.TipoOferta || tipo == domain.TipoPeticion
}

// EmailInUse reports whether any existing usuario already has the given email.
// Uniqueness is checked case-sensitively; login lookup is not. Two accounts
// differing only in case could therefore coexist. That asymmetry is observable
// current behaviour and is kept on purpose.
func EmailInUse(usuarios []domain.Usuario, email string) bool {
	for _, u := range usuarios {
		if u.Email == email {
			return true
		}
	}
	return false
}

// FindForLogin returns the first usuario whose email matches case-insensitively.
func FindForLogin(usuarios []domain.Usuario, email string) (domain.Usuario, bool) {
	for _, u := range usuarios {
		if strings.EqualFold(u.Email, email) {
			return u, true
		}
	}
	return domain.Usuario{}, false
}

// CredentialsMatch reports whether the stored password equals the given one
// by exact comparison.
func CredentialsMatch(u domain.Usuario, password string) bool {
	return u.Password == password
}

// MergeVoluntariado applies only the present-and-non-blank fields of the patch
// over the existing record. An intentional empty string can therefore never be
// set through an update; known limitation, kept for compatibility.
func MergeVoluntariado(v domain.Voluntariado, p domain.VoluntariadoPatch) domain.Voluntariado {
	if p.Titulo != "" {
		v.Titulo = p.Titulo
	}
	if p.Email != "" {
		v.Email = p.Email
	}
	if p.Fecha != "" {
		v.Fecha = p.Fecha
	}
	if p.Descripcion != "" {
		v.Descripcion = p.Descripcion
	}
	if p.Tipo != "" {
		v.Tipo = p.Tipo
	}
	return v
}
