package domain

// RolUsuario is the role assigned to accounts created without an explicit role.
const RolUsuario = "usuario"

// Usuario models an account of the platform.
type Usuario struct {
	ID       int    `json:"id"`
	Nombre   string `json:"nombre"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Rol      string `json:"rol"`
}

// UsuarioPublico is the sanitized view returned by the REST login endpoint.
// The password is never echoed back on that path.
type UsuarioPublico struct {
	ID     int    `json:"id"`
	Nombre string `json:"nombre"`
	Email  string `json:"email"`
	Rol    string `json:"rol"`
}

// Publico projects a Usuario onto its sanitized view.
func (u Usuario) Publico() UsuarioPublico {
	return UsuarioPublico{ID: u.ID, Nombre: u.Nombre, Email: u.Email, Rol: u.Rol}
}
