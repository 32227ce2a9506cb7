package domain

// ErrorKind classifies every failure a service operation can return.
type ErrorKind string

const (
	KindMissingFields  ErrorKind = "missing_fields"
	KindInvalidTipo    ErrorKind = "invalid_tipo"
	KindDuplicateEmail ErrorKind = "duplicate_email"
	KindNotFound       ErrorKind = "not_found"
	KindUnauthorized   ErrorKind = "unauthorized"
	KindFault          ErrorKind = "fault"
)

// Fixed user-facing messages. Both API surfaces render these verbatim.
const (
	MsgFaltanDatosUsuario       = "Faltan datos obligatorios: nombre, email, password"
	MsgFaltanDatosVoluntariado  = "Faltan datos obligatorios"
	MsgFaltanCredenciales       = "Email y contraseña son obligatorios"
	MsgFaltaTipo                = "Debes especificar el tipo (Oferta o Petición)"
	MsgTipoInvalido             = `El tipo debe ser "Oferta" o "Petición"`
	MsgEmailRegistrado          = "El email ya está registrado"
	MsgUsuarioNoEncontrado      = "Usuario no encontrado"
	MsgVoluntariadoNoEncontrado = "Voluntariado no encontrado"
	MsgPasswordIncorrecta       = "Contraseña incorrecta"
	MsgErrorInterno             = "Error interno del servidor"
)

// Error is the classified failure type returned by every service operation.
// Adapters map Kind to their own conventions (HTTP status codes on REST,
// message strings on GraphQL) without re-deriving the classification.
type Error struct {
	Kind    ErrorKind
	Mensaje string
	// Campos lists the blank fields for KindMissingFields.
	Campos []string
	// Err holds the underlying cause for KindFault.
	Err error
}

func (e *Error) Error() string { return e.Mensaje }

func (e *Error) Unwrap() error { return e.Err }

// MissingFields reports blank required inputs, in aggregate.
func MissingFields(mensaje string, campos ...string) *Error {
	return &Error{Kind: KindMissingFields, Mensaje: mensaje, Campos: campos}
}

// InvalidTipo reports a Voluntariado tipo outside {Oferta, Petición}.
func InvalidTipo() *Error {
	return &Error{Kind: KindInvalidTipo, Mensaje: MsgTipoInvalido}
}

// DuplicateEmail reports account creation with an already registered email.
func DuplicateEmail() *Error {
	return &Error{Kind: KindDuplicateEmail, Mensaje: MsgEmailRegistrado}
}

// NotFound reports a lookup by key that matched nothing.
func NotFound(mensaje string) *Error {
	return &Error{Kind: KindNotFound, Mensaje: mensaje}
}

// Unauthorized reports a password mismatch during login.
func Unauthorized() *Error {
	return &Error{Kind: KindUnauthorized, Mensaje: MsgPasswordIncorrecta}
}

// Fault wraps an unexpected internal error so it never escapes unclassified.
func Fault(err error) *Error {
	return &Error{Kind: KindFault, Mensaje: MsgErrorInterno, Err: err}
}
