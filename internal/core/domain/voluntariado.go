package domain

// Valid values for Voluntariado.Tipo.
const (
	TipoOferta   = "Oferta"
	TipoPeticion = "Petición"
)

// Voluntariado models a volunteer posting: an offer of help or a request for it.
type Voluntariado struct {
	ID          int    `json:"id"`
	Titulo      string `json:"titulo"`
	Email       string `json:"email"`
	Fecha       string `json:"fecha"`
	Descripcion string `json:"descripcion"`
	Tipo        string `json:"tipo"`
}

// VoluntariadoPatch carries the fields of a partial update. Blank fields are
// treated as "not supplied" and leave the stored value unchanged.
type VoluntariadoPatch struct {
	Titulo      string
	Email       string
	Fecha       string
	Descripcion string
	Tipo        string
}
