// Package graphql exposes the query/mutation surface. The schema mirrors the
// REST surface one to one: both call the same services, so validation and
// lookup outcomes are identical; only the rendering differs (message strings
// here, status codes there).
package graphql

import (
	"errors"

	"github.com/graphql-go/graphql"
	"github.com/rs/zerolog"

	"github.com/voluntariados/volunteer-api/internal/core/domain"
	"github.com/voluntariados/volunteer-api/internal/core/ports"
)

// respuesta is the generic mutation acknowledgement.
type respuesta struct {
	Ok      bool   `json:"ok"`
	Mensaje string `json:"mensaje"`
}

// respuestaLogin carries the login outcome. Unlike the REST login endpoint,
// the usuario here keeps its password field; the asymmetry is deliberate.
type respuestaLogin struct {
	Ok      bool            `json:"ok"`
	Mensaje string          `json:"mensaje"`
	Usuario *domain.Usuario `json:"usuario"`
}

var usuarioType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Usuario",
	Fields: graphql.Fields{
		"id":       &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"nombre":   &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"email":    &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"password": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"rol":      &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
	},
})

var voluntariadoType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Voluntariado",
	Fields: graphql.Fields{
		"id":          &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"titulo":      &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"email":       &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"fecha":       &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"descripcion": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"tipo":        &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
	},
})

var respuestaType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Respuesta",
	Fields: graphql.Fields{
		"ok":      &graphql.Field{Type: graphql.NewNonNull(graphql.Boolean)},
		"mensaje": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
	},
})

var respuestaLoginType = graphql.NewObject(graphql.ObjectConfig{
	Name: "RespuestaLogin",
	Fields: graphql.Fields{
		"ok":      &graphql.Field{Type: graphql.NewNonNull(graphql.Boolean)},
		"mensaje": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"usuario": &graphql.Field{Type: usuarioType},
	},
})

// NewSchema builds the executable schema over the shared services.
func NewSchema(usuarios ports.UsuarioService, voluntariados ports.VoluntariadoService, log zerolog.Logger) (graphql.Schema, error) {
	query := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"obtenerUsuarios": &graphql.Field{
				Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(usuarioType))),
				Resolve: func(p graphql.ResolveParams) (any, error) {
					log.Debug().Msg("graphql query obtenerUsuarios")
					return usuarios.List(p.Context)
				},
			},
			"obtenerUsuario": &graphql.Field{
				Type: usuarioType,
				Args: graphql.FieldConfigArgument{
					"email": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (any, error) {
					email, _ := p.Args["email"].(string)
					log.Debug().Str("email", email).Msg("graphql query obtenerUsuario")
					u, err := usuarios.FindByEmail(p.Context, email)
					if isNotFound(err) {
						return nil, nil
					}
					if err != nil {
						return nil, err
					}
					return *u, nil
				},
			},
			"obtenerVoluntariados": &graphql.Field{
				Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(voluntariadoType))),
				Resolve: func(p graphql.ResolveParams) (any, error) {
					log.Debug().Msg("graphql query obtenerVoluntariados")
					return voluntariados.List(p.Context)
				},
			},
			"obtenerVoluntariado": &graphql.Field{
				Type: voluntariadoType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
				},
				Resolve: func(p graphql.ResolveParams) (any, error) {
					id, _ := p.Args["id"].(int)
					log.Debug().Int("id", id).Msg("graphql query obtenerVoluntariado")
					v, err := voluntariados.FindByID(p.Context, id)
					if isNotFound(err) {
						return nil, nil
					}
					if err != nil {
						return nil, err
					}
					return *v, nil
				},
			},
			"obtenerVoluntariadosPorTipo": &graphql.Field{
				Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(voluntariadoType))),
				Args: graphql.FieldConfigArgument{
					"tipo": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (any, error) {
					tipo, _ := p.Args["tipo"].(string)
					log.Debug().Str("tipo", tipo).Msg("graphql query obtenerVoluntariadosPorTipo")
					return voluntariados.ListByTipo(p.Context, tipo)
				},
			},
		},
	})

	mutation := graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"crearUsuario": &graphql.Field{
				Type: graphql.NewNonNull(usuarioType),
				Args: graphql.FieldConfigArgument{
					"nombre":   &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"email":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"password": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"rol":      &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: func(p graphql.ResolveParams) (any, error) {
					input := ports.CreateUsuarioInput{
						Nombre:   stringArg(p, "nombre"),
						Email:    stringArg(p, "email"),
						Password: stringArg(p, "password"),
						Rol:      stringArg(p, "rol"),
					}
					log.Debug().Str("email", input.Email).Msg("graphql mutation crearUsuario")
					u, err := usuarios.Create(p.Context, input)
					if err != nil {
						return nil, err
					}
					return *u, nil
				},
			},
			"borrarUsuario": &graphql.Field{
				Type: graphql.NewNonNull(respuestaType),
				Args: graphql.FieldConfigArgument{
					"email": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (any, error) {
					email := stringArg(p, "email")
					log.Debug().Str("email", email).Msg("graphql mutation borrarUsuario")
					if _, err := usuarios.Delete(p.Context, email); err != nil {
						return nil, err
					}
					return respuesta{Ok: true, Mensaje: "Usuario eliminado correctamente"}, nil
				},
			},
			"loginUsuario": &graphql.Field{
				Type: graphql.NewNonNull(respuestaLoginType),
				Args: graphql.FieldConfigArgument{
					"email":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"password": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (any, error) {
					email := stringArg(p, "email")
					log.Debug().Str("email", email).Msg("graphql mutation loginUsuario")
					u, err := usuarios.Login(p.Context, email, stringArg(p, "password"))
					if err != nil {
						// Business failures render as a RespuestaLogin with
						// ok:false, not as GraphQL errors.
						var de *domain.Error
						if errors.As(err, &de) && de.Kind != domain.KindFault {
							return respuestaLogin{Ok: false, Mensaje: de.Mensaje}, nil
						}
						return nil, err
					}
					return respuestaLogin{Ok: true, Mensaje: "Login exitoso", Usuario: u}, nil
				},
			},
			"crearVoluntariado": &graphql.Field{
				Type: graphql.NewNonNull(voluntariadoType),
				Args: graphql.FieldConfigArgument{
					"titulo":      &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"email":       &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"fecha":       &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"descripcion": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"tipo":        &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (any, error) {
					input := ports.CreateVoluntariadoInput{
						Titulo:      stringArg(p, "titulo"),
						Email:       stringArg(p, "email"),
						Fecha:       stringArg(p, "fecha"),
						Descripcion: stringArg(p, "descripcion"),
						Tipo:        stringArg(p, "tipo"),
					}
					log.Debug().Str("titulo", input.Titulo).Msg("graphql mutation crearVoluntariado")
					v, err := voluntariados.Create(p.Context, input)
					if err != nil {
						return nil, err
					}
					return *v, nil
				},
			},
			"borrarVoluntariado": &graphql.Field{
				Type: graphql.NewNonNull(respuestaType),
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
				},
				Resolve: func(p graphql.ResolveParams) (any, error) {
					id, _ := p.Args["id"].(int)
					log.Debug().Int("id", id).Msg("graphql mutation borrarVoluntariado")
					if _, err := voluntariados.Delete(p.Context, id); err != nil {
						return nil, err
					}
					return respuesta{Ok: true, Mensaje: "Voluntariado eliminado correctamente"}, nil
				},
			},
			"actualizarVoluntariado": &graphql.Field{
				Type: graphql.NewNonNull(voluntariadoType),
				Args: graphql.FieldConfigArgument{
					"id":          &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
					"titulo":      &graphql.ArgumentConfig{Type: graphql.String},
					"email":       &graphql.ArgumentConfig{Type: graphql.String},
					"fecha":       &graphql.ArgumentConfig{Type: graphql.String},
					"descripcion": &graphql.ArgumentConfig{Type: graphql.String},
					"tipo":        &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: func(p graphql.ResolveParams) (any, error) {
					id, _ := p.Args["id"].(int)
					patch := domain.VoluntariadoPatch{
						Titulo:      stringArg(p, "titulo"),
						Email:       stringArg(p, "email"),
						Fecha:       stringArg(p, "fecha"),
						Descripcion: stringArg(p, "descripcion"),
						Tipo:        stringArg(p, "tipo"),
					}
					log.Debug().Int("id", id).Msg("graphql mutation actualizarVoluntariado")
					v, err := voluntariados.Update(p.Context, id, patch)
					if err != nil {
						return nil, err
					}
					return *v, nil
				},
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{
		Query:    query,
		Mutation: mutation,
	})
}

func stringArg(p graphql.ResolveParams, name string) string {
	s, _ := p.Args[name].(string)
	return s
}

func isNotFound(err error) bool {
	var de *domain.Error
	return errors.As(err, &de) && de.Kind == domain.KindNotFound
}
