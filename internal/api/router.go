package api

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	gql "github.com/voluntariados/volunteer-api/internal/api/graphql"
	"github.com/voluntariados/volunteer-api/internal/api/handler"
	"github.com/voluntariados/volunteer-api/internal/core/ports"
)

// NewRouter builds and returns the Echo instance with both API surfaces
// registered over the same services.
func NewRouter(
	usuarios ports.UsuarioService,
	voluntariados ports.VoluntariadoService,
	store handler.StoreCounter,
	log zerolog.Logger,
) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddleware("voluntariados"))

	// --- Welcome route ---
	e.GET("/", welcome)

	// --- REST surface ---
	usuarioHandler := handler.NewUsuarioHandler(usuarios)
	u := e.Group("/api/usuarios")
	u.GET("", usuarioHandler.List)
	u.POST("", usuarioHandler.Create)
	u.DELETE("/:email", usuarioHandler.Delete)
	u.POST("/login", usuarioHandler.Login)

	voluntariadoHandler := handler.NewVoluntariadoHandler(voluntariados)
	v := e.Group("/api/voluntariados")
	v.GET("", voluntariadoHandler.List)
	v.GET("/tipo", voluntariadoHandler.ListByTipo)
	v.POST("", voluntariadoHandler.Create)
	v.DELETE("/:id", voluntariadoHandler.Delete)

	// --- GraphQL surface ---
	schema, err := gql.NewSchema(usuarios, voluntariados, log)
	if err != nil {
		return nil, err
	}
	e.POST("/graphql", gql.NewHandler(schema))

	// --- Observability ---
	e.GET("/metrics", echoprometheus.NewHandler())

	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(store)
	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – store record counts

	return e, nil
}

type welcomeResponse struct {
	Mensaje   string            `json:"mensaje"`
	Version   string            `json:"version"`
	Endpoints map[string]string `json:"endpoints"`
}

func welcome(c echo.Context) error {
	return c.JSON(http.StatusOK, welcomeResponse{
		Mensaje: "API de Voluntariados - Backend funcionando",
		Version: "1.0.0",
		Endpoints: map[string]string{
			"usuarios":      "/api/usuarios",
			"voluntariados": "/api/voluntariados",
		},
	})
}
