package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/voluntariados/volunteer-api/internal/core/domain"
	"github.com/voluntariados/volunteer-api/internal/core/ports"
)

// UsuarioHandler handles the REST surface for usuarios. It translates HTTP
// payloads into service calls and service errors into the classified kinds the
// central error handler maps to status codes.
type UsuarioHandler struct {
	service ports.UsuarioService
}

func NewUsuarioHandler(service ports.UsuarioService) *UsuarioHandler {
	return &UsuarioHandler{service: service}
}

type createUsuarioRequest struct {
	Nombre   string `json:"nombre"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Rol      string `json:"rol"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type listUsuariosResponse struct {
	Ok       bool             `json:"ok"`
	Total    int              `json:"total"`
	Usuarios []domain.Usuario `json:"usuarios"`
}

type usuarioResponse struct {
	Ok      bool           `json:"ok"`
	Mensaje string         `json:"mensaje"`
	Usuario domain.Usuario `json:"usuario"`
}

type loginResponse struct {
	Ok      bool                  `json:"ok"`
	Mensaje string                `json:"mensaje"`
	Usuario domain.UsuarioPublico `json:"usuario"`
}

// List handles GET /api/usuarios.
func (h *UsuarioHandler) List(c echo.Context) error {
	usuarios, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	if usuarios == nil {
		usuarios = []domain.Usuario{}
	}
	return c.JSON(http.StatusOK, listUsuariosResponse{
		Ok:       true,
		Total:    len(usuarios),
		Usuarios: usuarios,
	})
}

// Create handles POST /api/usuarios.
func (h *UsuarioHandler) Create(c echo.Context) error {
	var req createUsuarioRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, domain.MsgFaltanDatosUsuario)
	}

	usuario, err := h.service.Create(c.Request().Context(), ports.CreateUsuarioInput{
		Nombre:   req.Nombre,
		Email:    req.Email,
		Password: req.Password,
		Rol:      req.Rol,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, usuarioResponse{
		Ok:      true,
		Mensaje: "Usuario creado correctamente",
		Usuario: *usuario,
	})
}

// Delete handles DELETE /api/usuarios/:email.
func (h *UsuarioHandler) Delete(c echo.Context) error {
	eliminado, err := h.service.Delete(c.Request().Context(), c.Param("email"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, usuarioResponse{
		Ok:      true,
		Mensaje: "Usuario eliminado correctamente",
		Usuario: *eliminado,
	})
}

// Login handles POST /api/usuarios/login. On success the password is stripped
// from the returned usuario; the GraphQL surface deliberately does not do this.
func (h *UsuarioHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, domain.MsgFaltanCredenciales)
	}
	if err := c.Validate(&req); err != nil {
		return domain.MissingFields(domain.MsgFaltanCredenciales, "email", "password")
	}

	usuario, err := h.service.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, loginResponse{
		Ok:      true,
		Mensaje: "Login exitoso",
		Usuario: usuario.Publico(),
	})
}
