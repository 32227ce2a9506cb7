package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/voluntariados/volunteer-api/internal/core/domain"
	"github.com/voluntariados/volunteer-api/internal/core/ports"
)

// VoluntariadoHandler handles the REST surface for voluntariados.
type VoluntariadoHandler struct {
	service ports.VoluntariadoService
}

func NewVoluntariadoHandler(service ports.VoluntariadoService) *VoluntariadoHandler {
	return &VoluntariadoHandler{service: service}
}

type createVoluntariadoRequest struct {
	Titulo      string `json:"titulo"`
	Email       string `json:"email"`
	Fecha       string `json:"fecha"`
	Descripcion string `json:"descripcion"`
	Tipo        string `json:"tipo"`
}

type listVoluntariadosResponse struct {
	Ok            bool                  `json:"ok"`
	Total         int                   `json:"total"`
	Tipo          string                `json:"tipo,omitempty"`
	Voluntariados []domain.Voluntariado `json:"voluntariados"`
}

type voluntariadoResponse struct {
	Ok           bool                `json:"ok"`
	Mensaje      string              `json:"mensaje"`
	Voluntariado domain.Voluntariado `json:"voluntariado"`
}

// List handles GET /api/voluntariados.
func (h *VoluntariadoHandler) List(c echo.Context) error {
	voluntariados, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	if voluntariados == nil {
		voluntariados = []domain.Voluntariado{}
	}
	return c.JSON(http.StatusOK, listVoluntariadosResponse{
		Ok:            true,
		Total:         len(voluntariados),
		Voluntariados: voluntariados,
	})
}

// ListByTipo handles GET /api/voluntariados/tipo?tipo=Oferta|Petición.
func (h *VoluntariadoHandler) ListByTipo(c echo.Context) error {
	tipo := c.QueryParam("tipo")
	voluntariados, err := h.service.ListByTipo(c.Request().Context(), tipo)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listVoluntariadosResponse{
		Ok:            true,
		Total:         len(voluntariados),
		Tipo:          tipo,
		Voluntariados: voluntariados,
	})
}

// Create handles POST /api/voluntariados.
func (h *VoluntariadoHandler) Create(c echo.Context) error {
	var req createVoluntariadoRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, domain.MsgFaltanDatosVoluntariado)
	}

	voluntariado, err := h.service.Create(c.Request().Context(), ports.CreateVoluntariadoInput{
		Titulo:      req.Titulo,
		Email:       req.Email,
		Fecha:       req.Fecha,
		Descripcion: req.Descripcion,
		Tipo:        req.Tipo,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, voluntariadoResponse{
		Ok:           true,
		Mensaje:      "Voluntariado creado correctamente",
		Voluntariado: *voluntariado,
	})
}

// Delete handles DELETE /api/voluntariados/:id. A non-numeric id behaves like
// an id that matches nothing.
func (h *VoluntariadoHandler) Delete(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return domain.NotFound(domain.MsgVoluntariadoNoEncontrado)
	}

	eliminado, err := h.service.Delete(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, voluntariadoResponse{
		Ok:           true,
		Mensaje:      "Voluntariado eliminado correctamente",
		Voluntariado: *eliminado,
	})
}
