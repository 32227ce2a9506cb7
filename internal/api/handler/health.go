package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// HealthHandler handles GET /health — liveness probe.
// Returns 200 immediately; confirms the process is alive.
type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

func (h *HealthHandler) Liveness(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
	})
}

// StoreCounter reports the current size of both collections.
type StoreCounter interface {
	Counts() (usuarios, voluntariados int)
}

// ReadinessHandler handles GET /health/ready — readiness probe. The only
// dependency is the in-process store, so readiness reports its record counts.
type ReadinessHandler struct {
	store StoreCounter
}

func NewReadinessHandler(store StoreCounter) *ReadinessHandler {
	return &ReadinessHandler{store: store}
}

type storeStatus struct {
	Usuarios      int `json:"usuarios"`
	Voluntariados int `json:"voluntariados"`
}

type readinessResponse struct {
	Status string      `json:"status"`
	Store  storeStatus `json:"store"`
}

func (h *ReadinessHandler) Readiness(c echo.Context) error {
	usuarios, voluntariados := h.store.Counts()
	return c.JSON(http.StatusOK, readinessResponse{
		Status: "ok",
		Store:  storeStatus{Usuarios: usuarios, Voluntariados: voluntariados},
	})
}
