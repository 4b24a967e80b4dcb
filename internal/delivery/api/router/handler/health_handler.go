package handler

import (
	"net/http"

	"fleetplan/internal/delivery/api/response"
	"fleetplan/internal/domain/service"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// HealthHandlerParams holds dependencies for HealthHandler
type HealthHandlerParams struct {
	fx.In

	Solver service.Solver
}

// HealthHandler reports liveness and the configured engine
type HealthHandler struct {
	solver service.Solver
}

// NewHealthHandler creates a new HealthHandler instance
func NewHealthHandler(params HealthHandlerParams) *HealthHandler {
	return &HealthHandler{solver: params.Solver}
}

// HealthCheck is a simple handler to check if the service is up.
func (h *HealthHandler) HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{
		"status": "ok",
		"solver": h.solver.Name(),
	})
}
