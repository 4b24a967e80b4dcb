package handler

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"fleetplan/internal/delivery/api/response"
	deliverycontext "fleetplan/internal/delivery/context"
	"fleetplan/internal/infra/export"
	"fleetplan/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PlanHandlerParams holds dependencies for PlanHandler, injected by Fx.
type PlanHandlerParams struct {
	fx.In

	PlanningUC usecase.PlanningUsecase
	Logger     *slog.Logger
}

// PlanHandler serves the plan endpoints
type PlanHandler struct {
	planningUC usecase.PlanningUsecase
	logger     *slog.Logger
}

// NewPlanHandler is the constructor for PlanHandler
func NewPlanHandler(params PlanHandlerParams) *PlanHandler {
	return &PlanHandler{
		planningUC: params.PlanningUC,
		logger:     params.Logger,
	}
}

// Solve runs the pipeline inline and returns the finished plan
func (h *PlanHandler) Solve(c echo.Context) error {
	var body SolvePlanRequest
	if err := c.Bind(&body); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid plan input")
	}
	if err := c.Validate(&body); err != nil {
		return response.ValidationError(c, err)
	}
	req := body.toUsecase(deliverycontext.GetRequestID(c))

	plan, err := h.planningUC.Solve(c.Request().Context(), req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toPlanResponse(plan))
}

// SubmitAsync queues the plan for the solve worker
func (h *PlanHandler) SubmitAsync(c echo.Context) error {
	var body SolvePlanRequest
	if err := c.Bind(&body); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid plan input")
	}
	if err := c.Validate(&body); err != nil {
		return response.ValidationError(c, err)
	}
	req := body.toUsecase(deliverycontext.GetRequestID(c))

	plan, err := h.planningUC.Submit(c.Request().Context(), req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	c.Response().Header().Set(echo.HeaderLocation, "/api/v1/plans/"+plan.ID.String())

	return response.Success(c, http.StatusAccepted, toPlanResponse(plan))
}

// ListPlans handles retrieving plan headers, newest first
func (h *PlanHandler) ListPlans(c echo.Context) error {
	var query ListPlansQuery
	if err := c.Bind(&query); err != nil {
		return response.BadRequest(c, "INVALID_QUERY", "Invalid paging parameters")
	}
	if err := c.Validate(&query); err != nil {
		return response.ValidationError(c, err)
	}

	plans, err := h.planningUC.ListPlans(c.Request().Context(), query.Limit, query.Offset)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toPlanSummaries(plans))
}

// GetPlan handles retrieving a single plan with its routes
func (h *PlanHandler) GetPlan(c echo.Context) error {
	planID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_PLAN_ID", "Invalid plan ID format")
	}

	plan, err := h.planningUC.GetPlan(c.Request().Context(), planID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toPlanResponse(plan))
}

// RoutesCSV downloads the route table of a solved plan
func (h *PlanHandler) RoutesCSV(c echo.Context) error {
	planID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_PLAN_ID", "Invalid plan ID format")
	}

	data, err := h.planningUC.ExportRoutesCSV(c.Request().Context(), planID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="%s_routes.csv"`, planID))

	return c.Blob(http.StatusOK, export.ContentTypeCSV, data)
}

// RoutesGeoJSON returns the routes and nodes as a FeatureCollection
func (h *PlanHandler) RoutesGeoJSON(c echo.Context) error {
	planID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_PLAN_ID", "Invalid plan ID format")
	}

	data, err := h.planningUC.ExportRoutesGeoJSON(c.Request().Context(), planID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, export.ContentTypeGeoJSON, data)
}

// RouteQRCode renders the route sheet QR code as PNG
func (h *PlanHandler) RouteQRCode(c echo.Context) error {
	planID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_PLAN_ID", "Invalid plan ID format")
	}
	routeID, err := strconv.Atoi(c.Param("routeId"))
	if err != nil || routeID < 1 {
		return response.BadRequest(c, "INVALID_ROUTE_ID", "Route ID must be a positive integer")
	}

	png, err := h.planningUC.RouteQRCode(c.Request().Context(), planID, routeID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
