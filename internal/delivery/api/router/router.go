// Package router registers the planning API routes.
package router

import (
	"fleetplan/config"
	"fleetplan/internal/delivery/api/middleware"
	"fleetplan/internal/delivery/api/router/handler"
	"fleetplan/internal/domain/constants"
	"fleetplan/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
	"golang.org/x/time/rate"
)

type RouterParams struct {
	fx.In

	PlanHandler    *handler.PlanHandler
	HealthHandler  *handler.HealthHandler
	AuthMiddleware *middleware.AuthMiddleware `optional:"true"`
	Metrics        *metrics.Metrics
	Config         *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	planHandler    *handler.PlanHandler
	healthHandler  *handler.HealthHandler
	authMiddleware *middleware.AuthMiddleware
	metrics        *metrics.Metrics
	config         *config.Config
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{
		planHandler:    params.PlanHandler,
		healthHandler:  params.HealthHandler,
		authMiddleware: params.AuthMiddleware,
		metrics:        params.Metrics,
		config:         params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", r.healthHandler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(r.metrics.Handler()))

	apiV1 := e.Group("/api/v1")
	read, write := r.scopes()

	plansGroup := apiV1.Group("/plans")
	{
		solveMiddleware := append(write, r.solveLimiter()...)
		plansGroup.POST("", r.planHandler.Solve, solveMiddleware...)
		plansGroup.POST("/async", r.planHandler.SubmitAsync, solveMiddleware...)

		plansGroup.GET("", r.planHandler.ListPlans, read...)
		plansGroup.GET("/:id", r.planHandler.GetPlan, read...)
		plansGroup.GET("/:id/routes.csv", r.planHandler.RoutesCSV, read...)
		plansGroup.GET("/:id/routes.geojson", r.planHandler.RoutesGeoJSON, read...)
		plansGroup.GET("/:id/routes/:routeId/qr", r.planHandler.RouteQRCode, read...)
	}
}

// scopes returns the auth chains for read and write routes, empty when
// bearer auth is disabled.
func (r *router) scopes() (read, write []echo.MiddlewareFunc) {
	if r.authMiddleware == nil {
		return nil, nil
	}

	read = []echo.MiddlewareFunc{r.authMiddleware.Authenticate, r.authMiddleware.RequireScope(constants.ScopePlansRead)}
	write = []echo.MiddlewareFunc{r.authMiddleware.Authenticate, r.authMiddleware.RequireScope(constants.ScopePlansWrite)}

	return read, write
}

func (r *router) solveLimiter() []echo.MiddlewareFunc {
	if r.config.HTTP.RateLimit <= 0 {
		return nil
	}

	store := echomiddleware.NewRateLimiterMemoryStore(rate.Limit(r.config.HTTP.RateLimit))

	return []echo.MiddlewareFunc{echomiddleware.RateLimiter(store)}
}
