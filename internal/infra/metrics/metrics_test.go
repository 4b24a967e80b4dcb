package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fleetplan/internal/domain/entity"
	domainerrors "fleetplan/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveSolve(t *testing.T) {
	m := New()

	m.ObserveSolve("cbc", entity.SolveStatusOptimal, 2*time.Second, 4)
	m.ObserveSolve("cbc", entity.SolveStatusOptimal, time.Second, 4)
	m.ObserveSolve("highs", entity.SolveStatusInfeasible, time.Second, 10)

	assert.InDelta(t, 2.0, testutil.ToFloat64(m.solves.WithLabelValues("cbc", "Optimal")), 1e-9)
	assert.InDelta(t, 1.0, testutil.ToFloat64(m.solves.WithLabelValues("highs", "Infeasible")), 1e-9)
	assert.Equal(t, 2, testutil.CollectAndCount(m.solveDuration))
}

func TestHandler_ExposesRegistry(t *testing.T) {
	m := New()
	m.ObserveSolve("cbc", entity.SolveStatusTimeLimitReached, time.Second, 6)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `fleetplan_solves_total{backend="cbc",status="TimeLimitReached"} 1`)
	assert.Contains(t, string(body), "fleetplan_plan_nodes_bucket")
}

func TestMiddleware_CountsByRoute(t *testing.T) {
	m := New()
	e := echo.New()
	e.Use(m.Middleware())
	e.GET("/plans/:id", func(c echo.Context) error {
		if c.Param("id") == "missing" {
			return domainerrors.ErrPlanNotFound
		}

		return c.NoContent(http.StatusOK)
	})

	for _, id := range []string{"a", "b", "missing"} {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/plans/"+id, nil))
	}

	assert.InDelta(t, 2.0, testutil.ToFloat64(m.httpRequests.WithLabelValues("GET", "/plans/:id", "200")), 1e-9)
	assert.InDelta(t, 1.0, testutil.ToFloat64(m.httpRequests.WithLabelValues("GET", "/plans/:id", "404")), 1e-9)
}
