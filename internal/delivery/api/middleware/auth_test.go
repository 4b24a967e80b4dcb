package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "fleetplan/internal/delivery/context"
	"fleetplan/internal/domain/service"
	mockSvc "fleetplan/internal/mocks/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serveWithAuth(t *testing.T, tokenSvc service.TokenService, header string, scope string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	auth := NewAuthMiddleware(tokenSvc)
	handler := func(c echo.Context) error {
		subject, ok := deliverycontext.GetSubject(c)
		require.True(t, ok)

		return c.String(http.StatusOK, subject)
	}
	if scope != "" {
		e.GET("/", handler, auth.Authenticate, auth.RequireScope(scope))
	} else {
		e.GET("/", handler, auth.Authenticate)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set(echo.HeaderAuthorization, header)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	tokenSvc.EXPECT().ValidateToken("good").Return(&service.Claims{
		Scopes:           []string{"plans:write"},
		RegisteredClaims: jwt.RegisteredClaims{Subject: "dispatcher"},
	}, nil)

	rec := serveWithAuth(t, tokenSvc, "Bearer good", "plans:write")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "dispatcher", rec.Body.String())
}

func TestAuthMiddleware_Rejects(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		validate bool
		wantCode string
	}{
		{name: "missing header", wantCode: "MISSING_TOKEN"},
		{name: "not bearer", header: "Basic abc", wantCode: "INVALID_TOKEN"},
		{name: "invalid token", header: "Bearer bad", validate: true, wantCode: "INVALID_TOKEN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokenSvc := mockSvc.NewMockTokenService(t)
			if tt.validate {
				tokenSvc.EXPECT().ValidateToken("bad").Return(nil, errors.New("expired"))
			}

			rec := serveWithAuth(t, tokenSvc, tt.header, "")

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantCode)
		})
	}
}

func TestAuthMiddleware_RequireScope(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	tokenSvc.EXPECT().ValidateToken("good").Return(&service.Claims{
		Scopes:           []string{"plans:read"},
		RegisteredClaims: jwt.RegisteredClaims{Subject: "viewer"},
	}, nil)

	rec := serveWithAuth(t, tokenSvc, "Bearer good", "plans:write")

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "FORBIDDEN")
}
