package middleware

import (
	"slices"
	"strings"

	"fleetplan/internal/delivery/api/response"
	deliverycontext "fleetplan/internal/delivery/context"
	"fleetplan/internal/domain/service"

	"github.com/labstack/echo/v4"
)

const scopesKey = "scopes"

// AuthMiddleware validates bearer tokens issued by the TokenService.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate rejects requests without a valid access token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, "MISSING_TOKEN", "Authorization header is missing")
		}

		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found || tokenString == "" {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil || claims.Subject == "" {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}

		deliverycontext.SetSubject(c, claims.Subject)
		c.Set(scopesKey, claims.Scopes)

		return next(c)
	}
}

// RequireScope rejects tokens lacking scope. It must run after Authenticate.
func (m *AuthMiddleware) RequireScope(scope string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			scopes, _ := c.Get(scopesKey).([]string)
			if !slices.Contains(scopes, scope) {
				return response.Error(c, 403, "FORBIDDEN", "Permission denied: require '"+scope+"' scope", nil)
			}

			return next(c)
		}
	}
}
