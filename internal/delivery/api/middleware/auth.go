package middleware

import (
	"strings"

	"pharmaduty/internal/delivery/api/response"
	deliverycontext "pharmaduty/internal/delivery/context"
	"pharmaduty/internal/domain/entity"
	"pharmaduty/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// AuthMiddleware authenticates bearer tokens issued by the identity provider
// and authorizes by role.
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

		return m.authenticate(c, next, authHeader)
	}
}

// OptionalAuthenticate lets anonymous requests through but still rejects a
// malformed or expired token.
func (m *AuthMiddleware) OptionalAuthenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return next(c)
		}

		return m.authenticate(c, next, authHeader)
	}
}

func (m *AuthMiddleware) authenticate(c echo.Context, next echo.HandlerFunc, authHeader string) error {
	tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
	if !found || tokenString == "" {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid token format, must be Bearer token")
	}

	claims, err := m.tokenSvc.ValidateToken(tokenString)
	if err != nil || claims == nil || claims.UserID == uuid.Nil {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
	}

	deliverycontext.SetActor(c, &entity.Actor{
		UserID: claims.UserID,
		Roles:  entity.RolesFromStrings(claims.Roles),
	})

	return next(c)
}

// RequireRole is a middleware factory that checks the caller holds one of roles.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(roles ...entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			actor := deliverycontext.GetActor(c)
			if actor == nil {
				return response.Unauthorized(c, "MISSING_TOKEN", "Authentication required")
			}

			for _, role := range roles {
				if actor.Roles.Contains(role) {
					return next(c)
				}
			}

			return response.Forbidden(c, "FORBIDDEN", "Permission denied")
		}
	}
}
