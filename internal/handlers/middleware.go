package handlers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/vishal1412/PropScan-sub000/internal/services"
)

// AdminAuth returns middleware that guards admin endpoints with a Bearer JWT.
func AdminAuth(authSvc *services.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Authorization header required"})
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid authorization header format"})
			}

			claims, err := authSvc.Validate(parts[1])
			if err != nil {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid or expired token"})
			}
			if !claims.IsAdmin {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "Insufficient permissions"})
			}

			c.Set("claims", claims)
			return next(c)
		}
	}
}
