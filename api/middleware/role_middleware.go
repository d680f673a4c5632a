package middleware

import (
	"net/http"

	"gromeuse/internal/entity"

	"github.com/labstack/echo/v4"
)

// RequireRole admits requests whose session claims carry any of the given
// roles.
func RequireRole(roles ...entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			currentRoles, ok := RolesFromContext(c)
			if !ok {
				return echo.NewHTTPError(http.StatusForbidden, "forbidden")
			}
			for _, have := range currentRoles {
				for _, want := range roles {
					if entity.Role(have) == want {
						return next(c)
					}
				}
			}
			return echo.NewHTTPError(http.StatusForbidden, "forbidden")
		}
	}
}
