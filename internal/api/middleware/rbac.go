package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/webportal/portal-client/internal/core/domain"
)

// RBAC enforces role-based access. Admin passes every check, mirroring the
// client-side role semantics.
func RBAC(allowedRoles ...domain.Role) echo.MiddlewareFunc {
	allowed := make(map[domain.Role]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw, _ := c.Get("role").(string)
			role := domain.Role(raw)
			if role == domain.RoleAdmin {
				return next(c)
			}
			if _, ok := allowed[role]; !ok {
				return echo.NewHTTPError(http.StatusForbidden, "forbidden")
			}
			return next(c)
		}
	}
}
