package middleware

import (
	"strings"

	"inkwell/config"
	domainerrors "inkwell/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// MaintenanceMiddleware gates all non-allowlisted routes with 503 while
// maintenance mode is enabled. Health checks and auth endpoints stay
// reachable so operators can still probe and sign in.
type MaintenanceMiddleware struct {
	enabled bool
}

// NewMaintenanceMiddleware creates a new maintenance gate from config.
func NewMaintenanceMiddleware(cfg *config.Config) *MaintenanceMiddleware {
	enabled := cfg.Maintenance != nil && cfg.Maintenance.Enabled

	return &MaintenanceMiddleware{enabled: enabled}
}

// Handle rejects requests outside the allowlist while maintenance is on.
func (m *MaintenanceMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !m.enabled || isAllowlisted(c.Request().URL.Path) {
			return next(c)
		}

		return domainerrors.ErrMaintenanceMode
	}
}

func isAllowlisted(path string) bool {
	return path == "/health" || strings.HasPrefix(path, "/auth/")
}
