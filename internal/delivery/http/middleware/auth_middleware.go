package middleware

import (
	domainerrors "inkwell/internal/domain/errors"
	"inkwell/internal/usecase"

	"github.com/labstack/echo/v4"
)

// SessionCookieName is the cookie carrying the raw admin session token.
const SessionCookieName = "admin_token"

// ContextKeyAdmin is the echo.Context key the authenticated admin profile is
// stored under.
const ContextKeyAdmin = "admin"

// AuthMiddleware authenticates admin requests from the session cookie.
type AuthMiddleware struct {
	adminUC usecase.AdminUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(adminUC usecase.AdminUsecase) *AuthMiddleware {
	return &AuthMiddleware{adminUC: adminUC}
}

// Authenticate validates the session cookie and stores the admin profile on
// the context. Requests without a valid live session get 401 before any
// handler side effect.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		cookie, err := c.Cookie(SessionCookieName)
		if err != nil || cookie.Value == "" {
			return domainerrors.ErrSessionInvalid.WrapMessage("missing session cookie")
		}

		admin, err := m.adminUC.ValidateSession(c.Request().Context(), cookie.Value)
		if err != nil {
			return err
		}

		c.Set(ContextKeyAdmin, admin)

		return next(c)
	}
}
