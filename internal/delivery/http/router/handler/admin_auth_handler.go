package handler

import (
	"log/slog"
	"net/http"
	"time"

	"inkwell/internal/delivery/http/middleware"
	"inkwell/internal/delivery/http/response"
	"inkwell/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AdminAuthHandler holds dependencies for admin authentication handlers.
type AdminAuthHandler struct {
	uc     usecase.AdminUsecase
	logger *slog.Logger
}

// NewAdminAuthHandler is the constructor for AdminAuthHandler, injected by Fx.
func NewAdminAuthHandler(uc usecase.AdminUsecase, logger *slog.Logger) *AdminAuthHandler {
	return &AdminAuthHandler{
		uc:     uc,
		logger: logger,
	}
}

// Register creates an admin account gated by the bootstrap secret and logs
// the new admin in immediately.
func (h *AdminAuthHandler) Register(c echo.Context) error {
	var input *usecase.RegisterAdminInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Register(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	setSessionCookie(c, output.Token, output.ExpiresAt)

	return response.Success(c, http.StatusCreated, output.Admin, "Admin registered successfully")
}

// Login validates credentials and issues a session cookie.
func (h *AdminAuthHandler) Login(c echo.Context) error {
	var input *usecase.AdminLoginInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Login(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	setSessionCookie(c, output.Token, output.ExpiresAt)

	return response.Success(c, http.StatusOK, output.Admin, "Login successful")
}

// Logout revokes the session server-side and clears the cookie. It succeeds
// even when no session cookie is present.
func (h *AdminAuthHandler) Logout(c echo.Context) error {
	if cookie, err := c.Cookie(middleware.SessionCookieName); err == nil && cookie.Value != "" {
		if err := h.uc.Logout(c.Request().Context(), cookie.Value); err != nil {
			return errors.WithStack(err)
		}
	}

	clearSessionCookie(c)

	return response.Success(c, http.StatusOK, nil, "Logout successful")
}

// Validate resolves the session cookie to the admin's public profile.
func (h *AdminAuthHandler) Validate(c echo.Context) error {
	cookie, err := c.Cookie(middleware.SessionCookieName)
	if err != nil || cookie.Value == "" {
		return response.Unauthorized(c, "SESSION_INVALID", "No session cookie")
	}

	admin, err := h.uc.ValidateSession(c.Request().Context(), cookie.Value)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, admin, "")
}

func setSessionCookie(c echo.Context, token string, expiresAt time.Time) {
	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    token,
		Path:     "/",
		Expires:  expiresAt,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteStrictMode,
	})
}

func clearSessionCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteStrictMode,
	})
}
