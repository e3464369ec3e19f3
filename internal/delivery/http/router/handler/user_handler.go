package handler

import (
	"log/slog"
	"net/http"

	"inkwell/internal/delivery/http/response"
	"inkwell/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UserHandler holds dependencies for user-related handlers.
type UserHandler struct {
	uc     usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		uc:     uc,
		logger: logger,
	}
}

// GoogleSignIn handles the Google sign-in request. First sight provisions
// the user; later sign-ins refresh the stored profile.
func (h *UserHandler) GoogleSignIn(c echo.Context) error {
	var input *usecase.SignInInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid sign-in input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.SignIn(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output.User, "Signed in successfully")
}

// GetUser returns the user record for the given userId query parameter.
func (h *UserHandler) GetUser(c echo.Context) error {
	userID := c.QueryParam("userId")
	if userID == "" {
		return response.BadRequest(c, "INVALID_INPUT", "userId is required")
	}

	user, err := h.uc.GetUser(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, "")
}
