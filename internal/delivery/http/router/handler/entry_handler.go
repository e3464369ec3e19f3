package handler

import (
	"log/slog"
	"net/http"

	"inkwell/internal/delivery/http/response"
	"inkwell/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// EntryHandler holds dependencies for entry-related handlers.
type EntryHandler struct {
	uc     usecase.EntryUsecase
	logger *slog.Logger
}

// NewEntryHandler is the constructor for EntryHandler, injected by Fx.
func NewEntryHandler(uc usecase.EntryUsecase, logger *slog.Logger) *EntryHandler {
	return &EntryHandler{
		uc:     uc,
		logger: logger,
	}
}

// SubmitEntry handles the entry submission request.
func (h *EntryHandler) SubmitEntry(c echo.Context) error {
	var input *usecase.SubmitEntryInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid entry input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.SubmitEntry(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output, "Entry submitted successfully")
}

// ListEntries returns all entries sorted by votes. When the userId query
// parameter is present, that owner's entry is excluded so voters never see
// their own entry in the voting list.
func (h *EntryHandler) ListEntries(c echo.Context) error {
	excludeUserID := c.QueryParam("userId")

	entries, err := h.uc.ListEntries(c.Request().Context(), excludeUserID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, entries, "")
}
