package handler

import (
	"log/slog"
	"net/http"

	"inkwell/internal/delivery/http/response"
	"inkwell/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// TimelineHandler holds dependencies for timeline handlers.
type TimelineHandler struct {
	uc     usecase.TimelineUsecase
	logger *slog.Logger
}

// NewTimelineHandler is the constructor for TimelineHandler, injected by Fx.
func NewTimelineHandler(uc usecase.TimelineUsecase, logger *slog.Logger) *TimelineHandler {
	return &TimelineHandler{
		uc:     uc,
		logger: logger,
	}
}

// GetTimeline returns the schedule together with the current phase and the
// countdown to the phase boundary.
func (h *TimelineHandler) GetTimeline(c echo.Context) error {
	output, err := h.uc.GetTimeline(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "")
}

// UpdateTimeline replaces the schedule. Admin-only; the router guards this
// route with the session middleware.
func (h *TimelineHandler) UpdateTimeline(c echo.Context) error {
	var input *usecase.UpdateTimelineInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid timeline input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.UpdateTimeline(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Timeline updated successfully")
}
