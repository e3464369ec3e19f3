package handler

import (
	"log/slog"
	"net/http"

	"inkwell/internal/delivery/http/response"
	"inkwell/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// StatsHandler holds dependencies for the statistics handler.
type StatsHandler struct {
	uc     usecase.StatsUsecase
	logger *slog.Logger
}

// NewStatsHandler is the constructor for StatsHandler, injected by Fx.
func NewStatsHandler(uc usecase.StatsUsecase, logger *slog.Logger) *StatsHandler {
	return &StatsHandler{
		uc:     uc,
		logger: logger,
	}
}

// GetStatistics returns competition-wide totals, the leaderboard and the
// full sorted entry list.
func (h *StatsHandler) GetStatistics(c echo.Context) error {
	output, err := h.uc.GetStatistics(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "")
}
