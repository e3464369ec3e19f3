package handler

import (
	"log/slog"
	"net/http"

	"inkwell/internal/delivery/http/response"
	"inkwell/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// VoteHandler holds dependencies for voting handlers.
type VoteHandler struct {
	uc     usecase.VoteUsecase
	logger *slog.Logger
}

// NewVoteHandler is the constructor for VoteHandler, injected by Fx.
func NewVoteHandler(uc usecase.VoteUsecase, logger *slog.Logger) *VoteHandler {
	return &VoteHandler{
		uc:     uc,
		logger: logger,
	}
}

// Vote casts the user's single vote for an entry.
func (h *VoteHandler) Vote(c echo.Context) error {
	var input *usecase.VoteInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid vote input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.Vote(c.Request().Context(), input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Vote recorded successfully")
}

// Unvote withdraws the user's vote from an entry.
func (h *VoteHandler) Unvote(c echo.Context) error {
	var input *usecase.VoteInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid vote input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.Unvote(c.Request().Context(), input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Vote withdrawn successfully")
}
