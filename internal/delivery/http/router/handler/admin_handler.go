package handler

import (
	"log/slog"
	"net/http"

	"inkwell/internal/delivery/http/middleware"
	"inkwell/internal/delivery/http/response"
	"inkwell/internal/domain/entity"
	"inkwell/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// AdminHandlerParams holds dependencies for AdminHandler, injected by Fx.
type AdminHandlerParams struct {
	fx.In

	AdminUC    usecase.AdminUsecase
	EntryUC    usecase.EntryUsecase
	TimelineUC usecase.TimelineUsecase
	StatsUC    usecase.StatsUsecase
	Logger     *slog.Logger
}

// AdminHandler serves the action-dispatched admin dashboard endpoint.
// Both verbs take an `action` selector; GET reads dashboard views and POST
// applies administrative mutations. Every route through here sits behind the
// session middleware.
type AdminHandler struct {
	adminUC    usecase.AdminUsecase
	entryUC    usecase.EntryUsecase
	timelineUC usecase.TimelineUsecase
	statsUC    usecase.StatsUsecase
	logger     *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler.
func NewAdminHandler(params AdminHandlerParams) *AdminHandler {
	return &AdminHandler{
		adminUC:    params.AdminUC,
		entryUC:    params.EntryUC,
		timelineUC: params.TimelineUC,
		statsUC:    params.StatsUC,
		logger:     params.Logger,
	}
}

// adminActionRequest is the mutation envelope for POST /admin.
type adminActionRequest struct {
	Action   string                       `json:"action" validate:"required"`
	Settings *usecase.UpdateTimelineInput `json:"settings"`
	EntryID  string                       `json:"entryId"`
	Status   entity.EntryStatus           `json:"status"`
}

// Dashboard dispatches GET /admin?action=... to the requested view.
func (h *AdminHandler) Dashboard(c echo.Context) error {
	ctx := c.Request().Context()

	switch action := c.QueryParam("action"); action {
	case "stats":
		output, err := h.statsUC.GetStatistics(ctx)
		if err != nil {
			return errors.WithStack(err)
		}

		return response.Success(c, http.StatusOK, output, "")
	case "entries":
		entries, err := h.entryUC.ListEntries(ctx, "")
		if err != nil {
			return errors.WithStack(err)
		}

		return response.Success(c, http.StatusOK, entries, "")
	case "users":
		users, err := h.statsUC.ListUsers(ctx)
		if err != nil {
			return errors.WithStack(err)
		}

		return response.Success(c, http.StatusOK, users, "")
	case "settings":
		output, err := h.timelineUC.GetTimeline(ctx)
		if err != nil {
			return errors.WithStack(err)
		}

		return response.Success(c, http.StatusOK, output, "")
	case "entry":
		id := c.QueryParam("id")
		if id == "" {
			return response.BadRequest(c, "INVALID_INPUT", "id is required for action=entry")
		}
		entry, err := h.entryUC.GetEntry(ctx, id)
		if err != nil {
			return errors.WithStack(err)
		}

		return response.Success(c, http.StatusOK, entry, "")
	default:
		return response.BadRequest(c, "INVALID_ACTION", "Unknown admin action: "+action)
	}
}

// Mutate dispatches POST /admin to the requested administrative mutation.
func (h *AdminHandler) Mutate(c echo.Context) error {
	var req *adminActionRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid admin action input")
	}
	if err := c.Validate(req); err != nil {
		return errors.WithStack(err)
	}

	ctx := c.Request().Context()

	switch req.Action {
	case "initialize":
		if err := h.timelineUC.Initialize(ctx); err != nil {
			return errors.WithStack(err)
		}

		return response.Success(c, http.StatusOK, nil, "Competition initialized")
	case "reset":
		if err := h.adminUC.ResetCompetition(ctx); err != nil {
			return errors.WithStack(err)
		}

		return response.Success(c, http.StatusOK, nil, "Competition votes reset")
	case "updateSettings":
		if req.Settings == nil {
			return response.BadRequest(c, "INVALID_INPUT", "settings payload is required")
		}
		if err := c.Validate(req.Settings); err != nil {
			return errors.WithStack(err)
		}
		output, err := h.timelineUC.UpdateTimeline(ctx, req.Settings)
		if err != nil {
			return errors.WithStack(err)
		}

		return response.Success(c, http.StatusOK, output, "Settings updated")
	case "updateEntryStatus":
		if req.EntryID == "" {
			return response.BadRequest(c, "INVALID_INPUT", "entryId is required")
		}
		entry, err := h.entryUC.UpdateEntryStatus(ctx, &usecase.UpdateEntryStatusInput{
			EntryID:   req.EntryID,
			Status:    req.Status,
			UpdatedBy: adminName(c),
		})
		if err != nil {
			return errors.WithStack(err)
		}

		return response.Success(c, http.StatusOK, entry, "Entry status updated")
	default:
		return response.BadRequest(c, "INVALID_ACTION", "Unknown admin action: "+req.Action)
	}
}

// adminName resolves the acting admin's name from the session middleware.
func adminName(c echo.Context) string {
	if profile, ok := c.Get(middleware.ContextKeyAdmin).(*entity.AdminProfile); ok {
		return profile.Name
	}

	return ""
}
