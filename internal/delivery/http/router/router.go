// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"inkwell/internal/delivery/http/middleware"
	"inkwell/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler      *handler.UserHandler
	EntryHandler     *handler.EntryHandler
	VoteHandler      *handler.VoteHandler
	TimelineHandler  *handler.TimelineHandler
	StatsHandler     *handler.StatsHandler
	AdminAuthHandler *handler.AdminAuthHandler
	AdminHandler     *handler.AdminHandler
	AuthMiddleware   *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler      *handler.UserHandler
	entryHandler     *handler.EntryHandler
	voteHandler      *handler.VoteHandler
	timelineHandler  *handler.TimelineHandler
	statsHandler     *handler.StatsHandler
	adminAuthHandler *handler.AdminAuthHandler
	adminHandler     *handler.AdminHandler
	authMiddleware   *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:      params.UserHandler,
		entryHandler:     params.EntryHandler,
		voteHandler:      params.VoteHandler,
		timelineHandler:  params.TimelineHandler,
		statsHandler:     params.StatsHandler,
		adminAuthHandler: params.AdminAuthHandler,
		adminHandler:     params.AdminHandler,
		authMiddleware:   params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Participant sign-in and lookup
	e.POST("/auth/google", r.userHandler.GoogleSignIn)
	e.GET("/user", r.userHandler.GetUser)

	// Entries and voting
	e.POST("/entries", r.entryHandler.SubmitEntry)
	e.GET("/entries", r.entryHandler.ListEntries)
	e.POST("/vote", r.voteHandler.Vote)
	e.POST("/vote/unlike", r.voteHandler.Unvote)

	// Timeline: reads are public, writes require an admin session
	e.GET("/timeline", r.timelineHandler.GetTimeline)
	e.POST("/timeline", r.timelineHandler.UpdateTimeline, r.authMiddleware.Authenticate)

	// Public statistics
	e.GET("/statistics", r.statsHandler.GetStatistics)

	// Admin authentication
	adminAuthGroup := e.Group("/auth/admin")
	{
		adminAuthGroup.POST("/register", r.adminAuthHandler.Register)
		adminAuthGroup.POST("/login", r.adminAuthHandler.Login)
		adminAuthGroup.POST("/logout", r.adminAuthHandler.Logout)
		adminAuthGroup.GET("/validate", r.adminAuthHandler.Validate)
	}

	// Admin dashboard, action-dispatched, session required
	adminGroup := e.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)
	{
		adminGroup.GET("", r.adminHandler.Dashboard)
		adminGroup.POST("", r.adminHandler.Mutate)
	}
}
