// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"gravity/internal/delivery/http/middleware"
	"gravity/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	WebhookHandler     *handler.WebhookHandler
	IntegrationHandler *handler.IntegrationHandler
	EvidenceHandler    *handler.EvidenceHandler
	ChallengeHandler   *handler.ChallengeHandler
	LogHandler         *handler.LogHandler
	AdminHandler       *handler.AdminHandler
	AuthMiddleware     *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	webhookHandler     *handler.WebhookHandler
	integrationHandler *handler.IntegrationHandler
	evidenceHandler    *handler.EvidenceHandler
	challengeHandler   *handler.ChallengeHandler
	logHandler         *handler.LogHandler
	adminHandler       *handler.AdminHandler
	authMiddleware     *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		webhookHandler:     params.WebhookHandler,
		integrationHandler: params.IntegrationHandler,
		evidenceHandler:    params.EvidenceHandler,
		challengeHandler:   params.ChallengeHandler,
		logHandler:         params.LogHandler,
		adminHandler:       params.AdminHandler,
		authMiddleware:     params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Provider webhook surface. Unauthenticated: the provider signs
	// nothing beyond the handshake token.
	e.GET("/webhooks/strava", r.webhookHandler.VerifySubscription)
	e.POST("/webhooks/strava", r.webhookHandler.ReceiveEvent)

	// Everything below requires a session token.
	api := e.Group("", r.authMiddleware.Authenticate)

	integrationGroup := api.Group("/integrations/strava")
	{
		integrationGroup.POST("/link", r.integrationHandler.Link)
		integrationGroup.DELETE("", r.integrationHandler.Unlink)
		integrationGroup.GET("/status", r.integrationHandler.Status)
		integrationGroup.POST("/sync", r.integrationHandler.Sync)
	}

	evidenceGroup := api.Group("/evidence")
	{
		evidenceGroup.POST("", r.evidenceHandler.Submit)
		evidenceGroup.POST("/autofill", r.evidenceHandler.Autofill)
	}
	api.POST("/profile/reference-photo", r.evidenceHandler.SetReferencePhoto)

	challengeGroup := api.Group("/challenges")
	{
		challengeGroup.POST("", r.challengeHandler.Create)
		challengeGroup.POST("/join", r.challengeHandler.Join)
		challengeGroup.GET("/:id", r.challengeHandler.Get)
		challengeGroup.GET("/:id/qr", r.challengeHandler.JoinQR)
		challengeGroup.GET("/:id/leaderboard", r.challengeHandler.Leaderboard)
	}

	api.GET("/feed", r.logHandler.Feed)
	logGroup := api.Group("/logs")
	{
		logGroup.POST("/:id/comments", r.logHandler.AddComment)
		logGroup.POST("/:id/reports", r.logHandler.ReportLog)
	}
	api.POST("/devices", r.logHandler.RegisterDevice)
	api.GET("/stats", r.logHandler.Stats)

	// Moderation. The usecases verify the caller's admin flag.
	adminGroup := api.Group("/admin")
	{
		adminGroup.GET("/reports", r.adminHandler.ListPendingReports)
		adminGroup.DELETE("/logs/:id", r.adminHandler.DeleteLog)
		adminGroup.PUT("/logs/:id/verification", r.adminHandler.OverrideVerification)
		adminGroup.DELETE("/users/:id/reference-lock", r.evidenceHandler.UnlockReferencePhoto)
	}
}
