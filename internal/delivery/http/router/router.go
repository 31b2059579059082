// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"huddle/config"
	"huddle/internal/delivery/http/middleware"
	"huddle/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	Config         *config.Config
	UserHandler    *handler.UserHandler
	FriendHandler  *handler.FriendHandler
	SessionHandler *handler.SessionHandler
	DeviceHandler  *handler.DeviceHandler
	TestHandler    *handler.TestHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	cfg            *config.Config
	userHandler    *handler.UserHandler
	friendHandler  *handler.FriendHandler
	sessionHandler *handler.SessionHandler
	deviceHandler  *handler.DeviceHandler
	testHandler    *handler.TestHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		cfg:            params.Config,
		userHandler:    params.UserHandler,
		friendHandler:  params.FriendHandler,
		sessionHandler: params.SessionHandler,
		deviceHandler:  params.DeviceHandler,
		testHandler:    params.TestHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.userHandler.RegisterUser)
		authGroup.POST("/login", r.userHandler.Login)
		authGroup.POST("/refresh", r.userHandler.RefreshToken)
		authGroup.POST("/logout", r.userHandler.Logout)
		authGroup.POST("/google/callback", r.userHandler.GoogleCallback)
	}

	// User routes that require authentication
	userGroup := e.Group("/user")
	userGroup.Use(r.authMiddleware.Authenticate)
	{
		userGroup.GET("/profile", r.userHandler.GetProfile)
		userGroup.PATCH("/profile", r.userHandler.UpdateProfile)
		userGroup.GET("/sessions", r.userHandler.GetActiveSessions)
		userGroup.DELETE("/sessions/:id", r.userHandler.RevokeSession)
		userGroup.POST("/logout-all", r.userHandler.LogoutAllDevices)
	}

	// Friend graph routes
	friendGroup := e.Group("/friends")
	friendGroup.Use(r.authMiddleware.Authenticate)
	{
		friendGroup.GET("", r.friendHandler.ListFriends)
		friendGroup.DELETE("/:id", r.friendHandler.Unfriend)
		friendGroup.GET("/requests", r.friendHandler.ListPendingRequests)
		friendGroup.POST("/requests", r.friendHandler.SendFriendRequest)
		friendGroup.POST("/requests/:id/accept", r.friendHandler.AcceptFriendRequest)
		friendGroup.POST("/requests/:id/decline", r.friendHandler.DeclineFriendRequest)
		friendGroup.GET("/invite/qr", r.friendHandler.GenerateInviteQR)
		friendGroup.POST("/invite", r.friendHandler.AddFriendByInvite)
	}

	// Hangout session routes
	sessionGroup := e.Group("/sessions")
	sessionGroup.Use(r.authMiddleware.Authenticate)
	{
		sessionGroup.POST("", r.sessionHandler.StartSession)
		sessionGroup.POST("/:id/end", r.sessionHandler.EndSession)
		sessionGroup.POST("/:id/responses", r.sessionHandler.RespondToSession)
		sessionGroup.GET("/:id/responses", r.sessionHandler.GetSessionResponses)
		sessionGroup.GET("/feed", r.sessionHandler.GetFriendFeed)
	}

	// Device routes
	deviceGroup := e.Group("/devices")
	deviceGroup.Use(r.authMiddleware.Authenticate)
	{
		deviceGroup.POST("", r.deviceHandler.RegisterDevice)
		deviceGroup.GET("", r.deviceHandler.GetUserDevices)
		deviceGroup.DELETE("/:id", r.deviceHandler.RemoveDevice)
	}

	// Test routes, only in environments that enable them
	if r.cfg.TestRoutes != nil && r.cfg.TestRoutes.Enabled {
		testGroup := e.Group("/test")
		testGroup.Use(r.authMiddleware.Authenticate)
		{
			testGroup.GET("/auth", r.testHandler.TestAuthMiddleware)
			testGroup.POST("/push", r.testHandler.TestPush)
		}
	}
}
