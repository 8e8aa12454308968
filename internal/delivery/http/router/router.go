// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"clinic/internal/delivery/http/middleware"
	"clinic/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	DoctorHandler  *handler.DoctorHandler
	PatientHandler *handler.PatientHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	doctorHandler  *handler.DoctorHandler
	patientHandler *handler.PatientHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		doctorHandler:  params.DoctorHandler,
		patientHandler: params.PatientHandler,
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
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.GET("/me", r.authHandler.Me, r.authMiddleware.Authenticate)
	}

	// Doctor routes that require authentication
	doctorGroup := e.Group("/doctors")
	doctorGroup.Use(r.authMiddleware.Authenticate)
	{
		doctorGroup.GET("", r.doctorHandler.List)
		doctorGroup.GET("/:id", r.doctorHandler.Get)
		doctorGroup.PUT("/:id", r.doctorHandler.Update)
		// Deactivation is a soft delete reserved for admins.
		doctorGroup.DELETE("/:id", r.doctorHandler.Deactivate, r.authMiddleware.RequireAdmin)
	}

	// Patient routes that require authentication; ownership scoping happens
	// in the usecase layer.
	patientGroup := e.Group("/patients")
	patientGroup.Use(r.authMiddleware.Authenticate)
	{
		patientGroup.GET("", r.patientHandler.List)
		patientGroup.POST("", r.patientHandler.Create)
		patientGroup.GET("/:id", r.patientHandler.Get)
		patientGroup.PUT("/:id", r.patientHandler.Update)
		patientGroup.DELETE("/:id", r.patientHandler.Delete)
	}
}
