package router

import (
	"github.com/fasthttp/router"
	"github.com/valyala/fasthttp"

	apiHandler "github.com/taskdeck/backend/api/handler"
)

type Handlers struct {
	Auth        *apiHandler.AuthHandler
	Profile     *apiHandler.ProfileHandler
	Task        *apiHandler.TaskHandler
	QuickAction *apiHandler.QuickActionHandler
	Health      *apiHandler.HealthHandler
}

func New(handlers Handlers, authMiddleware func(fasthttp.RequestHandler) fasthttp.RequestHandler) *router.Router {
	r := router.New()

	r.GET("/health", handlers.Health.Check)

	// Auth routes
	r.POST("/api/auth/signup/", handlers.Auth.Signup)
	r.POST("/api/auth/login/", handlers.Auth.Login)
	r.POST("/api/auth/logout/", authMiddleware(handlers.Auth.Logout))
	r.PATCH("/api/auth/update_user/", authMiddleware(handlers.Auth.UpdateUser))

	// Tasks
	r.GET("/api/tasks/", authMiddleware(handlers.Task.List))
	r.POST("/api/tasks/", authMiddleware(handlers.Task.Create))
	r.GET("/api/tasks/dashboard_stats/", authMiddleware(handlers.Task.DashboardStats))
	r.GET("/api/tasks/filter_tasks/", authMiddleware(handlers.Task.FilterTasks))
	r.GET("/api/tasks/{id}/", authMiddleware(handlers.Task.Get))
	r.PUT("/api/tasks/{id}/", authMiddleware(handlers.Task.Update))
	r.PATCH("/api/tasks/{id}/", authMiddleware(handlers.Task.Patch))
	r.DELETE("/api/tasks/{id}/", authMiddleware(handlers.Task.Delete))

	// Profile
	r.GET("/api/profile/me/", authMiddleware(handlers.Profile.Me))
	r.PATCH("/api/profile/update_profile/", authMiddleware(handlers.Profile.UpdateProfile))
	r.POST("/api/profile/change_password/", authMiddleware(handlers.Profile.ChangePassword))
	r.GET("/api/profile/photo/", authMiddleware(handlers.Profile.Photo))

	// Quick actions
	r.GET("/api/quick-actions/", authMiddleware(handlers.QuickAction.List))
	r.POST("/api/quick-actions/", authMiddleware(handlers.QuickAction.Create))
	r.POST("/api/quick-actions/reorder/", authMiddleware(handlers.QuickAction.Reorder))
	r.POST("/api/quick-actions/bulk_create/", authMiddleware(handlers.QuickAction.BulkCreate))
	r.GET("/api/quick-actions/{id}/", authMiddleware(handlers.QuickAction.Get))
	r.PUT("/api/quick-actions/{id}/", authMiddleware(handlers.QuickAction.Update))
	r.PATCH("/api/quick-actions/{id}/", authMiddleware(handlers.QuickAction.Patch))
	r.DELETE("/api/quick-actions/{id}/", authMiddleware(handlers.QuickAction.Delete))

	return r
}
