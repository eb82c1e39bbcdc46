package app

import (
	"placement_prep_backend/docs"
	"placement_prep_backend/internal/config"
	"placement_prep_backend/internal/middleware"
	"placement_prep_backend/internal/model"
	"placement_prep_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	a.registerPublicRoutes(router, c)

	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg), middleware.ActivityMiddleware(repos.user))
	{
		a.registerStudentRoutes(authGroup, c)
	}
}

func (a *App) registerPublicRoutes(router *gin.Engine, c *controllers) {
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/auth/register", c.auth.Register)
		public.POST("/auth/login", c.auth.Login)
		public.GET("/roadmap/branches", c.roadmap.Branches)
	}
}

func (a *App) registerStudentRoutes(rg *gin.RouterGroup, c *controllers) {
	rg.GET("/me", c.auth.Me)
	rg.PUT("/users/profile", c.user.UpdateProfile)
	rg.PUT("/users/password", c.user.ChangePassword)

	rg.GET("/dashboard", c.dashboard.GetDashboard)
	rg.GET("/streak", c.dashboard.GetStreak)

	subjects := rg.Group("/subjects")
	{
		subjects.GET("", c.subject.List)
		subjects.POST("", c.subject.Create)
		subjects.PUT("/:id", c.subject.UpdatePriority)
		subjects.DELETE("/:id", c.subject.Delete)
	}

	roadmap := rg.Group("/roadmap")
	{
		roadmap.GET("", c.roadmap.Get)
		roadmap.POST("/generate", c.roadmap.Generate)
		roadmap.GET("/progress", c.roadmap.Progress)
		roadmap.PUT("/topics/:id", c.roadmap.UpdateTopicStatus)
	}

	schedule := rg.Group("/schedule")
	{
		schedule.GET("", c.schedule.Get)
		schedule.POST("/generate", c.schedule.Generate)
		schedule.GET("/calendar", c.schedule.Calendar)
		schedule.GET("/today", c.schedule.Today)
		schedule.GET("/progress", c.schedule.Progress)
		schedule.PUT("/tasks/:id", c.schedule.CompleteTask)
	}

	performance := rg.Group("/performance")
	{
		performance.POST("", c.performance.Log)
		performance.GET("", c.performance.History)
		performance.GET("/subjects", c.performance.Aggregates)
		performance.GET("/focus", c.performance.FocusSuggestions)
		performance.GET("/readiness", c.performance.Readiness)
		performance.GET("/weights/propose", c.performance.ProposeWeights)
		performance.POST("/weights/apply", c.performance.ApplyWeights)
	}

	settings := rg.Group("/settings")
	{
		settings.GET("/planner", c.settings.GetPlanner)
		settings.PUT("/planner", c.settings.SavePlanner)
		settings.GET("/reminder", c.settings.GetReminder)
		settings.PUT("/reminder", c.settings.SaveReminder)
	}

	resume := rg.Group("/resume")
	{
		resume.GET("", c.resume.Get)
		resume.POST("", c.resume.Upload)
	}

	admin := rg.Group("/admin")
	admin.Use(middleware.RoleMiddleware(model.Admin))
	{
		admin.GET("/users", c.user.ListUsers)
		admin.PUT("/users/:id/disabled", c.user.SetDisabled)
	}
}
