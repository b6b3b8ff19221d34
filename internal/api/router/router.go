package router

import (
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Employeest/employeest-be/internal/adapter/chart"
	"github.com/Employeest/employeest-be/internal/api/handler"
	"github.com/Employeest/employeest-be/internal/api/middleware"
	"github.com/Employeest/employeest-be/internal/core/taskflow"
	"github.com/Employeest/employeest-be/internal/pkg/config"
	"github.com/Employeest/employeest-be/internal/repository"
	"github.com/Employeest/employeest-be/internal/service"
)

// Setup builds the gin engine and wires every route.
func Setup(cfg *config.Config, logger *zap.Logger) *gin.Engine {
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	r.Use(gin.Recovery())
	r.Use(middleware.LoggerMiddleware())
	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	db := cfg.DB.(*gorm.DB)

	// Repository layer
	userRepo := repository.NewUserRepository(db)
	tokenRepo := repository.NewAuthTokenRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	historyRepo := repository.NewTaskHistoryRepository(db)
	commentRepo := repository.NewTaskCommentRepository(db)
	teamRepo := repository.NewTeamRepository(db)
	teamMemberRepo := repository.NewTeamMemberRepository(db)
	workLogRepo := repository.NewWorkLogRepository(db)

	// Domain helpers
	flow := taskflow.NewStateMachine(db, logger)
	chartTimeout, _ := time.ParseDuration(cfg.Chart.Timeout)
	renderer := chart.NewQuickChartRenderer(cfg.Chart.BaseURL, chartTimeout, logger)

	// Service layer
	authService := service.NewAuthService(userRepo, tokenRepo, logger)
	userService := service.NewUserService(userRepo)
	projectService := service.NewProjectService(projectRepo, userRepo, teamRepo, logger)
	taskService := service.NewTaskService(taskRepo, projectRepo, userRepo, historyRepo, flow, logger)
	commentService := service.NewTaskCommentService(commentRepo, taskRepo, logger)
	teamService := service.NewTeamService(teamRepo, logger)
	teamMemberService := service.NewTeamMemberService(teamMemberRepo, teamRepo, userRepo, logger)
	workLogService := service.NewWorkLogService(workLogRepo, taskRepo, projectRepo, logger)
	statisticsService := service.NewStatisticsService(taskRepo, projectRepo, renderer, logger)
	dashboardService := service.NewDashboardService(projectRepo, taskRepo, teamRepo, logger)

	// Handler layer
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	projectHandler := handler.NewProjectHandler(projectService, statisticsService)
	taskHandler := handler.NewTaskHandler(taskService)
	commentHandler := handler.NewTaskCommentHandler(commentService)
	teamHandler := handler.NewTeamHandler(teamService)
	teamMemberHandler := handler.NewTeamMemberHandler(teamMemberService)
	workLogHandler := handler.NewWorkLogHandler(workLogService)
	statisticsHandler := handler.NewStatisticsHandler(statisticsService)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)

	v1 := r.Group("/api/v1")
	{
		// No token required
		authGroup := v1.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
		}

		authed := v1.Group("")
		authed.Use(middleware.AuthMiddleware(tokenRepo))
		{
			authed.POST("/auth/logout", authHandler.Logout)
			authed.GET("/profile", authHandler.Profile)
			authed.PUT("/profile", authHandler.UpdateProfile)

			usersGroup := authed.Group("/users")
			{
				usersGroup.GET("", userHandler.Search)
				usersGroup.GET("/:id", userHandler.GetByID)
			}

			projectsGroup := authed.Group("/projects")
			{
				projectsGroup.POST("", projectHandler.Create)
				projectsGroup.GET("", projectHandler.List)
				projectsGroup.GET("/:id", projectHandler.GetByID)
				projectsGroup.PATCH("/:id", projectHandler.Update)
				projectsGroup.DELETE("/:id", projectHandler.Delete)
				projectsGroup.GET("/:id/velocity-chart", projectHandler.VelocityChart)
				projectsGroup.GET("/:id/task-status-chart", projectHandler.TaskStatusChart)
			}

			tasksGroup := authed.Group("/tasks")
			{
				tasksGroup.POST("", taskHandler.Create)
				tasksGroup.GET("", taskHandler.List)
				tasksGroup.GET("/:id", taskHandler.GetByID)
				tasksGroup.PATCH("/:id", taskHandler.Update)
				tasksGroup.DELETE("/:id", taskHandler.Delete)
				tasksGroup.POST("/:id/start-progress", taskHandler.StartProgress)
				tasksGroup.POST("/:id/mark-as-done", taskHandler.MarkAsDone)
				tasksGroup.GET("/:id/history", taskHandler.History)

				tasksGroup.POST("/:id/comments", commentHandler.Create)
				tasksGroup.GET("/:id/comments", commentHandler.ListByTask)
				tasksGroup.PATCH("/:id/comments/:comment_id", commentHandler.Update)
				tasksGroup.DELETE("/:id/comments/:comment_id", commentHandler.Delete)
			}

			teamsGroup := authed.Group("/teams")
			{
				teamsGroup.POST("", teamHandler.Create)
				teamsGroup.GET("", teamHandler.List)
				teamsGroup.GET("/:id", teamHandler.GetByID)
				teamsGroup.PATCH("/:id", teamHandler.Update)
				teamsGroup.DELETE("/:id", teamHandler.Delete)

				teamsGroup.POST("/:id/members", teamMemberHandler.Add)
				teamsGroup.GET("/:id/members", teamMemberHandler.ListByTeam)
				teamsGroup.PATCH("/:id/members/:member_id", teamMemberHandler.Update)
				teamsGroup.DELETE("/:id/members/:member_id", teamMemberHandler.Remove)
			}

			workLogsGroup := authed.Group("/worklogs")
			{
				workLogsGroup.POST("", workLogHandler.Create)
				workLogsGroup.GET("", workLogHandler.List)
				workLogsGroup.GET("/:id", workLogHandler.GetByID)
				workLogsGroup.PATCH("/:id", workLogHandler.Update)
				workLogsGroup.DELETE("/:id", workLogHandler.Delete)
			}

			authed.GET("/statistics/business/story-points-monthly", statisticsHandler.BusinessStoryPoints)
			authed.GET("/me/statistics/task-completion-chart", statisticsHandler.PersonalCompletions)

			dashboardsGroup := authed.Group("/dashboards")
			{
				dashboardsGroup.GET("/owner", dashboardHandler.Owner)
				dashboardsGroup.GET("/employee", dashboardHandler.Employee)
			}
		}
	}

	return r
}
