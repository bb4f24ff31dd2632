package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"agencyflow/internal/adapter/email"
	"agencyflow/internal/api/handler"
	"agencyflow/internal/api/middleware"
	"agencyflow/internal/outbox"
	"agencyflow/internal/pkg/auth"
	"agencyflow/internal/pkg/config"
	"agencyflow/internal/repository"
	"agencyflow/internal/service"
)

// Setup 设置路由
func Setup(cfg *config.Config, db *gorm.DB, queue outbox.Queue, mailer email.Mailer, logger *zap.Logger) *gin.Engine {
	// 设置Gin模式
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// 全局中间件
	r.Use(gin.Recovery())
	r.Use(middleware.LoggerMiddleware())
	r.Use(middleware.CORSMiddleware())

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Swagger API 文档
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// 初始化Repository
	userRepo := repository.NewUserRepository(db)
	sessionRepo := repository.NewSessionRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	userRoleRepo := repository.NewUserRoleRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	projectMemberRepo := repository.NewProjectMemberRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	taskAssigneeRepo := repository.NewTaskAssigneeRepository(db)
	taskCommentRepo := repository.NewTaskCommentRepository(db)
	taskLogRepo := repository.NewTaskLogRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)

	// 初始化Service
	authz := service.NewAuthorizationService()
	authService := service.NewAuthService(userRepo, sessionRepo, profileRepo, userRoleRepo)
	userService := service.NewUserService(userRepo, profileRepo, userRoleRepo, sessionRepo, logger)
	projectService := service.NewProjectService(projectRepo, authz)
	memberService := service.NewProjectMemberService(projectMemberRepo, projectRepo, profileRepo, notificationRepo, queue, mailer)
	taskService := service.NewTaskService(taskRepo, taskAssigneeRepo, taskCommentRepo, taskLogRepo, projectRepo, profileRepo, notificationRepo, queue, mailer)
	notificationService := service.NewNotificationService(notificationRepo, profileRepo, queue, mailer)

	// 初始化Handler
	authHandler := handler.NewAuthHandler(authService)
	adminHandler := handler.NewAdminHandler(userService)
	profileHandler := handler.NewProfileHandler(userService, authz)
	projectHandler := handler.NewProjectHandler(projectService, taskService)
	memberHandler := handler.NewProjectMemberHandler(memberService)
	taskHandler := handler.NewTaskHandler(taskService)
	notificationHandler := handler.NewNotificationHandler(notificationService)

	// API
	api := r.Group("/api")
	// 身份解析对全部 /api 路由生效, 未认证请求以匿名身份继续
	api.Use(middleware.IdentityMiddleware(authService))
	{
		// 认证相关(注册/登录无需token)
		authGroup := api.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
			authGroup.POST("/logout", middleware.RequireAuth(), authHandler.Logout)
			authGroup.GET("/me", middleware.RequireAuth(), authHandler.GetMe)
			authGroup.POST("/change-password", middleware.RequireAuth(), authHandler.ChangePassword)
		}

		// 管理员用户管理
		adminGroup := api.Group("/admin")
		adminGroup.Use(middleware.RequirePermission(authz, auth.PermUserManage))
		{
			adminGroup.POST("/users", adminHandler.CreateUser)
			adminGroup.POST("/reset-password", adminHandler.ResetPassword)
			adminGroup.PATCH("/users/:id/activate", adminHandler.ActivateUser)
			adminGroup.PATCH("/users/:id/role", adminHandler.UpdateRole)
		}

		// 用户资料
		profileGroup := api.Group("/profiles")
		profileGroup.Use(middleware.RequireAuth())
		{
			profileGroup.GET("", profileHandler.List)
			profileGroup.GET("/:id", profileHandler.Get)
			profileGroup.PATCH("/:id", profileHandler.Update) // 本人或管理员
		}

		// 项目管理
		projectGroup := api.Group("/projects")
		projectGroup.Use(middleware.RequireAuth())
		{
			projectGroup.POST("", middleware.RequirePermission(authz, auth.PermProjectCreate), projectHandler.Create)
			projectGroup.GET("", projectHandler.List) // 按能力过滤
			projectGroup.GET("/:id", projectHandler.Get)
			projectGroup.PATCH("/:id", middleware.RequirePermission(authz, auth.PermProjectUpdate), projectHandler.Update)
			projectGroup.GET("/:id/tasks", projectHandler.ListTasks)

			// 项目成员
			projectGroup.GET("/:id/members", memberHandler.List)
			projectGroup.POST("/:id/members", middleware.RequirePermission(authz, auth.PermMemberManage), memberHandler.Add)
			projectGroup.DELETE("/:id/members/:userId", middleware.RequirePermission(authz, auth.PermMemberManage), memberHandler.Remove)
		}

		// 任务管理
		taskGroup := api.Group("/tasks")
		taskGroup.Use(middleware.RequireAuth())
		{
			taskGroup.POST("", middleware.RequirePermission(authz, auth.PermTaskCreate), taskHandler.Create)
			taskGroup.GET("", taskHandler.List) // ?project_id= 或 ?assignee_id=
			taskGroup.GET("/workbench", taskHandler.Workbench)
			taskGroup.GET("/:id", taskHandler.Get)
			taskGroup.PATCH("/:id", middleware.RequirePermission(authz, auth.PermTaskUpdate), taskHandler.Update)

			taskGroup.GET("/:id/assignees", taskHandler.ListAssignees)
			taskGroup.POST("/:id/assignees", middleware.RequirePermission(authz, auth.PermTaskUpdate), taskHandler.AddAssignee)
			taskGroup.DELETE("/:id/assignees/:userId", middleware.RequirePermission(authz, auth.PermTaskUpdate), taskHandler.RemoveAssignee)

			taskGroup.GET("/:id/comments", taskHandler.ListComments)
			taskGroup.POST("/:id/comments", taskHandler.AddComment)

			taskGroup.GET("/:id/logs", taskHandler.ListLogs)
		}

		// 通知
		notificationGroup := api.Group("/notifications")
		notificationGroup.Use(middleware.RequireAuth())
		{
			notificationGroup.GET("", notificationHandler.List)
			notificationGroup.POST("", notificationHandler.Create)
			notificationGroup.PATCH("/:id/read", notificationHandler.MarkRead)
			notificationGroup.DELETE("/:id", notificationHandler.Delete)
			notificationGroup.DELETE("", notificationHandler.ClearAll)
		}
	}

	logger.Info("路由注册完成")
	return r
}
