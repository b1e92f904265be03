package routes

import (
	"quiz-platform-backend/internal/api/handlers"
	"quiz-platform-backend/internal/api/middleware"
	"quiz-platform-backend/internal/auth"
	"quiz-platform-backend/internal/cache"
	"quiz-platform-backend/internal/config"
	"quiz-platform-backend/internal/repository"
	"quiz-platform-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, redisClient *redis.Client, cfg *config.Config) *gin.Engine {
	router := gin.New()

	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	validator := validator.New()

	// Repositories
	userRepo := repository.NewUserRepository(db)
	companyRepo := repository.NewCompanyRepository(db)
	membershipRepo := repository.NewMembershipRepository(db)
	quizRepo := repository.NewQuizRepository(db)
	resultRepo := repository.NewResultRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)

	resultCache := cache.NewResultCache(redisClient)

	// Services
	userService := service.NewUserService(userRepo, validator)
	companyService := service.NewCompanyService(companyRepo, membershipRepo, validator)
	membershipService := service.NewMembershipService(membershipRepo, userRepo, companyRepo, validator)
	quizService := service.NewQuizService(quizRepo, membershipRepo, companyRepo, validator)
	resultService := service.NewResultService(resultRepo, quizRepo, companyRepo, membershipRepo, resultCache, validator)
	analyticsService := service.NewAnalyticsService(resultRepo, membershipRepo, quizRepo)
	exportService := service.NewExportService(resultCache, membershipRepo)
	notificationService := service.NewNotificationService(notificationRepo)

	authService := auth.NewAuthService(cfg, userRepo)
	authMiddleware := auth.NewAuthMiddleware(authService)

	// Handlers
	healthHandler := handlers.NewHealthHandler(db, redisClient)
	authHandler := handlers.NewAuthHandler(userService, authService)
	userHandler := handlers.NewUserHandler(userService)
	companyHandler := handlers.NewCompanyHandler(companyService)
	membershipHandler := handlers.NewMembershipHandler(membershipService)
	quizHandler := handlers.NewQuizHandler(quizService)
	resultHandler := handlers.NewResultHandler(resultService, exportService)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService)
	notificationHandler := handlers.NewNotificationHandler(notificationService)

	// Health and auth entry points stay unauthenticated
	router.GET("/health", healthHandler.Health)
	router.GET("/health/live", healthHandler.Live)

	v1 := router.Group("/api/v1")

	v1.POST("/auth/signup", authHandler.SignUp)
	v1.POST("/auth/login", authHandler.Login)

	authed := v1.Group("")
	authed.Use(authMiddleware.RequireAuth())
	{
		authed.GET("/auth/me", authHandler.Me)

		users := authed.Group("/users")
		{
			users.GET("", userHandler.GetUsers)
			users.GET("/:id", userHandler.GetUser)
			users.PUT("/:id", userHandler.UpdateUser)
			users.DELETE("/:id", userHandler.DeleteUser)
		}

		companies := authed.Group("/companies")
		{
			companies.POST("", companyHandler.CreateCompany)
			companies.GET("", companyHandler.GetCompanies)
			companies.GET("/:id", companyHandler.GetCompany)
			companies.PUT("/:id", companyHandler.UpdateCompany)
			companies.DELETE("/:id", companyHandler.DeleteCompany)

			// Ledger, company side
			companies.POST("/:id/invitations", membershipHandler.SendInvitation)
			companies.GET("/:id/invitations", membershipHandler.GetCompanyInvitations)
			companies.PATCH("/:id/invitations/:invitation_id/cancel", membershipHandler.CancelInvitation)
			companies.POST("/:id/requests", membershipHandler.RequestToJoin)
			companies.GET("/:id/requests", membershipHandler.GetCompanyRequests)
			companies.DELETE("/:id/users/:user_id", membershipHandler.RemoveUser)
			companies.POST("/:id/admins/:user_id", membershipHandler.CreateAdmin)
			companies.DELETE("/:id/admins/:user_id", membershipHandler.RemoveAdmin)
			companies.PATCH("/:id/leave", membershipHandler.LeaveCompany)
			companies.GET("/:id/members", membershipHandler.GetCompanyMembers)
			companies.GET("/:id/admins", membershipHandler.GetCompanyAdmins)

			// Quizzes and results in company scope
			companies.POST("/:id/quizzes", quizHandler.CreateQuiz)
			companies.GET("/:id/quizzes", quizHandler.GetCompanyQuizzes)
			companies.GET("/:id/users/:user_id/average", resultHandler.GetUserCompanyAverage)
			companies.GET("/:id/results/export", resultHandler.ExportCompanyResults)
			companies.GET("/:id/analytics", analyticsHandler.GetCompanyProgress)
			companies.GET("/:id/analytics/users/:user_id", analyticsHandler.GetMemberProgress)
			companies.GET("/:id/analytics/quizzes/:quiz_id/last-attempts", analyticsHandler.GetQuizLastAttempts)
		}

		// Join requests addressed by their own id, acted on by the company
		requests := authed.Group("/requests")
		{
			requests.PATCH("/:id/accept", membershipHandler.AcceptRequest)
			requests.PATCH("/:id/decline", membershipHandler.DeclineRequest)
		}

		quizzes := authed.Group("/quizzes")
		{
			quizzes.GET("/:id", quizHandler.GetQuiz)
			quizzes.PUT("/:id", quizHandler.UpdateQuiz)
			quizzes.DELETE("/:id", quizHandler.DeleteQuiz)
			quizzes.POST("/:id/submissions", resultHandler.SubmitQuiz)
		}

		me := authed.Group("/me")
		{
			me.GET("/invitations", membershipHandler.GetMyInvitations)
			me.PATCH("/invitations/:id/accept", membershipHandler.AcceptInvitation)
			me.PATCH("/invitations/:id/decline", membershipHandler.DeclineInvitation)
			me.GET("/requests", membershipHandler.GetMyRequests)
			me.PATCH("/requests/:id/cancel", membershipHandler.CancelRequest)
			me.GET("/average", resultHandler.GetMyAverage)
			me.GET("/results/export", resultHandler.ExportMyResults)
			me.GET("/analytics", analyticsHandler.GetMyProgress)
			me.GET("/analytics/quizzes/:id", analyticsHandler.GetMyQuizProgress)
			me.GET("/analytics/companies/:id", analyticsHandler.GetMyCompanyProgress)
			me.GET("/notifications", notificationHandler.GetNotifications)
			me.PATCH("/notifications/:id/read", notificationHandler.MarkRead)
		}
	}

	return router
}
