package routes

import (
	"github.com/Richiez14/Upiksugbox/configs"
	"github.com/Richiez14/Upiksugbox/controllers"
	"github.com/Richiez14/Upiksugbox/middlewares"
	"github.com/Richiez14/Upiksugbox/repository"
	"github.com/Richiez14/Upiksugbox/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	r.Use(middlewares.CORSMiddleware())
	r.Use(middlewares.LoadIdentity(cfg.JWTSecret))
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	sugRepo := repository.NewSuggestionRepository(db)
	cmtRepo := repository.NewCommentRepository(db)

	// Services
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	sugSvc := services.NewSuggestionService(sugRepo)
	cmtSvc := services.NewCommentService(cmtRepo)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	sugCtrl := controllers.NewSuggestionController(sugSvc)
	cmtCtrl := controllers.NewCommentController(cmtSvc)

	api := r.Group("/api")
	{
		// Student-facing
		api.POST("/suggestions", sugCtrl.Submit)
		api.GET("/suggestions/public", sugCtrl.PublicBoard)
		api.GET("/suggestions/:id/comments", cmtCtrl.List)
		api.POST("/suggestions/:id/comments", cmtCtrl.Create)

		// Admin console (open by contract; LoadIdentity still records who
		// is calling when a token is sent)
		admin := api.Group("/admin")
		{
			admin.POST("/login", authCtrl.Login)
			admin.GET("/suggestions", sugCtrl.ListAll)
			admin.PATCH("/suggestions/:id", sugCtrl.Update)
			admin.POST("/change-password", authCtrl.ChangePassword)
		}
	}
}
