package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/buddybridge/backend/internal/app/controllers"
	"github.com/buddybridge/backend/internal/app/models/dto"
	"github.com/buddybridge/backend/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	memberController *controllers.MemberController,
	postController *controllers.PostController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// --- Public Auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
	}

	// --- Public Post routes ---
	posts := v1.Group("/posts")
	{
		posts.GET("", postController.GetPosts)
		posts.GET("/:id", postController.GetPostByID)
		posts.GET("/:id/matchings", postController.GetPostMatchings)
	}

	// --- Public Member routes ---
	members := v1.Group("/members")
	{
		members.GET("/:id", memberController.GetMemberByID)
	}

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.GET("/members/me", memberController.GetProfile)

		postsProtected := authenticated.Group("/posts")
		{
			postsProtected.POST("", postController.CreatePost)
			postsProtected.PUT("/:id", postController.UpdatePost)
			postsProtected.DELETE("/:id", postController.DeletePost)
		}
	}

	// Health check endpoint (public)
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.APIResponse{
			Data: gin.H{"status": "ok"},
		})
	})
}
