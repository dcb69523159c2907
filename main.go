package main

import (
	"log"
	"net/http"
	"os"

	"github.com/aledanee/blotch/config"
	"github.com/aledanee/blotch/handlers"
	"github.com/aledanee/blotch/helper"
	"github.com/aledanee/blotch/middleware"
	"github.com/aledanee/blotch/repositories"
	"github.com/aledanee/blotch/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	config.InitJWT()
	db := config.InitDB()

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	tokenRepo := repositories.NewRefreshTokenRepository(db)
	categoryRepo := repositories.NewCategoryRepository(db)
	articleRepo := repositories.NewArticleRepository(db)
	commentRepo := repositories.NewCommentRepository(db)
	likeRepo := repositories.NewLikeRepository(db)

	// Initialize services
	authService := services.NewAuthService(userRepo, tokenRepo)
	userService := services.NewUserService(userRepo)
	categoryService := services.NewCategoryService(categoryRepo)
	articleService := services.NewArticleService(articleRepo, categoryRepo)
	commentService := services.NewCommentService(commentRepo, articleRepo)
	likeService := services.NewLikeService(likeRepo)

	// Initialize handlers
	httpHelper := helper.NewHTTPHelper()
	authHandler := handlers.NewAuthHandler(authService, httpHelper)
	userHandler := handlers.NewUserHandler(userService, httpHelper)
	categoryHandler := handlers.NewCategoryHandler(categoryService, httpHelper)
	articleHandler := handlers.NewArticleHandler(articleService, httpHelper)
	commentHandler := handlers.NewCommentHandler(commentService, httpHelper)
	likeHandler := handlers.NewLikeHandler(likeService, httpHelper)

	// Setup router
	router := gin.Default()

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	authRequired := middleware.AuthMiddleware(authService)

	// API routes
	v1 := router.Group("/v1")
	{
		// Users and tokens
		v1.POST("/register", authHandler.Register)
		v1.POST("/token", authHandler.Token)
		v1.POST("/token/refresh", authHandler.RefreshToken)
		v1.GET("/users/me/", authRequired, authHandler.Me)
		v1.PUT("/users/", authRequired, userHandler.UpdateUser)
		v1.GET("/users/", userHandler.GetUsers)

		// Categories
		v1.POST("/categories/", categoryHandler.CreateCategory)
		v1.GET("/categories/", categoryHandler.GetCategories)
		v1.GET("/categories/:id", categoryHandler.GetCategory)
		v1.PUT("/categories/:id", categoryHandler.UpdateCategory)
		v1.DELETE("/categories/:id", categoryHandler.DeleteCategory)

		// Articles
		v1.POST("/articles/", authRequired, articleHandler.CreateArticle)
		v1.GET("/articles/", articleHandler.GetArticlePage)
		v1.GET("/articles/all", articleHandler.GetArticles)
		v1.GET("/search/articles/", articleHandler.SearchArticles)
		v1.GET("/articles/latest", articleHandler.GetLatestArticles)
		v1.GET("/articles/most-liked", articleHandler.GetMostLikedArticle)
		v1.GET("/articles/:id", articleHandler.GetArticle)
		v1.PUT("/articles/:id", authRequired, articleHandler.UpdateArticle)
		v1.DELETE("/articles/:id", authRequired, articleHandler.DeleteArticle)

		// Comments
		comment := v1.Group("/comment")
		{
			comment.POST("/articles/:id/comments/", authRequired, commentHandler.CreateComment)
			comment.GET("/articles/:id/comments/", commentHandler.GetComments)
		}

		// Likes
		like := v1.Group("/like")
		{
			like.POST("/articles/:id/likes/", authRequired, likeHandler.ToggleLike)
			like.GET("/articles/:id/likes/", likeHandler.GetLikes)
		}
	}

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	log.Fatal(http.ListenAndServe(":"+port, router))
}
