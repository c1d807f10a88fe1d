package api

import (
	"Brightline/internal/api/middleware"
	"Brightline/internal/pkg/logger"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup, allowedOrigins []string) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.AuditMiddleware())
	r.Use(middleware.CORSMiddleware(allowedOrigins))
	logger.SetupGin(r)

	authMiddleware := middleware.AuthMiddleware(group.AuthService)

	// 表单提交接口沿用前端既有路径
	r.GET("/health", group.SubmissionHandler.Health)
	r.POST("/contact", group.SubmissionHandler.SubmitContact)
	r.POST("/booking", group.SubmissionHandler.SubmitBooking)
	r.GET("/contacts", group.SubmissionHandler.ListContacts)
	r.GET("/bookings", group.SubmissionHandler.ListBookings)

	apiGroup := r.Group("/api")
	{
		blogGroup := apiGroup.Group("/blog")
		{
			blogGroup.GET("/posts", group.BlogHandler.ListPosts)
			blogGroup.GET("/posts/featured", group.BlogHandler.ListFeatured)
			blogGroup.GET("/posts/search", group.BlogHandler.Search)
			blogGroup.GET("/posts/:post_id", group.BlogHandler.GetPost)
			blogGroup.GET("/posts/:post_id/related", group.BlogHandler.ListRelated)
			blogGroup.POST("/posts/:post_id/view", group.BlogHandler.View)
			blogGroup.POST("/posts/:post_id/like", group.BlogHandler.Like)
			blogGroup.POST("/posts/:post_id/share", group.BlogHandler.Share)
			blogGroup.GET("/categories", group.BlogHandler.ListCategories)
			blogGroup.GET("/categories/:category/posts", group.BlogHandler.ListByCategory)
		}

		authGroup := apiGroup.Group("/auth")
		{
			authGroup.POST("/login", group.AuthHandler.Login)

			loggedIn := authGroup.Group("")
			loggedIn.Use(authMiddleware)
			{
				loggedIn.POST("/logout", group.AuthHandler.Logout)
				loggedIn.GET("/me", group.AuthHandler.Me)
			}
		}

		adminGroup := apiGroup.Group("/admin")
		adminGroup.Use(authMiddleware)
		{
			adminGroup.GET("/posts", group.AdminHandler.ListPosts)
			adminGroup.POST("/posts", group.AdminHandler.CreatePost)
			adminGroup.PUT("/posts/:post_id", group.AdminHandler.UpdatePost)
			adminGroup.DELETE("/posts/:post_id", group.AdminHandler.DeletePost)
			adminGroup.GET("/analytics", group.AdminHandler.Analytics)
			adminGroup.POST("/migrate", group.AdminHandler.Migrate)
			adminGroup.POST("/media", group.MediaHandler.Upload)
		}
	}

	return r
}
