package app

import (
	"linkup_backend/docs"
	"linkup_backend/internal/config"
	"linkup_backend/internal/middleware"
	"linkup_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// WebSocket 握手必须带 token
	router.GET("/ws", middleware.AuthMiddleware(cfg), c.chat.HandleWS)

	// 身份由外部登录体系保证，接口本身按原 API 约定用显式 id 定位用户；
	// 带了 token 时顺便刷新最后活跃时间
	api := router.Group("/api")
	api.Use(middleware.TryAuthMiddleware(cfg), middleware.ActivityMiddleware(repos.user))
	{
		api.GET("/health", c.health.HealthCheck)

		users := api.Group("/users")
		{
			users.GET("/getUser", c.user.GetUser)
			users.POST("/createUser", c.user.CreateUser)
			users.GET("/details", c.user.GetDetails)
		}

		friends := api.Group("/friends")
		{
			friends.POST("/request", c.friend.SendRequest)
			friends.GET("/requests", c.friend.GetRequests)
			friends.POST("/accept", c.friend.AcceptRequest)
			friends.GET("/all", c.friend.GetFriends)
			friends.POST("/remove", c.friend.RemoveFriend)
			friends.POST("/search", c.friend.SearchUsers)
			friends.POST("/suggestions", c.friend.Suggestions)
			friends.POST("/onlinestatus", c.friend.OnlineStatus)
		}

		posts := api.Group("/posts")
		{
			posts.GET("/getPosts", c.post.GetPosts)
			posts.GET("/count", c.post.Count)
			posts.POST("/likePost", c.post.Like)
			posts.POST("/unlikePost", c.post.Unlike)
			posts.DELETE("/deletePost", c.post.Delete)
			posts.POST("/uploadPost", c.post.Upload)
			posts.POST("/uploadWithoutImage", c.post.UploadWithoutImage)
			posts.POST("/generateUploadUrl", c.post.GenerateUploadURL)
		}

		comments := api.Group("/comments")
		{
			comments.POST("/add", c.comment.Add)
			comments.POST("/all", c.comment.All)
		}

		stories := api.Group("/stories")
		{
			stories.POST("/add", c.story.Add)
			stories.POST("/all", c.story.All)
		}

		api.POST("/graph", c.graph.Build)

		messages := api.Group("/messages")
		{
			messages.POST("/create", c.message.Create)
			messages.GET("/allMessages", c.message.AllMessages)
		}
	}
}
