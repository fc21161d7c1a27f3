package router

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/quickblog/internal/handler"
)

// SetupRouter 配置 Gin 引擎和路由。
func SetupRouter(api *handler.API) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger())
	// 任何未捕获的 panic 都转换为不透明的 500 JSON，绝不让进程退出
	r.Use(gin.CustomRecovery(func(c *gin.Context, _ interface{}) {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}))

	// 跨域策略：任意来源，预检返回 200
	r.Use(cors.New(cors.Config{
		AllowAllOrigins:           true,
		AllowMethods:              []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:              []string{"Content-Type"},
		OptionsResponseStatusCode: http.StatusOK,
	}))

	// 存活探针，供客户端门面以 HEAD 请求低成本探测
	ping := func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	}
	r.GET("/ping", ping)
	r.HEAD("/ping", ping)

	posts := r.Group("/posts")
	{
		posts.GET("", api.GetPosts)
		posts.GET("/:id", api.GetPost)
		posts.POST("", api.CreatePost)
		posts.DELETE("/:id", api.DeletePost)
	}

	r.POST("/uploads", api.UploadImage)

	r.HandleMethodNotAllowed = true
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "Method not allowed"})
	})
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	})

	return r
}
