package transport

import (
	"github.com/gin-gonic/gin"
)

func InitRoutes(memeHandler *MemeHandler) *gin.Engine {
	router := gin.Default()

	router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	api := router.Group("/api")
	{
		api.POST("/finalize-meme", memeHandler.FinalizeMeme)
		api.POST("/generate-captions", memeHandler.GenerateCaptions)

		// Health check
		api.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{"ok": true})
		})
	}

	return router
}
