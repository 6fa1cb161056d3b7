package main

import (
	"log"
	"net/http"
	"os"

	"github.com/oumarknt31/Restaurant-ai-system/config"
	"github.com/oumarknt31/Restaurant-ai-system/handlers"
	"github.com/oumarknt31/Restaurant-ai-system/middleware"
	"github.com/oumarknt31/Restaurant-ai-system/routes"
	"github.com/oumarknt31/Restaurant-ai-system/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	mode := os.Getenv("GIN_MODE")
	if mode == "" {
		gin.SetMode(gin.DebugMode)
	}

	utils.InitLogger()
	config.Load()
	config.InitDB()
	handlers.Init(config.DB)

	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestID(), middleware.RequestLogger())

	// CORS for the web client
	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization, X-Request-ID")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})

	r.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.SetupRoutes(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Server running on http://localhost:%s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
