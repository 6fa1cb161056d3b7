package routes

import (
	"github.com/oumarknt31/Restaurant-ai-system/handlers"
	"github.com/oumarknt31/Restaurant-ai-system/middleware"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine) {
	// ── Public routes ──────────────────────────────────────────────
	public := r.Group("/api")
	{
		public.POST("/auth/register", handlers.Register)
		public.POST("/auth/login", handlers.Login)

		public.GET("/menu", handlers.GetMenu)
		public.GET("/state-machine", handlers.GetStateMachineInfo)
	}

	// ── Authenticated routes ───────────────────────────────────────
	auth := r.Group("/api")
	auth.Use(middleware.AuthRequired())
	{
		auth.GET("/profile", handlers.GetProfile)
		auth.POST("/wallet/deposit", handlers.Deposit)
		auth.POST("/orders", handlers.PlaceOrder)
		auth.GET("/orders", handlers.GetMyOrders)
		auth.POST("/assistant/recommend", handlers.Recommend)
		auth.POST("/assistant/chat", handlers.Chat)
	}

	// ── Kitchen routes (chef/manager) ──────────────────────────────
	kitchen := r.Group("/api/kitchen")
	kitchen.Use(middleware.AuthRequired(), middleware.ModeratorsOnly())
	{
		kitchen.POST("/menu", handlers.CreateDish)
	}

	// ── Admin routes (chef/manager moderation, manager-only roles) ─
	admin := r.Group("/api/admin")
	admin.Use(middleware.AuthRequired(), middleware.ModeratorsOnly())
	{
		admin.GET("/users", handlers.AdminListUsers)
		admin.GET("/orders", handlers.AdminListOrders)
		admin.PATCH("/orders/:id/status", handlers.UpdateOrderStatus)
		admin.PATCH("/users/:id/status", handlers.UpdateUserStatus)
		admin.PATCH("/users/:id/role", handlers.UpdateUserRole)
	}
}
