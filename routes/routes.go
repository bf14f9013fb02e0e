package routes

import (
	"restaurant-pos-api/handlers"
	"restaurant-pos-api/middleware"
	"restaurant-pos-api/models"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine) {
	// ── Public routes ──────────────────────────────────────────────
	public := r.Group("/api")
	{
		public.POST("/auth/login", handlers.Login)

		// State machine info (great for docs/Postman)
		public.GET("/state-machine", handlers.GetStateMachineInfo)
	}

	// ── Authenticated routes ───────────────────────────────────────
	auth := r.Group("/api")
	auth.Use(middleware.AuthRequired())
	{
		auth.GET("/profile", handlers.GetProfile)
		auth.GET("/menu", handlers.GetMenu)
		auth.GET("/categories", handlers.ListCategories)
		auth.GET("/settings", handlers.GetSettings)
	}

	// ── Ordering (waiters and up) ──────────────────────────────────
	posGroup := r.Group("/api/pos")
	posGroup.Use(middleware.AuthRequired(), middleware.PermissionRequired(models.PermCreateOrder))
	{
		posGroup.GET("/tables", handlers.ListTables)
		posGroup.GET("/tables/:id", handlers.GetTable)
		posGroup.GET("/tables/:id/bill", handlers.GetTableBill)
		posGroup.POST("/tables/:id/occupy", handlers.OccupyTable)
		posGroup.POST("/tables/:id/reserve", handlers.ReserveTable)
		posGroup.POST("/tables/:id/free", handlers.FreeTable)
		posGroup.POST("/tables/:id/order", handlers.StartOrder)
		posGroup.POST("/tables/:id/order/items", handlers.AddOrderItem)
		posGroup.DELETE("/tables/:id/order/items/:menuItemId", handlers.RemoveOrderItem)
		posGroup.POST("/tables/:id/order/save", handlers.SaveOrder)
	}

	// ── Completing and cancelling orders ───────────────────────────
	checkout := r.Group("/api/pos")
	checkout.Use(middleware.AuthRequired(), middleware.PermissionRequired(models.PermCompleteOrder))
	{
		checkout.POST("/tables/:id/order/complete", handlers.CompleteOrder)
		checkout.POST("/tables/:id/order/cancel", handlers.CancelOrder)
	}

	// ── Table administration ───────────────────────────────────────
	tables := r.Group("/api/pos")
	tables.Use(middleware.AuthRequired(), middleware.PermissionRequired(models.PermManageTables))
	{
		tables.POST("/tables", handlers.AddTable)
		tables.PUT("/tables/:id", handlers.UpdateTable)
		tables.DELETE("/tables/:id", handlers.DeleteTable)
	}

	// ── Menu administration ────────────────────────────────────────
	menu := r.Group("/api")
	menu.Use(middleware.AuthRequired(), middleware.PermissionRequired(models.PermManageMenu))
	{
		menu.POST("/menu", handlers.AddMenuItem)
		menu.PUT("/menu/:itemId", handlers.UpdateMenuItem)
		menu.DELETE("/menu/:itemId", handlers.DeleteMenuItem)
		menu.POST("/categories", handlers.AddCategory)
		menu.DELETE("/categories/:name", handlers.DeleteCategory)
	}

	// ── Reports ────────────────────────────────────────────────────
	reports := r.Group("/api/reports")
	reports.Use(middleware.AuthRequired(), middleware.PermissionRequired(models.PermViewReports))
	{
		reports.GET("/orders", handlers.GetOrderHistory)
		reports.GET("/summary", handlers.GetReportSummary)
		reports.DELETE("/orders", handlers.ClearOrderHistory)
	}

	// ── Settings & backup ──────────────────────────────────────────
	settings := r.Group("/api")
	settings.Use(middleware.AuthRequired(), middleware.PermissionRequired(models.PermManageSettings))
	{
		settings.PUT("/settings", handlers.UpdateSettings)
		settings.GET("/database/export", handlers.ExportDatabase)
		settings.POST("/database/import", handlers.ImportDatabase)
	}

	// ── User administration ────────────────────────────────────────
	users := r.Group("/api/users")
	users.Use(middleware.AuthRequired(), middleware.PermissionRequired(models.PermManageUsers))
	{
		users.GET("", handlers.ListUsers)
		users.GET("/roles", handlers.ListRoles)
		users.POST("", handlers.CreateUser)
		users.DELETE("/:id", handlers.DeleteUser)
	}
}
