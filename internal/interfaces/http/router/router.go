package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oasis00-1/oasis-springs-app/internal/interfaces/http/handler"
)

func RegisterRoutes(r *gin.Engine, orderHandler *handler.OrderHandler, adminHandler *handler.AdminHandler) {
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		api.POST("/orders", orderHandler.CreateOrder)
		api.GET("/receipts/:id", orderHandler.DownloadReceipt)

		admin := api.Group("/admin")
		{
			admin.GET("/orders", adminHandler.ListOrders)
			admin.GET("/orders/export", adminHandler.ExportOrders)
		}
	}
}
