package routes

import (
	"dish-dash-backend/controllers"

	"github.com/gin-gonic/gin"
)

func OrderRoutes(incomingRoutes *gin.Engine, controller *controllers.OrderController, hub *controllers.NotificationHub, authentication, adminOnly gin.HandlerFunc) {
	incomingRoutes.POST("/orders", authentication, controller.CreateOrder())
	incomingRoutes.GET("/orders", authentication, controller.GetOrders())
	incomingRoutes.GET("/orders/confirm", authentication, controller.ConfirmPayment())
	incomingRoutes.GET("/orders/:order_id", authentication, controller.GetOrderByID())
	incomingRoutes.PATCH("/orders/:order_id", authentication, controller.UpdateOrder())

	incomingRoutes.GET("/admin/orders", authentication, adminOnly, controller.GetAllOrders())
	incomingRoutes.PATCH("/admin/orders/:order_id", authentication, adminOnly, controller.UpdateAnyOrder())
	incomingRoutes.GET("/ws", authentication, adminOnly, hub.HandleWebSocket())
}
