package routes

import (
	"dish-dash-backend/controllers"

	"github.com/gin-gonic/gin"
)

func ItemRoutes(incomingRoutes *gin.Engine, controller *controllers.ItemController, authentication, adminOnly gin.HandlerFunc) {
	incomingRoutes.GET("/items", controller.GetItems())
	incomingRoutes.POST("/items", authentication, adminOnly, controller.CreateItem())
	incomingRoutes.PUT("/items/:item_id", authentication, adminOnly, controller.UpdateItem())
	incomingRoutes.DELETE("/items/:item_id", authentication, adminOnly, controller.DeleteItem())
}
