package routes

import (
	"dish-dash-backend/controllers"

	"github.com/gin-gonic/gin"
)

func UserRoutes(incomingRoutes *gin.Engine, controller *controllers.UserController, authentication, adminOnly gin.HandlerFunc) {
	incomingRoutes.POST("/users/register", controller.Register())
	incomingRoutes.POST("/users/login", controller.Login())
	incomingRoutes.GET("/users/profile", authentication, controller.GetProfile())
	incomingRoutes.PUT("/users/profile", authentication, controller.UpdateProfile())
	incomingRoutes.GET("/users/customers", authentication, adminOnly, controller.GetCustomers())
}
