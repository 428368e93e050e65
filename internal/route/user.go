package route

import (
	"github.com/LeakhenaSok/StudioFlow/internal/controller"
	"github.com/LeakhenaSok/StudioFlow/internal/middleware"
	"github.com/gin-gonic/gin"
)

func V1_Users(r *gin.RouterGroup, userController *controller.UserController, middleware *middleware.Middleware) {
	v1 := r.Group("/v1/users")
	v1.Use(middleware.AuthMiddleware)
	{
		v1.GET("", userController.GetUsers)
		v1.POST("", userController.CreateUser)
		v1.GET("/:userId", userController.GetUserById)
		v1.PATCH("/:userId", userController.UpdateUser)
		v1.DELETE("/:userId", userController.DeleteUser)
	}
}
