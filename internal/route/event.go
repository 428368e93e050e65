package route

import (
	"github.com/LeakhenaSok/StudioFlow/internal/controller"
	"github.com/LeakhenaSok/StudioFlow/internal/middleware"
	"github.com/gin-gonic/gin"
)

func V1_Events(r *gin.RouterGroup, eventController *controller.CalendarEventController, middleware *middleware.Middleware) {
	v1 := r.Group("/v1/events")
	v1.Use(middleware.AuthMiddleware)
	{
		v1.GET("", eventController.GetEvents)
		v1.POST("", eventController.CreateEvent)
		v1.PATCH("/:eventId", eventController.UpdateEvent)
		v1.DELETE("/:eventId", eventController.DeleteEvent)
	}
}
