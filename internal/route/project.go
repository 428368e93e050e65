package route

import (
	"github.com/LeakhenaSok/StudioFlow/internal/controller"
	"github.com/LeakhenaSok/StudioFlow/internal/middleware"
	"github.com/gin-gonic/gin"
)

func V1_Projects(r *gin.RouterGroup, pc *controller.ProjectController, fc *controller.FileController, cc *controller.CommentController, middleware *middleware.Middleware) {
	v1 := r.Group("/v1/projects")
	v1.Use(middleware.AuthMiddleware)
	{
		v1.GET("", pc.GetProjects)
		v1.POST("", pc.CreateProject)
		v1.GET("/:projectId", pc.GetProjectById)
		v1.PATCH("/:projectId", pc.UpdateProject)
		v1.DELETE("/:projectId", pc.DeleteProject)

		v1.GET("/:projectId/members", pc.GetProjectMembers)

		v1.POST("/:projectId/files", fc.UploadFile)
		v1.GET("/:projectId/files/:fileId", fc.GetFileUrl)
		v1.DELETE("/:projectId/files/:fileId", fc.DeleteFile)

		v1.GET("/:projectId/comments", cc.GetComments)
		v1.POST("/:projectId/comments", cc.CreateComment)
		v1.PATCH("/:projectId/comments/:commentId", cc.UpdateComment)
		v1.DELETE("/:projectId/comments/:commentId", cc.DeleteComment)
	}
}
