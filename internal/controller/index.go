package controller

import (
	"github.com/LeakhenaSok/StudioFlow/internal/util"
	"github.com/gin-gonic/gin"
)

type IndexController struct {
	*baseController
}

func (ic IndexController) Index(ctx *gin.Context) {
	util.ResponseSuccess(ctx, gin.H{
		"service": "studioflow-api",
	})
}
