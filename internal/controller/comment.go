package controller

import (
	"errors"
	"net/http"

	"github.com/LeakhenaSok/StudioFlow/internal/model"
	"github.com/LeakhenaSok/StudioFlow/internal/util"
	"github.com/gin-gonic/gin"
)

type CommentController struct {
	*baseController
}

const ErrCommentIdRequired = "comment ID is required"

func (cc CommentController) GetComments(ctx *gin.Context) {
	authUser, err := cc.getAuthUser(ctx)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "Unauthorized", util.GenerateErrorMessages(err), nil)
		return
	}

	projectId := ctx.Param("projectId")
	if projectId == "" {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Project id is required", util.GenerateErrorMessages(errors.New(ErrProjectIdRequired), "projectId"), nil)
		return
	}

	if !cc.app.Policy.CanReadComments(ctx, projectId, authUser.ID) {
		util.ResponseFailed(ctx, http.StatusForbidden, "You do not have access to this project", util.GenerateErrorMessages(errors.New(ErrPermissionDenied)), nil)
		return
	}

	comments, err := cc.app.Repository.Comment.ListByProject(ctx, nil, projectId)
	if err != nil {
		cc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to list comments", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"comments": comments,
	})
}

func (cc CommentController) CreateComment(ctx *gin.Context) {
	type Request struct {
		Content string `json:"content" form:"content" binding:"required,strNotEmpty,cmax=2000"`
	}
	var body Request

	authUser, err := cc.getAuthUser(ctx)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "Unauthorized", util.GenerateErrorMessages(err), nil)
		return
	}

	projectId := ctx.Param("projectId")
	if projectId == "" {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Project id is required", util.GenerateErrorMessages(errors.New(ErrProjectIdRequired), "projectId"), nil)
		return
	}

	if !cc.app.Policy.CanCreateComment(ctx, projectId, authUser.ID) {
		util.ResponseFailed(ctx, http.StatusForbidden, "You do not have access to this project", util.GenerateErrorMessages(errors.New(ErrPermissionDenied)), nil)
		return
	}

	if err := ctx.ShouldBind(&body); err != nil {
		cc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	comment := model.Comment{
		Content:   body.Content,
		ProjectID: projectId,
		AuthorID:  authUser.ID,
	}

	created, err := cc.app.Repository.Comment.Create(ctx, nil, &comment)
	if err != nil {
		cc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusBadRequest, "Failed to create comment", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"comment": created,
	})
}

// getProjectComment resolves :projectId/:commentId and rejects a comment
// that does not belong to the addressed project. Writes the error response
// itself when it returns false.
func (cc CommentController) getProjectComment(ctx *gin.Context) (*model.Comment, bool) {
	projectId := ctx.Param("projectId")
	if projectId == "" {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Project id is required", util.GenerateErrorMessages(errors.New(ErrProjectIdRequired), "projectId"), nil)
		return nil, false
	}

	commentId := ctx.Param("commentId")
	if commentId == "" {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Comment id is required", util.GenerateErrorMessages(errors.New(ErrCommentIdRequired), "commentId"), nil)
		return nil, false
	}

	comment, err := cc.app.Repository.Comment.GetById(ctx, nil, commentId)
	if err != nil || comment.ProjectID != projectId {
		util.ResponseFailed(ctx, http.StatusNotFound, "Comment not found", util.GenerateErrorMessages(errors.New("comment not found in project"), "commentId"), nil)
		return nil, false
	}

	return comment, true
}

func (cc CommentController) UpdateComment(ctx *gin.Context) {
	type Request struct {
		Content string `json:"content" form:"content" binding:"required,strNotEmpty,cmax=2000"`
	}
	var body Request

	authUser, err := cc.getAuthUser(ctx)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "Unauthorized", util.GenerateErrorMessages(err), nil)
		return
	}

	comment, ok := cc.getProjectComment(ctx)
	if !ok {
		return
	}

	if !cc.app.Policy.CanMutateComment(ctx, comment.AuthorID, authUser.ID) {
		util.ResponseFailed(ctx, http.StatusForbidden, "Only the comment author or an admin may update this comment", util.GenerateErrorMessages(errors.New(ErrPermissionDenied)), nil)
		return
	}

	if err := ctx.ShouldBind(&body); err != nil {
		cc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	if err := cc.app.Repository.Comment.UpdateContent(ctx, nil, comment.ID, body.Content); err != nil {
		cc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusBadRequest, "Failed to update comment", util.GenerateErrorMessages(err), nil)
		return
	}

	updated, err := cc.app.Repository.Comment.GetById(ctx, nil, comment.ID)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusNotFound, "Comment not found", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"comment": updated,
	})
}

func (cc CommentController) DeleteComment(ctx *gin.Context) {
	authUser, err := cc.getAuthUser(ctx)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "Unauthorized", util.GenerateErrorMessages(err), nil)
		return
	}

	comment, ok := cc.getProjectComment(ctx)
	if !ok {
		return
	}

	if !cc.app.Policy.CanMutateComment(ctx, comment.AuthorID, authUser.ID) {
		util.ResponseFailed(ctx, http.StatusForbidden, "Only the comment author or an admin may delete this comment", util.GenerateErrorMessages(errors.New(ErrPermissionDenied)), nil)
		return
	}

	if err := cc.app.Repository.Comment.Delete(ctx, nil, comment.ID); err != nil {
		cc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusBadRequest, "Failed to delete comment", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, nil)
}
