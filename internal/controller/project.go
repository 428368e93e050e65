package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/LeakhenaSok/StudioFlow/internal/constant"
	"github.com/LeakhenaSok/StudioFlow/internal/model"
	"github.com/LeakhenaSok/StudioFlow/internal/repository"
	"github.com/LeakhenaSok/StudioFlow/internal/util"
	"github.com/gin-gonic/gin"
)

type ProjectController struct {
	*baseController
}

const (
	ErrProjectIdRequired   = "project ID is required"
	ErrPermissionDenied    = "you do not have permission to perform this action on the project"
	ErrInvalidDeadlineDate = "deadline must be a valid date in YYYY-MM-DD format"
)

// GetProjects lists the projects visible to the caller: every project for
// an admin, otherwise the ones the caller manages or is assigned to.
func (pc ProjectController) GetProjects(ctx *gin.Context) {
	type Request struct {
		Page     uint                     `form:"page" binding:"omitempty,gte=1"`
		PageSize uint                     `form:"pageSize" binding:"omitempty,gte=1"`
		Search   string                   `form:"search" binding:"omitempty,cmax=100"`
		Status   []constant.ProjectStatus `form:"status" binding:"omitempty,dive,oneof=planning in-progress review completed"`
	}
	var query Request

	authUser, err := pc.getAuthUser(ctx)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "Unauthorized", util.GenerateErrorMessages(err), nil)
		return
	}

	if err := ctx.ShouldBindQuery(&query); err != nil {
		pc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	page, pageSize := util.NormalizePagination(query.Page, query.PageSize)
	isAdmin := pc.app.Policy.IsAdmin(ctx, authUser.ID)

	projects, total, err := pc.app.Repository.Project.ListVisible(ctx, nil, authUser.ID, isAdmin, query.Search, query.Status, page, pageSize)
	if err != nil {
		pc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to list projects", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"projects":  projects,
		"total":     total,
		"totalPage": util.CalculateTotalPage(total, pageSize),
		"page":      page,
		"pageSize":  pageSize,
	})
}

func (pc ProjectController) GetProjectById(ctx *gin.Context) {
	authUser, err := pc.getAuthUser(ctx)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "Unauthorized", util.GenerateErrorMessages(err), nil)
		return
	}

	projectId := ctx.Param("projectId")
	if projectId == "" {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Project id is required", util.GenerateErrorMessages(errors.New(ErrProjectIdRequired), "projectId"), nil)
		return
	}

	if !pc.app.Policy.CanReadProject(ctx, projectId, authUser.ID) {
		util.ResponseFailed(ctx, http.StatusForbidden, "You do not have access to this project", util.GenerateErrorMessages(errors.New(ErrPermissionDenied)), nil)
		return
	}

	detail, err := pc.app.Repository.Project.GetDetail(ctx, nil, projectId)
	if err != nil {
		pc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusNotFound, "Project not found", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"project": detail,
	})
}

func (pc ProjectController) GetProjectMembers(ctx *gin.Context) {
	authUser, err := pc.getAuthUser(ctx)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "Unauthorized", util.GenerateErrorMessages(err), nil)
		return
	}

	projectId := ctx.Param("projectId")
	if projectId == "" {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Project id is required", util.GenerateErrorMessages(errors.New(ErrProjectIdRequired), "projectId"), nil)
		return
	}

	if !pc.app.Policy.CanReadProject(ctx, projectId, authUser.ID) {
		util.ResponseFailed(ctx, http.StatusForbidden, "You do not have access to this project", util.GenerateErrorMessages(errors.New(ErrPermissionDenied)), nil)
		return
	}

	members, err := pc.app.Repository.ProjectMember.ListByProject(ctx, nil, projectId)
	if err != nil {
		pc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to list project members", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"members": members,
	})
}

func (pc ProjectController) CreateProject(ctx *gin.Context) {
	type Request struct {
		Title           string                 `json:"title" form:"title" binding:"required,strNotEmpty,cmax=100"`
		AlbumType       constant.AlbumType     `json:"albumType" form:"albumType" binding:"required,oneof=wedding portrait commercial event product other"`
		Description     string                 `json:"description" form:"description"`
		Status          constant.ProjectStatus `json:"status" form:"status" binding:"omitempty,oneof=planning in-progress review completed"`
		Deadline        string                 `json:"deadline" form:"deadline" binding:"required"`
		ManagerID       *string                `json:"managerId" form:"managerId"`
		PhotographerIDs []string               `json:"photographerIds" form:"photographerIds"`
		DesignerIDs     []string               `json:"designerIds" form:"designerIds"`
	}
	var body Request

	authUser, err := pc.getAuthUser(ctx)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "Unauthorized", util.GenerateErrorMessages(err), nil)
		return
	}

	if !pc.app.Policy.CanCreateProject(ctx, authUser.ID) {
		util.ResponseFailed(ctx, http.StatusForbidden, "Only an admin may create projects", util.GenerateErrorMessages(errors.New(ErrPermissionDenied)), nil)
		return
	}

	if err := ctx.ShouldBind(&body); err != nil {
		pc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	deadline, err := time.Parse(time.DateOnly, body.Deadline)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid deadline", util.GenerateErrorMessages(errors.New(ErrInvalidDeadlineDate), "deadline"), nil)
		return
	}

	project := model.Project{
		Title:       body.Title,
		AlbumType:   body.AlbumType,
		Description: body.Description,
		Status:      body.Status,
		Deadline:    deadline,
		ManagerID:   body.ManagerID,
	}
	if project.Status == "" {
		project.Status = constant.ProjectStatusPlanning
	}

	created, err := pc.app.Repository.Project.Create(ctx, nil, &project, body.PhotographerIDs, body.DesignerIDs)
	if err != nil {
		pc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusBadRequest, "Failed to create project", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"project": created,
	})
}

func (pc ProjectController) UpdateProject(ctx *gin.Context) {
	type Request struct {
		Title           *string                 `json:"title" form:"title" binding:"omitempty,strNotEmpty,cmax=100"`
		AlbumType       *constant.AlbumType     `json:"albumType" form:"albumType" binding:"omitempty,oneof=wedding portrait commercial event product other"`
		Description     *string                 `json:"description" form:"description"`
		Status          *constant.ProjectStatus `json:"status" form:"status" binding:"omitempty,oneof=planning in-progress review completed"`
		Deadline        *string                 `json:"deadline" form:"deadline"`
		ManagerID       *string                 `json:"managerId" form:"managerId"`
		PhotographerIDs *[]string               `json:"photographerIds" form:"photographerIds"`
		DesignerIDs     *[]string               `json:"designerIds" form:"designerIds"`
	}
	var body Request

	authUser, err := pc.getAuthUser(ctx)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "Unauthorized", util.GenerateErrorMessages(err), nil)
		return
	}

	projectId := ctx.Param("projectId")
	if projectId == "" {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Project id is required", util.GenerateErrorMessages(errors.New(ErrProjectIdRequired), "projectId"), nil)
		return
	}

	if !pc.app.Policy.CanUpdateProject(ctx, projectId, authUser.ID) {
		util.ResponseFailed(ctx, http.StatusForbidden, "Only the project manager or an admin may update this project", util.GenerateErrorMessages(errors.New(ErrPermissionDenied)), nil)
		return
	}

	if _, err := pc.app.Repository.Project.GetById(ctx, nil, projectId); err != nil {
		util.ResponseFailed(ctx, http.StatusNotFound, "Project not found", util.GenerateErrorMessages(err), nil)
		return
	}

	if err := ctx.ShouldBind(&body); err != nil {
		pc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	patch := repository.ProjectUpdate{
		Title:           body.Title,
		AlbumType:       body.AlbumType,
		Description:     body.Description,
		Status:          body.Status,
		ManagerID:       body.ManagerID,
		PhotographerIDs: body.PhotographerIDs,
		DesignerIDs:     body.DesignerIDs,
	}

	if body.Deadline != nil {
		deadline, err := time.Parse(time.DateOnly, *body.Deadline)
		if err != nil {
			util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid deadline", util.GenerateErrorMessages(errors.New(ErrInvalidDeadlineDate), "deadline"), nil)
			return
		}
		patch.Deadline = &deadline
	}

	// Reassigning members is membership administration, so it stays behind
	// the stricter membership rule even when the field update is allowed.
	if (body.PhotographerIDs != nil || body.DesignerIDs != nil) && !pc.app.Policy.CanWriteMembership(ctx, projectId, authUser.ID) {
		util.ResponseFailed(ctx, http.StatusForbidden, "You do not have permission to change the project team", util.GenerateErrorMessages(errors.New(ErrPermissionDenied)), nil)
		return
	}

	if err := pc.app.Repository.Project.Update(ctx, nil, projectId, patch); err != nil {
		pc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusBadRequest, "Failed to update project", util.GenerateErrorMessages(err), nil)
		return
	}

	detail, err := pc.app.Repository.Project.GetDetail(ctx, nil, projectId)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusNotFound, "Project not found", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"project": detail,
	})
}

func (pc ProjectController) DeleteProject(ctx *gin.Context) {
	authUser, err := pc.getAuthUser(ctx)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "Unauthorized", util.GenerateErrorMessages(err), nil)
		return
	}

	projectId := ctx.Param("projectId")
	if projectId == "" {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Project id is required", util.GenerateErrorMessages(errors.New(ErrProjectIdRequired), "projectId"), nil)
		return
	}

	if !pc.app.Policy.CanDeleteProject(ctx, authUser.ID) {
		util.ResponseFailed(ctx, http.StatusForbidden, "Only an admin may delete projects", util.GenerateErrorMessages(errors.New(ErrPermissionDenied)), nil)
		return
	}

	if err := pc.app.Repository.Project.Delete(ctx, nil, projectId); err != nil {
		pc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusBadRequest, "Failed to delete project", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, nil)
}
