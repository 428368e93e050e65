package controller

import (
	"errors"
	"net/http"

	"github.com/LeakhenaSok/StudioFlow/internal/auth"
	"github.com/LeakhenaSok/StudioFlow/internal/constant"
	"github.com/LeakhenaSok/StudioFlow/internal/model"
	"github.com/LeakhenaSok/StudioFlow/internal/repository"
	"github.com/LeakhenaSok/StudioFlow/internal/util"
	"github.com/gin-gonic/gin"
)

type UserController struct {
	*baseController
}

const (
	ErrUserIdRequired   = "user ID is required"
	ErrOnlyAdminAllowed = "only an admin may perform this action"
)

// GetUsers lists all profiles. Readable by any authenticated caller.
func (uc UserController) GetUsers(ctx *gin.Context) {
	users, err := uc.app.Repository.User.List(ctx, nil)
	if err != nil {
		uc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to list users", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"users": users,
	})
}

func (uc UserController) GetUserById(ctx *gin.Context) {
	userId := ctx.Param("userId")
	if userId == "" {
		util.ResponseFailed(ctx, http.StatusBadRequest, "User id is required", util.GenerateErrorMessages(errors.New(ErrUserIdRequired), "userId"), nil)
		return
	}

	user, err := uc.app.Repository.User.GetById(ctx, nil, userId)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusNotFound, "User not found", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"user": user,
	})
}

func (uc UserController) GetMe(ctx *gin.Context) {
	authUser, err := uc.getAuthUser(ctx)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "Unauthorized", util.GenerateErrorMessages(err), nil)
		return
	}

	user, err := uc.app.Repository.User.GetById(ctx, nil, authUser.ID)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusNotFound, "User not found", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"user": user,
	})
}

type userPatchRequest struct {
	Name       *string            `json:"name" form:"name" binding:"omitempty,strNotEmpty,cmax=100"`
	Role       *constant.UserRole `json:"role" form:"role" binding:"omitempty,oneof=photographer designer admin"`
	Department *string            `json:"department" form:"department"`
	Position   *string            `json:"position" form:"position"`
	Salary     *int64             `json:"salary" form:"salary" binding:"omitempty,gte=0"`
	Phone      *string            `json:"phone" form:"phone"`
	Telegram   *string            `json:"telegram" form:"telegram"`
	AvatarURL  *string            `json:"avatarUrl" form:"avatarUrl"`
}

func (uc UserController) applyUserPatch(ctx *gin.Context, authUser *auth.JWTPayload, targetId string) {
	var body userPatchRequest
	if err := ctx.ShouldBind(&body); err != nil {
		uc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	if !uc.app.Policy.CanUpdateProfile(ctx, authUser.ID, targetId) {
		util.ResponseFailed(ctx, http.StatusForbidden, "You do not have permission to update this profile", util.GenerateErrorMessages(errors.New(ErrOnlyAdminAllowed)), nil)
		return
	}

	// Role and salary changes stay admin-only even on your own profile.
	if (body.Role != nil || body.Salary != nil) && !uc.app.Policy.IsAdmin(ctx, authUser.ID) {
		util.ResponseFailed(ctx, http.StatusForbidden, "Only an admin may change role or salary", util.GenerateErrorMessages(errors.New(ErrOnlyAdminAllowed)), nil)
		return
	}

	patch := repository.UserUpdate{
		Name:       body.Name,
		Role:       body.Role,
		Department: body.Department,
		Position:   body.Position,
		Salary:     body.Salary,
		Phone:      body.Phone,
		Telegram:   body.Telegram,
		AvatarURL:  body.AvatarURL,
	}

	err := uc.app.Repository.User.Update(ctx, nil, targetId, patch)
	if err != nil {
		uc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusBadRequest, "Failed to update profile", util.GenerateErrorMessages(err), nil)
		return
	}

	user, err := uc.app.Repository.User.GetById(ctx, nil, targetId)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusNotFound, "User not found", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"user": user,
	})
}

func (uc UserController) UpdateMe(ctx *gin.Context) {
	authUser, err := uc.getAuthUser(ctx)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "Unauthorized", util.GenerateErrorMessages(err), nil)
		return
	}

	uc.applyUserPatch(ctx, authUser, authUser.ID)
}

func (uc UserController) UpdateUser(ctx *gin.Context) {
	authUser, err := uc.getAuthUser(ctx)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "Unauthorized", util.GenerateErrorMessages(err), nil)
		return
	}

	userId := ctx.Param("userId")
	if userId == "" {
		util.ResponseFailed(ctx, http.StatusBadRequest, "User id is required", util.GenerateErrorMessages(errors.New(ErrUserIdRequired), "userId"), nil)
		return
	}

	uc.applyUserPatch(ctx, authUser, userId)
}

// CreateUser lets an admin add a profile directly, including a non-default
// role.
func (uc UserController) CreateUser(ctx *gin.Context) {
	type Request struct {
		Email      string            `json:"email" form:"email" binding:"required,email"`
		Name       string            `json:"name" form:"name" binding:"required,strNotEmpty,cmax=100"`
		Password   string            `json:"password" form:"password" binding:"omitempty,min=8,max=72"`
		Role       constant.UserRole `json:"role" form:"role" binding:"omitempty,oneof=photographer designer admin"`
		Department string            `json:"department" form:"department"`
		Position   string            `json:"position" form:"position"`
	}
	var body Request

	authUser, err := uc.getAuthUser(ctx)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "Unauthorized", util.GenerateErrorMessages(err), nil)
		return
	}

	if !uc.app.Policy.CanManageProfiles(ctx, authUser.ID) {
		util.ResponseFailed(ctx, http.StatusForbidden, "Only an admin may create users", util.GenerateErrorMessages(errors.New(ErrOnlyAdminAllowed)), nil)
		return
	}

	if err := ctx.ShouldBind(&body); err != nil {
		uc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	newUser := model.User{
		Email:      body.Email,
		Name:       body.Name,
		Role:       body.Role,
		Department: body.Department,
		Position:   body.Position,
	}

	if body.Password != "" {
		hash, err := auth.HashPassword(body.Password)
		if err != nil {
			util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to create user", util.GenerateErrorMessages(err), nil)
			return
		}
		newUser.PasswordHash = hash
	}

	user, err := uc.app.Repository.User.Create(ctx, nil, newUser)
	if err != nil {
		uc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusBadRequest, "Failed to create user", util.GenerateErrorMessages(err, "email"), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"user": user,
	})
}

func (uc UserController) DeleteUser(ctx *gin.Context) {
	authUser, err := uc.getAuthUser(ctx)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "Unauthorized", util.GenerateErrorMessages(err), nil)
		return
	}

	userId := ctx.Param("userId")
	if userId == "" {
		util.ResponseFailed(ctx, http.StatusBadRequest, "User id is required", util.GenerateErrorMessages(errors.New(ErrUserIdRequired), "userId"), nil)
		return
	}

	if !uc.app.Policy.CanManageProfiles(ctx, authUser.ID) {
		util.ResponseFailed(ctx, http.StatusForbidden, "Only an admin may delete users", util.GenerateErrorMessages(errors.New(ErrOnlyAdminAllowed)), nil)
		return
	}

	if err := uc.app.Repository.User.Delete(ctx, nil, userId); err != nil {
		uc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusBadRequest, "Failed to delete user", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, nil)
}
