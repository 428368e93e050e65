package repository

import (
	"context"

	constant "github.com/LeakhenaSok/StudioFlow/internal/constant"
	"github.com/LeakhenaSok/StudioFlow/internal/model"
)

// PolicyDirectory implements authz.Directory on top of the database. Every
// call hits the current rows on purpose: role changes and membership changes
// must be visible to the very next policy evaluation.
type PolicyDirectory struct {
	*baseRepository
}

func (pd PolicyDirectory) RoleOf(ctx context.Context, userID string) (constant.UserRole, error) {
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var user model.User
	if err := pd.db.WithContext(ctx).Model(&model.User{}).
		Select("role").
		Where(&model.User{BaseModel: model.BaseModel{ID: userID}}).
		First(&user).Error; err != nil {
		return "", err
	}

	return user.Role, nil
}

func (pd PolicyDirectory) ProjectManagerID(ctx context.Context, projectID string) (*string, error) {
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var project model.Project
	if err := pd.db.WithContext(ctx).Model(&model.Project{}).
		Select("manager_id").
		Where(&model.Project{BaseModel: model.BaseModel{ID: projectID}}).
		First(&project).Error; err != nil {
		return nil, err
	}

	return project.ManagerID, nil
}

func (pd PolicyDirectory) HasMembership(ctx context.Context, projectID, userID string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var count int64
	if err := pd.db.WithContext(ctx).Model(&model.ProjectMember{}).
		Where("project_id = ? AND user_id = ?", projectID, userID).
		Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}
