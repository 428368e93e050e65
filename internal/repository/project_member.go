package repository

import (
	"context"

	constant "github.com/LeakhenaSok/StudioFlow/internal/constant"
	"github.com/LeakhenaSok/StudioFlow/internal/model"
	"gorm.io/gorm"
)

type ProjectMemberRepository struct {
	*baseRepository
}

func (pm ProjectMemberRepository) ListByProject(ctx context.Context, tx *gorm.DB, projectID string) ([]model.ProjectMember, error) {
	pm.logger.Debugf("List members of project: %s \n", projectID)

	db := pm.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var members []model.ProjectMember
	if err := db.WithContext(ctx).Model(&model.ProjectMember{}).
		Preload("User").
		Where("project_id = ?", projectID).
		Find(&members).Error; err != nil {
		return nil, err
	}

	return members, nil
}

// DiffMemberIDs computes which user ids must be added and which removed to
// turn current into desired. Duplicates in desired collapse to one entry, so
// a membership row can never be inserted twice for the same (user, role).
func DiffMemberIDs(current, desired []string) (add []string, remove []string) {
	currentSet := make(map[string]bool, len(current))
	for _, id := range current {
		currentSet[id] = true
	}

	desiredSet := make(map[string]bool, len(desired))
	for _, id := range desired {
		if id == "" || desiredSet[id] {
			continue
		}
		desiredSet[id] = true
		if !currentSet[id] {
			add = append(add, id)
		}
	}

	for _, id := range current {
		if !desiredSet[id] {
			remove = append(remove, id)
		}
	}

	return add, remove
}

// ReplaceForRole reconciles the member list of one role on one project with
// the desired user id set. Both the removals and the inserts run inside the
// caller's transaction so a failure can never leave the project with a
// half-replaced membership.
func (pm *ProjectMemberRepository) ReplaceForRole(ctx context.Context, tx *gorm.DB, projectID string, role constant.MemberRole, desiredUserIDs []string) error {
	pm.logger.Debugf("Replace %s members of project %s \n", role, projectID)

	db := pm.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	return pm.withTx(db, func(tx2 *gorm.DB) error {
		var current []model.ProjectMember
		if err := tx2.WithContext(ctx).Model(&model.ProjectMember{}).
			Where("project_id = ? AND role = ?", projectID, role).
			Find(&current).Error; err != nil {
			return err
		}

		currentIDs := make([]string, 0, len(current))
		for _, m := range current {
			currentIDs = append(currentIDs, m.UserID)
		}

		add, remove := DiffMemberIDs(currentIDs, desiredUserIDs)

		if len(remove) > 0 {
			if err := tx2.WithContext(ctx).
				Where("project_id = ? AND role = ? AND user_id IN ?", projectID, role, remove).
				Delete(&model.ProjectMember{}).Error; err != nil {
				return err
			}
		}

		for _, userID := range add {
			if err := tx2.WithContext(ctx).Model(&model.ProjectMember{}).Create(&model.ProjectMember{
				ProjectID: projectID,
				UserID:    userID,
				Role:      role,
			}).Error; err != nil {
				return err
			}
		}

		return nil
	})
}
