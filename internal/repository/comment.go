package repository

import (
	"context"

	constant "github.com/LeakhenaSok/StudioFlow/internal/constant"
	"github.com/LeakhenaSok/StudioFlow/internal/model"
	"gorm.io/gorm"
)

type CommentRepository struct {
	*baseRepository
}

func (cr CommentRepository) ListByProject(ctx context.Context, tx *gorm.DB, projectID string) ([]model.Comment, error) {
	cr.logger.Debugf("List comments of project: %s \n", projectID)

	db := cr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var comments []model.Comment
	if err := db.WithContext(ctx).Model(&model.Comment{}).
		Preload("Author").
		Where("project_id = ?", projectID).
		Order("created_at ASC").
		Find(&comments).Error; err != nil {
		return nil, err
	}

	return comments, nil
}

func (cr *CommentRepository) Create(ctx context.Context, tx *gorm.DB, comment *model.Comment) (*model.Comment, error) {
	cr.logger.Debugf("Create comment on project: %s \n", comment.ProjectID)

	db := cr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	if err := db.WithContext(ctx).Model(&model.Comment{}).Create(comment).Error; err != nil {
		return nil, err
	}

	return comment, nil
}

func (cr CommentRepository) GetById(ctx context.Context, tx *gorm.DB, commentID string) (*model.Comment, error) {
	cr.logger.Debugf("Get comment by id: %s \n", commentID)

	db := cr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var comment model.Comment
	if err := db.WithContext(ctx).Model(&model.Comment{}).
		Where(&model.Comment{BaseModel: model.BaseModel{ID: commentID}}).
		First(&comment).Error; err != nil {
		return nil, err
	}

	return &comment, nil
}

func (cr *CommentRepository) UpdateContent(ctx context.Context, tx *gorm.DB, commentID, content string) error {
	cr.logger.Debugf("Update comment: %s \n", commentID)

	db := cr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	result := db.WithContext(ctx).Model(&model.Comment{}).
		Where("id = ?", commentID).
		Update("content", content)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

func (cr *CommentRepository) Delete(ctx context.Context, tx *gorm.DB, commentID string) error {
	cr.logger.Debugf("Delete comment: %s \n", commentID)

	db := cr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	result := db.WithContext(ctx).Where("id = ?", commentID).Delete(&model.Comment{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}
