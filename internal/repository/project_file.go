package repository

import (
	"context"

	constant "github.com/LeakhenaSok/StudioFlow/internal/constant"
	"github.com/LeakhenaSok/StudioFlow/internal/model"
	"gorm.io/gorm"
)

type ProjectFileRepository struct {
	*baseRepository
}

func (pf *ProjectFileRepository) Create(ctx context.Context, tx *gorm.DB, file *model.ProjectFile) (*model.ProjectFile, error) {
	pf.logger.Debugf("Create project file %s for project %s \n", file.FileName, file.ProjectID)

	db := pf.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	if err := db.WithContext(ctx).Model(&model.ProjectFile{}).Create(file).Error; err != nil {
		return nil, err
	}

	return file, nil
}

func (pf ProjectFileRepository) GetById(ctx context.Context, tx *gorm.DB, fileID string) (*model.ProjectFile, error) {
	pf.logger.Debugf("Get project file by id: %s \n", fileID)

	db := pf.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var file model.ProjectFile
	if err := db.WithContext(ctx).Model(&model.ProjectFile{}).
		Preload("Uploader").
		Where(&model.ProjectFile{BaseModel: model.BaseModel{ID: fileID}}).
		First(&file).Error; err != nil {
		return nil, err
	}

	return &file, nil
}

// Delete removes the row first, then the stored objects. A dangling object
// is recoverable garbage; a dangling row pointing at a deleted object is a
// broken download link.
func (pf *ProjectFileRepository) Delete(ctx context.Context, tx *gorm.DB, file *model.ProjectFile) error {
	pf.logger.Debugf("Delete project file: %s \n", file.ID)

	db := pf.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	result := db.WithContext(ctx).Where("id = ?", file.ID).Delete(&model.ProjectFile{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	if err := file.DeleteObjects(ctx, pf.s3); err != nil {
		pf.logger.Errorf("Failed to delete stored object for file %s: %v", file.ID, err)
	}

	return nil
}
