package repository

import (
	"context"
	"time"

	constant "github.com/LeakhenaSok/StudioFlow/internal/constant"
	"github.com/LeakhenaSok/StudioFlow/internal/model"
	"gorm.io/gorm"
)

type ProjectRepository struct {
	*baseRepository
	members *ProjectMemberRepository
}

// Create inserts the project and its initial member lists in one
// transaction.
func (pr ProjectRepository) Create(ctx context.Context, tx *gorm.DB, project *model.Project, photographerIDs, designerIDs []string) (*model.Project, error) {
	pr.logger.Debugf("Create project with title: %s \n", project.Title)

	db := pr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	txErr := pr.withTx(db, func(tx2 *gorm.DB) error {
		if err := tx2.WithContext(ctx).Model(&model.Project{}).Create(project).Error; err != nil {
			return err
		}

		if err := pr.members.ReplaceForRole(ctx, tx2, project.ID, constant.MemberRolePhotographer, photographerIDs); err != nil {
			return err
		}

		return pr.members.ReplaceForRole(ctx, tx2, project.ID, constant.MemberRoleDesigner, designerIDs)
	})
	if txErr != nil {
		return nil, txErr
	}

	return project, nil
}

func (pr ProjectRepository) GetById(ctx context.Context, tx *gorm.DB, projectID string) (*model.Project, error) {
	pr.logger.Debugf("Get project by id: %s \n", projectID)

	db := pr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var project model.Project
	if err := db.WithContext(ctx).Model(&model.Project{}).
		Where(&model.Project{BaseModel: model.BaseModel{ID: projectID}}).
		First(&project).Error; err != nil {
		return nil, err
	}

	return &project, nil
}

// GetDetail loads a project with its manager, partitioned member lists and
// files (uploader attached), and derives the dashboard counters. Presigned
// URLs are generated per file so the client never sees raw object keys.
func (pr ProjectRepository) GetDetail(ctx context.Context, tx *gorm.DB, projectID string) (*ProjectDetail, error) {
	pr.logger.Debugf("Get project detail: %s \n", projectID)

	db := pr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var project model.Project
	if err := db.WithContext(ctx).Model(&model.Project{}).
		Preload("Manager").
		Preload("Members.User").
		Preload("Files.Uploader").
		Where(&model.Project{BaseModel: model.BaseModel{ID: projectID}}).
		First(&project).Error; err != nil {
		return nil, err
	}

	photographers, designers := PartitionMembers(project.Members)
	photoCount, designCount := CountAssets(project.Files)

	files := make([]ProjectFileView, 0, len(project.Files))
	for _, f := range project.Files {
		url, err := f.ToPresignedUrl(ctx, pr.s3)
		if err != nil {
			return nil, err
		}
		previewURL, err := f.ToPreviewPresignedUrl(ctx, pr.s3)
		if err != nil {
			return nil, err
		}

		files = append(files, ProjectFileView{
			ID:         f.ID,
			FileName:   f.FileName,
			FileType:   f.FileType,
			Size:       f.Size,
			URL:        url,
			PreviewURL: previewURL,
			UploadedBy: UploaderSummary(f),
			UploadedAt: f.CreatedAt,
		})
	}

	var manager *UserSummary
	if project.Manager != nil {
		summary := SummarizeUser(*project.Manager)
		manager = &summary
	}

	return &ProjectDetail{
		ID:            project.ID,
		Title:         project.Title,
		AlbumType:     project.AlbumType,
		Description:   project.Description,
		Status:        project.Status,
		Deadline:      project.Deadline,
		Manager:       manager,
		Photographers: photographers,
		Designers:     designers,
		Files:         files,
		PhotoCount:    photoCount,
		DesignCount:   designCount,
		CreatedAt:     project.CreatedAt,
	}, nil
}

// ListVisible returns the projects the caller may read: the ones they
// manage, the ones they are a member of, or every project for admins.
func (pr ProjectRepository) ListVisible(ctx context.Context, tx *gorm.DB, callerID string, isAdmin bool, search string, status []constant.ProjectStatus, page, pageSize uint) ([]ProjectListItem, int64, error) {
	pr.logger.Debugf("List visible projects for userID: %s (admin: %v) \n", callerID, isAdmin)

	db := pr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	buildQuery := func() *gorm.DB {
		query := db.WithContext(ctx).Model(&model.Project{})

		if !isAdmin {
			query = query.Where(
				"projects.manager_id = ? OR projects.id IN (?)",
				callerID,
				db.Model(&model.ProjectMember{}).Select("project_id").Where("user_id = ?", callerID),
			)
		}

		if len(status) > 0 {
			query = query.Where("projects.status IN (?)", status)
		}

		if search != "" {
			query = query.Where("projects.title ILIKE ?", "%"+search+"%")
		}

		return query
	}

	var projects []model.Project
	if err := buildQuery().
		Preload("Manager").
		Preload("Members").
		Order("projects.deadline ASC").
		Offset(int((page - 1) * pageSize)).
		Limit(int(pageSize)).
		Find(&projects).Error; err != nil {
		return nil, 0, err
	}

	var totalProjects int64
	if err := buildQuery().Count(&totalProjects).Error; err != nil {
		return nil, 0, err
	}

	items := make([]ProjectListItem, 0, len(projects))
	for _, project := range projects {
		var manager *UserSummary
		if project.Manager != nil {
			summary := SummarizeUser(*project.Manager)
			manager = &summary
		}

		items = append(items, ProjectListItem{
			ID:          project.ID,
			Title:       project.Title,
			AlbumType:   project.AlbumType,
			Status:      project.Status,
			Deadline:    project.Deadline,
			Manager:     manager,
			MemberCount: len(project.Members),
			CreatedAt:   project.CreatedAt,
		})
	}

	return items, totalProjects, nil
}

type ProjectUpdate struct {
	Title       *string
	AlbumType   *constant.AlbumType
	Description *string
	Status      *constant.ProjectStatus
	Deadline    *time.Time
	ManagerID   *string

	// When non-nil the corresponding member list is reconciled to exactly
	// this set inside the same transaction as the field update.
	PhotographerIDs *[]string
	DesignerIDs     *[]string
}

func (pr *ProjectRepository) Update(ctx context.Context, tx *gorm.DB, projectID string, patch ProjectUpdate) error {
	pr.logger.Debugf("Update project: %s \n", projectID)

	db := pr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	fields := map[string]any{}
	if patch.Title != nil {
		fields["title"] = *patch.Title
	}
	if patch.AlbumType != nil {
		fields["album_type"] = *patch.AlbumType
	}
	if patch.Description != nil {
		fields["description"] = *patch.Description
	}
	if patch.Status != nil {
		fields["status"] = *patch.Status
	}
	if patch.Deadline != nil {
		fields["deadline"] = *patch.Deadline
	}
	if patch.ManagerID != nil {
		fields["manager_id"] = *patch.ManagerID
	}

	return pr.withTx(db, func(tx2 *gorm.DB) error {
		if len(fields) > 0 {
			result := tx2.WithContext(ctx).Model(&model.Project{}).
				Where("id = ?", projectID).
				Updates(fields)
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return gorm.ErrRecordNotFound
			}
		}

		if patch.PhotographerIDs != nil {
			if err := pr.members.ReplaceForRole(ctx, tx2, projectID, constant.MemberRolePhotographer, *patch.PhotographerIDs); err != nil {
				return err
			}
		}

		if patch.DesignerIDs != nil {
			if err := pr.members.ReplaceForRole(ctx, tx2, projectID, constant.MemberRoleDesigner, *patch.DesignerIDs); err != nil {
				return err
			}
		}

		return nil
	})
}

// Delete removes the project row; members, files, events and comments go
// with it through the FK cascades. Stored objects are removed best-effort
// after the row delete commits.
func (pr *ProjectRepository) Delete(ctx context.Context, tx *gorm.DB, projectID string) error {
	pr.logger.Debugf("Delete project: %s \n", projectID)

	db := pr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var files []model.ProjectFile
	if err := db.WithContext(ctx).Model(&model.ProjectFile{}).
		Where("project_id = ?", projectID).
		Find(&files).Error; err != nil {
		return err
	}

	result := db.WithContext(ctx).Where("id = ?", projectID).Delete(&model.Project{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	for _, f := range files {
		if err := f.DeleteObjects(ctx, pr.s3); err != nil {
			pr.logger.Errorf("Failed to delete stored object for file %s: %v", f.ID, err)
		}
	}

	return nil
}
