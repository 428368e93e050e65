package repository

import (
	"time"

	"github.com/LeakhenaSok/StudioFlow/internal/constant"
	"github.com/LeakhenaSok/StudioFlow/internal/model"
	"github.com/LeakhenaSok/StudioFlow/internal/util"
)

// Typed projections for the API responses. Join results are mapped into
// these at this single boundary, never handed to the controllers as raw
// rows.

type UserSummary struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	AvatarURL string `json:"avatarUrl"`
}

type ProjectFileView struct {
	ID         string      `json:"id"`
	FileName   string      `json:"fileName"`
	FileType   string      `json:"fileType"`
	Size       int64       `json:"size"`
	URL        string      `json:"url"`
	PreviewURL string      `json:"previewUrl,omitempty"`
	UploadedBy UserSummary `json:"uploadedBy"`
	UploadedAt *time.Time  `json:"uploadedAt"`
}

type ProjectDetail struct {
	ID            string                 `json:"id"`
	Title         string                 `json:"title"`
	AlbumType     constant.AlbumType     `json:"albumType"`
	Description   string                 `json:"description"`
	Status        constant.ProjectStatus `json:"status"`
	Deadline      time.Time              `json:"deadline"`
	Manager       *UserSummary           `json:"manager"`
	Photographers []UserSummary          `json:"photographers"`
	Designers     []UserSummary          `json:"designers"`
	Files         []ProjectFileView      `json:"files"`
	PhotoCount    int                    `json:"photoCount"`
	DesignCount   int                    `json:"designCount"`
	CreatedAt     *time.Time             `json:"createdAt"`
}

type ProjectListItem struct {
	ID          string                 `json:"id"`
	Title       string                 `json:"title"`
	AlbumType   constant.AlbumType     `json:"albumType"`
	Status      constant.ProjectStatus `json:"status"`
	Deadline    time.Time              `json:"deadline"`
	Manager     *UserSummary           `json:"manager"`
	MemberCount int                    `json:"memberCount"`
	CreatedAt   *time.Time             `json:"createdAt"`
}

func SummarizeUser(u model.User) UserSummary {
	return UserSummary{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		AvatarURL: u.AvatarURL,
	}
}

// UploaderSummary resolves the uploader of a file, falling back to a
// placeholder when the uploading profile no longer exists.
func UploaderSummary(f model.ProjectFile) UserSummary {
	if f.Uploader == nil {
		return UserSummary{Name: "Unknown uploader"}
	}
	return SummarizeUser(*f.Uploader)
}

// PartitionMembers splits a project's membership rows by role into the
// photographer and designer lists the dashboard shows.
func PartitionMembers(members []model.ProjectMember) (photographers, designers []UserSummary) {
	photographers = []UserSummary{}
	designers = []UserSummary{}

	for _, m := range members {
		summary := SummarizeUser(m.User)
		switch m.Role {
		case constant.MemberRolePhotographer:
			photographers = append(photographers, summary)
		case constant.MemberRoleDesigner:
			designers = append(designers, summary)
		}
	}

	return photographers, designers
}

// CountAssets derives the dashboard counters from a project's files.
func CountAssets(files []model.ProjectFile) (photoCount, designCount int) {
	for _, f := range files {
		if util.IsPhotoAsset(f.FileType) {
			photoCount++
		}
		if util.IsDesignAsset(f.FileType, f.FileName) {
			designCount++
		}
	}
	return photoCount, designCount
}
