package model

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
)

type ProjectFile struct {
	BaseModel
	FileName   string `gorm:"type:text;not null" json:"fileName" form:"fileName" binding:"required"`
	FileType   string `gorm:"type:varchar(100);not null" json:"fileType" form:"fileType"`
	Size       int64  `gorm:"type:bigint;not null" json:"size" form:"size"`
	BucketName string `gorm:"type:text;not null" json:"-"`
	ObjectKey  string `gorm:"type:text;not null;uniqueIndex" json:"-"`
	PreviewKey string `gorm:"type:text;default:null" json:"-"`

	ProjectID string  `gorm:"type:text;not null" json:"projectId"`
	Project   Project `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	UploaderID *string `gorm:"type:text;default:null" json:"uploaderId"`
	Uploader   *User   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"uploader,omitempty"`
}

func (f ProjectFile) TableName() string {
	return "project_files"
}

func (f ProjectFile) IsImage() bool {
	return strings.HasPrefix(strings.ToLower(f.FileType), "image/")
}

func (f ProjectFile) ToPresignedUrl(ctx context.Context, s3 *minio.Client) (string, error) {
	if f.BucketName == "" || f.ObjectKey == "" {
		return "", errors.New("bucket name and object key cannot be empty")
	}

	// 60min expiration time
	presignedURL, err := s3.PresignedGetObject(ctx, f.BucketName, f.ObjectKey, time.Minute*60, nil)
	if err != nil {
		return "", err
	}
	return presignedURL.String(), nil
}

func (f ProjectFile) ToPreviewPresignedUrl(ctx context.Context, s3 *minio.Client) (string, error) {
	if f.PreviewKey == "" {
		return "", nil
	}

	presignedURL, err := s3.PresignedGetObject(ctx, f.BucketName, f.PreviewKey, time.Minute*60, nil)
	if err != nil {
		return "", err
	}
	return presignedURL.String(), nil
}

// DeleteObjects removes the stored object and its preview, if any.
func (f ProjectFile) DeleteObjects(ctx context.Context, s3 *minio.Client) error {
	if f.BucketName == "" || f.ObjectKey == "" {
		return errors.New("bucket name and object key cannot be empty")
	}

	if err := s3.RemoveObject(ctx, f.BucketName, f.ObjectKey, minio.RemoveObjectOptions{}); err != nil {
		return err
	}

	if f.PreviewKey != "" {
		if err := s3.RemoveObject(ctx, f.BucketName, f.PreviewKey, minio.RemoveObjectOptions{}); err != nil {
			return err
		}
	}

	return nil
}
