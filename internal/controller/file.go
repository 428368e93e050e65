package controller

import (
	"errors"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/LeakhenaSok/StudioFlow/internal/model"
	"github.com/LeakhenaSok/StudioFlow/internal/util"
	"github.com/LeakhenaSok/StudioFlow/pkg/preview"
	"github.com/gin-gonic/gin"
)

type FileController struct {
	*baseController
}

const (
	ErrFileIdRequired = "file ID is required"
	// Thumbnails are bounded so previews stay cheap to serve.
	PreviewMaxWidth  = 480
	PreviewMaxHeight = 480
)

// UploadFile stores the uploaded object under the project's directory and,
// for images and PDFs, generates a lightweight preview object next to it.
// Preview generation is best-effort: a failed thumbnail never fails the
// upload.
func (fc FileController) UploadFile(ctx *gin.Context) {
	authUser, err := fc.getAuthUser(ctx)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "Unauthorized", util.GenerateErrorMessages(err), nil)
		return
	}

	projectId := ctx.Param("projectId")
	if projectId == "" {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Project id is required", util.GenerateErrorMessages(errors.New(ErrProjectIdRequired), "projectId"), nil)
		return
	}

	if !fc.app.Policy.CanUploadFile(ctx, projectId, authUser.ID) {
		util.ResponseFailed(ctx, http.StatusForbidden, "You do not have access to this project", util.GenerateErrorMessages(errors.New(ErrPermissionDenied)), nil)
		return
	}

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "A file is required", util.GenerateErrorMessages(err, "file"), nil)
		return
	}

	info, err := util.UploadFileToS3ByFileHeader(fileHeader, &util.FileUploadOptions{
		DirectoryPath: util.GetProjectDirectoryPath(projectId),
		UniquePrefix:  true,
		Bucket:        fc.app.Config.Minio.BUCKET,
		S3:            fc.app.S3,
	})
	if err != nil {
		fc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to upload file", util.GenerateErrorMessages(err), nil)
		return
	}

	uploaderId := authUser.ID
	file := model.ProjectFile{
		FileName:   fileHeader.Filename,
		FileType:   fileHeader.Header.Get("Content-Type"),
		Size:       fileHeader.Size,
		BucketName: fc.app.Config.Minio.BUCKET,
		ObjectKey:  info.Key,
		ProjectID:  projectId,
		UploaderID: &uploaderId,
	}
	file.PreviewKey = fc.generatePreview(ctx, file, fileHeader)

	created, err := fc.app.Repository.ProjectFile.Create(ctx, nil, &file)
	if err != nil {
		fc.app.Logger.Error(err)
		// The object is already stored, clean it up so the bucket does not
		// accumulate rows the table never saw.
		if removeErr := file.DeleteObjects(ctx, fc.app.S3); removeErr != nil {
			fc.app.Logger.Errorf("failed to remove orphan object %s: %v", file.ObjectKey, removeErr)
		}
		util.ResponseFailed(ctx, http.StatusBadRequest, "Failed to save file", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"file": created,
	})
}

// generatePreview returns the object key of the preview, or "" when no
// preview could be produced.
func (fc FileController) generatePreview(ctx *gin.Context, file model.ProjectFile, fileHeader *multipart.FileHeader) string {
	isPdf := strings.EqualFold(file.FileType, "application/pdf")
	if !file.IsImage() && !isPdf {
		return ""
	}

	outFile, err := util.CreateTemp("preview-*" + filepath.Ext(fileHeader.Filename))
	if err != nil {
		fc.app.Logger.Errorf("failed to create temp preview file: %v", err)
		return ""
	}
	outPath := outFile.Name()
	outFile.Close()
	defer os.Remove(outPath)

	if file.IsImage() {
		inFile, err := util.CreateTemp("upload-*" + filepath.Ext(fileHeader.Filename))
		if err != nil {
			fc.app.Logger.Errorf("failed to create temp upload file: %v", err)
			return ""
		}
		inPath := inFile.Name()
		inFile.Close()
		defer os.Remove(inPath)

		if err := ctx.SaveUploadedFile(fileHeader, inPath); err != nil {
			fc.app.Logger.Errorf("failed to save upload for preview: %v", err)
			return ""
		}

		if err := preview.MakeThumbnail(inPath, outPath, PreviewMaxWidth, PreviewMaxHeight); err != nil {
			fc.app.Logger.Errorf("failed to generate thumbnail for %s: %v", fileHeader.Filename, err)
			return ""
		}
	} else {
		if err := preview.OptimizePdf(*fileHeader, outPath); err != nil {
			fc.app.Logger.Errorf("failed to optimize pdf %s: %v", fileHeader.Filename, err)
			return ""
		}

		pageCount, err := preview.GetPageCount(outPath)
		if err != nil || pageCount < 1 {
			fc.app.Logger.Errorf("pdf %s has no readable pages: %v", fileHeader.Filename, err)
			return ""
		}
	}

	info, err := util.UploadFileToS3ByPath(outPath, &util.FileUploadOptions{
		DirectoryPath: util.GetPreviewDirectoryPath(file.ProjectID),
		UniquePrefix:  true,
		Bucket:        fc.app.Config.Minio.BUCKET,
		S3:            fc.app.S3,
	})
	if err != nil {
		fc.app.Logger.Errorf("failed to upload preview for %s: %v", fileHeader.Filename, err)
		return ""
	}

	return info.Key
}

// getProjectFile resolves :projectId/:fileId and rejects a file that does
// not belong to the addressed project. Writes the error response itself
// when it returns false.
func (fc FileController) getProjectFile(ctx *gin.Context) (*model.ProjectFile, bool) {
	projectId := ctx.Param("projectId")
	if projectId == "" {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Project id is required", util.GenerateErrorMessages(errors.New(ErrProjectIdRequired), "projectId"), nil)
		return nil, false
	}

	fileId := ctx.Param("fileId")
	if fileId == "" {
		util.ResponseFailed(ctx, http.StatusBadRequest, "File id is required", util.GenerateErrorMessages(errors.New(ErrFileIdRequired), "fileId"), nil)
		return nil, false
	}

	file, err := fc.app.Repository.ProjectFile.GetById(ctx, nil, fileId)
	if err != nil || file.ProjectID != projectId {
		util.ResponseFailed(ctx, http.StatusNotFound, "File not found", util.GenerateErrorMessages(errors.New("file not found in project"), "fileId"), nil)
		return nil, false
	}

	return file, true
}

// GetFileUrl returns short-lived presigned URLs for the object and its
// preview.
func (fc FileController) GetFileUrl(ctx *gin.Context) {
	authUser, err := fc.getAuthUser(ctx)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "Unauthorized", util.GenerateErrorMessages(err), nil)
		return
	}

	file, ok := fc.getProjectFile(ctx)
	if !ok {
		return
	}

	if !fc.app.Policy.CanReadFiles(ctx, file.ProjectID, authUser.ID) {
		util.ResponseFailed(ctx, http.StatusForbidden, "You do not have access to this project", util.GenerateErrorMessages(errors.New(ErrPermissionDenied)), nil)
		return
	}

	url, err := file.ToPresignedUrl(ctx, fc.app.S3)
	if err != nil {
		fc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to generate file URL", util.GenerateErrorMessages(err), nil)
		return
	}

	previewUrl, err := file.ToPreviewPresignedUrl(ctx, fc.app.S3)
	if err != nil {
		fc.app.Logger.Errorf("failed to presign preview for %s: %v", file.ID, err)
		previewUrl = ""
	}

	util.ResponseSuccess(ctx, gin.H{
		"url":        url,
		"previewUrl": previewUrl,
	})
}

func (fc FileController) DeleteFile(ctx *gin.Context) {
	authUser, err := fc.getAuthUser(ctx)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "Unauthorized", util.GenerateErrorMessages(err), nil)
		return
	}

	file, ok := fc.getProjectFile(ctx)
	if !ok {
		return
	}

	if !fc.app.Policy.CanDeleteFile(ctx, file.UploaderID, authUser.ID) {
		util.ResponseFailed(ctx, http.StatusForbidden, "Only the uploader or an admin may delete this file", util.GenerateErrorMessages(errors.New(ErrPermissionDenied)), nil)
		return
	}

	if err := fc.app.Repository.ProjectFile.Delete(ctx, nil, file); err != nil {
		fc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusBadRequest, "Failed to delete file", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, nil)
}
