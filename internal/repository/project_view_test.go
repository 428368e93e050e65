package repository

import (
	"testing"

	"github.com/LeakhenaSok/StudioFlow/internal/constant"
	"github.com/LeakhenaSok/StudioFlow/internal/model"
)

func memberRow(userID, name string, role constant.MemberRole) model.ProjectMember {
	return model.ProjectMember{
		UserID: userID,
		Role:   role,
		User: model.User{
			BaseModel: model.BaseModel{ID: userID},
			Name:      name,
		},
	}
}

func TestPartitionMembers(t *testing.T) {
	members := []model.ProjectMember{
		memberRow("u1", "Alice", constant.MemberRolePhotographer),
		memberRow("u2", "Bora", constant.MemberRoleDesigner),
		memberRow("u3", "Chan", constant.MemberRolePhotographer),
		// Same user holding both roles appears in both lists
		memberRow("u2", "Bora", constant.MemberRolePhotographer),
	}

	photographers, designers := PartitionMembers(members)

	if len(photographers) != 3 {
		t.Errorf("Expected 3 photographers, got %d", len(photographers))
	}
	if len(designers) != 1 || designers[0].Name != "Bora" {
		t.Errorf("Expected designers to be [Bora], got %v", designers)
	}
}

func TestPartitionMembersEmpty(t *testing.T) {
	photographers, designers := PartitionMembers(nil)
	if photographers == nil || designers == nil {
		t.Error("Partition lists must be non-nil so the API renders [] instead of null")
	}
}

func TestCountAssets(t *testing.T) {
	files := []model.ProjectFile{
		{FileName: "IMG_1.jpg", FileType: "image/jpeg"},
		{FileName: "IMG_2.png", FileType: "image/png"},
		{FileName: "cover.psd", FileType: "application/octet-stream"},
		{FileName: "contract.pdf", FileType: "application/pdf"},
		{FileName: "album-design.zip", FileType: "application/zip"},
	}

	photoCount, designCount := CountAssets(files)

	if photoCount != 2 {
		t.Errorf("Expected 2 photos, got %d", photoCount)
	}
	if designCount != 2 {
		t.Errorf("Expected 2 design assets, got %d", designCount)
	}
}

func TestUploaderSummaryFallback(t *testing.T) {
	withUploader := model.ProjectFile{
		Uploader: &model.User{BaseModel: model.BaseModel{ID: "u1"}, Name: "Alice"},
	}
	if got := UploaderSummary(withUploader); got.Name != "Alice" || got.ID != "u1" {
		t.Errorf("Expected uploader summary for Alice, got %+v", got)
	}

	orphan := model.ProjectFile{}
	if got := UploaderSummary(orphan); got.Name != "Unknown uploader" || got.ID != "" {
		t.Errorf("Expected unknown uploader placeholder, got %+v", got)
	}
}
