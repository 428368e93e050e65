package model

import (
	"github.com/LeakhenaSok/StudioFlow/internal/constant"
)

// ProjectMember links a user to a project under one of the two member roles.
// A user may hold both roles on the same project, but each at most once.
type ProjectMember struct {
	BaseModel
	ProjectID string              `gorm:"type:text;not null;uniqueIndex:idx_project_user_role" json:"projectId" form:"projectId"`
	UserID    string              `gorm:"type:text;not null;uniqueIndex:idx_project_user_role" json:"userId" form:"userId"`
	Role      constant.MemberRole `gorm:"type:varchar(20);not null;uniqueIndex:idx_project_user_role;check:role IN ('photographer','designer')" json:"role" form:"role"`

	Project Project `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	User    User    `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user,omitempty"`
}

func (pm ProjectMember) TableName() string {
	return "project_members"
}
