package model

import (
	"time"

	"github.com/LeakhenaSok/StudioFlow/internal/constant"
)

type Project struct {
	BaseModel
	Title       string                 `gorm:"type:varchar(100);not null" json:"title" form:"title" binding:"required"`
	AlbumType   constant.AlbumType     `gorm:"type:varchar(20);not null;check:album_type IN ('wedding','portrait','commercial','event','product','other')" json:"albumType" form:"albumType"`
	Description string                 `gorm:"type:text;default:null" json:"description" form:"description"`
	Status      constant.ProjectStatus `gorm:"type:varchar(20);not null;default:'planning';check:status IN ('planning','in-progress','review','completed')" json:"status" form:"status"`
	Deadline    time.Time              `gorm:"type:date;not null" json:"deadline" form:"deadline" binding:"required"`

	// Losing the manager must not take the project with it
	ManagerID *string `gorm:"type:text;default:null" json:"managerId" form:"managerId"`
	Manager   *User   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"manager,omitempty"`

	Members []ProjectMember `json:"members,omitempty"`
	Files   []ProjectFile   `json:"files,omitempty"`
}

func (p Project) TableName() string {
	return "projects"
}
