package model

import (
	"time"

	"github.com/LeakhenaSok/StudioFlow/internal/constant"
)

type CalendarEvent struct {
	BaseModel
	Title       string             `gorm:"type:varchar(100);not null" json:"title" form:"title" binding:"required"`
	Description string             `gorm:"type:text;default:null" json:"description" form:"description"`
	Date        time.Time          `gorm:"type:date;not null" json:"date" form:"date" binding:"required"`
	Time        string             `gorm:"type:varchar(8);not null" json:"time" form:"time" binding:"required"`
	EventType   constant.EventType `gorm:"type:varchar(20);not null;check:event_type IN ('meeting','photoshoot','design','deadline','other')" json:"eventType" form:"eventType"`

	CreatedByID string `gorm:"type:text;not null" json:"createdById"`
	CreatedBy   *User  `gorm:"foreignKey:CreatedByID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"createdBy,omitempty"`

	ProjectID *string  `gorm:"type:text;default:null" json:"projectId"`
	Project   *Project `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
}

func (e CalendarEvent) TableName() string {
	return "calendar_events"
}
