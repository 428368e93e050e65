package model

import (
	"github.com/LeakhenaSok/StudioFlow/internal/constant"
)

type User struct {
	BaseModel
	Email        string            `gorm:"unique;not null;type:citext" json:"email" form:"email" binding:"required,email"`
	Name         string            `gorm:"type:varchar(100);not null" json:"name" form:"name" binding:"required"`
	PasswordHash string            `gorm:"type:text;default:null" json:"-" form:"-"`
	Role         constant.UserRole `gorm:"type:varchar(20);not null;default:'photographer';check:role IN ('photographer','designer','admin')" json:"role" form:"role"`
	Department   string            `gorm:"type:varchar(100);default:null" json:"department" form:"department"`
	Position     string            `gorm:"type:varchar(100);default:null" json:"position" form:"position"`
	Salary       *int64            `gorm:"type:bigint;default:null" json:"salary,omitempty" form:"salary"`
	Phone        string            `gorm:"type:varchar(30);default:null" json:"phone" form:"phone"`
	Telegram     string            `gorm:"type:varchar(100);default:null" json:"telegram" form:"telegram"`
	AvatarURL    string            `gorm:"type:text;default:null" json:"avatarUrl" form:"avatarUrl"`
}

func (u User) TableName() string {
	return "users"
}

func (u User) IsAdmin() bool {
	return u.Role == constant.UserRoleAdmin
}
