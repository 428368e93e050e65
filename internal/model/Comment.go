package model

type Comment struct {
	BaseModel
	Content string `gorm:"type:text;not null" json:"content" form:"content" binding:"required,strNotEmpty"`

	ProjectID string  `gorm:"type:text;not null" json:"projectId"`
	Project   Project `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	AuthorID string `gorm:"type:text;not null" json:"authorId"`
	Author   *User  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"author,omitempty"`
}

func (c Comment) TableName() string {
	return "comments"
}
