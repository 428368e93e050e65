package model

type OAuthProvider struct {
	BaseModel
	ProviderUserId string `gorm:"type:text;not null;uniqueIndex" json:"providerUserId" form:"providerUserId"`
	ProviderType   string `gorm:"type:varchar(20);not null" json:"providerType" form:"providerType"`
	AccessToken    string `gorm:"type:text;default:null" json:"-"`

	UserID string `gorm:"type:text;not null" json:"userId" form:"userId"`
	User   User   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
}

func (o OAuthProvider) TableName() string {
	return "oauth_providers"
}
