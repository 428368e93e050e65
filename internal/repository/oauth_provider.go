package repository

import (
	"context"
	"errors"

	constant "github.com/LeakhenaSok/StudioFlow/internal/constant"
	"github.com/LeakhenaSok/StudioFlow/internal/model"
	"gorm.io/gorm"
)

type OAuthProviderRepository struct {
	*baseRepository
}

func (or *OAuthProviderRepository) CreateOrUpdateByProviderUserId(ctx context.Context, tx *gorm.DB, provider model.OAuthProvider) error {
	or.logger.Debugf("Create or update oauth provider for provider user id: %s \n", provider.ProviderUserId)

	db := or.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var existing model.OAuthProvider
	err := db.WithContext(ctx).Model(&model.OAuthProvider{}).Where(&model.OAuthProvider{
		ProviderUserId: provider.ProviderUserId,
	}).First(&existing).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		return db.WithContext(ctx).Model(&model.OAuthProvider{}).Create(&provider).Error
	}

	return db.WithContext(ctx).Model(&model.OAuthProvider{}).Where("id = ?", existing.ID).Updates(model.OAuthProvider{
		AccessToken:  provider.AccessToken,
		ProviderType: provider.ProviderType,
		UserID:       provider.UserID,
	}).Error
}
