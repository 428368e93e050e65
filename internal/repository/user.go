package repository

import (
	"context"
	"errors"

	constant "github.com/LeakhenaSok/StudioFlow/internal/constant"
	"github.com/LeakhenaSok/StudioFlow/internal/model"
	"gorm.io/gorm"
)

type UserRepository struct {
	*baseRepository
}

func (ur UserRepository) GetById(ctx context.Context, tx *gorm.DB, userId string) (*model.User, error) {
	ur.logger.Debugf("Get user by id: %s \n", userId)

	db := ur.getDB(tx)
	var user *model.User

	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	if err := db.WithContext(ctx).Model(&model.User{}).Where(&model.User{BaseModel: model.BaseModel{ID: userId}}).First(&user).Error; err != nil {
		return user, err
	}

	return user, nil
}

func (ur UserRepository) GetByEmail(ctx context.Context, tx *gorm.DB, email string) (*model.User, error) {
	ur.logger.Debugf("Get user by email: %s \n", email)

	db := ur.getDB(tx)
	var user *model.User

	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	if err := db.WithContext(ctx).Model(&model.User{}).Where(&model.User{Email: email}).First(&user).Error; err != nil {
		return user, err
	}

	return user, nil
}

func (ur UserRepository) List(ctx context.Context, tx *gorm.DB) ([]model.User, error) {
	ur.logger.Debug("List users")

	db := ur.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var users []model.User
	if err := db.WithContext(ctx).Model(&model.User{}).Order("name ASC").Find(&users).Error; err != nil {
		return nil, err
	}

	return users, nil
}

func (ur *UserRepository) Create(ctx context.Context, tx *gorm.DB, newUser model.User) (*model.User, error) {
	ur.logger.Debugf("Create user with email: %s \n", newUser.Email)

	db := ur.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	// Every identity gets exactly one profile; the default role is
	// photographer unless an admin set something else explicitly.
	if !newUser.Role.Valid() {
		newUser.Role = constant.UserRolePhotographer
	}

	if err := db.WithContext(ctx).Model(&model.User{}).Create(&newUser).Error; err != nil {
		return nil, err
	}

	return &newUser, nil
}

// Provision creates the profile for a brand-new identity inside one
// transaction and rejects duplicate emails. Role is always the default here;
// only the admin endpoints may set another one.
func (ur *UserRepository) Provision(ctx context.Context, tx *gorm.DB, newUser model.User) (*model.User, error) {
	ur.logger.Debugf("Provision profile for email: %s \n", newUser.Email)

	db := ur.getDB(tx)

	var created *model.User
	txErr := ur.withTx(db, func(tx2 *gorm.DB) error {
		_, err := ur.GetByEmail(ctx, tx2, newUser.Email)
		if err == nil {
			return gorm.ErrDuplicatedKey
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		newUser.Role = constant.UserRolePhotographer
		created, err = ur.Create(ctx, tx2, newUser)
		return err
	})

	return created, txErr
}

type UserUpdate struct {
	Name       *string
	Role       *constant.UserRole
	Department *string
	Position   *string
	Salary     *int64
	Phone      *string
	Telegram   *string
	AvatarURL  *string
}

func (ur *UserRepository) Update(ctx context.Context, tx *gorm.DB, userId string, patch UserUpdate) error {
	ur.logger.Debugf("Update user: %s \n", userId)

	db := ur.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	fields := map[string]any{}
	if patch.Name != nil {
		fields["name"] = *patch.Name
	}
	if patch.Role != nil {
		fields["role"] = *patch.Role
	}
	if patch.Department != nil {
		fields["department"] = *patch.Department
	}
	if patch.Position != nil {
		fields["position"] = *patch.Position
	}
	if patch.Salary != nil {
		fields["salary"] = *patch.Salary
	}
	if patch.Phone != nil {
		fields["phone"] = *patch.Phone
	}
	if patch.Telegram != nil {
		fields["telegram"] = *patch.Telegram
	}
	if patch.AvatarURL != nil {
		fields["avatar_url"] = *patch.AvatarURL
	}

	if len(fields) == 0 {
		return nil
	}

	result := db.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", userId).
		Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

func (ur *UserRepository) Delete(ctx context.Context, tx *gorm.DB, userId string) error {
	ur.logger.Debugf("Delete user: %s \n", userId)

	db := ur.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	result := db.WithContext(ctx).Where("id = ?", userId).Delete(&model.User{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}
