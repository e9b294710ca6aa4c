package repos

import (
	"context"

	"gorm.io/gorm"

	"github.com/orchestrahub/orchestra-backend/internal/logger"
	"github.com/orchestrahub/orchestra-backend/internal/types"
)

type UserRepo interface {
	Create(ctx context.Context, tx *gorm.DB, user *types.User) (*types.User, error)
	GetAll(ctx context.Context, tx *gorm.DB) ([]*types.User, error)
	GetByID(ctx context.Context, tx *gorm.DB, id uint) (*types.User, error)
	GetByUsername(ctx context.Context, tx *gorm.DB, username string) (*types.User, error)
	UsernameExists(ctx context.Context, tx *gorm.DB, username string) (bool, error)
	Update(ctx context.Context, tx *gorm.DB, user *types.User) error
	Delete(ctx context.Context, tx *gorm.DB, id uint) error
}

type userRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewUserRepo(db *gorm.DB, baseLog *logger.Logger) UserRepo {
	return &userRepo{db: db, log: baseLog.With("repo", "UserRepo")}
}

func (r *userRepo) Create(ctx context.Context, tx *gorm.DB, user *types.User) (*types.User, error) {
	if err := orDB(tx, r.db).WithContext(ctx).Create(user).Error; err != nil {
		return nil, translateErr(err)
	}
	return user, nil
}

func (r *userRepo) GetAll(ctx context.Context, tx *gorm.DB) ([]*types.User, error) {
	var results []*types.User
	if err := orDB(tx, r.db).WithContext(ctx).Order("id").Find(&results).Error; err != nil {
		return nil, translateErr(err)
	}
	return results, nil
}

func (r *userRepo) GetByID(ctx context.Context, tx *gorm.DB, id uint) (*types.User, error) {
	var user types.User
	if err := orDB(tx, r.db).WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, translateErr(err)
	}
	return &user, nil
}

func (r *userRepo) GetByUsername(ctx context.Context, tx *gorm.DB, username string) (*types.User, error) {
	var user types.User
	err := orDB(tx, r.db).WithContext(ctx).
		Where("username = ?", username).
		Order("id").
		First(&user).Error
	if err != nil {
		return nil, translateErr(err)
	}
	return &user, nil
}

func (r *userRepo) UsernameExists(ctx context.Context, tx *gorm.DB, username string) (bool, error) {
	var count int64
	err := orDB(tx, r.db).WithContext(ctx).
		Model(&types.User{}).
		Where("username = ?", username).
		Count(&count).Error
	if err != nil {
		return false, translateErr(err)
	}
	return count > 0, nil
}

func (r *userRepo) Update(ctx context.Context, tx *gorm.DB, user *types.User) error {
	res := orDB(tx, r.db).WithContext(ctx).Save(user)
	if res.Error != nil {
		return translateErr(res.Error)
	}
	return nil
}

func (r *userRepo) Delete(ctx context.Context, tx *gorm.DB, id uint) error {
	res := orDB(tx, r.db).WithContext(ctx).Delete(&types.User{}, id)
	if res.Error != nil {
		return translateErr(res.Error)
	}
	if res.RowsAffected == 0 {
		return translateErr(gorm.ErrRecordNotFound)
	}
	return nil
}
