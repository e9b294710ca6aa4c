package repos

import (
	"context"

	"gorm.io/gorm"

	"github.com/orchestrahub/orchestra-backend/internal/logger"
	"github.com/orchestrahub/orchestra-backend/internal/types"
)

type UserTokenRepo interface {
	Create(ctx context.Context, tx *gorm.DB, token *types.UserToken) (*types.UserToken, error)
	GetByRefreshToken(ctx context.Context, tx *gorm.DB, refreshToken string) (*types.UserToken, error)
	GetByUserID(ctx context.Context, tx *gorm.DB, userID uint) ([]*types.UserToken, error)
	DeleteByUserID(ctx context.Context, tx *gorm.DB, userID uint) error
}

type userTokenRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewUserTokenRepo(db *gorm.DB, baseLog *logger.Logger) UserTokenRepo {
	return &userTokenRepo{db: db, log: baseLog.With("repo", "UserTokenRepo")}
}

func (r *userTokenRepo) Create(ctx context.Context, tx *gorm.DB, token *types.UserToken) (*types.UserToken, error) {
	if err := orDB(tx, r.db).WithContext(ctx).Create(token).Error; err != nil {
		return nil, translateErr(err)
	}
	return token, nil
}

func (r *userTokenRepo) GetByRefreshToken(ctx context.Context, tx *gorm.DB, refreshToken string) (*types.UserToken, error) {
	var token types.UserToken
	err := orDB(tx, r.db).WithContext(ctx).
		Where("refresh_token = ?", refreshToken).
		First(&token).Error
	if err != nil {
		return nil, translateErr(err)
	}
	return &token, nil
}

func (r *userTokenRepo) GetByUserID(ctx context.Context, tx *gorm.DB, userID uint) ([]*types.UserToken, error) {
	var tokens []*types.UserToken
	err := orDB(tx, r.db).WithContext(ctx).
		Where("user_id = ?", userID).
		Find(&tokens).Error
	if err != nil {
		return nil, translateErr(err)
	}
	return tokens, nil
}

func (r *userTokenRepo) DeleteByUserID(ctx context.Context, tx *gorm.DB, userID uint) error {
	err := orDB(tx, r.db).WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&types.UserToken{}).Error
	return translateErr(err)
}
