package repos

import (
	"context"

	"gorm.io/gorm"

	"github.com/orchestrahub/orchestra-backend/internal/logger"
	"github.com/orchestrahub/orchestra-backend/internal/types"
)

type ConductorRepo interface {
	Create(ctx context.Context, tx *gorm.DB, conductor *types.Conductor) (*types.Conductor, error)
	GetAll(ctx context.Context, tx *gorm.DB) ([]*types.Conductor, error)
	GetByID(ctx context.Context, tx *gorm.DB, id uint) (*types.Conductor, error)
	GetByUserID(ctx context.Context, tx *gorm.DB, userID uint) (*types.Conductor, error)
	Update(ctx context.Context, tx *gorm.DB, conductor *types.Conductor) error
	Delete(ctx context.Context, tx *gorm.DB, id uint) error
}

type conductorRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewConductorRepo(db *gorm.DB, baseLog *logger.Logger) ConductorRepo {
	return &conductorRepo{db: db, log: baseLog.With("repo", "ConductorRepo")}
}

func (r *conductorRepo) Create(ctx context.Context, tx *gorm.DB, conductor *types.Conductor) (*types.Conductor, error) {
	if err := orDB(tx, r.db).WithContext(ctx).Create(conductor).Error; err != nil {
		return nil, translateErr(err)
	}
	return conductor, nil
}

func (r *conductorRepo) GetAll(ctx context.Context, tx *gorm.DB) ([]*types.Conductor, error) {
	var results []*types.Conductor
	if err := orDB(tx, r.db).WithContext(ctx).Order("id").Find(&results).Error; err != nil {
		return nil, translateErr(err)
	}
	return results, nil
}

func (r *conductorRepo) GetByID(ctx context.Context, tx *gorm.DB, id uint) (*types.Conductor, error) {
	var conductor types.Conductor
	if err := orDB(tx, r.db).WithContext(ctx).First(&conductor, id).Error; err != nil {
		return nil, translateErr(err)
	}
	return &conductor, nil
}

func (r *conductorRepo) GetByUserID(ctx context.Context, tx *gorm.DB, userID uint) (*types.Conductor, error) {
	var conductor types.Conductor
	err := orDB(tx, r.db).WithContext(ctx).
		Where("user_id = ?", userID).
		First(&conductor).Error
	if err != nil {
		return nil, translateErr(err)
	}
	return &conductor, nil
}

func (r *conductorRepo) Update(ctx context.Context, tx *gorm.DB, conductor *types.Conductor) error {
	if err := orDB(tx, r.db).WithContext(ctx).Save(conductor).Error; err != nil {
		return translateErr(err)
	}
	return nil
}

func (r *conductorRepo) Delete(ctx context.Context, tx *gorm.DB, id uint) error {
	res := orDB(tx, r.db).WithContext(ctx).Delete(&types.Conductor{}, id)
	if res.Error != nil {
		return translateErr(res.Error)
	}
	if res.RowsAffected == 0 {
		return translateErr(gorm.ErrRecordNotFound)
	}
	return nil
}
