package repos

import (
	"context"

	"gorm.io/gorm"

	"github.com/orchestrahub/orchestra-backend/internal/logger"
	"github.com/orchestrahub/orchestra-backend/internal/types"
)

type ConcertRepo interface {
	Create(ctx context.Context, tx *gorm.DB, concert *types.Concert) (*types.Concert, error)
	GetAll(ctx context.Context, tx *gorm.DB) ([]*types.Concert, error)
	GetByID(ctx context.Context, tx *gorm.DB, id uint) (*types.Concert, error)
	GetByName(ctx context.Context, tx *gorm.DB, name string) (*types.Concert, error)
	ListByOrchestra(ctx context.Context, tx *gorm.DB, orchestraID uint) ([]*types.Concert, error)
	CountByOrchestra(ctx context.Context, tx *gorm.DB, orchestraID uint) (int64, error)
	Update(ctx context.Context, tx *gorm.DB, concert *types.Concert) error
	Delete(ctx context.Context, tx *gorm.DB, id uint) error
}

type concertRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewConcertRepo(db *gorm.DB, baseLog *logger.Logger) ConcertRepo {
	return &concertRepo{db: db, log: baseLog.With("repo", "ConcertRepo")}
}

func (r *concertRepo) Create(ctx context.Context, tx *gorm.DB, concert *types.Concert) (*types.Concert, error) {
	if err := orDB(tx, r.db).WithContext(ctx).Create(concert).Error; err != nil {
		return nil, translateErr(err)
	}
	return concert, nil
}

func (r *concertRepo) GetAll(ctx context.Context, tx *gorm.DB) ([]*types.Concert, error) {
	var results []*types.Concert
	if err := orDB(tx, r.db).WithContext(ctx).Order("id").Find(&results).Error; err != nil {
		return nil, translateErr(err)
	}
	return results, nil
}

func (r *concertRepo) GetByID(ctx context.Context, tx *gorm.DB, id uint) (*types.Concert, error) {
	var concert types.Concert
	if err := orDB(tx, r.db).WithContext(ctx).First(&concert, id).Error; err != nil {
		return nil, translateErr(err)
	}
	return &concert, nil
}

func (r *concertRepo) GetByName(ctx context.Context, tx *gorm.DB, name string) (*types.Concert, error) {
	var concert types.Concert
	err := orDB(tx, r.db).WithContext(ctx).
		Where("name = ?", name).
		Order("id").
		First(&concert).Error
	if err != nil {
		return nil, translateErr(err)
	}
	return &concert, nil
}

func (r *concertRepo) ListByOrchestra(ctx context.Context, tx *gorm.DB, orchestraID uint) ([]*types.Concert, error) {
	var results []*types.Concert
	err := orDB(tx, r.db).WithContext(ctx).
		Where("orchestra_id = ?", orchestraID).
		Order("id").
		Find(&results).Error
	if err != nil {
		return nil, translateErr(err)
	}
	return results, nil
}

func (r *concertRepo) CountByOrchestra(ctx context.Context, tx *gorm.DB, orchestraID uint) (int64, error) {
	var count int64
	err := orDB(tx, r.db).WithContext(ctx).
		Model(&types.Concert{}).
		Where("orchestra_id = ?", orchestraID).
		Count(&count).Error
	if err != nil {
		return 0, translateErr(err)
	}
	return count, nil
}

func (r *concertRepo) Update(ctx context.Context, tx *gorm.DB, concert *types.Concert) error {
	if err := orDB(tx, r.db).WithContext(ctx).Save(concert).Error; err != nil {
		return translateErr(err)
	}
	return nil
}

func (r *concertRepo) Delete(ctx context.Context, tx *gorm.DB, id uint) error {
	res := orDB(tx, r.db).WithContext(ctx).Delete(&types.Concert{}, id)
	if res.Error != nil {
		return translateErr(res.Error)
	}
	if res.RowsAffected == 0 {
		return translateErr(gorm.ErrRecordNotFound)
	}
	return nil
}
