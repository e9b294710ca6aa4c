package repos

import (
	"context"

	"gorm.io/gorm"

	"github.com/orchestrahub/orchestra-backend/internal/logger"
	"github.com/orchestrahub/orchestra-backend/internal/types"
)

type SectionRepo interface {
	Create(ctx context.Context, tx *gorm.DB, section *types.Section) (*types.Section, error)
	GetAll(ctx context.Context, tx *gorm.DB) ([]*types.Section, error)
	GetByID(ctx context.Context, tx *gorm.DB, id uint) (*types.Section, error)
	GetByName(ctx context.Context, tx *gorm.DB, name string) (*types.Section, error)
	Update(ctx context.Context, tx *gorm.DB, section *types.Section) error
	Delete(ctx context.Context, tx *gorm.DB, id uint) error
}

type sectionRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewSectionRepo(db *gorm.DB, baseLog *logger.Logger) SectionRepo {
	return &sectionRepo{db: db, log: baseLog.With("repo", "SectionRepo")}
}

func (r *sectionRepo) Create(ctx context.Context, tx *gorm.DB, section *types.Section) (*types.Section, error) {
	if err := orDB(tx, r.db).WithContext(ctx).Create(section).Error; err != nil {
		return nil, translateErr(err)
	}
	return section, nil
}

func (r *sectionRepo) GetAll(ctx context.Context, tx *gorm.DB) ([]*types.Section, error) {
	var results []*types.Section
	if err := orDB(tx, r.db).WithContext(ctx).Order("id").Find(&results).Error; err != nil {
		return nil, translateErr(err)
	}
	return results, nil
}

func (r *sectionRepo) GetByID(ctx context.Context, tx *gorm.DB, id uint) (*types.Section, error) {
	var section types.Section
	if err := orDB(tx, r.db).WithContext(ctx).First(&section, id).Error; err != nil {
		return nil, translateErr(err)
	}
	return &section, nil
}

func (r *sectionRepo) GetByName(ctx context.Context, tx *gorm.DB, name string) (*types.Section, error) {
	var section types.Section
	err := orDB(tx, r.db).WithContext(ctx).
		Where("name = ?", name).
		Order("id").
		First(&section).Error
	if err != nil {
		return nil, translateErr(err)
	}
	return &section, nil
}

func (r *sectionRepo) Update(ctx context.Context, tx *gorm.DB, section *types.Section) error {
	if err := orDB(tx, r.db).WithContext(ctx).Save(section).Error; err != nil {
		return translateErr(err)
	}
	return nil
}

func (r *sectionRepo) Delete(ctx context.Context, tx *gorm.DB, id uint) error {
	res := orDB(tx, r.db).WithContext(ctx).Delete(&types.Section{}, id)
	if res.Error != nil {
		return translateErr(res.Error)
	}
	if res.RowsAffected == 0 {
		return translateErr(gorm.ErrRecordNotFound)
	}
	return nil
}
