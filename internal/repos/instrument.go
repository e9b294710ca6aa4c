package repos

import (
	"context"

	"gorm.io/gorm"

	"github.com/orchestrahub/orchestra-backend/internal/logger"
	"github.com/orchestrahub/orchestra-backend/internal/types"
)

type InstrumentRepo interface {
	Create(ctx context.Context, tx *gorm.DB, instrument *types.Instrument) (*types.Instrument, error)
	GetAll(ctx context.Context, tx *gorm.DB) ([]*types.Instrument, error)
	GetByID(ctx context.Context, tx *gorm.DB, id uint) (*types.Instrument, error)
	GetByName(ctx context.Context, tx *gorm.DB, name string) (*types.Instrument, error)
	ListBySection(ctx context.Context, tx *gorm.DB, sectionID uint) ([]*types.Instrument, error)
	CountBySection(ctx context.Context, tx *gorm.DB, sectionID uint) (int64, error)
	Update(ctx context.Context, tx *gorm.DB, instrument *types.Instrument) error
	Delete(ctx context.Context, tx *gorm.DB, id uint) error
}

type instrumentRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewInstrumentRepo(db *gorm.DB, baseLog *logger.Logger) InstrumentRepo {
	return &instrumentRepo{db: db, log: baseLog.With("repo", "InstrumentRepo")}
}

func (r *instrumentRepo) Create(ctx context.Context, tx *gorm.DB, instrument *types.Instrument) (*types.Instrument, error) {
	if err := orDB(tx, r.db).WithContext(ctx).Create(instrument).Error; err != nil {
		return nil, translateErr(err)
	}
	return instrument, nil
}

func (r *instrumentRepo) GetAll(ctx context.Context, tx *gorm.DB) ([]*types.Instrument, error) {
	var results []*types.Instrument
	if err := orDB(tx, r.db).WithContext(ctx).Order("id").Find(&results).Error; err != nil {
		return nil, translateErr(err)
	}
	return results, nil
}

func (r *instrumentRepo) GetByID(ctx context.Context, tx *gorm.DB, id uint) (*types.Instrument, error) {
	var instrument types.Instrument
	if err := orDB(tx, r.db).WithContext(ctx).First(&instrument, id).Error; err != nil {
		return nil, translateErr(err)
	}
	return &instrument, nil
}

func (r *instrumentRepo) GetByName(ctx context.Context, tx *gorm.DB, name string) (*types.Instrument, error) {
	var instrument types.Instrument
	err := orDB(tx, r.db).WithContext(ctx).
		Where("name = ?", name).
		Order("id").
		First(&instrument).Error
	if err != nil {
		return nil, translateErr(err)
	}
	return &instrument, nil
}

func (r *instrumentRepo) ListBySection(ctx context.Context, tx *gorm.DB, sectionID uint) ([]*types.Instrument, error) {
	var results []*types.Instrument
	err := orDB(tx, r.db).WithContext(ctx).
		Where("section_id = ?", sectionID).
		Order("id").
		Find(&results).Error
	if err != nil {
		return nil, translateErr(err)
	}
	return results, nil
}

func (r *instrumentRepo) CountBySection(ctx context.Context, tx *gorm.DB, sectionID uint) (int64, error) {
	var count int64
	err := orDB(tx, r.db).WithContext(ctx).
		Model(&types.Instrument{}).
		Where("section_id = ?", sectionID).
		Count(&count).Error
	if err != nil {
		return 0, translateErr(err)
	}
	return count, nil
}

func (r *instrumentRepo) Update(ctx context.Context, tx *gorm.DB, instrument *types.Instrument) error {
	if err := orDB(tx, r.db).WithContext(ctx).Save(instrument).Error; err != nil {
		return translateErr(err)
	}
	return nil
}

func (r *instrumentRepo) Delete(ctx context.Context, tx *gorm.DB, id uint) error {
	res := orDB(tx, r.db).WithContext(ctx).Delete(&types.Instrument{}, id)
	if res.Error != nil {
		return translateErr(res.Error)
	}
	if res.RowsAffected == 0 {
		return translateErr(gorm.ErrRecordNotFound)
	}
	return nil
}
