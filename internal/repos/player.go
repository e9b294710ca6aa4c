package repos

import (
	"context"

	"gorm.io/gorm"

	"github.com/orchestrahub/orchestra-backend/internal/logger"
	"github.com/orchestrahub/orchestra-backend/internal/types"
)

type PlayerRepo interface {
	Create(ctx context.Context, tx *gorm.DB, player *types.Player) (*types.Player, error)
	GetAll(ctx context.Context, tx *gorm.DB) ([]*types.Player, error)
	GetByID(ctx context.Context, tx *gorm.DB, id uint) (*types.Player, error)
	GetByUserID(ctx context.Context, tx *gorm.DB, userID uint) (*types.Player, error)
	Update(ctx context.Context, tx *gorm.DB, player *types.Player) error
	Delete(ctx context.Context, tx *gorm.DB, id uint) error
	// LeaderboardBySection orders by score descending; id ascending breaks
	// ties so the order is stable across reads.
	LeaderboardBySection(ctx context.Context, tx *gorm.DB, sectionID uint) ([]*types.Player, error)
	// AssignFromEnrollment copies an approved request's placement onto the
	// player row and reports whether a row was hit.
	AssignFromEnrollment(ctx context.Context, tx *gorm.DB, playerID, sectionID, orchestraID, instrumentID uint) (int64, error)
	CountByOrchestra(ctx context.Context, tx *gorm.DB, orchestraID uint) (int64, error)
	CountBySection(ctx context.Context, tx *gorm.DB, sectionID uint) (int64, error)
	CountByInstrument(ctx context.Context, tx *gorm.DB, instrumentID uint) (int64, error)
	CountByConcert(ctx context.Context, tx *gorm.DB, concertID uint) (int64, error)
}

type playerRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewPlayerRepo(db *gorm.DB, baseLog *logger.Logger) PlayerRepo {
	return &playerRepo{db: db, log: baseLog.With("repo", "PlayerRepo")}
}

func (r *playerRepo) Create(ctx context.Context, tx *gorm.DB, player *types.Player) (*types.Player, error) {
	if err := orDB(tx, r.db).WithContext(ctx).Create(player).Error; err != nil {
		return nil, translateErr(err)
	}
	return player, nil
}

func (r *playerRepo) GetAll(ctx context.Context, tx *gorm.DB) ([]*types.Player, error) {
	var results []*types.Player
	if err := orDB(tx, r.db).WithContext(ctx).Order("id").Find(&results).Error; err != nil {
		return nil, translateErr(err)
	}
	return results, nil
}

func (r *playerRepo) GetByID(ctx context.Context, tx *gorm.DB, id uint) (*types.Player, error) {
	var player types.Player
	if err := orDB(tx, r.db).WithContext(ctx).First(&player, id).Error; err != nil {
		return nil, translateErr(err)
	}
	return &player, nil
}

func (r *playerRepo) GetByUserID(ctx context.Context, tx *gorm.DB, userID uint) (*types.Player, error) {
	var player types.Player
	err := orDB(tx, r.db).WithContext(ctx).
		Where("user_id = ?", userID).
		First(&player).Error
	if err != nil {
		return nil, translateErr(err)
	}
	return &player, nil
}

func (r *playerRepo) Update(ctx context.Context, tx *gorm.DB, player *types.Player) error {
	if err := orDB(tx, r.db).WithContext(ctx).Save(player).Error; err != nil {
		return translateErr(err)
	}
	return nil
}

func (r *playerRepo) Delete(ctx context.Context, tx *gorm.DB, id uint) error {
	res := orDB(tx, r.db).WithContext(ctx).Delete(&types.Player{}, id)
	if res.Error != nil {
		return translateErr(res.Error)
	}
	if res.RowsAffected == 0 {
		return translateErr(gorm.ErrRecordNotFound)
	}
	return nil
}

func (r *playerRepo) LeaderboardBySection(ctx context.Context, tx *gorm.DB, sectionID uint) ([]*types.Player, error) {
	var results []*types.Player
	err := orDB(tx, r.db).WithContext(ctx).
		Where("section_id = ?", sectionID).
		Order("score DESC, id ASC").
		Find(&results).Error
	if err != nil {
		return nil, translateErr(err)
	}
	return results, nil
}

func (r *playerRepo) AssignFromEnrollment(ctx context.Context, tx *gorm.DB, playerID, sectionID, orchestraID, instrumentID uint) (int64, error) {
	res := orDB(tx, r.db).WithContext(ctx).
		Model(&types.Player{}).
		Where("id = ?", playerID).
		Updates(map[string]interface{}{
			"section_id":    sectionID,
			"orchestra_id":  orchestraID,
			"instrument_id": instrumentID,
		})
	if res.Error != nil {
		return 0, translateErr(res.Error)
	}
	return res.RowsAffected, nil
}

func (r *playerRepo) CountByOrchestra(ctx context.Context, tx *gorm.DB, orchestraID uint) (int64, error) {
	return r.countWhere(ctx, tx, "orchestra_id = ?", orchestraID)
}

func (r *playerRepo) CountBySection(ctx context.Context, tx *gorm.DB, sectionID uint) (int64, error) {
	return r.countWhere(ctx, tx, "section_id = ?", sectionID)
}

func (r *playerRepo) CountByInstrument(ctx context.Context, tx *gorm.DB, instrumentID uint) (int64, error) {
	return r.countWhere(ctx, tx, "instrument_id = ?", instrumentID)
}

func (r *playerRepo) CountByConcert(ctx context.Context, tx *gorm.DB, concertID uint) (int64, error) {
	return r.countWhere(ctx, tx, "concert_id = ?", concertID)
}

func (r *playerRepo) countWhere(ctx context.Context, tx *gorm.DB, cond string, arg interface{}) (int64, error) {
	var count int64
	err := orDB(tx, r.db).WithContext(ctx).
		Model(&types.Player{}).
		Where(cond, arg).
		Count(&count).Error
	if err != nil {
		return 0, translateErr(err)
	}
	return count, nil
}
