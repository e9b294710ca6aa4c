package repos

import (
	"context"

	"gorm.io/gorm"

	"github.com/orchestrahub/orchestra-backend/internal/logger"
	"github.com/orchestrahub/orchestra-backend/internal/types"
)

// EnrollmentDetail is the flat decode target for the pending-request listing:
// the raw row plus the names the conductor's review screen shows.
type EnrollmentDetail struct {
	PlayerID       uint   `gorm:"column:player_id"`
	OrchestraID    uint   `gorm:"column:orchestra_id"`
	SectionID      uint   `gorm:"column:section_id"`
	InstrumentID   uint   `gorm:"column:instrument_id"`
	Experience     int    `gorm:"column:experience"`
	IsApproved     int    `gorm:"column:is_approved"`
	PlayerName     string `gorm:"column:player_name"`
	SectionName    string `gorm:"column:section_name"`
	InstrumentName string `gorm:"column:instrument_name"`
}

type EnrollmentRepo interface {
	Create(ctx context.Context, tx *gorm.DB, enrollment *types.Enrollment) (*types.Enrollment, error)
	Get(ctx context.Context, tx *gorm.DB, playerID, orchestraID uint) (*types.Enrollment, error)
	ListPendingByOrchestra(ctx context.Context, tx *gorm.DB, orchestraID uint) ([]EnrollmentDetail, error)
	ListByPlayer(ctx context.Context, tx *gorm.DB, playerID uint) ([]*types.Enrollment, error)
	// Approve flips a pending request to approved and reports how many rows
	// were hit (zero means no pending request existed for the pair).
	Approve(ctx context.Context, tx *gorm.DB, orchestraID, playerID uint) (int64, error)
	GetApproved(ctx context.Context, tx *gorm.DB, orchestraID, playerID uint) (*types.Enrollment, error)
	CountByOrchestra(ctx context.Context, tx *gorm.DB, orchestraID uint) (int64, error)
	CountBySection(ctx context.Context, tx *gorm.DB, sectionID uint) (int64, error)
	CountByInstrument(ctx context.Context, tx *gorm.DB, instrumentID uint) (int64, error)
	CountByPlayer(ctx context.Context, tx *gorm.DB, playerID uint) (int64, error)
}

type enrollmentRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewEnrollmentRepo(db *gorm.DB, baseLog *logger.Logger) EnrollmentRepo {
	return &enrollmentRepo{db: db, log: baseLog.With("repo", "EnrollmentRepo")}
}

func (r *enrollmentRepo) Create(ctx context.Context, tx *gorm.DB, enrollment *types.Enrollment) (*types.Enrollment, error) {
	if err := orDB(tx, r.db).WithContext(ctx).Create(enrollment).Error; err != nil {
		return nil, translateErr(err)
	}
	return enrollment, nil
}

func (r *enrollmentRepo) Get(ctx context.Context, tx *gorm.DB, playerID, orchestraID uint) (*types.Enrollment, error) {
	var enrollment types.Enrollment
	err := orDB(tx, r.db).WithContext(ctx).
		Where("player_id = ? AND orchestra_id = ?", playerID, orchestraID).
		First(&enrollment).Error
	if err != nil {
		return nil, translateErr(err)
	}
	return &enrollment, nil
}

func (r *enrollmentRepo) ListPendingByOrchestra(ctx context.Context, tx *gorm.DB, orchestraID uint) ([]EnrollmentDetail, error) {
	var rows []EnrollmentDetail
	err := orDB(tx, r.db).WithContext(ctx).
		Raw(`
SELECT e.player_id, e.orchestra_id, e.section_id, e.instrument_id,
       e.experience, e.is_approved,
       p.name AS player_name, s.name AS section_name, i.name AS instrument_name
FROM enrollment e
JOIN player p ON p.id = e.player_id
JOIN section s ON s.id = e.section_id
JOIN instrument i ON i.id = e.instrument_id
WHERE e.orchestra_id = ? AND e.is_approved = ?
ORDER BY e.player_id`, orchestraID, types.EnrollmentPending).
		Scan(&rows).Error
	if err != nil {
		return nil, translateErr(err)
	}
	return rows, nil
}

func (r *enrollmentRepo) ListByPlayer(ctx context.Context, tx *gorm.DB, playerID uint) ([]*types.Enrollment, error) {
	var results []*types.Enrollment
	err := orDB(tx, r.db).WithContext(ctx).
		Where("player_id = ?", playerID).
		Order("orchestra_id").
		Find(&results).Error
	if err != nil {
		return nil, translateErr(err)
	}
	return results, nil
}

func (r *enrollmentRepo) Approve(ctx context.Context, tx *gorm.DB, orchestraID, playerID uint) (int64, error) {
	res := orDB(tx, r.db).WithContext(ctx).
		Model(&types.Enrollment{}).
		Where("orchestra_id = ? AND player_id = ? AND is_approved = ?", orchestraID, playerID, types.EnrollmentPending).
		Update("is_approved", types.EnrollmentApproved)
	if res.Error != nil {
		return 0, translateErr(res.Error)
	}
	return res.RowsAffected, nil
}

func (r *enrollmentRepo) GetApproved(ctx context.Context, tx *gorm.DB, orchestraID, playerID uint) (*types.Enrollment, error) {
	var enrollment types.Enrollment
	err := orDB(tx, r.db).WithContext(ctx).
		Where("orchestra_id = ? AND player_id = ? AND is_approved = ?", orchestraID, playerID, types.EnrollmentApproved).
		First(&enrollment).Error
	if err != nil {
		return nil, translateErr(err)
	}
	return &enrollment, nil
}

func (r *enrollmentRepo) CountByOrchestra(ctx context.Context, tx *gorm.DB, orchestraID uint) (int64, error) {
	return r.countWhere(ctx, tx, "orchestra_id = ?", orchestraID)
}

func (r *enrollmentRepo) CountBySection(ctx context.Context, tx *gorm.DB, sectionID uint) (int64, error) {
	return r.countWhere(ctx, tx, "section_id = ?", sectionID)
}

func (r *enrollmentRepo) CountByInstrument(ctx context.Context, tx *gorm.DB, instrumentID uint) (int64, error) {
	return r.countWhere(ctx, tx, "instrument_id = ?", instrumentID)
}

func (r *enrollmentRepo) CountByPlayer(ctx context.Context, tx *gorm.DB, playerID uint) (int64, error) {
	return r.countWhere(ctx, tx, "player_id = ?", playerID)
}

func (r *enrollmentRepo) countWhere(ctx context.Context, tx *gorm.DB, cond string, arg interface{}) (int64, error) {
	var count int64
	err := orDB(tx, r.db).WithContext(ctx).
		Model(&types.Enrollment{}).
		Where(cond, arg).
		Count(&count).Error
	if err != nil {
		return 0, translateErr(err)
	}
	return count, nil
}
