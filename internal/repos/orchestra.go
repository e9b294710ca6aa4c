package repos

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/orchestrahub/orchestra-backend/internal/logger"
	"github.com/orchestrahub/orchestra-backend/internal/types"
)

// OrchestraWithConductor pairs an orchestra row with its conductor row as
// resolved by the read queries' LEFT JOIN. Conductor is nil for orchestras
// without one.
type OrchestraWithConductor struct {
	Orchestra types.Orchestra
	Conductor *types.Conductor
}

type OrchestraRepo interface {
	Create(ctx context.Context, tx *gorm.DB, orchestra *types.Orchestra) (*types.Orchestra, error)
	GetAll(ctx context.Context, tx *gorm.DB) ([]OrchestraWithConductor, error)
	GetByID(ctx context.Context, tx *gorm.DB, id uint) (*OrchestraWithConductor, error)
	GetByName(ctx context.Context, tx *gorm.DB, name string) (*OrchestraWithConductor, error)
	Update(ctx context.Context, tx *gorm.DB, orchestra *types.Orchestra) error
	Delete(ctx context.Context, tx *gorm.DB, id uint) error
	CountByConductor(ctx context.Context, tx *gorm.DB, conductorID uint) (int64, error)
}

type orchestraRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewOrchestraRepo(db *gorm.DB, baseLog *logger.Logger) OrchestraRepo {
	return &orchestraRepo{db: db, log: baseLog.With("repo", "OrchestraRepo")}
}

// orchestraRow is the flat decode target for the orchestra/conductor join;
// the nested conductor record is assembled after decode, not by the driver.
type orchestraRow struct {
	ID          uint      `gorm:"column:id"`
	Name        string    `gorm:"column:name"`
	Image       string    `gorm:"column:image"`
	Date        time.Time `gorm:"column:date"`
	Description string    `gorm:"column:description"`
	ConductorID *uint     `gorm:"column:conductor_id"`
	CondID      *uint     `gorm:"column:cond_id"`
	CondUserID  *uint     `gorm:"column:cond_user_id"`
	CondName    *string   `gorm:"column:cond_name"`
}

const orchestraSelect = `
SELECT o.id, o.name, o.image, o.date, o.description, o.conductor_id,
       c.id AS cond_id, c.user_id AS cond_user_id, c.name AS cond_name
FROM orchestra o
LEFT JOIN conductor c ON c.id = o.conductor_id`

func assembleOrchestra(row orchestraRow) OrchestraWithConductor {
	out := OrchestraWithConductor{
		Orchestra: types.Orchestra{
			ID:          row.ID,
			Name:        row.Name,
			Image:       row.Image,
			Date:        row.Date,
			Description: row.Description,
			ConductorID: row.ConductorID,
		},
	}
	if row.CondID != nil {
		conductor := &types.Conductor{ID: *row.CondID, Name: ""}
		if row.CondUserID != nil {
			conductor.UserID = *row.CondUserID
		}
		if row.CondName != nil {
			conductor.Name = *row.CondName
		}
		out.Conductor = conductor
	}
	return out
}

func (r *orchestraRepo) Create(ctx context.Context, tx *gorm.DB, orchestra *types.Orchestra) (*types.Orchestra, error) {
	if err := orDB(tx, r.db).WithContext(ctx).Create(orchestra).Error; err != nil {
		return nil, translateErr(err)
	}
	return orchestra, nil
}

func (r *orchestraRepo) GetAll(ctx context.Context, tx *gorm.DB) ([]OrchestraWithConductor, error) {
	var rows []orchestraRow
	err := orDB(tx, r.db).WithContext(ctx).
		Raw(orchestraSelect + " ORDER BY o.id").
		Scan(&rows).Error
	if err != nil {
		return nil, translateErr(err)
	}
	results := make([]OrchestraWithConductor, 0, len(rows))
	for _, row := range rows {
		results = append(results, assembleOrchestra(row))
	}
	return results, nil
}

func (r *orchestraRepo) GetByID(ctx context.Context, tx *gorm.DB, id uint) (*OrchestraWithConductor, error) {
	var rows []orchestraRow
	err := orDB(tx, r.db).WithContext(ctx).
		Raw(orchestraSelect+" WHERE o.id = ?", id).
		Scan(&rows).Error
	if err != nil {
		return nil, translateErr(err)
	}
	if len(rows) == 0 {
		return nil, translateErr(gorm.ErrRecordNotFound)
	}
	result := assembleOrchestra(rows[0])
	return &result, nil
}

func (r *orchestraRepo) GetByName(ctx context.Context, tx *gorm.DB, name string) (*OrchestraWithConductor, error) {
	var rows []orchestraRow
	err := orDB(tx, r.db).WithContext(ctx).
		Raw(orchestraSelect+" WHERE o.name = ? ORDER BY o.id", name).
		Scan(&rows).Error
	if err != nil {
		return nil, translateErr(err)
	}
	if len(rows) == 0 {
		return nil, translateErr(gorm.ErrRecordNotFound)
	}
	result := assembleOrchestra(rows[0])
	return &result, nil
}

func (r *orchestraRepo) Update(ctx context.Context, tx *gorm.DB, orchestra *types.Orchestra) error {
	if err := orDB(tx, r.db).WithContext(ctx).Save(orchestra).Error; err != nil {
		return translateErr(err)
	}
	return nil
}

func (r *orchestraRepo) Delete(ctx context.Context, tx *gorm.DB, id uint) error {
	res := orDB(tx, r.db).WithContext(ctx).Delete(&types.Orchestra{}, id)
	if res.Error != nil {
		return translateErr(res.Error)
	}
	if res.RowsAffected == 0 {
		return translateErr(gorm.ErrRecordNotFound)
	}
	return nil
}

func (r *orchestraRepo) CountByConductor(ctx context.Context, tx *gorm.DB, conductorID uint) (int64, error) {
	var count int64
	err := orDB(tx, r.db).WithContext(ctx).
		Model(&types.Orchestra{}).
		Where("conductor_id = ?", conductorID).
		Count(&count).Error
	if err != nil {
		return 0, translateErr(err)
	}
	return count, nil
}
