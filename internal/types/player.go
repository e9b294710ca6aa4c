package types

// Player assignment columns stay NULL until an enrollment request for the
// player is approved and materialized; that workflow is the only writer.
type Player struct {
	ID           uint    `gorm:"primaryKey" json:"id"`
	UserID       uint    `gorm:"uniqueIndex;column:user_id" json:"user_id"`
	Name         string  `gorm:"not null;column:name" json:"name"`
	SectionID    *uint   `gorm:"column:section_id" json:"section_id"`
	OrchestraID  *uint   `gorm:"column:orchestra_id" json:"orchestra_id"`
	InstrumentID *uint   `gorm:"column:instrument_id" json:"instrument_id"`
	ConcertID    *uint   `gorm:"column:concert_id" json:"concert_id"`
	Score        float64 `gorm:"not null;default:0;column:score" json:"score"`
}

func (Player) TableName() string {
	return "player"
}
