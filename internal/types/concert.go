package types

import "time"

type Concert struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	Name            string    `gorm:"not null;column:name" json:"name"`
	Description     string    `gorm:"column:description" json:"description"`
	PerformanceDate time.Time `gorm:"column:performance_date" json:"performance_date"`
	Image           string    `gorm:"column:image" json:"image"`
	OrchestraID     uint      `gorm:"not null;index;column:orchestra_id" json:"orchestra_id"`
	// Players is a stored headcount maintained by whoever seats players into
	// the concert; it is read back as-is, never recomputed here.
	Players int `gorm:"not null;default:0;column:players" json:"players"`
}

func (Concert) TableName() string {
	return "concert"
}
