package types

import "time"

type Orchestra struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"not null;column:name" json:"name"`
	Image       string    `gorm:"column:image" json:"image"`
	Date        time.Time `gorm:"column:date" json:"date"`
	Description string    `gorm:"column:description" json:"description"`
	ConductorID *uint     `gorm:"column:conductor_id" json:"conductor_id"`
}

func (Orchestra) TableName() string {
	return "orchestra"
}
