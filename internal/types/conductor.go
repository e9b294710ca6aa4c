package types

type Conductor struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	UserID uint   `gorm:"uniqueIndex;column:user_id" json:"user_id"`
	Name   string `gorm:"not null;column:name" json:"name"`
}

func (Conductor) TableName() string {
	return "conductor"
}
