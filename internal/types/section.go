package types

type Section struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"not null;column:name" json:"name"`
}

func (Section) TableName() string {
	return "section"
}
