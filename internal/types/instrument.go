package types

type Instrument struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Name      string `gorm:"not null;column:name" json:"name"`
	SectionID uint   `gorm:"not null;index;column:section_id" json:"section_id"`
}

func (Instrument) TableName() string {
	return "instrument"
}
