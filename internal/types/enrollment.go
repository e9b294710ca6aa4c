package types

// Enrollment approval states. A request starts pending and either stays
// there or moves to approved; there is no stored rejected state.
const (
	EnrollmentPending  = 0
	EnrollmentApproved = 1
)

// Enrollment is a player's request to join an orchestra. It has no surrogate
// key: the (player, orchestra) pair is the identity, which also caps the pair
// at one live request at a time.
type Enrollment struct {
	PlayerID     uint `gorm:"primaryKey;column:player_id" json:"player_id"`
	OrchestraID  uint `gorm:"primaryKey;column:orchestra_id" json:"orchestra_id"`
	SectionID    uint `gorm:"not null;column:section_id" json:"section_id"`
	InstrumentID uint `gorm:"not null;column:instrument_id" json:"instrument_id"`
	Experience   int  `gorm:"not null;column:experience" json:"experience"`
	IsApproved   int  `gorm:"not null;default:0;column:is_approved" json:"is_approved"`
}

func (Enrollment) TableName() string {
	return "enrollment"
}
