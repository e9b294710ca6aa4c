package dto

// EnrollmentDto is the conductor-facing view of a request: the raw row plus
// the names a review screen needs, resolved by the list query's join.
type EnrollmentDto struct {
	PlayerID       uint   `json:"player_id"`
	OrchestraID    uint   `json:"orchestra_id"`
	SectionID      uint   `json:"section_id"`
	InstrumentID   uint   `json:"instrument_id"`
	Experience     int    `json:"experience"`
	IsApproved     int    `json:"is_approved"`
	PlayerName     string `json:"player_name,omitempty"`
	SectionName    string `json:"section_name,omitempty"`
	InstrumentName string `json:"instrument_name,omitempty"`
}

type EnrollDto struct {
	PlayerID     uint `json:"player_id"`
	OrchestraID  uint `json:"orchestra_id"`
	SectionID    uint `json:"section_id"`
	InstrumentID uint `json:"instrument_id"`
	Experience   int  `json:"experience"`
}

func (d *EnrollDto) Validate() error {
	var fields []FieldError
	if d.PlayerID == 0 {
		fields = append(fields, FieldError{Field: "PlayerID", Message: "PlayerID is required"})
	}
	if d.OrchestraID == 0 {
		fields = append(fields, FieldError{Field: "OrchestraID", Message: "OrchestraID is required"})
	}
	if d.SectionID == 0 {
		fields = append(fields, FieldError{Field: "SectionID", Message: "SectionID is required"})
	}
	if d.InstrumentID == 0 {
		fields = append(fields, FieldError{Field: "InstrumentID", Message: "InstrumentID is required"})
	}
	if d.Experience < 0 {
		fields = append(fields, FieldError{Field: "Experience", Message: "Experience must not be negative"})
	}
	return validationError(fields)
}
