package dto

type PlayerDto struct {
	ID           uint    `json:"id"`
	UserID       uint    `json:"user_id"`
	Name         string  `json:"name"`
	SectionID    *uint   `json:"section_id"`
	OrchestraID  *uint   `json:"orchestra_id"`
	InstrumentID *uint   `json:"instrument_id"`
	ConcertID    *uint   `json:"concert_id"`
	Score        float64 `json:"score"`
}

type CreatePlayerDto struct {
	UserID uint   `json:"user_id"`
	Name   string `json:"name"`
	// Score is a pointer so a missing value can be told apart from 0.0.
	Score *float64 `json:"score"`
}

func (d *CreatePlayerDto) Validate() error {
	var fields []FieldError
	fields = requireString(fields, "Name", d.Name, 0)
	if d.Score == nil {
		fields = append(fields, FieldError{Field: "Score", Message: "Score is required"})
	}
	return validationError(fields)
}

type UpdatePlayerDto struct {
	Name      string   `json:"name"`
	Score     *float64 `json:"score"`
	ConcertID *uint    `json:"concert_id"`
}

func (d *UpdatePlayerDto) Validate() error {
	var fields []FieldError
	fields = requireString(fields, "Name", d.Name, 0)
	if d.Score == nil {
		fields = append(fields, FieldError{Field: "Score", Message: "Score is required"})
	}
	return validationError(fields)
}
