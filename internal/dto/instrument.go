package dto

type InstrumentDto struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	SectionID uint   `json:"section_id"`
}

type CreateInstrumentDto struct {
	Name      string `json:"name"`
	SectionID uint   `json:"section_id"`
}

func (d *CreateInstrumentDto) Validate() error {
	var fields []FieldError
	fields = requireString(fields, "Name", d.Name, 0)
	return validationError(fields)
}

type UpdateInstrumentDto struct {
	Name      string `json:"name"`
	SectionID uint   `json:"section_id"`
}

func (d *UpdateInstrumentDto) Validate() error {
	var fields []FieldError
	fields = requireString(fields, "Name", d.Name, 0)
	return validationError(fields)
}
