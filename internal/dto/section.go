package dto

type SectionDto struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type CreateSectionDto struct {
	Name string `json:"name"`
}

func (d *CreateSectionDto) Validate() error {
	var fields []FieldError
	fields = requireString(fields, "Name", d.Name, 0)
	return validationError(fields)
}

type UpdateSectionDto struct {
	Name string `json:"name"`
}

func (d *UpdateSectionDto) Validate() error {
	var fields []FieldError
	fields = requireString(fields, "Name", d.Name, 0)
	return validationError(fields)
}
