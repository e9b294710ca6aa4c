package dto

type ConductorDto struct {
	ID     uint   `json:"id"`
	UserID uint   `json:"user_id"`
	Name   string `json:"name"`
}

type CreateConductorDto struct {
	UserID uint   `json:"user_id"`
	Name   string `json:"name"`
}

func (d *CreateConductorDto) Validate() error {
	var fields []FieldError
	fields = requireString(fields, "Name", d.Name, 0)
	return validationError(fields)
}

type UpdateConductorDto struct {
	Name string `json:"name"`
}

func (d *UpdateConductorDto) Validate() error {
	var fields []FieldError
	fields = requireString(fields, "Name", d.Name, 0)
	return validationError(fields)
}
