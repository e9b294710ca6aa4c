package dto

import "time"

type OrchestraDto struct {
	ID          uint          `json:"id"`
	Name        string        `json:"name"`
	Image       string        `json:"image"`
	Date        time.Time     `json:"date"`
	Description string        `json:"description"`
	Conductor   *ConductorDto `json:"conductor,omitempty"`
}

type CreateOrchestraDto struct {
	Name        string    `json:"name"`
	Image       string    `json:"image"`
	Date        time.Time `json:"date"`
	Description string    `json:"description"`
	ConductorID *uint     `json:"conductor_id"`
}

func (d *CreateOrchestraDto) Validate() error {
	var fields []FieldError
	fields = requireString(fields, "Name", d.Name, 0)
	return validationError(fields)
}

type UpdateOrchestraDto struct {
	Name        string    `json:"name"`
	Image       string    `json:"image"`
	Date        time.Time `json:"date"`
	Description string    `json:"description"`
	ConductorID *uint     `json:"conductor_id"`
}

func (d *UpdateOrchestraDto) Validate() error {
	var fields []FieldError
	fields = requireString(fields, "Name", d.Name, 0)
	return validationError(fields)
}
