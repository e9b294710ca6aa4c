package dto

import "time"

type ConcertDto struct {
	ID              uint      `json:"id"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	PerformanceDate time.Time `json:"performance_date"`
	Image           string    `json:"image"`
	OrchestraID     uint      `json:"orchestra_id"`
	Players         int       `json:"players"`
}

type CreateConcertDto struct {
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	PerformanceDate time.Time `json:"performance_date"`
	Image           string    `json:"image"`
	OrchestraID     uint      `json:"orchestra_id"`
}

func (d *CreateConcertDto) Validate() error {
	var fields []FieldError
	fields = requireString(fields, "Name", d.Name, 50)
	fields = requireString(fields, "Description", d.Description, 255)
	return validationError(fields)
}

type UpdateConcertDto struct {
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	PerformanceDate time.Time `json:"performance_date"`
	Image           string    `json:"image"`
}

func (d *UpdateConcertDto) Validate() error {
	var fields []FieldError
	fields = requireString(fields, "Name", d.Name, 50)
	fields = requireString(fields, "Description", d.Description, 255)
	return validationError(fields)
}
