package dto

import (
	"regexp"
	"time"
)

// Only gmail addresses are accepted, matching the organization's account
// policy for member sign-up.
var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9_.+-]+@gmail\.com$`)

type UserDto struct {
	ID        uint      `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Image     string    `json:"image"`
	CreatedAt time.Time `json:"created_at"`
}

type CreateUserDto struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
	Role     int    `json:"role"`
	Image    string `json:"image"`
	// Name seeds the conductor or player profile created with the account.
	Name string `json:"name"`
}

func (d *CreateUserDto) Validate() error {
	var fields []FieldError
	fields = requireString(fields, "Username", d.Username, 50)
	fields = requireString(fields, "Password", d.Password, 50)
	fields = requireString(fields, "Email", d.Email, 50)
	if d.Email != "" && len(d.Email) <= 50 && !emailPattern.MatchString(d.Email) {
		fields = append(fields, FieldError{Field: "Email", Message: "Email must be a valid gmail address"})
	}
	return validationError(fields)
}

type UpdateUserDto struct {
	Email string `json:"email"`
	Image string `json:"image"`
}

func (d *UpdateUserDto) Validate() error {
	var fields []FieldError
	fields = requireString(fields, "Email", d.Email, 50)
	if d.Email != "" && len(d.Email) <= 50 && !emailPattern.MatchString(d.Email) {
		fields = append(fields, FieldError{Field: "Email", Message: "Email must be a valid gmail address"})
	}
	return validationError(fields)
}
