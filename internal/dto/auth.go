package dto

type LoginDto struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (d *LoginDto) Validate() error {
	var fields []FieldError
	fields = requireString(fields, "Username", d.Username, 50)
	fields = requireString(fields, "Password", d.Password, 50)
	return validationError(fields)
}

type RefreshDto struct {
	RefreshToken string `json:"refresh_token"`
}

type TokenPairDto struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}
