package dto

// CreateAccountRequest is the typed view over a POST /users/create body.
type CreateAccountRequest struct {
	DisplayName StringField
	Username    StringField
	Password    StringField
}

// NewCreateAccountRequest builds the DTO from a decoded JSON object.
func NewCreateAccountRequest(raw map[string]any) CreateAccountRequest {
	return CreateAccountRequest{
		DisplayName: stringField(raw, "displayName"),
		Username:    stringField(raw, "username"),
		Password:    stringField(raw, "password"),
	}
}

// Validate accumulates all rule violations; an empty slice means valid.
func (r CreateAccountRequest) Validate() []FieldError {
	var errs []FieldError

	if checkType(&errs, r.DisplayName, "displayName", "Display name") {
		checkLength(&errs, r.DisplayName, "displayName", "Display name", 3, 50)
	}
	if checkType(&errs, r.Username, "username", "Username") {
		checkLength(&errs, r.Username, "username", "Username", 3, 20)
	}
	if checkType(&errs, r.Password, "password", "Password") {
		checkPassword(&errs, r.Password)
	}

	return errs
}

// UpdateAccountRequest is the typed view over a PATCH /users/update/me body.
// Username carries no content rules here; only create enforces its length.
type UpdateAccountRequest struct {
	DisplayName StringField
	Username    StringField
	Password    StringField
}

// NewUpdateAccountRequest builds the DTO from a decoded JSON object.
func NewUpdateAccountRequest(raw map[string]any) UpdateAccountRequest {
	return UpdateAccountRequest{
		DisplayName: stringField(raw, "displayName"),
		Username:    stringField(raw, "username"),
		Password:    stringField(raw, "password"),
	}
}

// Validate accumulates all rule violations; an empty slice means valid.
func (r UpdateAccountRequest) Validate() []FieldError {
	var errs []FieldError

	if checkType(&errs, r.DisplayName, "displayName", "Display name") {
		checkLength(&errs, r.DisplayName, "displayName", "Display name", 3, 50)
	}
	checkType(&errs, r.Username, "username", "Username")
	if checkType(&errs, r.Password, "password", "Password") {
		checkPassword(&errs, r.Password)
	}

	return errs
}

// LoginRequest is the typed view over a POST /auth/login body. Content rules
// are skipped; only types are checked.
type LoginRequest struct {
	Username StringField
	Password StringField
}

// NewLoginRequest builds the DTO from a decoded JSON object.
func NewLoginRequest(raw map[string]any) LoginRequest {
	return LoginRequest{
		Username: stringField(raw, "username"),
		Password: stringField(raw, "password"),
	}
}

// Validate accumulates all rule violations; an empty slice means valid.
func (r LoginRequest) Validate() []FieldError {
	var errs []FieldError
	checkType(&errs, r.Username, "username", "Username")
	checkType(&errs, r.Password, "password", "Password")
	return errs
}

// RefreshTokenRequest is the typed view over a POST /auth/refreshToken body.
type RefreshTokenRequest struct {
	RefreshToken StringField
}

// NewRefreshTokenRequest builds the DTO from a decoded JSON object.
func NewRefreshTokenRequest(raw map[string]any) RefreshTokenRequest {
	return RefreshTokenRequest{
		RefreshToken: stringField(raw, "refreshToken"),
	}
}

// Validate accumulates all rule violations; an empty slice means valid.
func (r RefreshTokenRequest) Validate() []FieldError {
	var errs []FieldError
	checkType(&errs, r.RefreshToken, "refreshToken", "refreshToken")
	return errs
}

// TokenPairResponse is the login success payload.
type TokenPairResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// AccessTokenResponse is the refresh success payload.
type AccessTokenResponse struct {
	AccessToken string `json:"accessToken"`
}

// AccountResponse is the public shape of an account; the password hash is
// never serialized.
type AccountResponse struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
	Username    string `json:"username"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}
