package authsdk

// ErrorResponse is the {error, error_description} body every endpoint uses
// for failures.
type ErrorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

// ValidationErrorResponse is returned when request fields fail validation.
type ValidationErrorResponse struct {
	// Code is always "validation_error".
	Code string `json:"code"`

	Message string `json:"message"`

	// Details maps field name to reason.
	Details map[string]string `json:"details,omitempty"`
}

// SignupRequest creates a credential and starts a session.
type SignupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name,omitempty"`
}

// LoginRequest exchanges an email and password for a session cookie.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateProfileRequest changes the display name carried in the session.
type UpdateProfileRequest struct {
	Name string `json:"name"`
}

// IdentityResponse is the identity a session token carries.
type IdentityResponse struct {
	UID   string `json:"uid"`
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

// HealthResponse is returned by /livez and /readyz.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks reports the readiness of each dependency.
type HealthChecks struct {
	Database string `json:"database"`
	Signer   string `json:"signer"`
}
