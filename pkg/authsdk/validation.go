package authsdk

import (
	"strings"
	"unicode/utf8"
)

const (
	MinPasswordLength = 8
	MaxPasswordLength = 128
	MaxNameLength     = 64
	MaxEmailLength    = 254

	reasonRequired = "required"
)

// Validate checks the signup fields. Returns field name to reason, or nil.
func (r SignupRequest) Validate() map[string]string {
	errs := make(map[string]string)

	validateEmail(errs, r.Email)
	validatePassword(errs, r.Password)
	validateName(errs, r.Name, false)

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// Validate only checks presence; a wrong password is a login failure, not a
// validation error.
func (r LoginRequest) Validate() map[string]string {
	errs := make(map[string]string)
	if strings.TrimSpace(r.Email) == "" {
		errs["email"] = reasonRequired
	}
	if r.Password == "" {
		errs["password"] = reasonRequired
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

func (r UpdateProfileRequest) Validate() map[string]string {
	errs := make(map[string]string)
	validateName(errs, r.Name, true)

	if len(errs) == 0 {
		return nil
	}
	return errs
}

func validateEmail(errs map[string]string, email string) {
	email = strings.TrimSpace(email)
	local, domain, ok := strings.Cut(email, "@")
	switch {
	case email == "":
		errs["email"] = reasonRequired
	case len(email) > MaxEmailLength:
		errs["email"] = "too long (max 254)"
	case !ok || local == "" || domain == "" || strings.ContainsAny(email, " \t\r\n"):
		errs["email"] = "must be an email address"
	}
}

func validatePassword(errs map[string]string, pw string) {
	switch n := utf8.RuneCountInString(pw); {
	case pw == "":
		errs["password"] = reasonRequired
	case n < MinPasswordLength:
		errs["password"] = "too short (min 8)"
	case n > MaxPasswordLength:
		errs["password"] = "too long (max 128)"
	}
}

func validateName(errs map[string]string, name string, required bool) {
	name = strings.TrimSpace(name)
	switch {
	case name == "" && required:
		errs["name"] = reasonRequired
	case utf8.RuneCountInString(name) > MaxNameLength:
		errs["name"] = "too long (max 64)"
	}
}
