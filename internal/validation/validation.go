// Package validation holds the pure field validators. Each returns a
// field→message map, nil when everything passes.
package validation

import (
	"net/mail"
)

const (
	msgInvalidEmail  = "Please enter a valid email address"
	msgShortPassword = "Password must be at least 6 characters"
	msgShortUsername = "Username must be greater than 3"
	msgLongUsername  = "Username cannot be greater than 15"
)

func Login(email, password string) map[string]string {
	errs := make(map[string]string)
	validateEmail(errs, email)
	validatePassword(errs, password)
	if len(errs) == 0 {
		return nil
	}
	return errs
}

func Register(username, email, password string) map[string]string {
	errs := make(map[string]string)
	validateUsername(errs, username)
	validateEmail(errs, email)
	validatePassword(errs, password)
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// UpdateProfile validates only the fields present in the patch.
func UpdateProfile(username, email *string) map[string]string {
	errs := make(map[string]string)
	if username != nil {
		validateUsername(errs, *username)
	}
	if email != nil {
		validateEmail(errs, *email)
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

func validateEmail(errs map[string]string, email string) {
	if _, err := mail.ParseAddress(email); err != nil {
		errs["email"] = msgInvalidEmail
	}
}

func validatePassword(errs map[string]string, password string) {
	if len(password) < 6 {
		errs["password"] = msgShortPassword
	}
}

func validateUsername(errs map[string]string, username string) {
	switch {
	case len(username) < 3:
		errs["username"] = msgShortUsername
	case len(username) > 15:
		errs["username"] = msgLongUsername
	}
}
