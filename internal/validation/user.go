package validation

import (
	"strings"

	"github.com/tradevault/journal-backend/internal/api/request"
)

const (
	minUsernameLength = 3
	maxUsernameLength = 64
	minPasswordLength = 8
)

// ValidateRegister validates an account registration request.
func ValidateRegister(req request.RegisterRequest) error {
	errors := make(map[string]string)

	username := strings.TrimSpace(req.Username)
	switch {
	case username == "":
		errors["username"] = "username is required"
	case len(username) < minUsernameLength:
		errors["username"] = "username must be at least 3 characters"
	case len(username) > maxUsernameLength:
		errors["username"] = "username must be at most 64 characters"
	}

	if req.Password == "" {
		errors["password"] = "password is required"
	} else if len(req.Password) < minPasswordLength {
		errors["password"] = "password must be at least 8 characters"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}
