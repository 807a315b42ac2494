package validation

import (
	"regexp"
	"strings"

	"github.com/user-directory-console/internal/models"
)

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	phoneRegex = regexp.MustCompile(`^[0-9]{10}$`)
)

// Result is the outcome of validating a user record. Errors maps a field name
// to a single human-readable message; an empty map means the record is valid.
type Result struct {
	Errors map[string]string
}

// Valid reports whether the record passed every rule.
func (r Result) Valid() bool {
	return len(r.Errors) == 0
}

// ValidateUser checks a candidate user record against the form rules and
// collects every violation. It is pure: no I/O, no state, same input always
// yields the same result.
func ValidateUser(user *models.User) Result {
	errors := make(map[string]string)

	if strings.TrimSpace(user.Username) == "" {
		errors[models.FieldUsername] = "Username is required"
	}

	if strings.TrimSpace(user.FirstName) == "" {
		errors[models.FieldFirstName] = "First name is required"
	}

	if strings.TrimSpace(user.LastName) == "" {
		errors[models.FieldLastName] = "Last name is required"
	}

	// Matching is case-insensitive; lowercase before testing.
	if !emailRegex.MatchString(strings.ToLower(user.Email)) {
		errors[models.FieldEmail] = "Invalid email address"
	}

	if !phoneRegex.MatchString(user.PhoneNumber) {
		errors[models.FieldPhoneNumber] = "Phone number must be 10 digits"
	}

	return Result{Errors: errors}
}
