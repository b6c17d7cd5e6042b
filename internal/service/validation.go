package service

import (
	"regexp"
	"unicode/utf8"
)

const maxNameLength = 50

// emailRegex accepts RFC-plausible addresses: one @, non-empty local and
// domain parts, at least one dot in the domain.
var emailRegex = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// passwordRegex enforces the password policy: ASCII letters and digits
// only, at least 8 characters.
var passwordRegex = regexp.MustCompile(`^[a-zA-Z0-9]{8,}$`)

// violations collects field rule failures for one input.
type violations []string

func (v *violations) add(message string) {
	*v = append(*v, message)
}

func (v violations) err() error {
	if len(v) == 0 {
		return nil
	}
	return &ValidationError{Violations: v}
}

func checkName(v *violations, name string) {
	if name == "" {
		v.add("Name is mandatory")
		return
	}
	// Length is in characters, not bytes.
	if utf8.RuneCountInString(name) > maxNameLength {
		v.add("Name must not exceed 50 characters")
	}
}

func checkEmail(v *violations, email string) {
	if email == "" {
		v.add("Email is mandatory")
		return
	}
	if !emailRegex.MatchString(email) {
		v.add("Email should be valid")
	}
}

func checkPassword(v *violations, field, password string) {
	if password == "" {
		v.add(field + " is mandatory")
		return
	}
	if !passwordRegex.MatchString(password) {
		v.add(field + " must contain at least 8 characters and only alphabets and numbers")
	}
}

// validateCreateUser applies the registration field rules.
func validateCreateUser(input CreateUserInput) error {
	var v violations
	checkName(&v, input.Name)
	checkEmail(&v, input.Email)
	checkPassword(&v, "Password", input.Password)
	return v.err()
}

// validateUpdateUser applies the partial-update field rules.
// Absent fields are valid; an all-absent input passes and results in a
// no-op save.
func validateUpdateUser(input UpdateUserInput) error {
	var v violations
	if input.Name != nil {
		checkName(&v, *input.Name)
	}
	if input.Email != nil {
		checkEmail(&v, *input.Email)
	}
	return v.err()
}

// validateChangePassword applies the field rules to both passwords
// independently. The equality of the two values is a business rule
// checked later, after the user is known to exist.
func validateChangePassword(input ChangePasswordInput) error {
	var v violations
	checkPassword(&v, "Password", input.Password)
	checkPassword(&v, "Confirm Password", input.ConfirmPassword)
	return v.err()
}
