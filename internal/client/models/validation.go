package models

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	UsernameMinLen = 3
	UsernameMaxLen = 20
	PasswordMinLen = 6
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// FieldError is a validation failure attached to one form field.
type FieldError struct {
	Field   string
	Message string
}

// FieldErrors keeps the failures in form order. A nil or empty value means
// the form is valid.
type FieldErrors []FieldError

func (e FieldErrors) Error() string {
	parts := make([]string, len(e))
	for i, fe := range e {
		parts[i] = fe.Field + ": " + fe.Message
	}
	return strings.Join(parts, "; ")
}

// Get returns the message for field, or "" if the field is valid.
func (e FieldErrors) Get(field string) string {
	for _, fe := range e {
		if fe.Field == field {
			return fe.Message
		}
	}
	return ""
}

func (e *FieldErrors) add(field, msg string) {
	*e = append(*e, FieldError{Field: field, Message: msg})
}

// LoginForm holds the login credentials as typed.
type LoginForm struct {
	Username string
	Password string
}

func (f LoginForm) Validate() FieldErrors {
	var errs FieldErrors

	switch {
	case strings.TrimSpace(f.Username) == "":
		errs.add("username", "Username is required")
	case utf8.RuneCountInString(f.Username) < UsernameMinLen:
		errs.add("username", "Username must be at least 3 characters")
	}

	validatePassword(&errs, f.Password)
	return errs
}

// SignupForm holds the registration fields as typed.
type SignupForm struct {
	Username        string
	Email           string
	Password        string
	ConfirmPassword string
}

func (f SignupForm) Validate() FieldErrors {
	var errs FieldErrors

	switch n := utf8.RuneCountInString(f.Username); {
	case strings.TrimSpace(f.Username) == "":
		errs.add("username", "Username is required")
	case n < UsernameMinLen:
		errs.add("username", "Username must be at least 3 characters")
	case n > UsernameMaxLen:
		errs.add("username", "Username must be less than 20 characters")
	}

	switch {
	case strings.TrimSpace(f.Email) == "":
		errs.add("email", "Email is required")
	case !emailPattern.MatchString(f.Email):
		errs.add("email", "Please enter a valid email address")
	}

	validatePassword(&errs, f.Password)

	switch {
	case f.ConfirmPassword == "":
		errs.add("confirmPassword", "Please confirm your password")
	case f.Password != f.ConfirmPassword:
		errs.add("confirmPassword", "Passwords do not match")
	}

	return errs
}

func validatePassword(errs *FieldErrors, password string) {
	switch {
	case password == "":
		errs.add("password", "Password is required")
	case utf8.RuneCountInString(password) < PasswordMinLen:
		errs.add("password", "Password must be at least 6 characters")
	}
}

// Validate checks the required card fields: the person's name (Title) and
// the phone number.
func (f CardForm) Validate() FieldErrors {
	var errs FieldErrors
	if strings.TrimSpace(f.Title) == "" {
		errs.add("title", "Name is required")
	}
	if strings.TrimSpace(f.Phone) == "" {
		errs.add("phone", "Phone number is required")
	}
	return errs
}
