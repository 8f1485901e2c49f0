package user

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

const (
	MinPasswordLength = 6
	MaxPasswordLength = 4096
	MaxUsernameLength = 180
	MaxMailLength     = 255
)

var (
	UsernameRules = []validation.Rule{
		validation.Required,
		validation.Length(1, MaxUsernameLength),
	}
	PasswordRules = []validation.Rule{
		validation.Required,
		validation.Length(MinPasswordLength, MaxPasswordLength),
	}
	MailRules = []validation.Rule{
		validation.Required,
		is.Email,
		validation.Length(1, MaxMailLength),
	}
)

func ValidateUsername(value string) error {
	return validation.Validate(value, UsernameRules...)
}

func ValidatePassword(value string) error {
	return validation.Validate(value, PasswordRules...)
}

func ValidateMail(value string) error {
	return validation.Validate(value, MailRules...)
}
