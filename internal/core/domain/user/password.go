package user

import "context"

type PasswordHasher interface {
	HashPassword(password RawPassword) (PasswordHash, error)
	ValidatePassword(password RawPassword, hash PasswordHash) bool
}

type ValidationCodeGenerator interface {
	GenerateValidationCode() (ValidationCode, error)
}

type PasswordGenerator interface {
	GeneratePassword() (RawPassword, error)
}

type SessionTokenGenerator interface {
	GenerateToken() SessionToken
}

// PasswordResetNotifier delivers the two mails of the password reset flow.
// It never changes user state.
type PasswordResetNotifier interface {
	SendValidationCode(ctx context.Context, u User, code ValidationCode) error
	SendNewPassword(ctx context.Context, u User, password RawPassword) error
}
