package user

import (
	"errors"
	"fmt"
)

var (
	ErrUserDoesNotExist    = errors.New("user does not exist")
	ErrUserAlreadyExists   = errors.New("user already exists")
	ErrDuplicateKey        = errors.New("duplicate key")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrWrongOldPassword    = errors.New("wrong old password")
	ErrMailMismatch        = errors.New("mail does not match the current one")
	ErrNotificationNotSent = errors.New("notification has not been sent")
	ErrCancelled           = errors.New("operation cancelled")
	ErrNoChange            = errors.New("nothing to change")
	ErrSessionDoesNotExist = errors.New("session does not exist")
	ErrPermissionDenied    = errors.New("permission denied")
)

// DuplicateKeyError is returned by the store when a unique field collides with another record.
type DuplicateKeyError struct {
	Key string
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("duplicate key: %s", e.Key)
}

func (e *DuplicateKeyError) Is(target error) bool {
	return target == ErrDuplicateKey
}
