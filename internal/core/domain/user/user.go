package user

import (
	"fmt"
	"strings"
	"time"

	c "newsdesk/internal/core/domain/common"
	e "newsdesk/internal/core/domain/errors"
)

type ID int64

type Username string

type PasswordHash string

func (p PasswordHash) String() string {
	return "***"
}

type RawPassword string

func (p RawPassword) String() string {
	return "***"
}

// ValidationCode is the one-time code mailed on a password reset request.
type ValidationCode string

type SessionToken string

type Role string

const (
	RoleUser  Role = "ROLE_USER"
	RoleAdmin Role = "ROLE_ADMIN"
)

// ParseRoles splits a pipe separated list, e.g. "ROLE_USER|ROLE_ADMIN".
// Blank items are skipped.
func ParseRoles(raw string) []Role {
	parts := strings.Split(raw, "|")
	roles := make([]Role, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		roles = append(roles, Role(p))
	}
	return roles
}

func DefaultRoles() []Role {
	return []Role{RoleUser}
}

type User struct {
	ID             ID
	Username       Username
	PasswordHash   PasswordHash
	Mail           c.Email
	Roles          []Role
	ValidationCode c.Optional[ValidationCode]
	CreatedAt      time.Time
}

func (u *User) Validate() error {
	if u.Username == "" {
		return e.NewInvalidStateError(fmt.Sprintf("username is not set for user %d", u.ID))
	}
	if u.PasswordHash == "" {
		return e.NewInvalidStateError(fmt.Sprintf("password hash is not set for user %d", u.ID))
	}
	if u.ValidationCode.IsPresent && u.ValidationCode.Value == "" {
		return e.NewInvalidStateError(fmt.Sprintf("empty validation code for user %d", u.ID))
	}
	return nil
}

func (u *User) HasRole(role Role) bool {
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// IsResetPending reports whether a password reset was requested and not completed yet.
func (u *User) IsResetPending() bool {
	return u.ValidationCode.IsPresent
}
