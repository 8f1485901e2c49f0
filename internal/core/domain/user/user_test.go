package user

import (
	"errors"
	"testing"

	c "newsdesk/internal/core/domain/common"

	"github.com/stretchr/testify/require"
)

func TestParseRoles(t *testing.T) {
	cases := []struct {
		raw      string
		expected []Role
	}{
		{raw: "ROLE_USER", expected: []Role{RoleUser}},
		{raw: "ROLE_USER|ROLE_ADMIN", expected: []Role{RoleUser, RoleAdmin}},
		{raw: " ROLE_ADMIN | ROLE_USER ", expected: []Role{RoleAdmin, RoleUser}},
		{raw: "ROLE_USER||", expected: []Role{RoleUser}},
		{raw: "", expected: []Role{}},
	}
	for _, testcase := range cases {
		t.Run(testcase.raw, func(t *testing.T) {
			require.Equal(t, testcase.expected, ParseRoles(testcase.raw))
		})
	}
}

func TestUserValidate(t *testing.T) {
	assert := require.New(t)

	u := User{ID: 1, Username: "bob", PasswordHash: "hash", Mail: c.NewEmail("bob@x.com")}
	assert.NoError(u.Validate())

	u.PasswordHash = ""
	assert.Error(u.Validate())

	u.PasswordHash = "hash"
	u.ValidationCode = c.NewOptional(ValidationCode(""), true)
	assert.Error(u.Validate())
}

func TestHasRole(t *testing.T) {
	u := User{Roles: []Role{RoleUser}}
	require.True(t, u.HasRole(RoleUser))
	require.False(t, u.HasRole(RoleAdmin))
}

func TestDuplicateKeyErrorIs(t *testing.T) {
	var err error = &DuplicateKeyError{Key: "mail"}
	require.True(t, errors.Is(err, ErrDuplicateKey))

	var dkErr *DuplicateKeyError
	require.True(t, errors.As(err, &dkErr))
	require.Equal(t, "mail", dkErr.Key)
}

func TestSecretsAreMaskedWhenPrinted(t *testing.T) {
	require.Equal(t, "***", RawPassword("secret1").String())
	require.Equal(t, "***", PasswordHash("$2a$...").String())
}

func TestValidation(t *testing.T) {
	assert := require.New(t)

	assert.NoError(ValidateUsername("bob"))
	assert.Error(ValidateUsername(""))

	assert.NoError(ValidatePassword("secret1"))
	assert.Error(ValidatePassword("12345"))
	assert.Error(ValidatePassword(""))

	assert.NoError(ValidateMail("bob@x.com"))
	assert.Error(ValidateMail("bob"))
	assert.Error(ValidateMail(""))
}
