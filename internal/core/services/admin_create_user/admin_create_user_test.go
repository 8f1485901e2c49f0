package admincreateuser

import (
	"context"
	"testing"
	"time"

	c "newsdesk/internal/core/domain/common"
	"newsdesk/internal/core/domain/logging"
	"newsdesk/internal/core/domain/user"
	"newsdesk/internal/core/services"

	"github.com/stretchr/testify/suite"
)

type testSuite struct {
	suite.Suite
	UserRepository *user.FakeUserRepository
	PasswordHasher *user.FakePasswordHasher
	Service        services.Service[Input, Result]
}

func (suite *testSuite) SetupTest() {
	suite.UserRepository = user.NewFakeUserRepository()
	suite.PasswordHasher = user.NewFakePasswordHasher()
	suite.Service = New(
		logging.NewFakeLogger(),
		suite.UserRepository,
		suite.PasswordHasher,
		func() time.Time { return time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC) },
	)
}

func TestAdminCreateUserService(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (suite *testSuite) TestCreateWithRoles() {
	assert := suite.Require()

	result, err := suite.Service.Run(context.Background(), Input{
		Username: "admin",
		Password: "secret1",
		Mail:     c.NewEmail("admin@x.com"),
		Roles:    user.ParseRoles("ROLE_USER|ROLE_ADMIN"),
	})

	assert.NoError(err)
	assert.Equal([]user.Role{user.RoleUser, user.RoleAdmin}, result.User.Roles)
	assert.True(suite.PasswordHasher.ValidatePassword("secret1", result.User.PasswordHash))
}

func (suite *testSuite) TestDefaultRoles() {
	assert := suite.Require()

	result, err := suite.Service.Run(context.Background(), Input{
		Username: "bob",
		Password: "secret1",
		Mail:     c.NewEmail("bob@x.com"),
	})

	assert.NoError(err)
	assert.Equal([]user.Role{user.RoleUser}, result.User.Roles)
}

func (suite *testSuite) TestDuplicateUsername() {
	assert := suite.Require()
	input := Input{Username: "bob", Password: "secret1", Mail: c.NewEmail("bob@x.com")}
	_, err := suite.Service.Run(context.Background(), input)
	assert.NoError(err)

	input.Mail = c.NewEmail("bob2@x.com")
	_, err = suite.Service.Run(context.Background(), input)

	assert.ErrorIs(err, user.ErrDuplicateKey)
	assert.Len(suite.UserRepository.Users, 1)
}
