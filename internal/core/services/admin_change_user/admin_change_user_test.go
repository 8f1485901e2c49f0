package adminchangeuser

import (
	"context"
	"testing"

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
	Bob            user.User
}

func (suite *testSuite) SetupTest() {
	suite.UserRepository = user.NewFakeUserRepository()
	suite.PasswordHasher = user.NewFakePasswordHasher()
	suite.Service = New(logging.NewFakeLogger(), suite.UserRepository, suite.PasswordHasher)

	hash, _ := suite.PasswordHasher.HashPassword("secret1")
	bob, err := suite.UserRepository.Save(context.Background(), user.User{
		Username:     "bob",
		PasswordHash: hash,
		Mail:         c.NewEmail("bob@x.com"),
		Roles:        []user.Role{user.RoleUser},
	})
	suite.Require().NoError(err)
	suite.Bob = bob
}

func TestAdminChangeUserService(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (suite *testSuite) TestChangeEveryField() {
	assert := suite.Require()

	result, err := suite.Service.Run(context.Background(), Input{
		Username:       "bob",
		Password:       c.NewOptional(user.RawPassword("secret2"), true),
		Mail:           c.NewOptional(c.NewEmail("robert@x.com"), true),
		Roles:          c.NewOptional([]user.Role{user.RoleUser, user.RoleAdmin}, true),
		ValidationCode: c.NewOptional(user.ValidationCode("abcdef0123456789"), true),
	})

	assert.NoError(err)
	stored := suite.storedBob()
	assert.Equal(result.User, stored)
	assert.True(suite.PasswordHasher.ValidatePassword("secret2", stored.PasswordHash))
	assert.Equal(c.Email("robert@x.com"), stored.Mail)
	assert.Equal([]user.Role{user.RoleUser, user.RoleAdmin}, stored.Roles)
	assert.Equal(user.ValidationCode("abcdef0123456789"), stored.ValidationCode.Value)
}

func (suite *testSuite) TestChangeOnlyMail() {
	assert := suite.Require()

	_, err := suite.Service.Run(context.Background(), Input{
		Username: "bob",
		Password: c.NewOptional(user.RawPassword(""), true),
		Mail:     c.NewOptional(c.NewEmail("robert@x.com"), true),
	})

	assert.NoError(err)
	stored := suite.storedBob()
	assert.Equal(suite.Bob.PasswordHash, stored.PasswordHash)
	assert.Equal(suite.Bob.Roles, stored.Roles)
	assert.Equal(c.Email("robert@x.com"), stored.Mail)
}

func (suite *testSuite) TestNothingToChange() {
	assert := suite.Require()

	_, err := suite.Service.Run(context.Background(), Input{
		Username:       "bob",
		Password:       c.NewOptional(user.RawPassword(""), true),
		Mail:           c.NewOptional(c.Email(""), true),
		Roles:          c.NewOptional([]user.Role{}, true),
		ValidationCode: c.NewOptional(user.ValidationCode(""), true),
	})

	assert.ErrorIs(err, user.ErrNoChange)
	assert.Equal(1, suite.UserRepository.SaveCount)
	assert.Equal(suite.Bob, suite.storedBob())
}

func (suite *testSuite) TestUnknownUser() {
	assert := suite.Require()

	_, err := suite.Service.Run(context.Background(), Input{
		Username: "nobody",
		Mail:     c.NewOptional(c.NewEmail("nobody@x.com"), true),
	})

	assert.ErrorIs(err, user.ErrUserDoesNotExist)
	assert.Equal(1, suite.UserRepository.SaveCount)
}

func (suite *testSuite) storedBob() user.User {
	u, err := suite.UserRepository.GetByID(context.Background(), suite.Bob.ID)
	suite.Require().NoError(err)
	return u
}
