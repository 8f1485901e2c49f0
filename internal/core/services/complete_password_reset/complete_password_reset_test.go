package completepasswordreset

import (
	"context"
	"testing"

	c "newsdesk/internal/core/domain/common"
	"newsdesk/internal/core/domain/logging"
	"newsdesk/internal/core/domain/user"
	"newsdesk/internal/core/services"

	"github.com/stretchr/testify/suite"
)

const (
	MAIL            = "bob@x.com"
	OLD_PASSWORD    = "secret1"
	VALIDATION_CODE = "0123456789abcdef"
	NEW_PASSWORD    = "00aa11bb22cc33dd"
)

type testSuite struct {
	suite.Suite
	Logger            *logging.FakeLogger
	UserRepository    *user.FakeUserRepository
	PasswordGenerator *user.FakePasswordGenerator
	PasswordHasher    *user.FakePasswordHasher
	Notifier          *user.FakePasswordResetNotifier
	Service           services.Service[Input, Result]
	User              user.User
}

func (suite *testSuite) SetupTest() {
	suite.Logger = logging.NewFakeLogger()
	suite.UserRepository = user.NewFakeUserRepository()
	suite.PasswordGenerator = user.NewFakePasswordGenerator(NEW_PASSWORD)
	suite.PasswordHasher = user.NewFakePasswordHasher()
	suite.Notifier = user.NewFakePasswordResetNotifier()
	suite.Service = New(
		suite.Logger,
		suite.UserRepository,
		suite.PasswordGenerator,
		suite.PasswordHasher,
		suite.Notifier,
	)

	hash, err := suite.PasswordHasher.HashPassword(OLD_PASSWORD)
	suite.Require().NoError(err)
	u, err := suite.UserRepository.Save(context.Background(), user.User{
		Username:       "bob",
		PasswordHash:   hash,
		Mail:           c.NewEmail(MAIL),
		Roles:          []user.Role{user.RoleUser},
		ValidationCode: c.NewOptional(user.ValidationCode(VALIDATION_CODE), true),
	})
	suite.Require().NoError(err)
	suite.User = u
}

func TestCompletePasswordResetService(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (suite *testSuite) TestSuccess() {
	assert := suite.Require()

	// Exercise ---
	_, err := suite.Service.Run(context.Background(), Input{
		Mail: c.NewEmail(MAIL),
		Code: VALIDATION_CODE,
	})

	// Verify ---
	assert.NoError(err)
	assert.Len(suite.Notifier.SentPasswords, 1)
	assert.Equal(user.RawPassword(NEW_PASSWORD), suite.Notifier.SentPasswords[0].Password)

	stored := suite.storedUser()
	assert.False(stored.ValidationCode.IsPresent)
	assert.True(suite.PasswordHasher.ValidatePassword(NEW_PASSWORD, stored.PasswordHash))
	assert.False(suite.PasswordHasher.ValidatePassword(OLD_PASSWORD, stored.PasswordHash))
}

func (suite *testSuite) TestWrongCodeOrMail() {
	cases := []struct {
		id   string
		mail string
		code string
	}{
		{id: "wrong code", mail: MAIL, code: "ffffffffffffffff"},
		{id: "wrong mail", mail: "alice@x.com", code: VALIDATION_CODE},
		{id: "empty code", mail: MAIL, code: ""},
	}
	for _, testcase := range cases {
		suite.Run(testcase.id, func() {
			assert := suite.Require()

			_, err := suite.Service.Run(context.Background(), Input{
				Mail: c.NewEmail(testcase.mail),
				Code: user.ValidationCode(testcase.code),
			})

			assert.ErrorIs(err, user.ErrUserDoesNotExist)
			assert.Equal(0, suite.Notifier.SentCount())
			assert.Equal(suite.User, suite.storedUser())
		})
	}
}

func (suite *testSuite) TestCodeOfAnotherUserDoesNotMatch() {
	assert := suite.Require()
	_, err := suite.UserRepository.Save(context.Background(), user.User{
		Username:     "alice",
		PasswordHash: "hash",
		Mail:         c.NewEmail("alice@x.com"),
	})
	assert.NoError(err)

	_, err = suite.Service.Run(context.Background(), Input{
		Mail: c.NewEmail("alice@x.com"),
		Code: VALIDATION_CODE,
	})

	assert.ErrorIs(err, user.ErrUserDoesNotExist)
}

func (suite *testSuite) TestSendFailureKeepsResetPending() {
	assert := suite.Require()
	suite.Notifier.ReturnError = true

	_, err := suite.Service.Run(context.Background(), Input{
		Mail: c.NewEmail(MAIL),
		Code: VALIDATION_CODE,
	})

	assert.ErrorIs(err, user.ErrNotificationNotSent)
	stored := suite.storedUser()
	assert.Equal(suite.User, stored)
	assert.True(stored.ValidationCode.IsPresent)
	assert.True(suite.PasswordHasher.ValidatePassword(OLD_PASSWORD, stored.PasswordHash))
}

func (suite *testSuite) TestCodeIsSingleUse() {
	assert := suite.Require()

	_, err := suite.Service.Run(context.Background(), Input{Mail: c.NewEmail(MAIL), Code: VALIDATION_CODE})
	assert.NoError(err)

	_, err = suite.Service.Run(context.Background(), Input{Mail: c.NewEmail(MAIL), Code: VALIDATION_CODE})
	assert.ErrorIs(err, user.ErrUserDoesNotExist)
	assert.Len(suite.Notifier.SentPasswords, 1)
}

func (suite *testSuite) TestGeneratorFailureAborts() {
	assert := suite.Require()
	suite.PasswordGenerator.ReturnError = true

	_, err := suite.Service.Run(context.Background(), Input{Mail: c.NewEmail(MAIL), Code: VALIDATION_CODE})

	assert.Error(err)
	assert.Equal(0, suite.Notifier.SentCount())
	assert.Equal(suite.User, suite.storedUser())
}

func (suite *testSuite) storedUser() user.User {
	u, err := suite.UserRepository.GetByID(context.Background(), suite.User.ID)
	suite.Require().NoError(err)
	return u
}
