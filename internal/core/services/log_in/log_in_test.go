package login

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

const SESSION_TOKEN = "test-session-token"

type testSuite struct {
	suite.Suite
	UserRepository    *user.FakeUserRepository
	SessionRepository *user.FakeSessionRepository
	PasswordHasher    *user.FakePasswordHasher
	Service           services.Service[Input, Result]
	Bob               user.User
}

func (suite *testSuite) SetupTest() {
	suite.UserRepository = user.NewFakeUserRepository()
	suite.SessionRepository = user.NewFakeSessionRepository(suite.UserRepository)
	suite.PasswordHasher = user.NewFakePasswordHasher()
	suite.Service = New(
		logging.NewFakeLogger(),
		suite.UserRepository,
		suite.SessionRepository,
		suite.PasswordHasher,
		user.NewFakeSessionTokenGenerator(SESSION_TOKEN),
		func() time.Time { return time.Now().UTC() },
	)

	hash, _ := suite.PasswordHasher.HashPassword("secret1")
	bob, err := suite.UserRepository.Save(context.Background(), user.User{
		Username:     "bob",
		PasswordHash: hash,
		Mail:         c.NewEmail("bob@x.com"),
	})
	suite.Require().NoError(err)
	suite.Bob = bob
}

func TestLogInService(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (suite *testSuite) TestSuccess() {
	assert := suite.Require()

	result, err := suite.Service.Run(context.Background(), Input{Username: "bob", Password: "secret1"})

	assert.NoError(err)
	assert.Equal(user.SessionToken(SESSION_TOKEN), result.Token)
	u, err := suite.SessionRepository.GetUserByToken(context.Background(), SESSION_TOKEN)
	assert.NoError(err)
	assert.Equal(suite.Bob.ID, u.ID)
}

func (suite *testSuite) TestInvalidCredentials() {
	cases := []struct {
		id       string
		username string
		password string
	}{
		{id: "wrong password", username: "bob", password: "secret2"},
		{id: "unknown user", username: "alice", password: "secret1"},
	}
	for _, testcase := range cases {
		suite.Run(testcase.id, func() {
			assert := suite.Require()

			_, err := suite.Service.Run(context.Background(), Input{
				Username: user.Username(testcase.username),
				Password: user.RawPassword(testcase.password),
			})

			assert.ErrorIs(err, user.ErrInvalidCredentials)
			assert.Empty(suite.SessionRepository.UserIdByToken)
		})
	}
}
