package logout

import (
	"context"
	"errors"
	"testing"
	"time"

	c "newsdesk/internal/core/domain/common"
	"newsdesk/internal/core/domain/logging"
	"newsdesk/internal/core/domain/user"
	"newsdesk/internal/core/services"

	"github.com/stretchr/testify/suite"
)

const (
	MAIL          = "bob@x.com"
	PASSWORD_HASH = "bob-password-hash"
	SESSION_TOKEN = "2b0e3d5c-3a55-4a4e-9bd5-7c1f0f1d2a10"
)

var NOW time.Time = time.Now().UTC()

type testSuite struct {
	suite.Suite
	Logger            *logging.FakeLogger
	UserRepository    *user.FakeUserRepository
	SessionRepository *user.FakeSessionRepository
	Service           services.Service[Input, Result]
}

func (suite *testSuite) SetupTest() {
	suite.Logger = logging.NewFakeLogger()
	suite.UserRepository = user.NewFakeUserRepository()
	suite.SessionRepository = user.NewFakeSessionRepository(suite.UserRepository)
	suite.Service = New(
		suite.Logger,
		suite.SessionRepository,
	)
}

func TestLogOutService(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (s *testSuite) TestSuccess() {
	s.createUserAndSession()

	_, err := s.Service.Run(
		context.Background(),
		Input{Token: user.SessionToken(SESSION_TOKEN)},
	)
	s.Nil(err)
	s.False(s.sessionExists(user.SessionToken(SESSION_TOKEN)))
	s.Equal(1, s.Logger.Count(logging.INFO))
}

func (s *testSuite) TestSecondLogOutFails() {
	s.createUserAndSession()
	input := Input{Token: user.SessionToken(SESSION_TOKEN)}

	_, first := s.Service.Run(context.Background(), input)
	_, second := s.Service.Run(context.Background(), input)

	s.Nil(first)
	s.ErrorIs(second, user.ErrSessionDoesNotExist)
	s.Equal(0, s.Logger.Count(logging.ERROR))
}

func (s *testSuite) TestRepositoryFailureIsLogged() {
	s.createUserAndSession()
	s.SessionRepository.ReturnError = true

	_, err := s.Service.Run(context.Background(), Input{Token: user.SessionToken(SESSION_TOKEN)})

	s.Error(err)
	s.False(errors.Is(err, user.ErrSessionDoesNotExist))
	s.Equal(1, s.Logger.Count(logging.ERROR))
}

func (s *testSuite) TestErrorReturnedIfSessionTokenInvalid() {
	s.createUserAndSession()

	_, err := s.Service.Run(
		context.Background(),
		Input{Token: user.SessionToken("invalid-session-token")},
	)
	s.True(errors.Is(err, user.ErrSessionDoesNotExist))
	s.True(s.sessionExists(user.SessionToken(SESSION_TOKEN)))
}

func (s *testSuite) createUserAndSession() user.User {
	s.T().Helper()
	u, err := s.UserRepository.Save(
		context.Background(),
		user.User{
			Username:     "bob",
			Mail:         c.NewEmail(MAIL),
			PasswordHash: user.PasswordHash(PASSWORD_HASH),
			CreatedAt:    NOW,
		},
	)
	if err != nil {
		s.FailNow(err.Error())
	}

	err = s.SessionRepository.Create(
		context.Background(),
		user.CreateSessionInput{
			UserID:    u.ID,
			Token:     user.SessionToken(SESSION_TOKEN),
			CreatedAt: NOW,
		},
	)
	if err != nil {
		s.FailNow(err.Error())
	}
	s.True(s.sessionExists(user.SessionToken(SESSION_TOKEN)))
	return u
}

func (s *testSuite) sessionExists(token user.SessionToken) bool {
	s.T().Helper()
	_, err := s.SessionRepository.GetUserByToken(context.Background(), token)
	if errors.Is(err, user.ErrUserDoesNotExist) {
		return false
	}
	if err != nil {
		s.FailNow(err.Error())
	}
	return true
}
