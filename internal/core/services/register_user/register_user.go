package registeruser

import (
	"context"
	"errors"
	"time"

	c "newsdesk/internal/core/domain/common"
	e "newsdesk/internal/core/domain/errors"
	"newsdesk/internal/core/domain/logging"
	"newsdesk/internal/core/domain/user"
	"newsdesk/internal/core/services"
)

type Input struct {
	Username user.Username
	Password user.RawPassword
	Mail     c.Email
}

func (i Input) GetRateLimitKey() string {
	return "register-user::" + string(i.Mail)
}

type Result struct {
	User user.User
}

type service struct {
	log            logging.Logger
	userRepository user.UserRepository
	passwordHasher user.PasswordHasher
	now            func() time.Time
}

func New(
	log logging.Logger,
	userRepository user.UserRepository,
	passwordHasher user.PasswordHasher,
	now func() time.Time,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if userRepository == nil {
		panic(e.NewNilArgumentError("userRepository"))
	}
	if passwordHasher == nil {
		panic(e.NewNilArgumentError("passwordHasher"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{
		log:            log,
		userRepository: userRepository,
		passwordHasher: passwordHasher,
		now:            now,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	_, err = s.userRepository.GetByUsername(ctx, input.Username)
	if err == nil {
		s.log.Info(ctx, "User already exists.", logging.Entry("username", input.Username))
		return result, user.ErrUserAlreadyExists
	}
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if !errors.Is(err, user.ErrUserDoesNotExist) {
		s.log.Error(
			ctx,
			"Could not check whether user exists.",
			logging.Entry("username", input.Username),
			logging.Entry("err", err),
		)
		return result, err
	}

	passwordHash, err := s.passwordHasher.HashPassword(input.Password)
	if err != nil {
		s.log.Error(ctx, "Could not hash password.", logging.Entry("err", err))
		return result, err
	}

	u, err := s.userRepository.Save(ctx, user.User{
		Username:     input.Username,
		PasswordHash: passwordHash,
		Mail:         input.Mail,
		Roles:        user.DefaultRoles(),
		CreatedAt:    s.now(),
	})
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if errors.Is(err, user.ErrDuplicateKey) {
		s.log.Info(
			ctx,
			"User could not be registered, duplicate key.",
			logging.Entry("username", input.Username),
			logging.Entry("err", err),
		)
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not register user.",
			logging.Entry("username", input.Username),
			logging.Entry("err", err),
		)
		return result, err
	}

	s.log.Info(
		ctx,
		"User has been successfully registered.",
		logging.Entry("userId", u.ID),
		logging.Entry("username", u.Username),
	)
	return Result{User: u}, nil
}
