package changeprofilepassword

import (
	"context"
	"errors"

	e "newsdesk/internal/core/domain/errors"
	"newsdesk/internal/core/domain/logging"
	"newsdesk/internal/core/domain/user"
	"newsdesk/internal/core/services"
	"newsdesk/internal/core/services/auth"
)

type Input struct {
	OldPassword user.RawPassword
	NewPassword user.RawPassword
	User        user.User
}

func (i Input) WithAuthenticatedUser(u user.User) auth.Input {
	i.User = u
	return i
}

type Result struct{}

type service struct {
	log            logging.Logger
	userRepository user.UserRepository
	passwordHasher user.PasswordHasher
}

func New(
	log logging.Logger,
	userRepository user.UserRepository,
	passwordHasher user.PasswordHasher,
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
	return &service{
		log:            log,
		passwordHasher: passwordHasher,
		userRepository: userRepository,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	if !s.passwordHasher.ValidatePassword(input.OldPassword, input.User.PasswordHash) {
		s.log.Info(ctx, "Wrong old password on password change.", logging.Entry("userId", input.User.ID))
		return result, user.ErrWrongOldPassword
	}

	newPasswordHash, err := s.passwordHasher.HashPassword(input.NewPassword)
	if err != nil {
		s.log.Error(ctx, "Could not hash password.", logging.Entry("userId", input.User.ID), logging.Entry("err", err))
		return result, err
	}

	u := input.User
	u.PasswordHash = newPasswordHash
	if _, err := s.userRepository.Save(ctx, u); err != nil {
		if errors.Is(err, context.Canceled) {
			return result, err
		}
		s.log.Error(
			ctx,
			"Could not change user password.",
			logging.Entry("userId", u.ID),
			logging.Entry("err", err),
		)
		return result, err
	}

	s.log.Info(ctx, "User password has been changed.", logging.Entry("userId", u.ID))
	return result, nil
}
