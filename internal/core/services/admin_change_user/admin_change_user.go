package adminchangeuser

import (
	"context"
	"errors"

	c "newsdesk/internal/core/domain/common"
	e "newsdesk/internal/core/domain/errors"
	"newsdesk/internal/core/domain/logging"
	"newsdesk/internal/core/domain/user"
	"newsdesk/internal/core/services"
)

// Input carries the optional replacements. Absent or empty values leave the
// corresponding field unchanged.
type Input struct {
	Username       user.Username
	Password       c.Optional[user.RawPassword]
	Mail           c.Optional[c.Email]
	Roles          c.Optional[[]user.Role]
	ValidationCode c.Optional[user.ValidationCode]
}

type Result struct {
	User user.User
}

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
		userRepository: userRepository,
		passwordHasher: passwordHasher,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	u, err := s.userRepository.GetByUsername(ctx, input.Username)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if errors.Is(err, user.ErrUserDoesNotExist) {
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not get user for change.",
			logging.Entry("username", input.Username),
			logging.Entry("err", err),
		)
		return result, err
	}

	changed := false
	if input.Password.IsPresent && input.Password.Value != "" {
		passwordHash, err := s.passwordHasher.HashPassword(input.Password.Value)
		if err != nil {
			s.log.Error(ctx, "Could not hash password.", logging.Entry("userId", u.ID), logging.Entry("err", err))
			return result, err
		}
		u.PasswordHash = passwordHash
		changed = true
	}
	if input.Mail.IsPresent && input.Mail.Value != "" {
		u.Mail = input.Mail.Value
		changed = true
	}
	if input.Roles.IsPresent && len(input.Roles.Value) > 0 {
		u.Roles = input.Roles.Value
		changed = true
	}
	if input.ValidationCode.IsPresent && input.ValidationCode.Value != "" {
		u.ValidationCode = input.ValidationCode
		changed = true
	}
	if !changed {
		return Result{User: u}, user.ErrNoChange
	}

	u, err = s.userRepository.Save(ctx, u)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if errors.Is(err, user.ErrDuplicateKey) {
		s.log.Info(ctx, "User could not be changed, duplicate key.", logging.Entry("username", input.Username))
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not change user.",
			logging.Entry("username", input.Username),
			logging.Entry("err", err),
		)
		return result, err
	}

	s.log.Info(ctx, "User has been changed by administrator.", logging.Entry("userId", u.ID))
	return Result{User: u}, nil
}
