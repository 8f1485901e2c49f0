package completepasswordreset

import (
	"context"
	"errors"

	c "newsdesk/internal/core/domain/common"
	e "newsdesk/internal/core/domain/errors"
	"newsdesk/internal/core/domain/logging"
	"newsdesk/internal/core/domain/user"
	"newsdesk/internal/core/services"
)

type Input struct {
	Mail c.Email
	Code user.ValidationCode
}

func (i Input) GetRateLimitKey() string {
	return "complete-password-reset::" + string(i.Mail)
}

type Result struct{}

type service struct {
	log               logging.Logger
	userRepository    user.UserRepository
	passwordGenerator user.PasswordGenerator
	passwordHasher    user.PasswordHasher
	notifier          user.PasswordResetNotifier
}

func New(
	log logging.Logger,
	userRepository user.UserRepository,
	passwordGenerator user.PasswordGenerator,
	passwordHasher user.PasswordHasher,
	notifier user.PasswordResetNotifier,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if userRepository == nil {
		panic(e.NewNilArgumentError("userRepository"))
	}
	if passwordGenerator == nil {
		panic(e.NewNilArgumentError("passwordGenerator"))
	}
	if passwordHasher == nil {
		panic(e.NewNilArgumentError("passwordHasher"))
	}
	if notifier == nil {
		panic(e.NewNilArgumentError("notifier"))
	}
	return &service{
		log:               log,
		userRepository:    userRepository,
		passwordGenerator: passwordGenerator,
		passwordHasher:    passwordHasher,
		notifier:          notifier,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	if input.Code == "" {
		return result, user.ErrUserDoesNotExist
	}
	u, err := s.userRepository.GetByValidationCodeAndMail(ctx, input.Code, input.Mail)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if errors.Is(err, user.ErrUserDoesNotExist) {
		s.log.Info(ctx, "No pending password reset for mail and code.", logging.Entry("mail", input.Mail))
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not get user for password reset completion.",
			logging.Entry("mail", input.Mail),
			logging.Entry("err", err),
		)
		return result, err
	}

	password, err := s.passwordGenerator.GeneratePassword()
	if err != nil {
		s.log.Error(ctx, "Could not generate password.", logging.Entry("userId", u.ID), logging.Entry("err", err))
		return result, err
	}
	passwordHash, err := s.passwordHasher.HashPassword(password)
	if err != nil {
		s.log.Error(ctx, "Could not hash password.", logging.Entry("userId", u.ID), logging.Entry("err", err))
		return result, err
	}

	// Nothing is persisted unless the new password reached the user.
	if err := s.notifier.SendNewPassword(ctx, u, password); err != nil {
		if errors.Is(err, context.Canceled) {
			return result, err
		}
		s.log.Error(
			ctx,
			"Could not send new password.",
			logging.Entry("userId", u.ID),
			logging.Entry("err", err),
		)
		return result, user.ErrNotificationNotSent
	}

	u.PasswordHash = passwordHash
	u.ValidationCode = c.Absent[user.ValidationCode]()
	if _, err := s.userRepository.Save(ctx, u); err != nil {
		if errors.Is(err, context.Canceled) {
			return result, err
		}
		s.log.Error(
			ctx,
			"Could not store new password.",
			logging.Entry("userId", u.ID),
			logging.Entry("err", err),
		)
		return result, err
	}

	s.log.Info(ctx, "Password has been reset.", logging.Entry("userId", u.ID))
	return result, nil
}
