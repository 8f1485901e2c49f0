package requestpasswordreset

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
}

func (i Input) GetRateLimitKey() string {
	return "request-password-reset::" + string(i.Mail)
}

type Result struct{}

type service struct {
	log                     logging.Logger
	userRepository          user.UserRepository
	validationCodeGenerator user.ValidationCodeGenerator
	notifier                user.PasswordResetNotifier
}

func New(
	log logging.Logger,
	userRepository user.UserRepository,
	validationCodeGenerator user.ValidationCodeGenerator,
	notifier user.PasswordResetNotifier,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if userRepository == nil {
		panic(e.NewNilArgumentError("userRepository"))
	}
	if validationCodeGenerator == nil {
		panic(e.NewNilArgumentError("validationCodeGenerator"))
	}
	if notifier == nil {
		panic(e.NewNilArgumentError("notifier"))
	}
	return &service{
		log:                     log,
		userRepository:          userRepository,
		validationCodeGenerator: validationCodeGenerator,
		notifier:                notifier,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	u, err := s.userRepository.GetByMail(ctx, input.Mail)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if errors.Is(err, user.ErrUserDoesNotExist) {
		s.log.Info(ctx, "User not found for password reset.", logging.Entry("mail", input.Mail))
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not get user for password reset.",
			logging.Entry("mail", input.Mail),
			logging.Entry("err", err),
		)
		return result, err
	}

	code, err := s.validationCodeGenerator.GenerateValidationCode()
	if err != nil {
		s.log.Error(
			ctx,
			"Could not generate validation code.",
			logging.Entry("userId", u.ID),
			logging.Entry("err", err),
		)
		return result, err
	}

	// The code is stored only once the user could actually receive it.
	if err := s.notifier.SendValidationCode(ctx, u, code); err != nil {
		if errors.Is(err, context.Canceled) {
			return result, err
		}
		s.log.Error(
			ctx,
			"Could not send password reset validation code.",
			logging.Entry("userId", u.ID),
			logging.Entry("err", err),
		)
		return result, user.ErrNotificationNotSent
	}

	u.ValidationCode = c.NewOptional(code, true)
	if _, err := s.userRepository.Save(ctx, u); err != nil {
		if errors.Is(err, context.Canceled) {
			return result, err
		}
		s.log.Error(
			ctx,
			"Could not store password reset validation code.",
			logging.Entry("userId", u.ID),
			logging.Entry("err", err),
		)
		return result, err
	}

	s.log.Info(ctx, "Password reset validation code has been sent.", logging.Entry("userId", u.ID))
	return result, nil
}
