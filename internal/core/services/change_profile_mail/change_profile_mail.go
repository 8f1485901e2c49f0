package changeprofilemail

import (
	"context"
	"errors"

	c "newsdesk/internal/core/domain/common"
	e "newsdesk/internal/core/domain/errors"
	"newsdesk/internal/core/domain/logging"
	"newsdesk/internal/core/domain/user"
	"newsdesk/internal/core/services"
	"newsdesk/internal/core/services/auth"
)

type Input struct {
	OldMail c.Email
	NewMail c.Email
	User    user.User
}

func (i Input) WithAuthenticatedUser(u user.User) auth.Input {
	i.User = u
	return i
}

type Result struct {
	User user.User
}

type service struct {
	log            logging.Logger
	userRepository user.UserRepository
}

func New(
	log logging.Logger,
	userRepository user.UserRepository,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if userRepository == nil {
		panic(e.NewNilArgumentError("userRepository"))
	}
	return &service{
		log:            log,
		userRepository: userRepository,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	if input.User.Mail != input.OldMail {
		s.log.Info(ctx, "Old mail does not match on mail change.", logging.Entry("userId", input.User.ID))
		return result, user.ErrMailMismatch
	}

	u := input.User
	u.Mail = input.NewMail
	u, err = s.userRepository.Save(ctx, u)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if errors.Is(err, user.ErrDuplicateKey) {
		s.log.Info(ctx, "Mail is already used by another user.", logging.Entry("userId", input.User.ID))
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not change user mail.",
			logging.Entry("userId", input.User.ID),
			logging.Entry("err", err),
		)
		return result, err
	}

	s.log.Info(ctx, "User mail has been changed.", logging.Entry("userId", u.ID))
	return Result{User: u}, nil
}
