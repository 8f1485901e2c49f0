package admindeleteuser

import (
	"context"
	"errors"

	e "newsdesk/internal/core/domain/errors"
	"newsdesk/internal/core/domain/logging"
	"newsdesk/internal/core/domain/user"
	"newsdesk/internal/core/services"
)

type Input struct {
	Username user.Username
	// Confirmed is the answer of the operator to the deletion prompt.
	Confirmed bool
}

type Result struct{}

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
			"Could not get user for deletion.",
			logging.Entry("username", input.Username),
			logging.Entry("err", err),
		)
		return result, err
	}

	if !input.Confirmed {
		return result, user.ErrCancelled
	}

	err = s.userRepository.Delete(ctx, u.ID)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if err != nil {
		s.log.Error(ctx, "Could not delete user.", logging.Entry("userId", u.ID), logging.Entry("err", err))
		return result, err
	}

	s.log.Info(ctx, "User has been deleted by administrator.", logging.Entry("userId", u.ID))
	return result, nil
}
