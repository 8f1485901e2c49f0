package admincreateuser

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
	Roles    []user.Role
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

// New returns a service creating users with explicit roles. Unlike self
// registration it does not look the username up first; collisions are
// reported by the store.
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
	passwordHash, err := s.passwordHasher.HashPassword(input.Password)
	if err != nil {
		s.log.Error(ctx, "Could not hash password.", logging.Entry("err", err))
		return result, err
	}

	roles := input.Roles
	if len(roles) == 0 {
		roles = user.DefaultRoles()
	}

	u, err := s.userRepository.Save(ctx, user.User{
		Username:     input.Username,
		PasswordHash: passwordHash,
		Mail:         input.Mail,
		Roles:        roles,
		CreatedAt:    s.now(),
	})
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if errors.Is(err, user.ErrDuplicateKey) {
		s.log.Info(ctx, "User could not be created, duplicate key.", logging.Entry("username", input.Username))
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not create user.",
			logging.Entry("username", input.Username),
			logging.Entry("err", err),
		)
		return result, err
	}

	s.log.Info(
		ctx,
		"User has been created by administrator.",
		logging.Entry("userId", u.ID),
		logging.Entry("roles", u.Roles),
	)
	return Result{User: u}, nil
}
