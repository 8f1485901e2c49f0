package auth

import (
	"context"

	e "newsdesk/internal/core/domain/errors"
	"newsdesk/internal/core/domain/user"
	"newsdesk/internal/core/services"
)

type contextAuthToken string

const CONTEXT_AUTH_TOKEN_KEY = contextAuthToken("authToken")

// WithToken returns a copy of ctx carrying the session token of the current request.
func WithToken(ctx context.Context, token user.SessionToken) context.Context {
	return context.WithValue(ctx, CONTEXT_AUTH_TOKEN_KEY, token)
}

func TokenFrom(ctx context.Context) (user.SessionToken, bool) {
	token, ok := ctx.Value(CONTEXT_AUTH_TOKEN_KEY).(user.SessionToken)
	return token, ok
}

type Input interface {
	WithAuthenticatedUser(u user.User) Input
}

type service[T Input, S any] struct {
	sessionRepository user.SessionRepository
	inner             services.Service[T, S]
	requiredRoles     []user.Role
}

// WithAuthentication resolves the user behind the session token of ctx and
// passes it to inner. The user must have every role of requiredRoles.
func WithAuthentication[T Input, S any](
	sessionRepository user.SessionRepository,
	inner services.Service[T, S],
	requiredRoles ...user.Role,
) services.Service[T, S] {
	if sessionRepository == nil {
		panic(e.NewNilArgumentError("sessionRepository"))
	}
	if inner == nil {
		panic(e.NewNilArgumentError("inner"))
	}
	return &service[T, S]{
		sessionRepository: sessionRepository,
		inner:             inner,
		requiredRoles:     requiredRoles,
	}
}

func (s *service[T, S]) Run(ctx context.Context, input T) (result S, err error) {
	authToken, ok := TokenFrom(ctx)
	if !ok {
		return result, user.ErrUserDoesNotExist
	}
	u, err := s.sessionRepository.GetUserByToken(ctx, authToken)
	if err != nil {
		return result, err
	}
	for _, role := range s.requiredRoles {
		if !u.HasRole(role) {
			return result, user.ErrPermissionDenied
		}
	}
	return s.inner.Run(ctx, input.WithAuthenticatedUser(u).(T))
}
