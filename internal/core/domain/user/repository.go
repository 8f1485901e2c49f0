package user

import (
	"context"
	"time"

	c "newsdesk/internal/core/domain/common"
)

type UserRepository interface {
	GetByID(ctx context.Context, id ID) (User, error)
	GetByUsername(ctx context.Context, username Username) (User, error)
	GetByMail(ctx context.Context, mail c.Email) (User, error)
	GetByValidationCodeAndMail(ctx context.Context, code ValidationCode, mail c.Email) (User, error)
	// Save inserts the user if its ID is zero and updates it otherwise.
	Save(ctx context.Context, u User) (User, error)
	Delete(ctx context.Context, id ID) error
}

type CreateSessionInput struct {
	UserID    ID
	Token     SessionToken
	CreatedAt time.Time
}

type SessionRepository interface {
	Create(ctx context.Context, input CreateSessionInput) error
	GetUserByToken(ctx context.Context, token SessionToken) (User, error)
	Delete(ctx context.Context, token SessionToken) (userID ID, err error)
}
