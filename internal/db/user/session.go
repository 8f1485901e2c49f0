package user

import (
	"context"
	"errors"

	e "newsdesk/internal/core/domain/errors"
	"newsdesk/internal/core/domain/user"
	"newsdesk/internal/db"

	"github.com/jackc/pgx/v4"
)

type PgxSessionRepository struct {
	db db.DBTX
}

func NewPgxSessionRepository(conn db.DBTX) *PgxSessionRepository {
	if conn == nil {
		panic(e.NewNilArgumentError("db"))
	}
	return &PgxSessionRepository{db: conn}
}

func (r *PgxSessionRepository) Create(ctx context.Context, input user.CreateSessionInput) error {
	_, err := r.db.Exec(
		ctx,
		`INSERT INTO session (token, user_id, created_at) VALUES ($1, $2, $3)`,
		string(input.Token),
		int64(input.UserID),
		input.CreatedAt,
	)
	return err
}

func (r *PgxSessionRepository) GetUserByToken(ctx context.Context, token user.SessionToken) (u user.User, err error) {
	u, err = scanUser(r.db.QueryRow(
		ctx,
		`SELECT u.id, u.username, u.password_hash, u.mail, u.roles, u.validation_code, u.created_at
		FROM session s
		JOIN "user" u ON u.id = s.user_id
		WHERE s.token = $1`,
		string(token),
	))
	if errors.Is(err, pgx.ErrNoRows) {
		return u, user.ErrUserDoesNotExist
	}
	if err != nil {
		return u, err
	}
	return u, u.Validate()
}

func (r *PgxSessionRepository) Delete(ctx context.Context, token user.SessionToken) (userID user.ID, err error) {
	var rawUserID int64
	err = r.db.QueryRow(ctx, `DELETE FROM session WHERE token = $1 RETURNING user_id`, string(token)).Scan(&rawUserID)
	if errors.Is(err, pgx.ErrNoRows) {
		return userID, user.ErrSessionDoesNotExist
	}
	if err != nil {
		return userID, err
	}
	return user.ID(rawUserID), nil
}
