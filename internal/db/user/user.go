package user

import (
	"context"
	"errors"
	"time"

	c "newsdesk/internal/core/domain/common"
	e "newsdesk/internal/core/domain/errors"
	"newsdesk/internal/core/domain/user"
	"newsdesk/internal/db"

	"github.com/jackc/pgtype"
	"github.com/jackc/pgx/v4"
)

const (
	USERNAME_CONSTRAINT_NAME = "user_username_idx"
	MAIL_CONSTRAINT_NAME     = "user_mail_idx"
)

const userColumns = `id, username, password_hash, mail, roles, validation_code, created_at`

type PgxUserRepository struct {
	db db.DBTX
}

func NewPgxRepository(conn db.DBTX) *PgxUserRepository {
	if conn == nil {
		panic(e.NewNilArgumentError("db"))
	}
	return &PgxUserRepository{db: conn}
}

func (r *PgxUserRepository) GetByID(ctx context.Context, id user.ID) (user.User, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM "user" WHERE id = $1`, int64(id))
}

func (r *PgxUserRepository) GetByUsername(ctx context.Context, username user.Username) (user.User, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM "user" WHERE username = $1`, string(username))
}

func (r *PgxUserRepository) GetByMail(ctx context.Context, mail c.Email) (user.User, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM "user" WHERE mail = $1`, string(mail))
}

func (r *PgxUserRepository) GetByValidationCodeAndMail(
	ctx context.Context,
	code user.ValidationCode,
	mail c.Email,
) (user.User, error) {
	return r.getOne(
		ctx,
		`SELECT `+userColumns+` FROM "user" WHERE validation_code = $1 AND mail = $2`,
		string(code),
		string(mail),
	)
}

func (r *PgxUserRepository) Save(ctx context.Context, u user.User) (user.User, error) {
	if err := u.Validate(); err != nil {
		return u, err
	}
	if u.ID == 0 {
		return r.scanSaved(r.db.QueryRow(
			ctx,
			`INSERT INTO "user" (username, password_hash, mail, roles, validation_code, created_at)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING `+userColumns,
			string(u.Username),
			string(u.PasswordHash),
			string(u.Mail),
			encodeRoles(u.Roles),
			encodeValidationCode(u.ValidationCode),
			u.CreatedAt,
		))
	}
	return r.scanSaved(r.db.QueryRow(
		ctx,
		`UPDATE "user"
		SET username = $2, password_hash = $3, mail = $4, roles = $5, validation_code = $6
		WHERE id = $1
		RETURNING `+userColumns,
		int64(u.ID),
		string(u.Username),
		string(u.PasswordHash),
		string(u.Mail),
		encodeRoles(u.Roles),
		encodeValidationCode(u.ValidationCode),
	))
}

func (r *PgxUserRepository) Delete(ctx context.Context, id user.ID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM "user" WHERE id = $1`, int64(id))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserDoesNotExist
	}
	return nil
}

func (r *PgxUserRepository) getOne(ctx context.Context, query string, args ...interface{}) (user.User, error) {
	u, err := scanUser(r.db.QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return u, user.ErrUserDoesNotExist
	}
	if err != nil {
		return u, err
	}
	return u, u.Validate()
}

func (r *PgxUserRepository) scanSaved(row pgx.Row) (user.User, error) {
	u, err := scanUser(row)
	if constraint, ok := db.UniqueViolation(err); ok {
		switch constraint {
		case USERNAME_CONSTRAINT_NAME:
			return u, &user.DuplicateKeyError{Key: "username"}
		case MAIL_CONSTRAINT_NAME:
			return u, &user.DuplicateKeyError{Key: "mail"}
		default:
			return u, &user.DuplicateKeyError{Key: constraint}
		}
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return u, user.ErrUserDoesNotExist
	}
	if err != nil {
		return u, err
	}
	return u, u.Validate()
}

func scanUser(row pgx.Row) (u user.User, err error) {
	var (
		id             int64
		username       string
		passwordHash   string
		mail           string
		roles          pgtype.TextArray
		validationCode pgtype.Text
		createdAt      time.Time
	)
	err = row.Scan(&id, &username, &passwordHash, &mail, &roles, &validationCode, &createdAt)
	if err != nil {
		return u, err
	}
	return user.User{
		ID:             user.ID(id),
		Username:       user.Username(username),
		PasswordHash:   user.PasswordHash(passwordHash),
		Mail:           c.Email(mail),
		Roles:          decodeRoles(roles),
		ValidationCode: decodeValidationCode(validationCode),
		CreatedAt:      createdAt,
	}, nil
}

func encodeRoles(roles []user.Role) pgtype.TextArray {
	if len(roles) == 0 {
		roles = user.DefaultRoles()
	}
	raw := make([]string, len(roles))
	for ix, role := range roles {
		raw[ix] = string(role)
	}
	var arr pgtype.TextArray
	if err := arr.Set(raw); err != nil {
		panic(err)
	}
	return arr
}

func decodeRoles(arr pgtype.TextArray) []user.Role {
	roles := make([]user.Role, 0, len(arr.Elements))
	for _, el := range arr.Elements {
		if el.Status == pgtype.Present {
			roles = append(roles, user.Role(el.String))
		}
	}
	return roles
}

func encodeValidationCode(code c.Optional[user.ValidationCode]) pgtype.Text {
	if !code.IsPresent {
		return pgtype.Text{Status: pgtype.Null}
	}
	return pgtype.Text{String: string(code.Value), Status: pgtype.Present}
}

func decodeValidationCode(code pgtype.Text) c.Optional[user.ValidationCode] {
	return c.NewOptional(user.ValidationCode(code.String), code.Status == pgtype.Present)
}
