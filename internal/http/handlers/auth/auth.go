package auth

import (
	"context"
	"errors"
	"net/http"

	"newsdesk/internal/core/domain/logging"
	"newsdesk/internal/core/domain/user"
	"newsdesk/internal/core/services"
	"newsdesk/internal/core/services/auth"
	s "newsdesk/internal/core/services/get_user_by_session_token"
)

const (
	SESSION_COOKIE_NAME   = "session"
	SESSION_TOKEN_MAX_LEN = 1024
	LOG_IN_PATH           = "/login"
)

func ParseToken(r *http.Request) (token user.SessionToken, ok bool) {
	cookie, err := r.Cookie(SESSION_COOKIE_NAME)
	if err != nil || cookie.Value == "" {
		return token, false
	}
	if len(cookie.Value) > SESSION_TOKEN_MAX_LEN {
		return token, false
	}
	return user.SessionToken(cookie.Value), true
}

func SetSessionCookie(rw http.ResponseWriter, token user.SessionToken, secure bool) {
	http.SetCookie(rw, &http.Cookie{
		Name:     SESSION_COOKIE_NAME,
		Value:    string(token),
		Path:     "/",
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func ClearSessionCookie(rw http.ResponseWriter, secure bool) {
	http.SetCookie(rw, &http.Cookie{
		Name:     SESSION_COOKIE_NAME,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func SetAuthTokenToContext(next http.Handler) http.Handler {
	return http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		token, ok := ParseToken(r)
		if ok {
			r = r.WithContext(auth.WithToken(r.Context(), token))
		}
		next.ServeHTTP(rw, r)
	})
}

type contextUser struct{}

func WithUser(ctx context.Context, u user.User) context.Context {
	return context.WithValue(ctx, contextUser{}, u)
}

// UserFrom returns the user loaded by LoadUser for the current request.
func UserFrom(ctx context.Context) (user.User, bool) {
	u, ok := ctx.Value(contextUser{}).(user.User)
	return u, ok
}

// LoadUser resolves the session token of the request into a user.
// Anonymous requests and stale sessions pass through without a user.
func LoadUser(
	log logging.Logger,
	service services.Service[s.Input, s.Result],
) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
			if _, ok := auth.TokenFrom(r.Context()); !ok {
				next.ServeHTTP(rw, r)
				return
			}
			result, err := service.Run(r.Context(), s.Input{})
			switch {
			case err == nil:
				r = r.WithContext(WithUser(r.Context(), result.User))
			case errors.Is(err, user.ErrUserDoesNotExist), errors.Is(err, context.Canceled):
			default:
				log.Error(r.Context(), "Could not load user of the session.", logging.Entry("err", err))
			}
			next.ServeHTTP(rw, r)
		})
	}
}

// RequireUser redirects anonymous requests to the log in page.
func RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		if _, ok := UserFrom(r.Context()); !ok {
			http.Redirect(rw, r, LOG_IN_PATH, http.StatusSeeOther)
			return
		}
		next.ServeHTTP(rw, r)
	})
}
