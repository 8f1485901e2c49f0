package login

import (
	"errors"
	"net/http"
	"net/url"

	e "newsdesk/internal/core/domain/errors"
	ratelimiter "newsdesk/internal/core/domain/rate_limiter"
	"newsdesk/internal/core/domain/user"
	"newsdesk/internal/core/services"
	login "newsdesk/internal/core/services/log_in"
	"newsdesk/internal/http/handlers/auth"
	"newsdesk/internal/http/handlers/flash"
	"newsdesk/internal/http/handlers/response"
	"newsdesk/internal/http/view"

	validation "github.com/go-ozzo/ozzo-validation"
)

const (
	PAGE  = "login"
	TITLE = "login.title"
)

type Handler struct {
	view          *view.Renderer
	service       services.Service[login.Input, login.Result]
	secureCookies bool
}

func New(
	view *view.Renderer,
	service services.Service[login.Input, login.Result],
	secureCookies bool,
) *Handler {
	if view == nil {
		panic(e.NewNilArgumentError("view"))
	}
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{view: view, service: service, secureCookies: secureCookies}
}

type Input struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (i *Input) FromForm(form url.Values) {
	i.Username = form.Get("username")
	i.Password = form.Get("password")
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Username, user.UsernameRules...),
		validation.Field(&i.Password, validation.Required, validation.Length(0, user.MaxPasswordLength)),
	)
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		h.view.Render(rw, r, http.StatusOK, PAGE, view.Page{Title: TITLE})
		return
	}
	if !response.ParseForm(rw, r) {
		return
	}

	input := Input{}
	input.FromForm(r.PostForm)
	if err := input.Validate(); err != nil {
		h.view.Render(rw, r, http.StatusUnprocessableEntity, PAGE, view.Page{
			Title:  TITLE,
			Form:   r.PostForm,
			Errors: view.FormErrors(err),
		})
		return
	}

	result, err := h.service.Run(
		r.Context(),
		login.Input{Username: user.Username(input.Username), Password: user.RawPassword(input.Password)},
	)
	if errors.Is(err, ratelimiter.ErrRateLimitExceeded) {
		flash.Redirect(rw, r, auth.LOG_IN_PATH, flash.Danger("login.rate_limited"))
		return
	}
	if errors.Is(err, user.ErrInvalidCredentials) {
		flash.Redirect(rw, r, auth.LOG_IN_PATH, flash.Danger("login.invalid_credentials"))
		return
	}
	if err != nil {
		h.view.RenderInternalError(rw, r)
		return
	}

	auth.SetSessionCookie(rw, result.Token, h.secureCookies)
	http.Redirect(rw, r, "/", http.StatusSeeOther)
}
