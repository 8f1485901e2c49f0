package register

import (
	"errors"
	"net/http"
	"net/url"

	c "newsdesk/internal/core/domain/common"
	e "newsdesk/internal/core/domain/errors"
	ratelimiter "newsdesk/internal/core/domain/rate_limiter"
	"newsdesk/internal/core/domain/user"
	"newsdesk/internal/core/services"
	registeruser "newsdesk/internal/core/services/register_user"
	"newsdesk/internal/http/handlers/auth"
	"newsdesk/internal/http/handlers/flash"
	"newsdesk/internal/http/handlers/response"
	"newsdesk/internal/http/view"

	validation "github.com/go-ozzo/ozzo-validation"
)

const (
	PATH  = "/register"
	PAGE  = "register"
	TITLE = "register.title"
)

type Handler struct {
	view    *view.Renderer
	service services.Service[registeruser.Input, registeruser.Result]
}

func New(
	view *view.Renderer,
	service services.Service[registeruser.Input, registeruser.Result],
) *Handler {
	if view == nil {
		panic(e.NewNilArgumentError("view"))
	}
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{view: view, service: service}
}

type Input struct {
	Username string `json:"username"`
	Mail     string `json:"mail"`
	Password string `json:"password"`
	Repeat   string `json:"repeat"`
}

func (i *Input) FromForm(form url.Values) {
	i.Username = form.Get("username")
	i.Mail = form.Get("mail")
	i.Password = form.Get("password")
	i.Repeat = form.Get("repeat")
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Username, user.UsernameRules...),
		validation.Field(&i.Mail, user.MailRules...),
		validation.Field(&i.Password, user.PasswordRules...),
		validation.Field(&i.Repeat, validation.Required, validation.In(i.Password).Error("form.mismatch")),
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

	_, err := h.service.Run(r.Context(), registeruser.Input{
		Username: user.Username(input.Username),
		Password: user.RawPassword(input.Password),
		Mail:     c.NewEmail(input.Mail),
	})
	if errors.Is(err, user.ErrUserAlreadyExists) || errors.Is(err, user.ErrDuplicateKey) {
		flash.Redirect(rw, r, PATH, flash.Danger("register.error"))
		return
	}
	if errors.Is(err, ratelimiter.ErrRateLimitExceeded) {
		flash.Redirect(rw, r, PATH, flash.Danger("login.rate_limited"))
		return
	}
	if err != nil {
		h.view.RenderInternalError(rw, r)
		return
	}

	flash.Redirect(rw, r, auth.LOG_IN_PATH, flash.Success("register.success"))
}
