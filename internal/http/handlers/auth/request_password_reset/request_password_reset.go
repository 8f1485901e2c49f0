package requestpasswordreset

import (
	"errors"
	"net/http"

	c "newsdesk/internal/core/domain/common"
	e "newsdesk/internal/core/domain/errors"
	ratelimiter "newsdesk/internal/core/domain/rate_limiter"
	"newsdesk/internal/core/domain/user"
	"newsdesk/internal/core/services"
	requestpasswordreset "newsdesk/internal/core/services/request_password_reset"
	"newsdesk/internal/http/handlers/flash"
	"newsdesk/internal/http/handlers/response"
	"newsdesk/internal/http/view"

	validation "github.com/go-ozzo/ozzo-validation"
)

const (
	PATH          = "/reset"
	COMPLETE_PATH = "/reset/password"
	PAGE          = "reset"
	TITLE         = "reset.title"
)

type Handler struct {
	view    *view.Renderer
	service services.Service[requestpasswordreset.Input, requestpasswordreset.Result]
}

func New(
	view *view.Renderer,
	service services.Service[requestpasswordreset.Input, requestpasswordreset.Result],
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
	Mail string `json:"mail"`
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Mail, user.MailRules...),
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

	input := Input{Mail: string(c.NewEmail(r.PostForm.Get("mail")))}
	if err := input.Validate(); err != nil {
		h.view.Render(rw, r, http.StatusUnprocessableEntity, PAGE, view.Page{
			Title:  TITLE,
			Form:   r.PostForm,
			Errors: view.FormErrors(err),
		})
		return
	}

	_, err := h.service.Run(r.Context(), requestpasswordreset.Input{Mail: c.Email(input.Mail)})
	switch {
	case err == nil:
		flash.Redirect(rw, r, COMPLETE_PATH, flash.Success("reset.send.success"))
	case errors.Is(err, user.ErrUserDoesNotExist):
		flash.Redirect(rw, r, PATH, flash.Danger("reset.user.notfound"))
	case errors.Is(err, user.ErrNotificationNotSent):
		flash.Redirect(rw, r, PATH, flash.Danger("reset.send.failure"))
	case errors.Is(err, ratelimiter.ErrRateLimitExceeded):
		flash.Redirect(rw, r, PATH, flash.Danger("reset.rate_limited"))
	default:
		h.view.RenderInternalError(rw, r)
	}
}
