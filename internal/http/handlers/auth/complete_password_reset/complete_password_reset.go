package completepasswordreset

import (
	"errors"
	"net/http"
	"strings"

	c "newsdesk/internal/core/domain/common"
	e "newsdesk/internal/core/domain/errors"
	ratelimiter "newsdesk/internal/core/domain/rate_limiter"
	"newsdesk/internal/core/domain/user"
	"newsdesk/internal/core/services"
	completepasswordreset "newsdesk/internal/core/services/complete_password_reset"
	"newsdesk/internal/http/handlers/auth"
	"newsdesk/internal/http/handlers/flash"
	"newsdesk/internal/http/handlers/response"
	"newsdesk/internal/http/view"

	validation "github.com/go-ozzo/ozzo-validation"
)

const (
	PATH  = "/reset/password"
	PAGE  = "reset_password"
	TITLE = "reset.password.title"

	MAX_CODE_LENGTH = 64
)

type Handler struct {
	view    *view.Renderer
	service services.Service[completepasswordreset.Input, completepasswordreset.Result]
}

func New(
	view *view.Renderer,
	service services.Service[completepasswordreset.Input, completepasswordreset.Result],
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
	Code string `json:"code"`
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Mail, user.MailRules...),
		validation.Field(&i.Code, validation.Required, validation.Length(1, MAX_CODE_LENGTH)),
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

	input := Input{Mail: string(c.NewEmail(r.PostForm.Get("mail"))), Code: strings.TrimSpace(r.PostForm.Get("code"))}
	if err := input.Validate(); err != nil {
		h.view.Render(rw, r, http.StatusUnprocessableEntity, PAGE, view.Page{
			Title:  TITLE,
			Form:   r.PostForm,
			Errors: view.FormErrors(err),
		})
		return
	}

	_, err := h.service.Run(r.Context(), completepasswordreset.Input{
		Mail: c.Email(input.Mail),
		Code: user.ValidationCode(input.Code),
	})
	switch {
	case err == nil:
		flash.Redirect(rw, r, auth.LOG_IN_PATH, flash.Success("reset.password.success"))
	case errors.Is(err, user.ErrUserDoesNotExist):
		flash.Redirect(rw, r, PATH, flash.Danger("reset.password.failure"))
	case errors.Is(err, user.ErrNotificationNotSent):
		flash.Redirect(rw, r, PATH, flash.Danger("reset.password.critical"))
	case errors.Is(err, ratelimiter.ErrRateLimitExceeded):
		flash.Redirect(rw, r, PATH, flash.Danger("reset.rate_limited"))
	default:
		h.view.RenderInternalError(rw, r)
	}
}
