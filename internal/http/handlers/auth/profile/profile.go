package profile

import (
	"errors"
	"net/http"

	c "newsdesk/internal/core/domain/common"
	e "newsdesk/internal/core/domain/errors"
	"newsdesk/internal/core/domain/user"
	"newsdesk/internal/core/services"
	changeprofilemail "newsdesk/internal/core/services/change_profile_mail"
	changeprofilepassword "newsdesk/internal/core/services/change_profile_password"
	"newsdesk/internal/http/handlers/flash"
	"newsdesk/internal/http/handlers/response"
	"newsdesk/internal/http/view"

	validation "github.com/go-ozzo/ozzo-validation"
)

const (
	PATH  = "/profile"
	PAGE  = "profile"
	TITLE = "profile.title"

	FORM_PASSWORD = "password"
	FORM_MAIL     = "mail"
)

type Handler struct {
	view            *view.Renderer
	passwordService services.Service[changeprofilepassword.Input, changeprofilepassword.Result]
	mailService     services.Service[changeprofilemail.Input, changeprofilemail.Result]
}

func New(
	view *view.Renderer,
	passwordService services.Service[changeprofilepassword.Input, changeprofilepassword.Result],
	mailService services.Service[changeprofilemail.Input, changeprofilemail.Result],
) *Handler {
	if view == nil {
		panic(e.NewNilArgumentError("view"))
	}
	if passwordService == nil {
		panic(e.NewNilArgumentError("passwordService"))
	}
	if mailService == nil {
		panic(e.NewNilArgumentError("mailService"))
	}
	return &Handler{view: view, passwordService: passwordService, mailService: mailService}
}

type PasswordInput struct {
	Old    string `json:"old"`
	New    string `json:"new"`
	Repeat string `json:"repeat"`
}

func (i PasswordInput) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Old, validation.Required, validation.Length(0, user.MaxPasswordLength)),
		validation.Field(&i.New, user.PasswordRules...),
		validation.Field(&i.Repeat, validation.Required, validation.In(i.New).Error("form.mismatch")),
	)
}

type MailInput struct {
	OldMail string `json:"old_mail"`
	NewMail string `json:"new_mail"`
}

func (i MailInput) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.OldMail, user.MailRules...),
		validation.Field(&i.NewMail, user.MailRules...),
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

	switch r.PostForm.Get("form") {
	case FORM_PASSWORD:
		h.changePassword(rw, r)
	case FORM_MAIL:
		h.changeMail(rw, r)
	default:
		http.Redirect(rw, r, PATH, http.StatusSeeOther)
	}
}

func (h *Handler) changePassword(rw http.ResponseWriter, r *http.Request) {
	input := PasswordInput{
		Old:    r.PostForm.Get("old"),
		New:    r.PostForm.Get("new"),
		Repeat: r.PostForm.Get("repeat"),
	}
	if err := input.Validate(); err != nil {
		h.renderInvalid(rw, r, err)
		return
	}

	_, err := h.passwordService.Run(r.Context(), changeprofilepassword.Input{
		OldPassword: user.RawPassword(input.Old),
		NewPassword: user.RawPassword(input.New),
	})
	if errors.Is(err, user.ErrWrongOldPassword) {
		flash.Redirect(rw, r, PATH, flash.Danger("profile.password.error"))
		return
	}
	if response.RenderAuthError(h.view, rw, r, err) {
		return
	}
	if err != nil {
		h.view.RenderInternalError(rw, r)
		return
	}
	flash.Redirect(rw, r, PATH, flash.Success("profile.password.success"))
}

func (h *Handler) changeMail(rw http.ResponseWriter, r *http.Request) {
	input := MailInput{
		OldMail: r.PostForm.Get("old_mail"),
		NewMail: r.PostForm.Get("new_mail"),
	}
	if err := input.Validate(); err != nil {
		h.renderInvalid(rw, r, err)
		return
	}

	_, err := h.mailService.Run(r.Context(), changeprofilemail.Input{
		OldMail: c.NewEmail(input.OldMail),
		NewMail: c.NewEmail(input.NewMail),
	})
	if errors.Is(err, user.ErrMailMismatch) || errors.Is(err, user.ErrDuplicateKey) {
		flash.Redirect(rw, r, PATH, flash.Danger("profile.mail.error"))
		return
	}
	if response.RenderAuthError(h.view, rw, r, err) {
		return
	}
	if err != nil {
		h.view.RenderInternalError(rw, r)
		return
	}
	flash.Redirect(rw, r, PATH, flash.Success("profile.mail.success"))
}

func (h *Handler) renderInvalid(rw http.ResponseWriter, r *http.Request, err error) {
	h.view.Render(rw, r, http.StatusUnprocessableEntity, PAGE, view.Page{
		Title:  TITLE,
		Form:   r.PostForm,
		Errors: view.FormErrors(err),
	})
}
