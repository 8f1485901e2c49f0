package resetmailer

import (
	"bytes"
	"context"
	"embed"
	"html/template"

	e "newsdesk/internal/core/domain/errors"
	"newsdesk/internal/core/domain/notification"
	"newsdesk/internal/core/domain/user"
	"newsdesk/internal/i18n"

	"golang.org/x/text/language"
)

//go:embed templates/*.html
var templatesFS embed.FS

const (
	validationCodeTemplate = "validation_code.html"
	newPasswordTemplate    = "new_password.html"
)

// Mailer renders the password reset mails in the request language and hands
// them to the notification sender.
type Mailer struct {
	sender     notification.Sender
	translator *i18n.Translator
	templates  *template.Template
}

func New(sender notification.Sender, translator *i18n.Translator) *Mailer {
	if sender == nil {
		panic(e.NewNilArgumentError("sender"))
	}
	if translator == nil {
		panic(e.NewNilArgumentError("translator"))
	}
	// Placeholder func so the templates parse; the real one is bound per language.
	templates := template.Must(
		template.New("mail").
			Funcs(template.FuncMap{"t": func(string, ...interface{}) string { return "" }}).
			ParseFS(templatesFS, "templates/*.html"),
	)
	return &Mailer{sender: sender, translator: translator, templates: templates}
}

type validationCodeParams struct {
	Lang     string
	Username user.Username
	Code     user.ValidationCode
}

type newPasswordParams struct {
	Lang     string
	Username user.Username
	Password string
}

func (m *Mailer) SendValidationCode(ctx context.Context, u user.User, code user.ValidationCode) error {
	lang := i18n.LanguageFrom(ctx, m.translator.Default())
	body, err := m.render(lang, validationCodeTemplate, validationCodeParams{
		Lang:     lang.String(),
		Username: u.Username,
		Code:     code,
	})
	if err != nil {
		return err
	}
	return m.sender.Send(ctx, notification.Message{
		To:       u.Mail,
		Subject:  m.translator.T(lang, "reset.object.reinit"),
		HTMLBody: body,
	})
}

func (m *Mailer) SendNewPassword(ctx context.Context, u user.User, password user.RawPassword) error {
	lang := i18n.LanguageFrom(ctx, m.translator.Default())
	body, err := m.render(lang, newPasswordTemplate, newPasswordParams{
		Lang:     lang.String(),
		Username: u.Username,
		Password: string(password),
	})
	if err != nil {
		return err
	}
	return m.sender.Send(ctx, notification.Message{
		To:       u.Mail,
		Subject:  m.translator.T(lang, "reset.object.new"),
		HTMLBody: body,
	})
}

func (m *Mailer) render(lang language.Tag, name string, params interface{}) (string, error) {
	tmpl, err := m.templates.Clone()
	if err != nil {
		return "", err
	}
	tmpl.Funcs(template.FuncMap{
		"t": func(key string, args ...interface{}) string {
			return m.translator.T(lang, key, args...)
		},
	})
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, name, params); err != nil {
		return "", err
	}
	return buf.String(), nil
}
