package view

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"net/url"
	"time"

	e "newsdesk/internal/core/domain/errors"
	"newsdesk/internal/core/domain/logging"
	"newsdesk/internal/core/domain/user"
	"newsdesk/internal/http/handlers/auth"
	"newsdesk/internal/http/handlers/flash"
	"newsdesk/internal/i18n"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/golang-module/carbon/v2"
	"golang.org/x/text/language"
)

//go:embed templates/*.html
var templates embed.FS

var pages = []string{
	"home",
	"login",
	"register",
	"profile",
	"reset",
	"reset_password",
	"news_list",
	"news_form",
	"category_list",
	"category_form",
	"error",
}

// Page is the data of a rendered page. Title is a translation identifier.
type Page struct {
	Title     string
	TitleArgs []string
	Form      url.Values
	Errors    map[string]string
	Data      interface{}

	Lang    string
	User    *user.User
	IsAdmin bool
	Flash   *FlashView
}

type FlashView struct {
	Kind flash.Kind
	Text string
}

type fieldView struct {
	Name  string
	Label string
	Type  string
	Value string
	Error string
}

type Renderer struct {
	log        logging.Logger
	translator *i18n.Translator
	pages      map[string]*template.Template
}

func New(log logging.Logger, translator *i18n.Translator) (*Renderer, error) {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if translator == nil {
		panic(e.NewNilArgumentError("translator"))
	}

	parsed := make(map[string]*template.Template, len(pages))
	for _, name := range pages {
		tpl, err := template.New(name).
			Funcs(funcs(translator, translator.Default())).
			ParseFS(templates, "templates/layout.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("could not parse template %s: %w", name, err)
		}
		parsed[name] = tpl
	}
	return &Renderer{log: log, translator: translator, pages: parsed}, nil
}

// Language stores the best supported language of the Accept-Language header
// in the request context.
func (v *Renderer) Language(next http.Handler) http.Handler {
	return http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		lang := v.translator.Match(r.Header.Get("Accept-Language"))
		next.ServeHTTP(rw, r.WithContext(i18n.WithLanguage(r.Context(), lang)))
	})
}

func (v *Renderer) Render(rw http.ResponseWriter, r *http.Request, status int, name string, page Page) {
	base, ok := v.pages[name]
	if !ok {
		v.log.Error(r.Context(), "Unknown page template.", logging.Entry("name", name))
		rw.WriteHeader(http.StatusInternalServerError)
		return
	}

	lang := i18n.LanguageFrom(r.Context(), v.translator.Default())
	page.Lang = lang.String()
	if u, ok := auth.UserFrom(r.Context()); ok {
		page.User = &u
		page.IsAdmin = u.HasRole(user.RoleAdmin)
	}
	if m, ok := flash.Pop(rw, r); ok {
		page.Flash = &FlashView{Kind: m.Kind, Text: v.translator.T(lang, m.Key, toArgs(m.Args)...)}
	}

	tpl, err := base.Clone()
	if err == nil {
		tpl = tpl.Funcs(funcs(v.translator, lang))
		var buf bytes.Buffer
		if err = tpl.ExecuteTemplate(&buf, "layout", page); err == nil {
			rw.Header().Set("Content-Type", "text/html; charset=utf-8")
			rw.WriteHeader(status)
			rw.Write(buf.Bytes())
			return
		}
	}

	v.log.Error(
		r.Context(),
		"Could not render page.",
		logging.Entry("name", name),
		logging.Entry("err", err),
	)
	rw.WriteHeader(http.StatusInternalServerError)
}

func (v *Renderer) RenderInternalError(rw http.ResponseWriter, r *http.Request) {
	v.Render(rw, r, http.StatusInternalServerError, "error", Page{Title: "error.title", Data: "error.internal"})
}

func (v *Renderer) RenderForbidden(rw http.ResponseWriter, r *http.Request) {
	v.Render(rw, r, http.StatusForbidden, "error", Page{Title: "error.title", Data: "error.forbidden"})
}

// T translates key in the language of the request.
func (v *Renderer) T(r *http.Request, key string, args ...string) string {
	lang := i18n.LanguageFrom(r.Context(), v.translator.Default())
	return v.translator.T(lang, key, toArgs(args)...)
}

// FormErrors flattens validation errors into field name -> message.
// Messages may be translation identifiers, pages translate them on output.
// Errors other than validation.Errors are reported under the empty key.
func FormErrors(err error) map[string]string {
	if err == nil {
		return nil
	}
	var fieldErrors validation.Errors
	if !errors.As(err, &fieldErrors) {
		return map[string]string{"": err.Error()}
	}
	result := make(map[string]string, len(fieldErrors))
	for field, fieldErr := range fieldErrors {
		if fieldErr != nil {
			result[field] = fieldErr.Error()
		}
	}
	return result
}

func funcs(translator *i18n.Translator, lang language.Tag) template.FuncMap {
	locale := "en"
	if base, _ := lang.Base(); base.String() == "fr" {
		locale = "fr"
	}
	return template.FuncMap{
		"t": func(key string, args ...interface{}) string {
			return translator.T(lang, key, flatten(args)...)
		},
		"field": func(name, label, typ, value string, errs map[string]string) fieldView {
			f := fieldView{Name: name, Label: label, Type: typ, Value: value}
			if msg := errs[name]; msg != "" {
				f.Error = translator.T(lang, msg)
			}
			return f
		},
		"ago": func(t time.Time) string {
			return carbon.Time2Carbon(t).SetLocale(locale).DiffForHumans()
		},
		"datetime": func(t time.Time) string {
			return carbon.Time2Carbon(t).ToDateTimeString(carbon.UTC)
		},
	}
}

func flatten(args []interface{}) []interface{} {
	result := make([]interface{}, 0, len(args))
	for _, arg := range args {
		if items, ok := arg.([]string); ok {
			result = append(result, toArgs(items)...)
			continue
		}
		result = append(result, arg)
	}
	return result
}

func toArgs(items []string) []interface{} {
	args := make([]interface{}, len(items))
	for ix, item := range items {
		args[ix] = item
	}
	return args
}
