package flash

import (
	"net/http"
	"net/url"
)

const COOKIE_NAME = "flash"

type Kind string

const (
	KindSuccess Kind = "success"
	KindDanger  Kind = "danger"
)

// Message is a one-shot notice shown on the next rendered page.
// Key is a translation identifier, Args are its already formatted arguments.
type Message struct {
	Kind Kind
	Key  string
	Args []string
}

func Success(key string, args ...string) Message {
	return Message{Kind: KindSuccess, Key: key, Args: args}
}

func Danger(key string, args ...string) Message {
	return Message{Kind: KindDanger, Key: key, Args: args}
}

func Set(rw http.ResponseWriter, m Message) {
	values := url.Values{}
	values.Set("kind", string(m.Kind))
	values.Set("key", m.Key)
	for _, arg := range m.Args {
		values.Add("arg", arg)
	}
	http.SetCookie(rw, &http.Cookie{
		Name:     COOKIE_NAME,
		Value:    values.Encode(),
		Path:     "/",
		HttpOnly: true,
	})
}

// Pop reads the pending message and expires the cookie.
func Pop(rw http.ResponseWriter, r *http.Request) (m Message, ok bool) {
	cookie, err := r.Cookie(COOKIE_NAME)
	if err != nil || cookie.Value == "" {
		return m, false
	}
	http.SetCookie(rw, &http.Cookie{
		Name:     COOKIE_NAME,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})

	values, err := url.ParseQuery(cookie.Value)
	if err != nil || values.Get("key") == "" {
		return m, false
	}
	m = Message{
		Kind: Kind(values.Get("kind")),
		Key:  values.Get("key"),
		Args: values["arg"],
	}
	if m.Kind != KindSuccess && m.Kind != KindDanger {
		m.Kind = KindDanger
	}
	return m, true
}

// Redirect stores m and sends a 303 to location.
func Redirect(rw http.ResponseWriter, r *http.Request, location string, m Message) {
	Set(rw, m)
	http.Redirect(rw, r, location, http.StatusSeeOther)
}
