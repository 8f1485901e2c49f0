package i18n

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Translator resolves translation identifiers such as "reset.send.success"
// into localized text. Unknown identifiers are returned unchanged.
type Translator struct {
	catalog   *catalog.Builder
	supported []language.Tag
	matcher   language.Matcher
	fallback  language.Tag
}

func New(defaultLanguage string) (*Translator, error) {
	fallback, err := language.Parse(defaultLanguage)
	if err != nil {
		return nil, fmt.Errorf("invalid default language %q: %w", defaultLanguage, err)
	}

	supported := []language.Tag{fallback}
	for tag := range messages {
		if tag != fallback {
			supported = append(supported, tag)
		}
	}
	if _, ok := messages[fallback]; !ok {
		return nil, fmt.Errorf("no translations for default language %q", defaultLanguage)
	}

	b := catalog.NewBuilder(catalog.Fallback(fallback))
	for tag, entries := range messages {
		for key, msg := range entries {
			if err := b.SetString(tag, key, msg); err != nil {
				return nil, err
			}
		}
	}

	return &Translator{
		catalog:   b,
		supported: supported,
		matcher:   language.NewMatcher(supported),
		fallback:  fallback,
	}, nil
}

func (t *Translator) Default() language.Tag {
	return t.fallback
}

// Match picks the best supported language for an Accept-Language header.
func (t *Translator) Match(acceptLanguage string) language.Tag {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return t.fallback
	}
	_, index, confidence := t.matcher.Match(tags...)
	if confidence == language.No {
		return t.fallback
	}
	return t.supported[index]
}

// T formats the message for key. Placeholders are %s verbs; pass numbers
// already formatted so they are not localized as quantities.
func (t *Translator) T(lang language.Tag, key string, args ...interface{}) string {
	p := message.NewPrinter(lang, message.Catalog(t.catalog))
	return p.Sprintf(key, args...)
}
