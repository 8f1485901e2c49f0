package i18n

import (
	"context"

	"golang.org/x/text/language"
)

type contextKey struct{}

func WithLanguage(ctx context.Context, lang language.Tag) context.Context {
	return context.WithValue(ctx, contextKey{}, lang)
}

// LanguageFrom returns the language stored by WithLanguage, or fallback.
func LanguageFrom(ctx context.Context, fallback language.Tag) language.Tag {
	lang, ok := ctx.Value(contextKey{}).(language.Tag)
	if !ok {
		return fallback
	}
	return lang
}
